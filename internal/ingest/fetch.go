package ingest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/mesh-intelligence/moracle/internal/logging"
	"github.com/mesh-intelligence/moracle/pkg/moracle"
)

func newClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Download fetches url into a temporary file in dir and returns its path.
// The caller removes the file. Non-200 responses return ErrBadStatus.
func Download(ctx context.Context, client *http.Client, url, dir string) (string, error) {
	logger := logging.GetLogger("ingest")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", "moracle/"+moracle.Version)

	logger.Info().Str("url", url).Msg("downloading card data")
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to download: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: %d from %s", ErrBadStatus, resp.StatusCode, url)
	}

	tmp, err := os.CreateTemp(dir, "moracle-download-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}

	n, err := io.Copy(tmp, resp.Body)
	if err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to read: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("failed to write: %w", err)
	}

	logger.Debug().Int64("bytes", n).Str("path", tmp.Name()).Msg("download complete")
	return tmp.Name(), nil
}
