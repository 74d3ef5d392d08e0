package ingest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
)

var zipMagic = []byte("PK\x03\x04")

// openPayload opens the JSON document stored at path. Zip archives are
// unwrapped to their first .json entry; anything else is read as JSON.
func openPayload(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}

	head := make([]byte, len(zipMagic))
	n, _ := io.ReadFull(f, head)
	if !bytes.Equal(head[:n], zipMagic) {
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			f.Close()
			return nil, fmt.Errorf("rewinding %s: %w", path, err)
		}
		return f, nil
	}
	f.Close()

	zr, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("opening archive %s: %w", path, err)
	}
	for _, entry := range zr.File {
		if entry.FileInfo().IsDir() || !strings.HasSuffix(strings.ToLower(entry.Name), ".json") {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			zr.Close()
			return nil, fmt.Errorf("opening %s in archive: %w", entry.Name, err)
		}
		return &archiveEntry{ReadCloser: rc, archive: zr}, nil
	}
	zr.Close()
	return nil, ErrNoJSONInArchive
}

// archiveEntry closes the enclosing archive along with the entry.
type archiveEntry struct {
	io.ReadCloser
	archive *zip.ReadCloser
}

func (e *archiveEntry) Close() error {
	err := e.ReadCloser.Close()
	if cerr := e.archive.Close(); err == nil {
		err = cerr
	}
	return err
}
