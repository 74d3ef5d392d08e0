// Package ingest downloads bulk card data, decodes it into validated
// types.Card values and replaces the contents of a card store.
//
// Two MTGJSON layouts are understood: the v5 AtomicCards file
// ({"meta": ..., "data": {name: [face, ...]}}), usually shipped as a zip
// archive, and the older v4 AllCards file (a plain {name: card} map).
package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/mesh-intelligence/moracle/internal/logging"
	"github.com/mesh-intelligence/moracle/pkg/types"
)

// DefaultSourceURL is the bulk dataset fetched when no source is configured.
const DefaultSourceURL = "https://mtgjson.com/api/v5/AtomicCards.json.zip"

// DefaultTimeout bounds a whole download.
const DefaultTimeout = 10 * time.Minute

// Ingestion errors.
var (
	ErrBadStatus       = errors.New("unexpected HTTP status")
	ErrNoJSONInArchive = errors.New("archive contains no JSON file")
	ErrUnknownFormat   = errors.New("unrecognized card data format")
)

// Options selects where card data comes from. File wins over URL; with
// neither set DefaultSourceURL is used.
type Options struct {
	URL     string
	File    string
	Timeout time.Duration
	TempDir string // download location; os.TempDir() when empty
}

// Source returns the location Run will read from.
func (o Options) Source() string {
	switch {
	case o.File != "":
		return o.File
	case o.URL != "":
		return o.URL
	default:
		return DefaultSourceURL
	}
}

// Run reads the configured source, parses it and replaces the store's card
// set. It returns the import record as stored.
func Run(ctx context.Context, store types.Store, opts Options) (types.Import, error) {
	logger := logging.GetLogger("ingest")
	start := time.Now()
	source := opts.Source()

	path := opts.File
	if path == "" {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultTimeout
		}
		downloaded, err := Download(ctx, newClient(timeout), source, opts.TempDir)
		if err != nil {
			return types.Import{}, err
		}
		defer os.Remove(downloaded)
		path = downloaded
	}

	payload, err := openPayload(path)
	if err != nil {
		return types.Import{}, err
	}
	defer payload.Close()

	result, err := Parse(payload)
	if err != nil {
		return types.Import{}, fmt.Errorf("parsing %s: %w", source, err)
	}
	logger.Info().
		Str("format", result.Format).
		Int("cards", len(result.Cards)).
		Int("skipped", result.Skipped).
		Msg("parsed card data")

	imp := types.Import{
		Source:     source,
		CardCount:  len(result.Cards),
		Skipped:    result.Skipped,
		ImportedAt: time.Now(),
	}
	if err := store.ReplaceCards(result.Cards, imp); err != nil {
		return types.Import{}, fmt.Errorf("storing cards: %w", err)
	}
	logging.LogDuration(logger, start, "update")
	return store.LastImport()
}
