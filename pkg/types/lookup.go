package types

import (
	"errors"
	"time"
)

// Lookup finds a single card by name. Matching is case-insensitive and
// exact on the full card name.
type Lookup interface {
	// Find returns the card whose name matches name.
	// Returns ErrNotFound if no card matches.
	Find(name string) (Card, error)
}

// Store is a local card database. Callers attach to a data directory,
// look cards up, replace the card set on update, and detach when done.
type Store interface {
	Lookup

	// Attach opens the store described by config, creating DataDir if it
	// does not exist. Returns ErrAlreadyAttached if already attached.
	Attach(config Config) error

	// Detach releases store resources. Idempotent.
	Detach() error

	// ReplaceCards swaps the whole card set for cards and records the
	// import in the store's history.
	ReplaceCards(cards []Card, imp Import) error

	// LastImport returns the most recent import record.
	// Returns ErrNotFound if the store has never been populated.
	LastImport() (Import, error)

	// CardCount returns the number of stored cards.
	CardCount() (int, error)
}

// Import describes one ingestion run.
type Import struct {
	ImportID   string    // UUID v7, generated by the store when empty.
	Source     string    // URL or file path the cards came from.
	CardCount  int       // Cards stored.
	Skipped    int       // Records rejected during parsing.
	ImportedAt time.Time // Completion time.
}

// Store lifecycle and lookup errors.
var (
	ErrNotFound        = errors.New("card not found")
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrNoCards         = errors.New("no cards to store")
)
