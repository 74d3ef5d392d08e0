// Package sqlite provides the public API for the SQLite card store.
// This package exposes the factory function for creating stores while
// keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/moracle/internal/sqlite"
	"github.com/mesh-intelligence/moracle/pkg/types"
)

// NewBackend creates a new SQLite store instance.
// The store is not attached; call Attach with a Config to initialize.
//
// Example:
//
//	store := sqlite.NewBackend()
//	err := store.Attach(types.Config{
//	    Backend: types.BackendSQLite,
//	    DataDir: dataDir,
//	})
//	defer store.Detach()
//	card, err := store.Find("Counterspell")
func NewBackend() types.Store {
	return sqlite.NewBackend()
}
