// Package sqlite implements the local card store. JSONL files in DataDir are
// the source of truth; SQLite (modernc.org/sqlite) is the query engine and
// is rebuilt from the files whenever they change.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/moracle/internal/logging"
	"github.com/mesh-intelligence/moracle/pkg/types"
)

// Backend implements types.Store using SQLite as the query engine and JSONL
// files as the source of truth.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	logger   zerolog.Logger
}

var _ types.Store = (*Backend)(nil)

// NewBackend creates a new SQLite backend instance.
// The backend is not attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{
		logger: logging.GetLogger("sqlite"),
	}
}

// Attach opens the store in config.DataDir. Creates DataDir and empty data
// files if they do not exist, opens moracle.db and rebuilds it when the
// data files changed since the last load or config.Rebuild is set.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}
	config.DataDir = dataDir

	for _, mapping := range jsonlTableMapping {
		if err := ensureJSONLFile(filepath.Join(dataDir, mapping.file)); err != nil {
			return err
		}
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, databaseFile))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	current, err := dataSignature(dataDir)
	if err != nil {
		db.Close()
		return err
	}
	if config.Rebuild || storedSignature(db) != current {
		start := time.Now()
		if err := rebuild(db, dataDir); err != nil {
			db.Close()
			return fmt.Errorf("load JSONL: %w", err)
		}
		logging.LogDuration(b.logger, start, "rebuild query database")
	} else {
		b.logger.Debug().Str("data_dir", dataDir).Msg("query database is current")
	}

	b.db = db
	b.config = config
	b.attached = true
	return nil
}

// Detach closes the SQLite connection. After Detach, all operations return
// ErrStoreDetached. Detach is idempotent.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return nil
	}

	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return err
		}
		b.db = nil
	}
	b.attached = false
	return nil
}

// ReplaceCards swaps the whole card set. The cards file is rewritten
// atomically, the import is appended to the history and the query database
// is rebuilt. Cards whose names collide after normalization keep the first
// occurrence. Returns ErrNoCards when cards is empty so that a failed
// download never wipes an existing store.
func (b *Backend) ReplaceCards(cards []types.Card, imp types.Import) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}
	if len(cards) == 0 {
		return types.ErrNoCards
	}

	seen := make(map[string]struct{}, len(cards))
	rows := make([]cardJSON, 0, len(cards))
	for _, c := range cards {
		key := NameKey(c.Name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			b.logger.Debug().Str("card", c.Name).Msg("duplicate card name, keeping first")
			continue
		}
		seen[key] = struct{}{}
		rows = append(rows, dehydrateCard(c))
	}
	if len(rows) == 0 {
		return types.ErrNoCards
	}

	if imp.ImportID == "" {
		imp.ImportID = generateUUID()
	}
	if imp.ImportedAt.IsZero() {
		imp.ImportedAt = time.Now()
	}
	imp.CardCount = len(rows)

	cardRecords, err := marshalRecords(rows)
	if err != nil {
		return err
	}
	if err := writeJSONL(filepath.Join(b.config.DataDir, cardsJSONL), cardRecords); err != nil {
		return fmt.Errorf("writing cards: %w", err)
	}
	if err := b.appendImportLocked(imp); err != nil {
		return err
	}

	start := time.Now()
	if err := rebuild(b.db, b.config.DataDir); err != nil {
		return fmt.Errorf("rebuilding query database: %w", err)
	}
	logging.LogDuration(b.logger, start, "rebuild query database")
	b.logger.Info().
		Str("import_id", imp.ImportID).
		Int("cards", imp.CardCount).
		Int("skipped", imp.Skipped).
		Msg("card set replaced")
	return nil
}

// generateUUID generates a new UUID v7 for record IDs.
func generateUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to UUID v4 if v7 generation fails
		return uuid.New().String()
	}
	return id.String()
}
