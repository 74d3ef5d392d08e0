package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

// importTimeLayout is fixed-width so imported_at sorts lexically.
const importTimeLayout = "2006-01-02T15:04:05.000000000Z"

// LastImport returns the most recent import record.
// Returns ErrNotFound if the store has never been populated.
func (b *Backend) LastImport() (types.Import, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Import{}, types.ErrStoreDetached
	}

	var rec importJSON
	err := b.db.QueryRow(
		`SELECT import_id, source, card_count, skipped, imported_at
		 FROM imports ORDER BY imported_at DESC, import_id DESC LIMIT 1`,
	).Scan(&rec.ImportID, &rec.Source, &rec.CardCount, &rec.Skipped, &rec.ImportedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Import{}, types.ErrNotFound
	}
	if err != nil {
		return types.Import{}, fmt.Errorf("querying last import: %w", err)
	}
	return hydrateImport(rec)
}

// appendImportLocked rewrites imports.jsonl with imp added at the end.
// Caller must hold b.mu.
func (b *Backend) appendImportLocked(imp types.Import) error {
	path := filepath.Join(b.config.DataDir, importsJSONL)
	records, err := readJSONL(path)
	if err != nil {
		return err
	}
	rec, err := json.Marshal(dehydrateImport(imp))
	if err != nil {
		return fmt.Errorf("marshaling import: %w", err)
	}
	records = append(records, rec)
	if err := writeJSONL(path, records); err != nil {
		return fmt.Errorf("writing imports: %w", err)
	}
	return nil
}

func dehydrateImport(imp types.Import) importJSON {
	return importJSON{
		ImportID:   imp.ImportID,
		Source:     imp.Source,
		CardCount:  imp.CardCount,
		Skipped:    imp.Skipped,
		ImportedAt: imp.ImportedAt.UTC().Format(importTimeLayout),
	}
}

func hydrateImport(rec importJSON) (types.Import, error) {
	at, err := time.Parse(time.RFC3339Nano, rec.ImportedAt)
	if err != nil {
		return types.Import{}, fmt.Errorf("parsing imported_at: %w", err)
	}
	return types.Import{
		ImportID:   rec.ImportID,
		Source:     rec.Source,
		CardCount:  rec.CardCount,
		Skipped:    rec.Skipped,
		ImportedAt: at,
	}, nil
}
