package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// signatureKey is the load_state key under which the data file signature of
// the last rebuild is stored.
const signatureKey = "jsonl_signature"

// jsonlTableMapping maps JSONL filenames to their SQLite tables and column
// lists. derive fills columns that are computed rather than stored in the
// file.
var jsonlTableMapping = []struct {
	file    string
	table   string
	columns []string
	derive  func(obj map[string]any)
}{
	{
		file:    cardsJSONL,
		table:   "cards",
		columns: []string{"card_id", "name", "name_key", "mana_cost", "type_line", "text", "power", "toughness", "loyalty"},
		derive:  deriveNameKey,
	},
	{
		file:    importsJSONL,
		table:   "imports",
		columns: []string{"import_id", "source", "card_count", "skipped", "imported_at"},
	},
}

// deriveNameKey sets name_key from name.
func deriveNameKey(obj map[string]any) {
	name, _ := obj["name"].(string)
	obj["name_key"] = NameKey(name)
}

// dataSignature summarizes the data files by size and modification time.
// A query database whose stored signature differs is stale.
func dataSignature(dataDir string) (string, error) {
	parts := []string{fmt.Sprintf("schema=%d", schemaVersion)}
	for _, mapping := range jsonlTableMapping {
		info, err := os.Stat(filepath.Join(dataDir, mapping.file))
		if errors.Is(err, fs.ErrNotExist) {
			parts = append(parts, mapping.file+"=missing")
			continue
		}
		if err != nil {
			return "", fmt.Errorf("stat %s: %w", mapping.file, err)
		}
		parts = append(parts, fmt.Sprintf("%s=%d:%d", mapping.file, info.Size(), info.ModTime().UnixNano()))
	}
	return strings.Join(parts, ";"), nil
}

// storedSignature reads the signature recorded by the last rebuild. An
// empty result means the database has never been loaded or predates the
// load_state table.
func storedSignature(db *sql.DB) string {
	var sig string
	err := db.QueryRow("SELECT value FROM load_state WHERE key = ?", signatureKey).Scan(&sig)
	if err != nil {
		return ""
	}
	return sig
}

// rebuild drops and recreates the schema, then loads every JSONL file into
// its table. Loading is transactional: all succeed or the previous database
// content remains. Malformed lines and records that violate constraints
// (duplicate name keys) are skipped.
func rebuild(db *sql.DB, dataDir string) error {
	sig, err := dataSignature(dataDir)
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning load transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmts := range [][]string{dropDDL, schemaDDL, indexDDL} {
		for _, stmt := range stmts {
			if _, err := tx.Exec(stmt); err != nil {
				return fmt.Errorf("applying schema: %w", err)
			}
		}
	}

	for _, mapping := range jsonlTableMapping {
		records, err := readJSONL(filepath.Join(dataDir, mapping.file))
		if err != nil {
			return fmt.Errorf("reading %s: %w", mapping.file, err)
		}
		if len(records) == 0 {
			continue
		}
		if err := insertRecords(tx, mapping.table, mapping.columns, records, mapping.derive); err != nil {
			return fmt.Errorf("loading %s into %s: %w", mapping.file, mapping.table, err)
		}
	}

	if _, err := tx.Exec("INSERT INTO load_state (key, value) VALUES (?, ?)", signatureKey, sig); err != nil {
		return fmt.Errorf("recording load signature: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing load transaction: %w", err)
	}
	return nil
}

// insertRecords inserts parsed JSONL records into a SQLite table. Only
// columns listed in the mapping are extracted; unknown fields are ignored.
// Missing string columns load as empty strings.
func insertRecords(tx *sql.Tx, table string, columns []string, records []json.RawMessage, derive func(map[string]any)) error {
	placeholders := make([]string, len(columns))
	for i := range placeholders {
		placeholders[i] = "?"
	}
	insertSQL := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (%s)",
		table,
		joinColumns(columns),
		joinColumns(placeholders),
	)

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert for %s: %w", table, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		var obj map[string]any
		if err := json.Unmarshal(rec, &obj); err != nil {
			continue
		}
		if derive != nil {
			derive(obj)
		}

		args := make([]any, len(columns))
		for i, col := range columns {
			val, ok := obj[col]
			if !ok || val == nil {
				args[i] = ""
				continue
			}
			args[i] = val
		}

		if _, err := stmt.Exec(args...); err != nil {
			continue
		}
	}
	return nil
}

// joinColumns joins column names with commas.
func joinColumns(cols []string) string {
	return strings.Join(cols, ", ")
}
