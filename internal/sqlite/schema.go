package sqlite

// schemaVersion is folded into the load signature so that a schema change
// forces a rebuild of the query database.
const schemaVersion = 1

// Schema DDL for all tables.
const (
	createCards = `CREATE TABLE cards (
    card_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    name_key TEXT NOT NULL,
    mana_cost TEXT NOT NULL DEFAULT '',
    type_line TEXT NOT NULL DEFAULT '',
    text TEXT NOT NULL DEFAULT '',
    power TEXT NOT NULL DEFAULT '',
    toughness TEXT NOT NULL DEFAULT '',
    loyalty TEXT NOT NULL DEFAULT ''
);`

	createImports = `CREATE TABLE imports (
    import_id TEXT PRIMARY KEY,
    source TEXT NOT NULL,
    card_count INTEGER NOT NULL,
    skipped INTEGER NOT NULL DEFAULT 0,
    imported_at TEXT NOT NULL
);`

	createLoadState = `CREATE TABLE load_state (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`
)

// Index DDL for lookups.
const (
	idxCardsNameKey      = `CREATE UNIQUE INDEX idx_cards_name_key ON cards(name_key);`
	idxImportsImportedAt = `CREATE INDEX idx_imports_imported_at ON imports(imported_at);`
)

// schemaDDL lists all CREATE TABLE statements.
var schemaDDL = []string{
	createCards,
	createImports,
	createLoadState,
}

// indexDDL lists all CREATE INDEX statements.
var indexDDL = []string{
	idxCardsNameKey,
	idxImportsImportedAt,
}

// dropDDL removes every table so the schema can be recreated from scratch.
var dropDDL = []string{
	`DROP TABLE IF EXISTS cards;`,
	`DROP TABLE IF EXISTS imports;`,
	`DROP TABLE IF EXISTS load_state;`,
}
