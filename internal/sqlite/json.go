package sqlite

// JSON record structures that mirror the data file format.

// cardJSON represents a card in cards.jsonl.
type cardJSON struct {
	CardID    string `json:"card_id"`
	Name      string `json:"name"`
	ManaCost  string `json:"mana_cost"`
	TypeLine  string `json:"type_line"`
	Text      string `json:"text"`
	Power     string `json:"power,omitempty"`
	Toughness string `json:"toughness,omitempty"`
	Loyalty   string `json:"loyalty,omitempty"`
}

// importJSON represents one ingestion run in imports.jsonl.
type importJSON struct {
	ImportID   string `json:"import_id"`
	Source     string `json:"source"`
	CardCount  int    `json:"card_count"`
	Skipped    int    `json:"skipped"`
	ImportedAt string `json:"imported_at"`
}
