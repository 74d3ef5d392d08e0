package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

// Find returns the card whose normalized name equals the normalized query.
// Returns ErrEmptyName for a blank query, ErrNotFound when nothing matches
// and ErrMalformedRecord when the stored record breaks the stats invariant.
func (b *Backend) Find(name string) (types.Card, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Card{}, types.ErrStoreDetached
	}

	key := NameKey(name)
	if key == "" {
		return types.Card{}, types.ErrEmptyName
	}

	row := b.db.QueryRow(
		`SELECT card_id, name, mana_cost, type_line, text, power, toughness, loyalty
		 FROM cards WHERE name_key = ?`, key)

	c, err := scanCard(row)
	if errors.Is(err, sql.ErrNoRows) {
		return types.Card{}, fmt.Errorf("%w: %s", types.ErrNotFound, strings.TrimSpace(name))
	}
	if err != nil {
		return types.Card{}, fmt.Errorf("querying card: %w", err)
	}

	card, err := hydrateCard(c)
	if err != nil {
		return types.Card{}, fmt.Errorf("card %q: %w", c.Name, err)
	}
	return card, nil
}

// CardCount returns the number of cards in the store.
func (b *Backend) CardCount() (int, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return 0, types.ErrStoreDetached
	}

	var n int
	if err := b.db.QueryRow("SELECT COUNT(*) FROM cards").Scan(&n); err != nil {
		return 0, fmt.Errorf("counting cards: %w", err)
	}
	return n, nil
}

// scanCard reads one cards row.
func scanCard(row *sql.Row) (cardJSON, error) {
	var c cardJSON
	err := row.Scan(&c.CardID, &c.Name, &c.ManaCost, &c.TypeLine, &c.Text, &c.Power, &c.Toughness, &c.Loyalty)
	return c, err
}

// hydrateCard converts a stored record into a validated types.Card.
func hydrateCard(c cardJSON) (types.Card, error) {
	return types.NewCard(c.Name, c.ManaCost, c.TypeLine, c.Text, c.Power, c.Toughness, c.Loyalty)
}

// dehydrateCard converts a types.Card into its stored record with a fresh ID.
func dehydrateCard(c types.Card) cardJSON {
	return cardJSON{
		CardID:    generateUUID(),
		Name:      c.Name,
		ManaCost:  types.FormatManaCost(c.ManaCost),
		TypeLine:  c.TypeLine,
		Text:      c.Text,
		Power:     c.Power,
		Toughness: c.Toughness,
		Loyalty:   c.Loyalty,
	}
}
