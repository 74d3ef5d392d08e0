package types

import (
	"errors"
	"strings"
)

// Card is the normalized, renderable shape of one card.
type Card struct {
	Name      string   // Display name, case preserved.
	ManaCost  []string // Cost symbols in printed order, without braces ("2", "W/U").
	TypeLine  string   // Full type line, e.g. "Legendary Creature — Atog".
	Text      string   // Rules text; "\n" separates paragraphs.
	Power     string   // Creature power; empty when absent.
	Toughness string   // Creature toughness; empty when absent.
	Loyalty   string   // Planeswalker loyalty; empty when absent.
}

// Card record errors.
var (
	ErrMalformedRecord = errors.New("malformed card record")
	ErrEmptyName       = errors.New("card name must not be empty")
)

// StatsKind tags which stats a card carries.
type StatsKind int

const (
	StatsNone StatsKind = iota
	StatsCreature
	StatsPlaneswalker
)

// Stats is the power/toughness-or-loyalty variant of a card. Only the
// fields matching Kind are set.
type Stats struct {
	Kind      StatsKind
	Power     string
	Toughness string
	Loyalty   string
}

// NewCard builds a Card from raw fields and rejects records that violate
// the stats invariant. manaCost is the printed cost string ("{2}{W/U}").
func NewCard(name, manaCost, typeLine, text, power, toughness, loyalty string) (Card, error) {
	if strings.TrimSpace(name) == "" {
		return Card{}, ErrEmptyName
	}
	c := Card{
		Name:      name,
		ManaCost:  ParseManaCost(manaCost),
		TypeLine:  typeLine,
		Text:      text,
		Power:     power,
		Toughness: toughness,
		Loyalty:   loyalty,
	}
	if _, err := c.Stats(); err != nil {
		return Card{}, err
	}
	return c, nil
}

// Stats returns the card's stats variant. Returns ErrMalformedRecord when
// both loyalty and power/toughness are set, or when only one of power and
// toughness is.
func (c Card) Stats() (Stats, error) {
	hasPT := c.Power != "" || c.Toughness != ""
	switch {
	case hasPT && c.Loyalty != "":
		return Stats{}, ErrMalformedRecord
	case hasPT:
		if c.Power == "" || c.Toughness == "" {
			return Stats{}, ErrMalformedRecord
		}
		return Stats{Kind: StatsCreature, Power: c.Power, Toughness: c.Toughness}, nil
	case c.Loyalty != "":
		return Stats{Kind: StatsPlaneswalker, Loyalty: c.Loyalty}, nil
	default:
		return Stats{Kind: StatsNone}, nil
	}
}

// HasCost reports whether the card has a printed mana cost.
func (c Card) HasCost() bool {
	return len(c.ManaCost) > 0
}
