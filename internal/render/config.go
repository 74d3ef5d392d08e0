// Package render lays out card records as text: a one-line digest for
// scanning many cards, or a card-shaped block with optional word wrap and
// right-aligned cost and stats.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

// Mode selects the layout.
type Mode string

const (
	ModeOneLine  Mode = "oneline"
	ModeFullForm Mode = "full"
)

// DefaultOneLineWidth is the one-line cap used when Width is unset.
const DefaultOneLineWidth = 120

// Render configuration errors.
var (
	ErrInvalidMode  = errors.New("invalid render mode")
	ErrInvalidWidth = errors.New("width must not be negative")
)

// Config selects the layout and its width. Width 0 means unset: the
// one-line cap falls back to DefaultOneLineWidth and full-form output is
// not wrapped or aligned.
type Config struct {
	Mode  Mode
	Width int
}

// Validate checks the mode and width.
func (c Config) Validate() error {
	if c.Width < 0 {
		return ErrInvalidWidth
	}
	switch c.Mode {
	case ModeOneLine, ModeFullForm:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMode, c.Mode)
	}
}

// ParseMode maps the user-facing mode names onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "oneline", "one-line", "short":
		return ModeOneLine, nil
	case "full", "full-form", "fullform", "long":
		return ModeFullForm, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
	}
}

// Render lays out card according to cfg.
func Render(card types.Card, cfg Config) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}
	if cfg.Mode == ModeFullForm {
		return RenderFullForm(card, cfg.Width)
	}
	return RenderOneLine(card, cfg.Width)
}
