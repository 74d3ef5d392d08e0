package cli

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

// highlighter bolds the card name at the start of rendered output.
type highlighter struct {
	enabled bool
	style   lipgloss.Style
}

// newHighlighter enables highlighting only when asked for and out is a
// terminal.
func newHighlighter(enabled bool, out io.Writer) highlighter {
	return highlighter{
		enabled: enabled && isTerminal(out),
		style:   lipgloss.NewStyle().Bold(true),
	}
}

func (h highlighter) card(card types.Card, text string) string {
	if !h.enabled || !strings.HasPrefix(text, card.Name) {
		return text
	}
	return h.style.Render(card.Name) + text[len(card.Name):]
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
