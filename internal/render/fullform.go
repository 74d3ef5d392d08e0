package render

import (
	"strings"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

// typeLineIndent is the indent of the type line when a width is set.
const typeLineIndent = "    "

// RenderFullForm lays card out like the physical card: name and cost, type
// line, wrapped rules text, then power/toughness or loyalty. With width > 0
// the cost and stats are right-aligned to width and the type line is
// indented; content longer than width overflows instead of being cut.
// With width <= 0 lines keep their natural length. Lines are joined with
// "\n" and there is no trailing newline.
func RenderFullForm(card types.Card, width int) (string, error) {
	stats, err := card.Stats()
	if err != nil {
		return "", err
	}

	lines := []string{header(card.Name, types.FormatManaCost(card.ManaCost), width)}

	typeLine := card.TypeLine
	if width > 0 {
		typeLine = typeLineIndent + typeLine
	}
	lines = append(lines, typeLine)

	lines = append(lines, Wrap(card.Text, width)...)

	switch stats.Kind {
	case types.StatsCreature:
		lines = append(lines, alignRight(stats.Power+"/"+stats.Toughness, width))
	case types.StatsPlaneswalker:
		lines = append(lines, alignRight(stats.Loyalty, width))
	}

	return strings.Join(lines, "\n"), nil
}

// header puts name on the left and cost flush right at width. Name and cost
// are always separated by at least one space, so when their combined width
// is width or more the line is one column longer than that sum.
func header(name, cost string, width int) string {
	if cost == "" {
		return name
	}
	gap := 1
	if width > 0 {
		gap = max(width-displayWidth(name)-displayWidth(cost), 1)
	}
	return name + strings.Repeat(" ", gap) + cost
}

// alignRight left-pads s so it ends at column width.
func alignRight(s string, width int) string {
	pad := width - displayWidth(s)
	if pad <= 0 {
		return s
	}
	return strings.Repeat(" ", pad) + s
}
