package render

import (
	"strings"

	"github.com/mesh-intelligence/moracle/pkg/types"
)

// RenderOneLine assembles "Name: [cost] TYPE stats rules" and cuts the result
// to maxWidth characters. Optional fields that are absent leave no extra
// space. Paragraph breaks in the rules become tabs. The cut is hard: it may
// land mid-word. maxWidth <= 0 uses DefaultOneLineWidth.
func RenderOneLine(card types.Card, maxWidth int) (string, error) {
	stats, err := card.Stats()
	if err != nil {
		return "", err
	}
	if maxWidth <= 0 {
		maxWidth = DefaultOneLineWidth
	}

	fields := make([]string, 0, 5)
	fields = append(fields, card.Name+":")
	if card.HasCost() {
		fields = append(fields, "["+AbbreviateCost(card.ManaCost)+"]")
	}
	if t := AbbreviateTypes(card.TypeLine); t != "" {
		fields = append(fields, t)
	}
	switch stats.Kind {
	case types.StatsCreature:
		fields = append(fields, stats.Power+"/"+stats.Toughness)
	case types.StatsPlaneswalker:
		fields = append(fields, "L:"+stats.Loyalty)
	}
	if card.Text != "" {
		fields = append(fields, strings.ReplaceAll(card.Text, "\n", "\t"))
	}

	return truncate(strings.Join(fields, " "), maxWidth), nil
}

// truncate keeps at most n characters of s.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
