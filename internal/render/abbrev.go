package render

import (
	"strings"
	"unicode"
)

// typeLetters maps the card types that appear in one-line output to their
// abbreviation. Supertypes and subtypes are not listed and are dropped.
var typeLetters = map[string]string{
	"Creature":     "C",
	"Enchantment":  "E",
	"Sorcery":      "S",
	"Instant":      "I",
	"Artifact":     "A",
	"Planeswalker": "P",
	"Land":         "L",
}

// AbbreviateTypes reduces a type line to one letter per recognized card
// type, in order of appearance. "Legendary Enchantment Creature — God"
// becomes "EC". A type line with no recognized word yields "".
func AbbreviateTypes(typeLine string) string {
	var b strings.Builder
	for _, word := range strings.Fields(typeLine) {
		if letter, ok := typeLetters[word]; ok {
			b.WriteString(letter)
		}
	}
	return b.String()
}

// AbbreviateCost concatenates cost symbols in printed order. Generic
// amounts and single-letter symbols lose their braces; everything else
// (hybrid, Phyrexian) keeps them: ["2", "W/U"] becomes "2{W/U}".
func AbbreviateCost(symbols []string) string {
	var b strings.Builder
	for _, s := range symbols {
		if isSimpleSymbol(s) {
			b.WriteString(s)
			continue
		}
		b.WriteByte('{')
		b.WriteString(s)
		b.WriteByte('}')
	}
	return b.String()
}

// isSimpleSymbol reports whether s is all digits or one uppercase letter.
func isSimpleSymbol(s string) bool {
	if s == "" {
		return false
	}
	if len(s) == 1 && s[0] >= 'A' && s[0] <= 'Z' {
		return true
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
