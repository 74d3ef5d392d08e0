package sqlite

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// NameKey normalizes a card name for case-insensitive exact matching:
// surrounding whitespace is trimmed, the name is put in NFC form and then
// case-folded, so "æther vial" and "ÆTHER VIAL" share a key with
// "Æther Vial".
func NameKey(name string) string {
	return cases.Fold().String(norm.NFC.String(strings.TrimSpace(name)))
}
