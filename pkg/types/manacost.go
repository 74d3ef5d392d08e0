package types

import "strings"

// ParseManaCost splits a printed cost such as "{2}{W/U}" into its symbols
// ("2", "W/U"). Text outside braces is kept as a symbol of its own so that
// nothing is silently dropped. An empty cost yields nil.
func ParseManaCost(cost string) []string {
	var symbols []string
	var cur strings.Builder
	inBrace := false
	for _, r := range cost {
		switch {
		case r == '{' && !inBrace:
			if s := strings.TrimSpace(cur.String()); s != "" {
				symbols = append(symbols, s)
			}
			cur.Reset()
			inBrace = true
		case r == '}' && inBrace:
			if cur.Len() > 0 {
				symbols = append(symbols, cur.String())
			}
			cur.Reset()
			inBrace = false
		default:
			cur.WriteRune(r)
		}
	}
	if s := strings.TrimSpace(cur.String()); s != "" {
		symbols = append(symbols, s)
	}
	return symbols
}

// FormatManaCost is the inverse of ParseManaCost: each symbol is wrapped in
// braces and the results are concatenated in order.
func FormatManaCost(symbols []string) string {
	var b strings.Builder
	for _, s := range symbols {
		b.WriteByte('{')
		b.WriteString(s)
		b.WriteByte('}')
	}
	return b.String()
}
