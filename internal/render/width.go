package render

import "github.com/mattn/go-runewidth"

// columns measures terminal display width. Ambiguous-width runes such as
// the em-dash in type lines count as one column regardless of locale.
var columns = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

func displayWidth(s string) int {
	return columns.StringWidth(s)
}
