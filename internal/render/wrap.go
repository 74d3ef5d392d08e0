package render

import "strings"

// Wrap greedily word-wraps text to width display columns.
//
// Words are whitespace-delimited and never split: a word wider than width
// sits alone on an overflowing line. Each "\n" in text is a hard break that
// resets the budget. A width of zero or less disables wrapping, so every
// paragraph becomes exactly one line. Runs of whitespace inside a paragraph
// collapse to a single space. Empty text yields no lines; an empty
// paragraph between others yields an empty line. A single trailing "\n"
// ends the last paragraph and does not open a new one.
func Wrap(text string, width int) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	words := strings.Fields(para)
	if len(words) == 0 {
		return []string{""}
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	lines := make([]string, 0, 2)
	var current strings.Builder
	currentWidth := 0

	for _, word := range words {
		w := displayWidth(word)
		if current.Len() > 0 && currentWidth+1+w <= width {
			current.WriteByte(' ')
			current.WriteString(word)
			currentWidth += 1 + w
			continue
		}
		if current.Len() > 0 {
			lines = append(lines, current.String())
			current.Reset()
		}
		current.WriteString(word)
		currentWidth = w
	}
	return append(lines, current.String())
}
