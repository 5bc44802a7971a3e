package common

import (
	"strings"
)

// WrapText word-wraps text into lines of at most width characters.
// Whitespace runs collapse to single spaces and words longer than width are
// split across lines, filling the current line first.
func WrapText(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	if width < 1 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line []rune

	flush := func() {
		if len(line) > 0 {
			lines = append(lines, string(line))
			line = line[:0]
		}
	}

	for _, word := range words {
		w := []rune(word)

		sep := 0
		if len(line) > 0 {
			sep = 1
		}
		if len(line)+sep+len(w) <= width {
			if sep == 1 {
				line = append(line, ' ')
			}
			line = append(line, w...)
			continue
		}

		if len(w) <= width {
			flush()
			line = append(line, w...)
			continue
		}

		// Long word: use what is left of the current line, then whole lines
		if spaceLeft := width - len(line) - sep; len(line) > 0 && spaceLeft > 0 {
			line = append(line, ' ')
			line = append(line, w[:spaceLeft]...)
			w = w[spaceLeft:]
		}
		flush()
		for len(w) > width {
			lines = append(lines, string(w[:width]))
			w = w[width:]
		}
		line = append(line, w...)
	}
	flush()

	return lines
}

// FillText wraps text at width and joins the lines with newlines
func FillText(text string, width int) string {
	return strings.Join(WrapText(text, width), "\n")
}
