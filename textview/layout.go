package textview

import (
	"strings"
	"unicode/utf8"
)

const tabWidth = 4

// Measure returns the rendered width of s.
type Measure func(s string) float64

// Layout word-wraps text to width. Paragraphs break on '\n' and empty
// paragraphs are kept as empty lines. A word wider than width is split by
// rune. A non-positive width disables wrapping.
func Layout(text string, width float64, measure Measure) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\t", strings.Repeat(" ", tabWidth))

	paragraphs := strings.Split(text, "\n")
	if width <= 0 || measure == nil {
		return paragraphs
	}

	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		lines = append(lines, wrapParagraph(p, width, measure)...)
	}
	return lines
}

func wrapParagraph(p string, width float64, measure Measure) []string {
	words := strings.Fields(p)
	if len(words) == 0 {
		return []string{""}
	}

	var out []string
	line := ""
	for _, word := range words {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if measure(candidate) <= width {
			line = candidate
			continue
		}

		if line != "" {
			out = append(out, line)
		}
		line = word
		if measure(word) > width {
			pieces := breakWord(word, width, measure)
			out = append(out, pieces[:len(pieces)-1]...)
			line = pieces[len(pieces)-1]
		}
	}
	return append(out, line)
}

// breakWord splits word into pieces no wider than width. A piece holds at
// least one rune, so a single glyph wider than width still makes progress.
func breakWord(word string, width float64, measure Measure) []string {
	var pieces []string
	var b strings.Builder
	for len(word) > 0 {
		r, size := utf8.DecodeRuneInString(word)
		if b.Len() > 0 && measure(b.String()+string(r)) > width {
			pieces = append(pieces, b.String())
			b.Reset()
		}
		b.WriteRune(r)
		word = word[size:]
	}
	return append(pieces, b.String())
}
