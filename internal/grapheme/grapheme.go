package grapheme

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Boundaries returns the rune offsets at which grapheme clusters of text start,
// followed by len(text). An empty text yields []int{0}.
func Boundaries(text []rune) []int {
	out := make([]int, 0, len(text)+1)
	out = append(out, 0)
	if len(text) == 0 {
		return out
	}
	g := uniseg.NewGraphemes(string(text))
	off := 0
	for g.Next() {
		off += len(g.Runes())
		out = append(out, off)
	}
	return out
}

// Next returns the offset of the cluster boundary after off, or len(text).
func Next(text []rune, off int) int {
	if off >= len(text) {
		return len(text)
	}
	if off < 0 {
		off = 0
	}
	for _, b := range Boundaries(text) {
		if b > off {
			return b
		}
	}
	return len(text)
}

// Prev returns the offset of the cluster boundary before off, or 0.
func Prev(text []rune, off int) int {
	if off <= 0 {
		return 0
	}
	if off > len(text) {
		off = len(text)
	}
	bounds := Boundaries(text)
	for i := len(bounds) - 1; i >= 0; i-- {
		if bounds[i] < off {
			return bounds[i]
		}
	}
	return 0
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// IsSpace reports whether r is Unicode whitespace.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r)
}

// IsTerminator reports whether r is one of the accepted line terminators.
func IsTerminator(r rune, terms [2]rune) bool {
	return r == terms[0] || r == terms[1]
}

// IsBreakSpace reports whether r is whitespace a soft wrap may break at.
// Terminators are hard breaks and never count.
func IsBreakSpace(r rune, terms [2]rune) bool {
	return IsSpace(r) && !IsTerminator(r, terms)
}

// IsPair reports whether text[i] and text[i+1] form a CR LF pair of
// terminators. The pair is one line break.
func IsPair(text []rune, i int, terms [2]rune) bool {
	return i >= 0 && i+1 < len(text) &&
		text[i] == '\r' && text[i+1] == '\n' &&
		IsTerminator('\r', terms) && IsTerminator('\n', terms)
}

// Snap moves an offset that falls inside a CR LF pair to the start of the
// pair.
func Snap(text []rune, off int, terms [2]rune) int {
	if IsPair(text, off-1, terms) {
		return off - 1
	}
	return off
}
