package editor

import (
	"fmt"
	"math"

	graphemeutil "github.com/iw2rmb/textsync/internal/grapheme"
)

// BreakKind records why a visual line ended.
type BreakKind uint8

const (
	// BreakNone ends the last line of the text.
	BreakNone BreakKind = iota
	// BreakTerminator ends a line at an explicit terminator. The terminator
	// rune sits at Span.End and belongs to no line.
	BreakTerminator
	// BreakWrap is a forced break inside an unbreakable run. The next line
	// starts at Span.End.
	BreakWrap
	// BreakWrapSpace is a soft wrap at whitespace. The whitespace rune at
	// Span.End is consumed by the break.
	BreakWrapSpace
	// BreakTerminatorPair ends a line at a CR LF pair. Both runes, at Span.End
	// and Span.End+1, belong to no line.
	BreakTerminatorPair
)

func (k BreakKind) String() string {
	switch k {
	case BreakNone:
		return "none"
	case BreakTerminator:
		return "terminator"
	case BreakWrap:
		return "wrap"
	case BreakWrapSpace:
		return "wrap-space"
	case BreakTerminatorPair:
		return "terminator-pair"
	default:
		return "unknown"
	}
}

// consumed returns the number of runes between this line and the next.
func (k BreakKind) consumed() int {
	switch k {
	case BreakTerminator, BreakWrapSpace:
		return 1
	case BreakTerminatorPair:
		return 2
	default:
		return 0
	}
}

// Span is one visual line: the half-open rune range [Start, End).
type Span struct {
	Start int
	End   int
	Break BreakKind
}

func (s Span) Len() int { return s.End - s.Start }

// ComputeLines partitions text into visual lines no wider than maxWidth.
//
// Terminators always break, and a CR LF pair breaks once. Otherwise lines are filled greedily and broken at
// the most recent whitespace, or right before the overflowing rune when the
// line has no whitespace to break at. maxWidth <= 0 or +Inf disables wrapping.
func ComputeLines(text []rune, maxWidth float64, m Measurer, terms [2]rune) []Span {
	wrap := maxWidth > 0 && !math.IsInf(maxWidth, 1) && m != nil

	var lines []Span
	lineStart := 0
	lastBreak := 0
	for i := 0; i < len(text); i++ {
		r := text[i]
		if graphemeutil.IsPair(text, i, terms) {
			lines = append(lines, Span{Start: lineStart, End: i, Break: BreakTerminatorPair})
			i++
			lineStart = i + 1
			lastBreak = lineStart
			continue
		}
		if graphemeutil.IsTerminator(r, terms) {
			lines = append(lines, Span{Start: lineStart, End: i, Break: BreakTerminator})
			lineStart = i + 1
			lastBreak = lineStart
			continue
		}
		if !wrap {
			continue
		}
		if graphemeutil.IsBreakSpace(r, terms) {
			lastBreak = i
		}
		if m.Measure(text[lineStart:i+1]) <= maxWidth {
			continue
		}
		switch {
		case lastBreak > lineStart:
			lines = append(lines, Span{Start: lineStart, End: lastBreak, Break: BreakWrapSpace})
			lineStart = lastBreak + 1
		case i > lineStart:
			lines = append(lines, Span{Start: lineStart, End: i, Break: BreakWrap})
			lineStart = i
		default:
			// A single rune wider than the line keeps a line to itself.
			continue
		}
		lastBreak = lineStart
		// A long word after a soft wrap may still overflow the new line.
		if i > lineStart && m.Measure(text[lineStart:i+1]) > maxWidth {
			lines = append(lines, Span{Start: lineStart, End: i, Break: BreakWrap})
			lineStart = i
			lastBreak = lineStart
		}
	}
	if lineStart < len(text) {
		lines = append(lines, Span{Start: lineStart, End: len(text), Break: BreakNone})
	}
	return lines
}

// LineCount returns the number of visual lines, counting the empty line
// implied by a trailing terminator.
func LineCount(text []rune, lines []Span, terms [2]rune) int {
	n := len(lines)
	if len(text) > 0 && graphemeutil.IsTerminator(text[len(text)-1], terms) {
		n++
	}
	return n
}

// CheckPartition verifies that lines exactly partition text: spans are
// ordered, gaps are only the runes consumed by a terminator, a CR LF pair or
// a soft wrap, and nothing is left over.
func CheckPartition(text []rune, lines []Span, terms [2]rune) error {
	pos := 0
	for i, s := range lines {
		if s.Start != pos {
			return fmt.Errorf("line %d starts at %d, want %d", i, s.Start, pos)
		}
		if s.End < s.Start || s.End > len(text) {
			return fmt.Errorf("line %d has invalid range [%d,%d) over %d runes", i, s.Start, s.End, len(text))
		}
		switch s.Break {
		case BreakTerminator:
			if s.End >= len(text) || !graphemeutil.IsTerminator(text[s.End], terms) {
				return fmt.Errorf("line %d: terminator break without terminator at %d", i, s.End)
			}
		case BreakTerminatorPair:
			if !graphemeutil.IsPair(text, s.End, terms) {
				return fmt.Errorf("line %d: pair break without CR LF at %d", i, s.End)
			}
		case BreakWrapSpace:
			if s.End >= len(text) || !graphemeutil.IsBreakSpace(text[s.End], terms) {
				return fmt.Errorf("line %d: space break without whitespace at %d", i, s.End)
			}
		case BreakNone:
			if i != len(lines)-1 {
				return fmt.Errorf("line %d: unterminated line is not last", i)
			}
		}
		pos = s.End + s.Break.consumed()
	}
	if pos != len(text) {
		return fmt.Errorf("lines cover %d of %d runes", pos, len(text))
	}
	return nil
}
