package buffer

import "github.com/iw2rmb/textsync/internal/grapheme"

// MoveBy moves the cursor by delta grapheme clusters, or by delta word
// boundaries when wordJump is set, and clears the selection.
func (b *Buffer) MoveBy(delta int, wordJump bool) {
	next := b.offsetBy(b.cursor, delta, wordJump)
	b.MoveTo(next)
}

// ExtendBy is MoveBy that keeps or starts a selection (shift+arrow).
func (b *Buffer) ExtendBy(delta int, wordJump bool) {
	b.ExtendSelectionTo(b.offsetBy(b.cursor, delta, wordJump))
}

func (b *Buffer) offsetBy(off, delta int, wordJump bool) int {
	for ; delta < 0; delta++ {
		if wordJump {
			off = prevWordBoundary(b.text, off)
		} else {
			off = grapheme.Prev(b.text, off)
		}
	}
	for ; delta > 0; delta-- {
		if wordJump {
			off = nextWordBoundary(b.text, off)
		} else {
			off = grapheme.Next(b.text, off)
		}
	}
	return off
}

// Word boundary rules:
// - skip whitespace, then skip non-whitespace
// - terminators are whitespace, so a jump crosses line breaks
func prevWordBoundary(text []rune, off int) int {
	i := ClampOffset(off, len(text))
	for i > 0 && grapheme.IsSpace(text[i-1]) {
		i--
	}
	for i > 0 && !grapheme.IsSpace(text[i-1]) {
		i--
	}
	return i
}

func nextWordBoundary(text []rune, off int) int {
	i := ClampOffset(off, len(text))
	for i < len(text) && grapheme.IsSpace(text[i]) {
		i++
	}
	for i < len(text) && !grapheme.IsSpace(text[i]) {
		i++
	}
	return i
}
