package buffer

import "github.com/iw2rmb/textsync/internal/grapheme"

// DefaultTerminators are the accepted line-break runes. Android keyboards
// send '\n', desktop backends may send '\r'.
var DefaultTerminators = [2]rune{'\n', '\r'}

type Options struct {
	// Terminators overrides DefaultTerminators when non-zero.
	Terminators [2]rune
}

type selectionState struct {
	active bool
	anchor int
}

// Buffer is the pure document state: text, cursor, and selection anchor.
//
// Buffer is not safe for concurrent use. All calls must come from the
// goroutine that owns the widget.
type Buffer struct {
	text        []rune
	version     uint64
	textVersion uint64

	cursor int
	sel    selectionState

	opt Options

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.Terminators == ([2]rune{}) {
		opt.Terminators = DefaultTerminators
	}
	return &Buffer{
		text: []rune(text),
		opt:  opt,
	}
}

// Clone returns an independent copy of b, including cursor and selection.
// The change record is not copied.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{
		text:        append([]rune(nil), b.text...),
		version:     b.version,
		textVersion: b.textVersion,
		cursor:      b.cursor,
		sel:         b.sel,
		opt:         b.opt,
	}
}

func (b *Buffer) Text() string { return string(b.text) }

// Runes returns a copy of the buffer contents.
func (b *Buffer) Runes() []rune { return append([]rune(nil), b.text...) }

// View returns the buffer contents without copying. Callers must not modify
// the returned slice, and it is only valid until the next mutation.
func (b *Buffer) View() []rune { return b.text }

func (b *Buffer) Len() int { return len(b.text) }

// Slice returns the text in [start, end), clamped to the buffer.
func (b *Buffer) Slice(start, end int) string {
	r := NormalizeRange(ClampRange(Range{Start: start, End: end}, len(b.text)))
	return string(b.text[r.Start:r.End])
}

// Version increments on every effective change of text, cursor, or selection.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the text itself changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Terminators() [2]rune { return b.opt.Terminators }

// EndsWithTerminator reports whether the last rune is a line terminator.
func (b *Buffer) EndsWithTerminator() bool {
	return EndsWithTerminator(b.text, b.opt.Terminators)
}

// EndsWithTerminator reports whether text ends in one of terms.
func EndsWithTerminator(text []rune, terms [2]rune) bool {
	return len(text) > 0 && grapheme.IsTerminator(text[len(text)-1], terms)
}

func (b *Buffer) Cursor() int { return b.cursor }

// clamp clamps off to the text and moves it out of a CR LF pair.
func (b *Buffer) clamp(off int) int {
	return grapheme.Snap(b.text, ClampOffset(off, len(b.text)), b.opt.Terminators)
}

// MoveTo places the cursor at off (clamped, never inside a CR LF pair) and
// clears the selection.
func (b *Buffer) MoveTo(off int) {
	next := b.clamp(off)
	if next == b.cursor && !b.sel.active {
		return
	}
	b.cursor = next
	b.sel = selectionState{}
	b.version++
}

// Selection returns the normalized active selection.
func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active || b.sel.anchor == b.cursor {
		return Range{}, false
	}
	return NormalizeRange(Range{Start: b.sel.anchor, End: b.cursor}), true
}

// Anchor returns the selection anchor. The anchor is reported even when it
// currently equals the cursor, so that a shift-drag back over the anchor
// keeps extending from it.
func (b *Buffer) Anchor() (int, bool) {
	if !b.sel.active {
		return 0, false
	}
	return b.sel.anchor, true
}

// SetSelection sets the anchor at start and the cursor at end, both clamped.
// An empty range clears the selection and moves the cursor to end.
func (b *Buffer) SetSelection(start, end int) {
	start = b.clamp(start)
	end = b.clamp(end)

	next := selectionState{active: true, anchor: start}
	if start == end {
		next = selectionState{}
	}
	if next == b.sel && end == b.cursor {
		return
	}
	b.sel = next
	b.cursor = end
	b.version++
}

// ExtendSelectionTo moves the cursor to off, anchoring the selection at the
// current cursor when no selection is active.
func (b *Buffer) ExtendSelectionTo(off int) {
	off = b.clamp(off)
	anchor := b.cursor
	if b.sel.active {
		anchor = b.sel.anchor
	}
	next := selectionState{active: true, anchor: anchor}
	if next == b.sel && off == b.cursor {
		return
	}
	b.sel = next
	b.cursor = off
	b.version++
}

func (b *Buffer) ClearSelection() {
	if !b.sel.active {
		return
	}
	hadRange := b.sel.anchor != b.cursor
	b.sel = selectionState{}
	if hadRange {
		b.version++
	}
}
