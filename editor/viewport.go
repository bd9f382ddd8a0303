package editor

import (
	"math"
	"sort"

	graphemeutil "github.com/iw2rmb/textsync/internal/grapheme"
)

// OffsetToLine returns the visual line containing off.
//
// An offset on the boundary between two lines that are separated by a wrap
// with no gap belongs to the earlier line, the one being typed into. An
// offset inside a CR LF pair belongs to the line the pair ends.
func (t *TextArea) OffsetToLine(off int) int {
	t.ensureLayout()
	return t.offsetToLine(off)
}

func (t *TextArea) offsetToLine(off int) int {
	off = graphemeutil.Snap(t.buf.View(), clampInt(off, 0, t.buf.Len()), t.cfg.Terminators)
	n := len(t.lines)
	// Spans starting before off plus spans ending before off; each line
	// fully passed contributes two.
	starts := sort.Search(n, func(i int) bool { return t.lines[i].Start >= off })
	ends := sort.Search(n, func(i int) bool { return t.lines[i].End >= off })
	line := (starts + ends) / 2
	if last := t.lineCount() - 1; line > last {
		line = maxInt(last, 0)
	}
	return line
}

// LineToOffset returns the first offset of line, or Len for lines past the
// last span (including the empty line after a trailing terminator).
func (t *TextArea) LineToOffset(line int) int {
	t.ensureLayout()
	return t.span(line).Start
}

// span returns the span of line, with the implied trailing line as the
// empty span at Len.
func (t *TextArea) span(line int) Span {
	if line < 0 {
		line = 0
	}
	if line >= len(t.lines) {
		n := t.buf.Len()
		return Span{Start: n, End: n}
	}
	return t.lines[line]
}

// EnsureLineVisible scrolls the minimum number of whole lines so that line
// is inside the visible window. Auto-sizing areas never scroll.
func (t *TextArea) EnsureLineVisible(line int) {
	t.ensureLayout()
	t.ensureLineVisible(line)
}

func (t *TextArea) ensureLineVisible(line int) {
	if t.cfg.AutoSizeWithLines {
		t.firstVisibleLine = 0
		return
	}
	count := maxInt(t.visibleLineCount, 1)
	if line < t.firstVisibleLine {
		t.firstVisibleLine = line
	}
	if line >= t.firstVisibleLine+count {
		t.firstVisibleLine = line - count + 1
	}
	if t.firstVisibleLine < 0 {
		t.firstVisibleLine = 0
	}
}

// showCursor re-derives the cursor line after a cursor or text change and
// scrolls it into view.
func (t *TextArea) showCursor() {
	t.cursorLine = t.offsetToLine(t.buf.Cursor())
	t.cursorSynced = t.buf.Version()
	t.ensureLineVisible(t.cursorLine)
}

// Resize sets the widget's outer size. The layout is recomputed on next use.
func (t *TextArea) Resize(width, height float64) {
	pad := t.cfg.Padding
	t.textWidth = math.Max(width-pad.Left-pad.Right, 0)
	t.textHeight = math.Max(height-pad.Top-pad.Bottom, 0)
	if !t.cfg.AutoSizeWithLines {
		t.visibleLineCount = int(math.Ceil(t.textHeight / t.cfg.LineHeight))
	}
	t.layoutValid = false
}

// Size returns the size of the text box inside the padding.
func (t *TextArea) Size() (width, height float64) {
	return t.textWidth, t.textHeight
}

// PrefHeight returns the height the widget asks its parent for.
func (t *TextArea) PrefHeight() float64 {
	rows := 1.0
	switch {
	case t.cfg.AutoSizeWithLines:
		rows = float64(maxInt(t.LineCount(), 1))
	case t.cfg.PrefRows > 0:
		rows = t.cfg.PrefRows
	}
	return rows*t.cfg.LineHeight + t.cfg.Padding.Top + t.cfg.Padding.Bottom
}

// CursorX returns the caret's horizontal position inside the widget.
func (t *TextArea) CursorX() float64 {
	t.ensureLayout()
	return t.cfg.Padding.Left + t.advance(t.cursorLine, t.buf.Cursor())
}

// CursorRow returns the cursor line relative to the first visible line.
func (t *TextArea) CursorRow() int {
	t.ensureLayout()
	return t.cursorLine - t.firstVisibleLine
}

// CursorY returns the top of the caret inside the widget.
func (t *TextArea) CursorY() float64 {
	return t.cfg.Padding.Top + float64(t.CursorRow())*t.cfg.LineHeight
}
