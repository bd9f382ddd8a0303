package editor

import "math"

// OffsetAt maps widget-local coordinates to a buffer offset.
//
// (0,0) is the top-left of the widget, padding included. y selects a visible
// line (clamped to the existing lines), x the nearest cluster boundary on it.
func (t *TextArea) OffsetAt(x, y float64) int {
	t.ensureLayout()
	line := t.lineAtY(y)
	return t.offsetNearest(line, x-t.cfg.Padding.Left)
}

// LetterUnderCursor returns the offset on the cursor line nearest to x.
func (t *TextArea) LetterUnderCursor(x float64) int {
	t.ensureLayout()
	return t.offsetNearest(t.cursorLine, x-t.cfg.Padding.Left)
}

// SetCursorPosition places the cursor at a tap inside the widget.
func (t *TextArea) SetCursorPosition(x, y float64) {
	t.ensureLayout()
	t.moveOffset = -1
	line := t.lineAtY(y)
	t.placeCursor(t.offsetNearest(line, x-t.cfg.Padding.Left), line, false)
}

// OffsetPos maps an offset to widget-local coordinates of its caret.
//
// ok is false when the offset's line is outside the visible window.
func (t *TextArea) OffsetPos(off int) (x, y float64, ok bool) {
	t.ensureLayout()
	line := t.offsetToLine(off)
	if off == t.buf.Cursor() {
		line = t.cursorLine
	}
	x = t.cfg.Padding.Left + t.advance(line, off)
	row := line - t.firstVisibleLine
	y = t.cfg.Padding.Top + float64(row)*t.cfg.LineHeight
	return x, y, row >= 0 && row < maxInt(t.visibleLineCount, 1)
}

func (t *TextArea) lineAtY(y float64) int {
	row := int(math.Floor((y - t.cfg.Padding.Top) / t.cfg.LineHeight))
	if row < 0 {
		row = 0
	}
	return clampInt(t.firstVisibleLine+row, 0, maxInt(t.lineCount()-1, 0))
}
