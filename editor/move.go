package editor

import graphemeutil "github.com/iw2rmb/textsync/internal/grapheme"

// MoveUnit is the distance a Move travels.
type MoveUnit uint8

const (
	MoveGrapheme MoveUnit = iota
	MoveWord
	// MoveLine steps one visual line, keeping the remembered caret advance.
	MoveLine
	// MoveLineEdge goes to the start or end of the visual line.
	MoveLineEdge
	MoveDocument
)

// MoveDir is the direction of a Move.
type MoveDir uint8

const (
	DirBackward MoveDir = iota
	DirForward
)

// Move is a cursor movement. Extend keeps or starts a selection.
type Move struct {
	Unit   MoveUnit
	Dir    MoveDir
	Extend bool
}

// Move applies m. Every unit except MoveLine forgets the remembered caret
// advance used by vertical navigation.
func (t *TextArea) Move(m Move) {
	t.ensureLayout()
	if m.Unit == MoveLine {
		delta := 1
		if m.Dir == DirBackward {
			delta = -1
		}
		t.moveCursorLine(t.cursorLine+delta, m.Extend)
		return
	}

	t.moveOffset = -1
	switch m.Unit {
	case MoveGrapheme, MoveWord:
		delta := 1
		if m.Dir == DirBackward {
			delta = -1
		}
		if m.Extend {
			t.buf.ExtendBy(delta, m.Unit == MoveWord)
		} else {
			t.buf.MoveBy(delta, m.Unit == MoveWord)
		}
	case MoveLineEdge:
		s := t.span(t.cursorLine)
		off := s.Start
		if m.Dir == DirForward {
			off = s.End
		}
		t.placeCursor(off, t.cursorLine, m.Extend)
	case MoveDocument:
		off := 0
		if m.Dir == DirForward {
			off = t.buf.Len()
		}
		if m.Extend {
			t.buf.ExtendSelectionTo(off)
		} else {
			t.buf.MoveTo(off)
		}
	}
}

func (t *TextArea) MoveUp(extend bool) {
	t.Move(Move{Unit: MoveLine, Dir: DirBackward, Extend: extend})
}

func (t *TextArea) MoveDown(extend bool) {
	t.Move(Move{Unit: MoveLine, Dir: DirForward, Extend: extend})
}

// Home moves to the start of the visual line, or of the text when jump is set.
func (t *TextArea) Home(jump bool) {
	unit := MoveLineEdge
	if jump {
		unit = MoveDocument
	}
	t.Move(Move{Unit: unit, Dir: DirBackward})
}

// End moves to the end of the visual line, or of the text when jump is set.
func (t *TextArea) End(jump bool) {
	unit := MoveLineEdge
	if jump {
		unit = MoveDocument
	}
	t.Move(Move{Unit: unit, Dir: DirForward})
}

// MoveCursorLine moves the cursor to the visual line target, clamped to the
// existing lines, at the offset nearest the remembered caret advance.
// Moving to the current line is a no-op.
func (t *TextArea) MoveCursorLine(target int) {
	t.ensureLayout()
	t.moveCursorLine(target, false)
}

func (t *TextArea) moveCursorLine(target int, extend bool) {
	n := t.lineCount()
	if n == 0 {
		return
	}
	target = clampInt(target, 0, n-1)
	if target == t.cursorLine {
		return
	}
	if t.moveOffset < 0 {
		t.moveOffset = t.advance(t.cursorLine, t.buf.Cursor())
	}
	t.placeCursor(t.offsetAtAdvance(target, t.moveOffset), target, extend)
}

// MoveTo places the cursor at off and clears the selection.
func (t *TextArea) MoveTo(off int) {
	t.moveOffset = -1
	t.buf.MoveTo(off)
}

// SetSelection selects from start (the anchor) to end (the cursor).
func (t *TextArea) SetSelection(start, end int) {
	t.moveOffset = -1
	t.buf.SetSelection(start, end)
}

func (t *TextArea) SelectAll() {
	t.SetSelection(0, t.buf.Len())
}

func (t *TextArea) ClearSelection() {
	t.moveOffset = -1
	t.buf.ClearSelection()
}

// placeCursor moves the cursor to off and pins the cursor line to line, so
// that an offset shared by two wrapped lines shows on the requested one.
func (t *TextArea) placeCursor(off, line int, extend bool) {
	if extend {
		t.buf.ExtendSelectionTo(off)
	} else {
		t.buf.MoveTo(off)
	}
	t.cursorLine = line
	t.cursorSynced = t.buf.Version()
	t.ensureLineVisible(line)
}

// offsetAtAdvance scans line forward while the caret advance stays below x
// and returns the first cluster boundary at or past it.
func (t *TextArea) offsetAtAdvance(line int, x float64) int {
	s := t.span(line)
	pos := t.linePositions(line)
	if pos == nil {
		return s.Start
	}
	for _, b := range graphemeutil.Boundaries(t.buf.View()[s.Start:s.End]) {
		if pos[b] >= x {
			return s.Start + b
		}
	}
	return s.End
}

// offsetNearest returns the cluster boundary on line closest to x.
func (t *TextArea) offsetNearest(line int, x float64) int {
	s := t.span(line)
	pos := t.linePositions(line)
	if pos == nil {
		return s.Start
	}
	bounds := graphemeutil.Boundaries(t.buf.View()[s.Start:s.End])
	best := bounds[0]
	for _, b := range bounds[1:] {
		if pos[b] > x {
			if pos[b]-x < x-pos[best] {
				best = b
			}
			return s.Start + best
		}
		best = b
	}
	return s.Start + best
}

// linePositions returns the caret advances of line, nil for an empty line.
func (t *TextArea) linePositions(line int) []float64 {
	if line < 0 || line >= len(t.lines) || t.lines[line].Len() == 0 {
		return nil
	}
	return t.adv.positions(line, t.lines[line], t.buf.View(), t.cfg.Measurer)
}
