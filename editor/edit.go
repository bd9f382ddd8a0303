package editor

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/textsync/buffer"
)

// Syncer pushes text to the native input widget bound to a TextArea.
// ForceSetText must be idempotent on the native side.
type Syncer interface {
	ForceSetText(text string, cursor int)
}

// SelectionSyncer is implemented by Syncers that can mirror a selection.
type SelectionSyncer interface {
	ForceSetSelection(start, end int)
}

// EditResult reports the outcome of an applied edit.
type EditResult struct {
	// Accepted is false when the line limit reverted the edit.
	Accepted bool
	// Text and Cursor are the buffer state after the edit.
	Text      string
	Cursor    int
	LineCount int
}

// ApplyExternalEdit replaces the whole text with a snapshot reported by the
// native input widget. cursor becomes the cursor and selEnd the selection
// anchor when they differ. Offsets are clamped.
//
// When the edit changes the text and the result has more lines than
// Config.MaxLines allows, the rune before cursor is deleted again and the corrected text is pushed back through the
// Syncer. Only one rune is removed, so an overflowing paste may still exceed
// the limit.
func (t *TextArea) ApplyExternalEdit(text string, cursor, selEnd int) EditResult {
	return t.applyEdit(text, cursor, selEnd, buffer.ChangeSourceRemote)
}

// SetText replaces the text and moves the cursor to its end.
func (t *TextArea) SetText(text string) EditResult {
	n := utf8.RuneCountInString(text)
	res := t.applyEdit(text, n, n, buffer.ChangeSourceLocal)
	if res.Accepted {
		t.syncNative()
	}
	return res
}

// Insert types s at the cursor, replacing the selection. Single-line fields
// drop line terminators from s.
func (t *TextArea) Insert(s string) EditResult {
	if !t.cfg.Multiline {
		s = strings.Map(func(r rune) rune {
			if r == t.cfg.Terminators[0] || r == t.cfg.Terminators[1] {
				return -1
			}
			return r
		}, s)
	}
	return t.editLocal(func(b *buffer.Buffer) { b.Insert(s) })
}

// InsertNewline types the first terminator. Single-line fields ignore it.
func (t *TextArea) InsertNewline() EditResult {
	if !t.cfg.Multiline {
		return t.result(true)
	}
	return t.Insert(string(t.cfg.Terminators[0]))
}

// Backspace deletes the selection or the cluster before the cursor.
func (t *TextArea) Backspace() EditResult {
	return t.editLocal((*buffer.Buffer).DeleteBackward)
}

// Delete deletes the selection or the cluster after the cursor.
func (t *TextArea) Delete() EditResult {
	return t.editLocal((*buffer.Buffer).DeleteForward)
}

// editLocal computes the snapshot fn would produce and applies it like an
// external edit, then mirrors it to the native widget.
func (t *TextArea) editLocal(fn func(*buffer.Buffer)) EditResult {
	next := t.buf.Clone()
	fn(next)
	if next.TextVersion() == t.buf.TextVersion() {
		return t.result(true)
	}
	res := t.applyEdit(next.Text(), next.Cursor(), next.Cursor(), buffer.ChangeSourceLocal)
	if res.Accepted {
		t.syncNative()
	}
	return res
}

func (t *TextArea) applyEdit(text string, cursor, selEnd int, src buffer.ChangeSource) EditResult {
	t.moveOffset = -1
	before, textBefore := t.buf.Version(), t.buf.TextVersion()
	t.buf.Replace(text, cursor, selEnd, src)
	t.ensureLayout()
	// Only a text change can be reverted; a text already over the limit
	// stays as it is while the cursor moves.
	if t.buf.TextVersion() == textBefore || !t.exceedsMaxLines() {
		if t.buf.Version() != before {
			t.emitChange(src, false)
		}
		return t.result(true)
	}

	cur := t.buf.Cursor()
	if cur == 0 {
		t.log.Warn("line limit exceeded with nothing before the cursor to revert",
			"max_lines", t.cfg.MaxLines, "lines", t.lineCount())
		t.emitChange(src, false)
		return t.result(true)
	}

	runes := t.buf.Runes()
	corrected := string(runes[:cur-1]) + string(runes[cur:])
	t.buf.Replace(corrected, cur-1, cur-1, buffer.ChangeSourceLocal)
	t.ensureLayout()
	t.log.Debug("line limit exceeded, reverted last rune",
		"max_lines", t.cfg.MaxLines, "cursor", cur-1, "source", src.String())
	if t.cfg.Syncer != nil {
		t.cfg.Syncer.ForceSetText(corrected, cur-1)
	}
	t.emitChange(src, true)
	return t.result(false)
}

// exceedsMaxLines reports whether the line count is over the limit. A text
// without a trailing terminator may hold one line more.
func (t *TextArea) exceedsMaxLines() bool {
	if t.cfg.MaxLines <= 0 {
		return false
	}
	limit := t.cfg.MaxLines
	if !t.buf.EndsWithTerminator() {
		limit++
	}
	return t.lineCount() > limit
}

func (t *TextArea) result(accepted bool) EditResult {
	return EditResult{
		Accepted:  accepted,
		Text:      t.buf.Text(),
		Cursor:    t.buf.Cursor(),
		LineCount: t.LineCount(),
	}
}

// syncNative pushes the local state to the native widget.
func (t *TextArea) syncNative() {
	if t.cfg.Syncer == nil {
		return
	}
	t.cfg.Syncer.ForceSetText(t.buf.Text(), t.buf.Cursor())
	if ss, ok := t.cfg.Syncer.(SelectionSyncer); ok {
		if _, ok := t.buf.Selection(); ok {
			anchor, _ := t.buf.Anchor()
			ss.ForceSetSelection(anchor, t.buf.Cursor())
		}
	}
}
