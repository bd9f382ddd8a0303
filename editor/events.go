package editor

import "github.com/iw2rmb/textsync/buffer"

// ChangeEvent is passed to Config.OnChange after an edit has been applied.
type ChangeEvent struct {
	Version   uint64
	Cursor    int
	Selection struct {
		Range  buffer.Range
		Active bool
	}
	Source    buffer.ChangeSource
	LineCount int

	// Rejected is set when the line limit reverted the edit; Text is then the
	// corrected text.
	Rejected bool

	Text string
}

func (t *TextArea) buildChangeEvent(src buffer.ChangeSource, rejected bool) ChangeEvent {
	ev := ChangeEvent{
		Version:   t.buf.Version(),
		Cursor:    t.buf.Cursor(),
		Source:    src,
		LineCount: t.LineCount(),
		Rejected:  rejected,
		Text:      t.buf.Text(),
	}
	if r, ok := t.buf.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}

func (t *TextArea) emitChange(src buffer.ChangeSource, rejected bool) {
	if t.cfg.OnChange == nil {
		return
	}
	t.cfg.OnChange(t.buildChangeEvent(src, rejected))
}
