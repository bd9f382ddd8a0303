package editor

// ViewportState is a host-facing snapshot of the visible line window.
type ViewportState struct {
	// FirstVisibleLine is the line drawn at the top of the text box.
	FirstVisibleLine int
	// VisibleLines is the number of whole lines the text box shows.
	VisibleLines int
	// LineCount includes the empty line after a trailing terminator.
	LineCount int
	// AutoSize is set when the widget grows with its lines instead of
	// scrolling.
	AutoSize bool
}

func (t *TextArea) ViewportState() ViewportState {
	t.ensureLayout()
	return ViewportState{
		FirstVisibleLine: t.firstVisibleLine,
		VisibleLines:     t.visibleLineCount,
		LineCount:        t.lineCount(),
		AutoSize:         t.cfg.AutoSizeWithLines,
	}
}

// CanScrollUp reports whether lines above the window are hidden.
func (v ViewportState) CanScrollUp() bool { return v.FirstVisibleLine > 0 }

// CanScrollDown reports whether lines below the window are hidden.
func (v ViewportState) CanScrollDown() bool {
	return v.FirstVisibleLine+v.VisibleLines < v.LineCount
}
