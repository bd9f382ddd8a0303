package editor

// SelectionSpan is the part of one visual line covered by the selection, in
// line-local rune offsets.
type SelectionSpan struct {
	Line       int
	LocalStart int
	LocalEnd   int
}

// Rect is a widget-local rectangle.
type Rect struct {
	X, Y, W, H float64
}

// SelectionSpansFor returns, for each of the count lines starting at first,
// the intersection of the line with the selection between cursor and anchor.
// Lines are closed ranges here, so empty lines inside a selection yield a
// zero-width span.
func SelectionSpansFor(lines []Span, first, count, cursor, anchor int) []SelectionSpan {
	lo, hi := minInt(cursor, anchor), maxInt(cursor, anchor)
	if lo == hi {
		return nil
	}
	var out []SelectionSpan
	last := minInt(first+count, len(lines))
	for i := maxInt(first, 0); i < last; i++ {
		s := lines[i]
		if s.End < lo || s.Start > hi {
			continue
		}
		out = append(out, SelectionSpan{
			Line:       i,
			LocalStart: maxInt(s.Start, lo) - s.Start,
			LocalEnd:   minInt(s.End, hi) - s.Start,
		})
	}
	return out
}

// SelectionSpans returns the selection spans of the visible lines.
func (t *TextArea) SelectionSpans() []SelectionSpan {
	t.ensureLayout()
	anchor, ok := t.buf.Anchor()
	if !ok {
		return nil
	}
	return SelectionSpansFor(t.lines, t.firstVisibleLine, maxInt(t.visibleLineCount, 1), t.buf.Cursor(), anchor)
}

// SelectionRects returns the highlight rectangles of the visible selection.
// Each rectangle is at least Config.SelectionMinWidth wide.
func (t *TextArea) SelectionRects() []Rect {
	spans := t.SelectionSpans()
	if len(spans) == 0 {
		return nil
	}
	rects := make([]Rect, 0, len(spans))
	for _, sp := range spans {
		s := t.lines[sp.Line]
		x0 := t.advance(sp.Line, s.Start+sp.LocalStart)
		x1 := t.advance(sp.Line, s.Start+sp.LocalEnd)
		w := x1 - x0
		if w < t.cfg.SelectionMinWidth {
			w = t.cfg.SelectionMinWidth
		}
		rects = append(rects, Rect{
			X: t.cfg.Padding.Left + x0,
			Y: t.cfg.Padding.Top + float64(sp.Line-t.firstVisibleLine)*t.cfg.LineHeight,
			W: w,
			H: t.cfg.LineHeight,
		})
	}
	return rects
}
