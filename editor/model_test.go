package editor

import (
	"reflect"
	"testing"
)

func newArea(text string, width, height float64) *TextArea {
	return New(Config{Text: text, Width: width, Height: height, Multiline: true})
}

func TestRelayout_IdempotentWithoutMutation(t *testing.T) {
	ta := newArea("aaaa bbbb cccc", 9, 3)

	first := ta.Relayout()
	if got := ta.LayoutCount(); got != 1 {
		t.Fatalf("layout count after first relayout: got %d, want 1", got)
	}
	second := ta.Relayout()
	if got := ta.LayoutCount(); got != 1 {
		t.Fatalf("layout count after second relayout: got %d, want 1", got)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("layout state changed:\n first: %+v\nsecond: %+v", first, second)
	}

	ta.MoveTo(3)
	ta.Relayout()
	if got := ta.LayoutCount(); got != 1 {
		t.Fatalf("cursor move must not relayout: got %d layouts", got)
	}

	ta.SetText("aaaa")
	ta.Relayout()
	if got := ta.LayoutCount(); got != 2 {
		t.Fatalf("text change must relayout: got %d layouts, want 2", got)
	}

	ta.Resize(9, 3)
	ta.Relayout()
	if got := ta.LayoutCount(); got != 3 {
		t.Fatalf("resize must relayout: got %d layouts, want 3", got)
	}
}

func TestTextArea_SingleLineFieldNeverWraps(t *testing.T) {
	ta := New(Config{Text: "Edit me!", Width: 3, Height: 1})

	want := []Span{{0, 8, BreakNone}}
	if got := ta.Lines(); !spansEqual(got, want) {
		t.Fatalf("lines: got %v, want %v", got, want)
	}
	if got := ta.OffsetToLine(4); got != 0 {
		t.Fatalf("OffsetToLine(4): got %d, want 0", got)
	}
}

func TestTextArea_AutoSizeWithLines(t *testing.T) {
	ta := New(Config{
		Text:              "a\nb\nc",
		Width:             20,
		Height:            1,
		Multiline:         true,
		MaxLines:          5,
		AutoSizeWithLines: true,
	})

	st := ta.Relayout()
	if len(st.Lines) != 3 || st.LineCount != 3 {
		t.Fatalf("lines: got %d spans, count %d, want 3/3", len(st.Lines), st.LineCount)
	}
	if st.FirstVisibleLine != 0 || st.VisibleLineCount != 3 {
		t.Fatalf("window: got first=%d count=%d, want 0/3", st.FirstVisibleLine, st.VisibleLineCount)
	}

	ta.MoveTo(5)
	if got := ta.FirstVisibleLine(); got != 0 {
		t.Fatalf("auto-size must not scroll: first=%d", got)
	}
	if got := ta.PrefHeight(); got != 3 {
		t.Fatalf("pref height: got %v, want 3", got)
	}

	ta.SetText("")
	if got := ta.VisibleLineCount(); got != 1 {
		t.Fatalf("empty auto-size area: got %d visible lines, want 1", got)
	}
}

func TestTextArea_OffsetToLineRoundTrip(t *testing.T) {
	texts := []struct {
		text  string
		width float64
	}{
		{"aaaa bbbb cccc", 9},
		{"aaaaaaaaaa", 5},
		{"a\n\nb", 10},
		{"ab\n", 10},
		{"a\r\nb\r\n", 10},
		{"one two three four five six", 7},
		{"", 10},
	}
	for _, tc := range texts {
		ta := newArea(tc.text, tc.width, 10)
		lines := ta.Lines()
		runes := []rune(tc.text)
		for off := 0; off <= ta.Len(); off++ {
			line := ta.OffsetToLine(off)
			if off > 0 && off < len(runes) && runes[off-1] == '\r' && runes[off] == '\n' {
				if want := ta.OffsetToLine(off - 1); line != want {
					t.Fatalf("%q: offset %d inside CR LF maps to line %d, want %d", tc.text, off, line, want)
				}
				continue
			}
			start := ta.LineToOffset(line)
			if start > off {
				t.Fatalf("%q: offset %d maps to line %d starting at %d", tc.text, off, line, start)
			}
			if line < len(lines) {
				s := lines[line]
				if off < s.Start || off > s.End {
					t.Fatalf("%q: offset %d outside line %d %v", tc.text, off, line, s)
				}
				continue
			}
			if off != ta.Len() {
				t.Fatalf("%q: offset %d maps past the last span", tc.text, off)
			}
		}
	}
}

func TestTextArea_OffsetToLineBoundaries(t *testing.T) {
	ta := newArea("aaaaaaaaaa", 5, 2)
	if got := ta.OffsetToLine(5); got != 0 {
		t.Fatalf("forced wrap boundary: got line %d, want 0", got)
	}
	if got := ta.OffsetToLine(6); got != 1 {
		t.Fatalf("OffsetToLine(6): got %d, want 1", got)
	}

	ta = newArea("ab\ncd", 10, 2)
	if got := ta.OffsetToLine(2); got != 0 {
		t.Fatalf("terminator offset: got line %d, want 0", got)
	}
	if got := ta.OffsetToLine(3); got != 1 {
		t.Fatalf("next line start: got line %d, want 1", got)
	}
	if got := ta.OffsetToLine(-7); got != 0 {
		t.Fatalf("negative offset: got line %d, want 0", got)
	}
	if got := ta.LineToOffset(9); got != ta.Len() {
		t.Fatalf("LineToOffset past end: got %d, want %d", got, ta.Len())
	}
}

func TestTextArea_VerticalNavigationDoesNotDrift(t *testing.T) {
	ta := newArea("abcdef\nab\nabcdef", 20, 5)
	ta.MoveTo(5)

	steps := []struct {
		move   func(bool)
		cursor int
		line   int
	}{
		{ta.MoveDown, 9, 1},
		{ta.MoveDown, 15, 2},
		{ta.MoveUp, 9, 1},
		{ta.MoveUp, 5, 0},
	}
	for i, st := range steps {
		st.move(false)
		if got := ta.Cursor(); got != st.cursor {
			t.Fatalf("step %d cursor: got %d, want %d", i, got, st.cursor)
		}
		if got := ta.CursorLine(); got != st.line {
			t.Fatalf("step %d line: got %d, want %d", i, got, st.line)
		}
	}

	// A horizontal move forgets the remembered advance.
	ta.MoveDown(false)
	ta.Move(Move{Unit: MoveGrapheme, Dir: DirBackward})
	ta.MoveDown(false)
	if got := ta.Cursor(); got != 11 {
		t.Fatalf("cursor after reset advance: got %d, want 11", got)
	}
}

func TestTextArea_MoveCursorLineAcrossForcedWrap(t *testing.T) {
	ta := newArea("aaaaaaaaaa", 5, 2)
	ta.MoveTo(2)

	ta.MoveCursorLine(99)
	if got, line := ta.Cursor(), ta.CursorLine(); got != 7 || line != 1 {
		t.Fatalf("down: got cursor %d line %d, want 7/1", got, line)
	}

	ta.Home(false)
	if got, line := ta.Cursor(), ta.CursorLine(); got != 5 || line != 1 {
		t.Fatalf("home: got cursor %d line %d, want 5/1", got, line)
	}
	ta.End(false)
	if got := ta.Cursor(); got != 10 {
		t.Fatalf("end: got cursor %d, want 10", got)
	}

	v := ta.Version()
	ta.MoveCursorLine(1)
	if ta.Version() != v {
		t.Fatalf("moving to the current line must be a no-op")
	}

	ta.MoveCursorLine(-3)
	if got := ta.CursorLine(); got != 0 {
		t.Fatalf("clamped up: got line %d, want 0", got)
	}

	ta.End(true)
	if got := ta.Cursor(); got != 10 {
		t.Fatalf("end of text: got %d, want 10", got)
	}
	ta.Home(true)
	if got := ta.Cursor(); got != 0 {
		t.Fatalf("start of text: got %d, want 0", got)
	}
}

func TestTextArea_VerticalNavigationOverCRLF(t *testing.T) {
	ta := newArea("ab\r\ncd", 10, 3)
	if got := ta.LineCount(); got != 2 {
		t.Fatalf("line count: got %d, want 2", got)
	}

	ta.MoveTo(1)
	ta.MoveDown(false)
	if got := ta.Cursor(); got != 5 {
		t.Fatalf("cursor after down: got %d, want 5", got)
	}
	if got := ta.CursorLine(); got != 1 {
		t.Fatalf("cursor line after down: got %d, want 1", got)
	}

	ta.Home(false)
	if got := ta.Cursor(); got != 4 {
		t.Fatalf("home on second line: got %d, want 4", got)
	}
	ta.MoveUp(false)
	ta.End(false)
	if got := ta.Cursor(); got != 2 {
		t.Fatalf("end of first line: got %d, want 2", got)
	}

	ta.Insert("X")
	if got, want := ta.Text(), "abX\r\ncd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}

	ta.ApplyExternalEdit("abX\r\ncd", 4, 4)
	if got := ta.Cursor(); got != 3 {
		t.Fatalf("cursor inside the pair: got %d, want 3", got)
	}
	ta.Insert("Y")
	if got, want := ta.Text(), "abXY\r\ncd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestTextArea_MoveUpDownExtendSelection(t *testing.T) {
	ta := newArea("abc\ndef\nghi", 20, 3)
	ta.MoveTo(1)

	ta.MoveDown(true)
	ta.MoveDown(true)
	r, ok := ta.Selection()
	if !ok || r.Start != 1 || r.End != 9 {
		t.Fatalf("selection: got %v/%v, want [1,9)", r, ok)
	}

	ta.MoveUp(false)
	if _, ok := ta.Selection(); ok {
		t.Fatalf("plain move must clear the selection")
	}
	if got := ta.Cursor(); got != 5 {
		t.Fatalf("cursor: got %d, want 5", got)
	}
}

func TestTextArea_EnsureLineVisibleScrollsByWholeLines(t *testing.T) {
	ta := newArea("1\n2\n3\n4\n5\n6", 10, 3)
	if got := ta.VisibleLineCount(); got != 3 {
		t.Fatalf("visible lines: got %d, want 3", got)
	}

	ta.MoveTo(ta.Len())
	if got := ta.FirstVisibleLine(); got != 3 {
		t.Fatalf("first visible at end: got %d, want 3", got)
	}

	ta.MoveTo(0)
	if got := ta.FirstVisibleLine(); got != 0 {
		t.Fatalf("first visible at start: got %d, want 0", got)
	}

	for i := 0; i < 3; i++ {
		ta.MoveDown(false)
	}
	if got := ta.FirstVisibleLine(); got != 1 {
		t.Fatalf("first visible after stepping to line 3: got %d, want 1", got)
	}
	if got := ta.CursorRow(); got != 2 {
		t.Fatalf("cursor row: got %d, want 2", got)
	}

	ta.EnsureLineVisible(0)
	if got := ta.FirstVisibleLine(); got != 0 {
		t.Fatalf("EnsureLineVisible(0): got first %d, want 0", got)
	}
}

func TestTextArea_ShrinkingTextScrollsMinimally(t *testing.T) {
	ta := newArea("0\n1\n2\n3\n4\n5\n6\n7\n8\n9", 10, 3)
	ta.MoveTo(ta.Len())
	if got := ta.FirstVisibleLine(); got != 7 {
		t.Fatalf("first visible at end: got %d, want 7", got)
	}

	ta.ApplyExternalEdit("0\n1\n2\n3\n4\n5", 11, 11)
	if got := ta.CursorLine(); got != 5 {
		t.Fatalf("cursor line: got %d, want 5", got)
	}
	if got := ta.FirstVisibleLine(); got != 5 {
		t.Fatalf("first visible after shrink: got %d, want 5", got)
	}

	ta.MoveUp(false)
	if got := ta.FirstVisibleLine(); got != 4 {
		t.Fatalf("first visible after up: got %d, want 4", got)
	}
}

func TestTextArea_ResizeComputesVisibleLines(t *testing.T) {
	ta := New(Config{
		Text:       "x",
		Width:      100,
		Height:     40,
		Padding:    Insets{Top: 5, Bottom: 5, Left: 3, Right: 3},
		LineHeight: 13,
		Multiline:  true,
	})
	if got := ta.VisibleLineCount(); got != 3 {
		t.Fatalf("visible lines: got %d, want 3", got)
	}
	if w, h := ta.Size(); w != 94 || h != 30 {
		t.Fatalf("text box: got %vx%v, want 94x30", w, h)
	}

	ta.Resize(100, 10)
	if got := ta.VisibleLineCount(); got != 0 {
		t.Fatalf("visible lines after shrink: got %d, want 0", got)
	}
	if got := ta.PrefHeight(); got != 23 {
		t.Fatalf("pref height: got %v, want 23", got)
	}
}

func TestTextArea_FocusRequest(t *testing.T) {
	ta := New(Config{ID: "num", Text: "123", NumericOnly: true, AutoCorrect: true})
	req := ta.FocusRequest()
	if req.WidgetID != "num" || req.Text != "123" || req.Cursor != 0 {
		t.Fatalf("request: got %+v", req)
	}
	if req.Kind.String() != "numeric" || !req.AutoCorrect || req.Suggestions || req.Multiline {
		t.Fatalf("request flags: got %+v", req)
	}
}
