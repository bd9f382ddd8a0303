package editor

import "testing"

func TestOffsetAt_NearestBoundary(t *testing.T) {
	ta := newArea("hello\nworld", 20, 2)

	tests := []struct {
		x, y float64
		want int
	}{
		{2.4, 1.5, 8},
		{2.6, 1, 9},
		{-3, 0, 0},
		{100, 0, 5},
		{100, 50, 11},
		{0, -4, 0},
	}
	for _, tt := range tests {
		if got := ta.OffsetAt(tt.x, tt.y); got != tt.want {
			t.Fatalf("OffsetAt(%v,%v): got %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestSetCursorPosition_PinsTappedLine(t *testing.T) {
	ta := newArea("aaaaaaaaaa", 5, 2)
	ta.MoveTo(8)

	ta.SetCursorPosition(0, 1)
	if got, line := ta.Cursor(), ta.CursorLine(); got != 5 || line != 1 {
		t.Fatalf("tap at line start: got cursor %d line %d, want 5/1", got, line)
	}
	if x, y := ta.CursorX(), ta.CursorY(); x != 0 || y != 1 {
		t.Fatalf("caret: got (%v,%v), want (0,1)", x, y)
	}
}

func TestLetterUnderCursor_UsesCursorLine(t *testing.T) {
	ta := New(Config{Text: "hello", Width: 20, Height: 1, Padding: Insets{Left: 2}})

	if got := ta.LetterUnderCursor(6); got != 4 {
		t.Fatalf("LetterUnderCursor(6): got %d, want 4", got)
	}
	if got := ta.LetterUnderCursor(0); got != 0 {
		t.Fatalf("LetterUnderCursor(0): got %d, want 0", got)
	}
}

func TestOffsetAt_SkipsInsideClusters(t *testing.T) {
	ta := New(Config{Text: "ae\u0301b", Width: 20, Height: 1})

	if got := ta.OffsetAt(1.9, 0); got != 3 {
		t.Fatalf("OffsetAt inside a cluster: got %d, want 3", got)
	}
}

func TestOffsetPos_ReportsVisibility(t *testing.T) {
	ta := newArea("1\n2\n3\n4", 10, 2)

	x, y, ok := ta.OffsetPos(2)
	if !ok || x != 0 || y != 1 {
		t.Fatalf("OffsetPos(2): got (%v,%v,%v), want (0,1,true)", x, y, ok)
	}
	if _, _, ok := ta.OffsetPos(6); ok {
		t.Fatalf("line 3 is outside the window")
	}
}
