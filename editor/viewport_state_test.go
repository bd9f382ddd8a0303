package editor

import "testing"

func TestViewportState_TracksWindow(t *testing.T) {
	ta := newArea("1\n2\n3\n4\n5", 10, 2)

	vs := ta.ViewportState()
	if vs.FirstVisibleLine != 0 || vs.VisibleLines != 2 || vs.LineCount != 5 || vs.AutoSize {
		t.Fatalf("initial state: got %+v", vs)
	}
	if vs.CanScrollUp() || !vs.CanScrollDown() {
		t.Fatalf("initial scroll flags: got up=%v down=%v", vs.CanScrollUp(), vs.CanScrollDown())
	}

	ta.MoveTo(ta.Len())
	vs = ta.ViewportState()
	if vs.FirstVisibleLine != 3 {
		t.Fatalf("first visible line: got %d, want 3", vs.FirstVisibleLine)
	}
	if !vs.CanScrollUp() || vs.CanScrollDown() {
		t.Fatalf("scroll flags at end: got up=%v down=%v", vs.CanScrollUp(), vs.CanScrollDown())
	}
}

func TestViewportState_ShrinkingTextScrollsToCursor(t *testing.T) {
	ta := newArea("1\n2\n3\n4\n5", 10, 2)
	ta.MoveTo(ta.Len())

	ta.ApplyExternalEdit("1\n2", 0, 0)
	if got := ta.FirstVisibleLine(); got != 0 {
		t.Fatalf("first visible line: got %d, want 0", got)
	}
}
