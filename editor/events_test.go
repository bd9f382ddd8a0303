package editor

import (
	"testing"

	"github.com/iw2rmb/textsync/buffer"
)

func TestOnChange_FiresOnEditsAndSkipsNoOps(t *testing.T) {
	var events []ChangeEvent
	ta := New(Config{
		Text:  "ab",
		Width: 20, Height: 1,
		OnChange: func(ev ChangeEvent) {
			events = append(events, ev)
		},
	})

	ta.MoveTo(2)
	if len(events) != 0 {
		t.Fatalf("cursor moves are not edits: got %d events", len(events))
	}

	ta.Insert("X")
	if len(events) != 1 {
		t.Fatalf("events after insert: got %d, want 1", len(events))
	}
	ev := events[0]
	if ev.Text != "abX" || ev.Cursor != 3 || ev.Source != buffer.ChangeSourceLocal || ev.LineCount != 1 {
		t.Fatalf("event: got %+v", ev)
	}

	ta.ApplyExternalEdit("abXY", 1, 4)
	if len(events) != 2 {
		t.Fatalf("events after remote edit: got %d, want 2", len(events))
	}
	ev = events[1]
	if ev.Source != buffer.ChangeSourceRemote || !ev.Selection.Active || ev.Selection.Range != (buffer.Range{Start: 1, End: 4}) {
		t.Fatalf("remote event: got %+v", ev)
	}

	ta.Delete()
	ta.MoveTo(4)
	ta.Delete()
	if len(events) != 3 {
		t.Fatalf("no-op delete must not fire: got %d events, want 3", len(events))
	}
	if last, ok := ta.LastChange(); !ok || last.Source != buffer.ChangeSourceLocal {
		t.Fatalf("last change: got %+v/%v", last, ok)
	}
}
