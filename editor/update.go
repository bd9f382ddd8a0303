package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles key input for hosts without a native keyboard. Cursor moves
// are mirrored to the bound native widget.
func (t *TextArea) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !t.focused {
		return nil
	}
	t.updateKey(km)
	return nil
}

func (t *TextArea) updateKey(msg tea.KeyMsg) {
	// Pasted text is inserted literally and never triggers shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		t.Insert(string(msg.Runes))
		return
	}

	before := t.buf.Version()
	km := t.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		t.Move(Move{Unit: MoveGrapheme, Dir: DirBackward})
	case key.Matches(msg, km.Right):
		t.Move(Move{Unit: MoveGrapheme, Dir: DirForward})
	case key.Matches(msg, km.Up):
		t.MoveUp(false)
	case key.Matches(msg, km.Down):
		t.MoveDown(false)

	case key.Matches(msg, km.ShiftLeft):
		t.Move(Move{Unit: MoveGrapheme, Dir: DirBackward, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		t.Move(Move{Unit: MoveGrapheme, Dir: DirForward, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		t.MoveUp(true)
	case key.Matches(msg, km.ShiftDown):
		t.MoveDown(true)

	case key.Matches(msg, km.WordLeft):
		t.Move(Move{Unit: MoveWord, Dir: DirBackward})
	case key.Matches(msg, km.WordRight):
		t.Move(Move{Unit: MoveWord, Dir: DirForward})

	case key.Matches(msg, km.Home):
		t.Home(false)
	case key.Matches(msg, km.End):
		t.End(false)
	case key.Matches(msg, km.DocStart):
		t.Home(true)
	case key.Matches(msg, km.DocEnd):
		t.End(true)

	case key.Matches(msg, km.Backspace):
		t.Backspace()
		return
	case key.Matches(msg, km.Delete):
		t.Delete()
		return
	case key.Matches(msg, km.Enter):
		t.InsertNewline()
		return

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
			t.Insert(string(msg.Runes))
		} else if msg.Type == tea.KeySpace {
			t.Insert(" ")
		}
		return
	}

	if t.buf.Version() != before {
		t.syncNative()
	}
}
