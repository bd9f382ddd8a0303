package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/textsync/editor"
)

// hostKeys are the bindings handled by the demo before a widget sees a key.
type hostKeys struct {
	Next, Prev key.Binding
	Hide       key.Binding
	Pause      key.Binding
	Help       key.Binding
	Quit       key.Binding

	editor editor.KeyMap
}

func defaultHostKeys() hostKeys {
	return hostKeys{
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
		Hide:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide keyboard")),
		Pause:  key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "pause")),
		Help:   key.NewBinding(key.WithKeys("ctrl+_", "f1"), key.WithHelp("f1", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		editor: editor.DefaultKeyMap(),
	}
}

func (k hostKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Hide, k.Pause, k.Help, k.Quit}
}

func (k hostKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Next, k.Prev, k.Hide, k.Pause, k.Help, k.Quit}}, k.editor.FullHelp()...)
}
