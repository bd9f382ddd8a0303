package editor

import "github.com/charmbracelet/lipgloss"

// Style controls how View draws a TextArea.
type Style struct {
	// Box wraps the rendered rows; its padding and border are drawn around
	// the text, independent of Config.Padding.
	Box      lipgloss.Style
	BoxFocus lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style
}

func DefaultStyle() Style {
	box := lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	return Style{
		Box:       box,
		BoxFocus:  box.BorderForeground(lipgloss.Color("63")),
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:    lipgloss.NewStyle().Reverse(true),
	}
}
