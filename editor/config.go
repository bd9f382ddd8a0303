package editor

import (
	"log/slog"

	"github.com/iw2rmb/textsync/buffer"
)

// Insets is the space a widget background takes around the text.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// Config configures a TextArea. New keeps a copy; only SetSyncer changes it
// afterwards.
//
// The same struct serves single-line fields and multi-line areas; flags that
// do not apply to a widget kind are ignored.
type Config struct {
	// ID identifies the widget to the native input binding.
	ID string
	// Initial text for the internal buffer.
	Text string

	// Width and Height are the widget's outer size, Padding is subtracted
	// from both before laying out text.
	Width, Height float64
	Padding       Insets
	// LineHeight is the height of one visual line. Default: 1 (terminal rows).
	LineHeight float64
	// Measurer measures glyph advances. Default: CellMeasurer.
	Measurer Measurer
	// Terminators are the two accepted line-break runes. Default: '\n', '\r'.
	Terminators [2]rune

	// Multiline enables wrapping and the native keyboard's carriage return.
	// Single-line fields never wrap.
	Multiline bool
	// MaxLines bounds the number of lines. 0 means unbounded.
	MaxLines int
	// AutoSizeWithLines grows the preferred height with the line count
	// instead of scrolling inside a fixed viewport.
	AutoSizeWithLines bool
	// PrefRows sets the preferred height in rows when not auto-sizing.
	PrefRows float64

	// Native keyboard options.
	NumericOnly bool
	AutoCorrect bool
	Suggestions bool

	// SelectionMinWidth is the minimum width of a selection rectangle, so
	// empty lines inside a selection stay visible.
	SelectionMinWidth float64

	// Syncer receives corrected or locally edited text for the native widget.
	Syncer Syncer
	// OnChange is called after every applied edit, accepted or reverted.
	OnChange func(ChangeEvent)

	Logger *slog.Logger
	// Style is used by View. Default: DefaultStyle().
	Style *Style
	// KeyMap drives Update. Default: DefaultKeyMap.
	KeyMap KeyMap
}

func (c Config) withDefaults() Config {
	if c.LineHeight <= 0 {
		c.LineHeight = 1
	}
	if c.Measurer == nil {
		c.Measurer = CellMeasurer{}
	}
	if c.Terminators == ([2]rune{}) {
		c.Terminators = buffer.DefaultTerminators
	}
	if c.MaxLines < 0 {
		c.MaxLines = 0
	}
	if c.Logger == nil {
		c.Logger = slog.New(slog.DiscardHandler)
	}
	if c.Style == nil {
		st := DefaultStyle()
		c.Style = &st
	}
	if len(c.KeyMap.Left.Keys()) == 0 {
		c.KeyMap = DefaultKeyMap()
	}
	return c
}
