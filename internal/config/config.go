// Package config loads the demo host configuration from TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/iw2rmb/textsync/editor"
	"github.com/iw2rmb/textsync/keyboard"
)

//go:embed default.toml
var defaultTOML []byte

var (
	ErrUnknownKeyboard = errors.New("unknown keyboard kind")
	ErrDuplicateWidget = errors.New("duplicate widget id")
	ErrNoWidgets       = errors.New("no widgets configured")
)

type Config struct {
	LogLevel string   `toml:"log_level"`
	LogFile  string   `toml:"log_file"`
	Keyboard Keyboard `toml:"keyboard"`
	Widgets  []Widget `toml:"widget"`
}

// Keyboard configures the simulated native keyboard.
type Keyboard struct {
	Height      int               `toml:"height"`
	Corrections map[string]string `toml:"corrections"`
}

// Widget describes one text field or text area.
type Widget struct {
	ID    string `toml:"id"`
	Label string `toml:"label"`
	Text  string `toml:"text"`
	// Keyboard is "text" or "numeric". Empty means text.
	Keyboard    string  `toml:"keyboard"`
	Multiline   bool    `toml:"multiline"`
	AutoCorrect bool    `toml:"autocorrect"`
	Suggestions bool    `toml:"suggestions"`
	MaxLines    int     `toml:"max_lines"`
	AutoSize    bool    `toml:"auto_size"`
	PrefRows    float64 `toml:"pref_rows"`
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
}

// Default returns the built-in configuration.
func Default() Config {
	var c Config
	if err := toml.Unmarshal(defaultTOML, &c); err != nil {
		panic("config: invalid default.toml: " + err.Error())
	}
	return c
}

// Load returns the built-in configuration overlaid with the file at path.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("failed to read %s: %w", path, err)
	}
	c, err = Overlay(c, data)
	if err != nil {
		return c, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return c, nil
}

// Overlay decodes data and applies every value it sets on top of base. A
// widget list in data replaces the base list; corrections are merged.
func Overlay(base Config, data []byte) (Config, error) {
	var user Config
	if err := toml.Unmarshal(data, &user); err != nil {
		return base, err
	}

	if user.LogLevel != "" {
		base.LogLevel = user.LogLevel
	}
	if user.LogFile != "" {
		base.LogFile = user.LogFile
	}
	if user.Keyboard.Height > 0 {
		base.Keyboard.Height = user.Keyboard.Height
	}
	if len(user.Keyboard.Corrections) > 0 {
		merged := make(map[string]string, len(base.Keyboard.Corrections)+len(user.Keyboard.Corrections))
		for k, v := range base.Keyboard.Corrections {
			merged[k] = v
		}
		for k, v := range user.Keyboard.Corrections {
			merged[k] = v
		}
		base.Keyboard.Corrections = merged
	}
	if len(user.Widgets) > 0 {
		base.Widgets = user.Widgets
	}

	if err := base.Validate(); err != nil {
		return base, err
	}
	return base, nil
}

// Validate checks widget ids and keyboard kinds.
func (c Config) Validate() error {
	if len(c.Widgets) == 0 {
		return ErrNoWidgets
	}
	seen := make(map[string]bool, len(c.Widgets))
	for i, w := range c.Widgets {
		if w.ID == "" {
			return fmt.Errorf("widget %d: missing id", i)
		}
		if seen[w.ID] {
			return fmt.Errorf("widget %q: %w", w.ID, ErrDuplicateWidget)
		}
		seen[w.ID] = true
		if _, err := w.Kind(); err != nil {
			return fmt.Errorf("widget %q: %w", w.ID, err)
		}
	}
	return nil
}

// Marshal encodes c as TOML.
func (c Config) Marshal() ([]byte, error) {
	data, err := toml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Kind parses the widget's keyboard kind.
func (w Widget) Kind() (keyboard.Kind, error) {
	switch w.Keyboard {
	case "", "text":
		return keyboard.KindText, nil
	case "numeric":
		return keyboard.KindNumeric, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownKeyboard, w.Keyboard)
	}
}

// EditorConfig builds the editor configuration for w. Host-specific fields
// such as Logger, Syncer and Style are left for the caller.
func (w Widget) EditorConfig() (editor.Config, error) {
	kind, err := w.Kind()
	if err != nil {
		return editor.Config{}, fmt.Errorf("widget %q: %w", w.ID, err)
	}
	return editor.Config{
		ID:                w.ID,
		Text:              w.Text,
		Width:             w.Width,
		Height:            w.Height,
		Multiline:         w.Multiline,
		MaxLines:          w.MaxLines,
		AutoSizeWithLines: w.AutoSize,
		PrefRows:          w.PrefRows,
		NumericOnly:       kind == keyboard.KindNumeric,
		AutoCorrect:       w.AutoCorrect,
		Suggestions:       w.Suggestions,
	}, nil
}
