package editor

import (
	"github.com/mattn/go-runewidth"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Measurer is the glyph-width oracle used for line breaking and caret
// placement. Measure returns the advance of s laid out as one run.
//
// Widths are not assumed to be additive: kerning and ligatures may make
// Measure(a+b) differ from Measure(a)+Measure(b), so callers re-measure
// whole prefixes.
type Measurer interface {
	Measure(s []rune) float64
}

// MeasureFunc adapts a function to Measurer.
type MeasureFunc func(s []rune) float64

func (f MeasureFunc) Measure(s []rune) float64 { return f(s) }

// CellMeasurer measures terminal cells, for hosts that draw on a character grid.
type CellMeasurer struct {
	// EastAsianWide counts ambiguous-width runes as two cells.
	EastAsianWide bool
}

func (c CellMeasurer) Measure(s []rune) float64 {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = c.EastAsianWide
	w := 0
	for _, r := range s {
		w += cond.RuneWidth(r)
	}
	return float64(w)
}

// FaceMeasurer measures pixel advances with a font face, kerning included.
type FaceMeasurer struct {
	Face font.Face
}

func (f FaceMeasurer) Measure(s []rune) float64 {
	if f.Face == nil || len(s) == 0 {
		return 0
	}
	return fixedToFloat(font.MeasureString(f.Face, string(s)))
}

// LineHeight returns the face's recommended line height in pixels.
func (f FaceMeasurer) LineHeight() float64 {
	if f.Face == nil {
		return 0
	}
	return fixedToFloat(f.Face.Metrics().Height)
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
