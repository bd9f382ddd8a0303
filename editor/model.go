package editor

import (
	"log/slog"
	"math"

	"github.com/iw2rmb/textsync/buffer"
	"github.com/iw2rmb/textsync/keyboard"
)

// TextArea is the layout and editing core of a text field or text area.
//
// It owns the text buffer, the visual line partition, the cursor line, and
// the scroll window. TextArea holds no locks: every method must be called
// from the goroutine that owns the widget. Edits reported by a native
// keyboard on another goroutine go through keyboard.Bridge first.
type TextArea struct {
	cfg Config
	buf *buffer.Buffer
	log *slog.Logger

	focused bool

	// Text box size after padding.
	textWidth  float64
	textHeight float64

	lines       []Span
	layoutValid bool
	// Buffer text version and width the lines were computed for.
	layoutVersion uint64
	layoutWidth   float64
	layouts       int

	cursorLine       int
	cursorSynced     uint64
	firstVisibleLine int
	visibleLineCount int

	// moveOffset is the remembered caret advance for vertical moves, -1 when unset.
	moveOffset float64

	adv advanceCache
}

// New creates a TextArea with the cursor at offset 0.
func New(cfg Config) *TextArea {
	cfg = cfg.withDefaults()
	t := &TextArea{
		cfg:        cfg,
		buf:        buffer.New(cfg.Text, buffer.Options{Terminators: cfg.Terminators}),
		log:        cfg.Logger.With(slog.String("widget", cfg.ID)),
		moveOffset: -1,
	}
	t.Resize(cfg.Width, cfg.Height)
	return t
}

func (t *TextArea) ID() string { return t.cfg.ID }

func (t *TextArea) Config() Config { return t.cfg }

func (t *TextArea) Text() string { return t.buf.Text() }

func (t *TextArea) Len() int { return t.buf.Len() }

func (t *TextArea) Cursor() int { return t.buf.Cursor() }

// Selection returns the normalized active selection.
func (t *TextArea) Selection() (buffer.Range, bool) { return t.buf.Selection() }

// Version is the buffer version; it changes on every text, cursor, or
// selection change.
func (t *TextArea) Version() uint64 { return t.buf.Version() }

// LastChange returns the most recent buffer change record.
func (t *TextArea) LastChange() (buffer.Change, bool) { return t.buf.LastChange() }

func (t *TextArea) Focus() { t.focused = true }

func (t *TextArea) Blur() { t.focused = false }

func (t *TextArea) Focused() bool { return t.focused }

// SetSyncer replaces the channel used to push text back to the native widget.
func (t *TextArea) SetSyncer(s Syncer) { t.cfg.Syncer = s }

// FocusRequest describes how the native keyboard should be configured for
// this widget.
func (t *TextArea) FocusRequest() keyboard.FocusRequest {
	kind := keyboard.KindText
	if t.cfg.NumericOnly {
		kind = keyboard.KindNumeric
	}
	return keyboard.FocusRequest{
		WidgetID:    t.cfg.ID,
		Text:        t.buf.Text(),
		Cursor:      t.buf.Cursor(),
		Kind:        kind,
		AutoCorrect: t.cfg.AutoCorrect,
		Suggestions: t.cfg.Suggestions,
		Multiline:   t.cfg.Multiline,
	}
}

// OnExternalTextChanged implements keyboard.Target.
func (t *TextArea) OnExternalTextChanged(text string, cursor, selEnd int) {
	t.ApplyExternalEdit(text, cursor, selEnd)
}

// LayoutState is a snapshot of the visual layout.
type LayoutState struct {
	Lines            []Span
	LineCount        int
	CursorLine       int
	FirstVisibleLine int
	VisibleLineCount int
	// TextVersion is the buffer text version the lines were computed for.
	TextVersion uint64
}

// Relayout recomputes the line partition if the text or the wrap width
// changed since the last layout, and returns the current state. Calls with
// nothing changed reuse the cached lines.
func (t *TextArea) Relayout() LayoutState {
	t.ensureLayout()
	return LayoutState{
		Lines:            append([]Span(nil), t.lines...),
		LineCount:        t.lineCount(),
		CursorLine:       t.cursorLine,
		FirstVisibleLine: t.firstVisibleLine,
		VisibleLineCount: t.visibleLineCount,
		TextVersion:      t.layoutVersion,
	}
}

// LayoutCount returns how many times the line partition has been computed.
func (t *TextArea) LayoutCount() int { return t.layouts }

// Lines returns the current visual lines.
func (t *TextArea) Lines() []Span {
	t.ensureLayout()
	return append([]Span(nil), t.lines...)
}

// LineCount returns the number of visual lines, including the empty line
// after a trailing terminator.
func (t *TextArea) LineCount() int {
	t.ensureLayout()
	return t.lineCount()
}

func (t *TextArea) CursorLine() int {
	t.ensureLayout()
	return t.cursorLine
}

func (t *TextArea) FirstVisibleLine() int {
	t.ensureLayout()
	return t.firstVisibleLine
}

func (t *TextArea) VisibleLineCount() int {
	t.ensureLayout()
	return t.visibleLineCount
}

func (t *TextArea) dirty() bool {
	return !t.layoutValid ||
		t.layoutVersion != t.buf.TextVersion() ||
		t.layoutWidth != t.wrapWidth()
}

// ensureLayout brings lines, cursor line, and scroll window up to date.
func (t *TextArea) ensureLayout() {
	if t.dirty() {
		t.layout()
		return
	}
	if t.cursorSynced != t.buf.Version() {
		t.showCursor()
	}
}

func (t *TextArea) layout() {
	text := t.buf.View()
	width := t.wrapWidth()
	lines := ComputeLines(text, width, t.cfg.Measurer, t.cfg.Terminators)
	if err := CheckPartition(text, lines, t.cfg.Terminators); err != nil {
		panic("editor: inconsistent line layout: " + err.Error())
	}

	t.lines = lines
	t.layoutValid = true
	t.layoutVersion = t.buf.TextVersion()
	t.layoutWidth = width
	t.layouts++
	t.adv.reset()

	if t.cfg.AutoSizeWithLines {
		t.visibleLineCount = maxInt(t.lineCount(), 1)
	}
	t.showCursor()
}

// wrapWidth is the width lines break at; single-line fields never wrap.
func (t *TextArea) wrapWidth() float64 {
	if !t.cfg.Multiline {
		return math.Inf(1)
	}
	return t.textWidth
}

func (t *TextArea) lineCount() int {
	return LineCount(t.buf.View(), t.lines, t.cfg.Terminators)
}

// advance returns the caret advance of off from the start of line.
func (t *TextArea) advance(line, off int) float64 {
	pos := t.linePositions(line)
	if pos == nil {
		return 0
	}
	k := clampInt(off-t.lines[line].Start, 0, len(pos)-1)
	return pos[k]
}

// advanceCache holds per-line caret positions for the text version the
// current lines were computed for. layout resets it.
type advanceCache struct {
	lines map[int][]float64
}

func (c *advanceCache) reset() {
	c.lines = nil
}

// positions returns pos where pos[k] is the advance of the first k runes of s.
func (c *advanceCache) positions(line int, s Span, text []rune, m Measurer) []float64 {
	if pos, ok := c.lines[line]; ok {
		return pos
	}
	pos := make([]float64, s.Len()+1)
	for k := 1; k <= s.Len(); k++ {
		pos[k] = m.Measure(text[s.Start : s.Start+k])
	}
	if c.lines == nil {
		c.lines = make(map[int][]float64)
	}
	c.lines[line] = pos
	return pos
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
