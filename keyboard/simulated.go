package keyboard

import (
	"context"
	"strings"
	"sync"
	"unicode"
)

// Poster receives snapshots from a native widget; *Bridge implements it.
type Poster interface {
	Post(ctx context.Context, e Edit) error
}

// DefaultCorrections is the word list used by Simulated when a widget asks
// for autocorrect.
var DefaultCorrections = map[string]string{
	"teh":     "the",
	"adn":     "and",
	"wiht":    "with",
	"recieve": "receive",
}

// Simulated is an in-process stand-in for a platform text widget with a soft
// keyboard. Keystroke methods run on the input goroutine and report the
// resulting text through the attached Poster; the Native methods are called
// by the Bridge owner and are never reported back.
type Simulated struct {
	mu  sync.Mutex
	out Poster

	// KeyboardHeight is the height the keyboard takes while open.
	KeyboardHeight int
	Corrections    map[string]string

	req     FocusRequest
	focused bool
	open    bool

	text   []rune
	cursor int
	selEnd int

	forced int
}

func NewSimulated(keyboardHeight int) *Simulated {
	return &Simulated{KeyboardHeight: keyboardHeight, Corrections: DefaultCorrections}
}

// Attach sets the Poster snapshots are reported to.
func (s *Simulated) Attach(out Poster) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out = out
}

func (s *Simulated) RequestFocus(req FocusRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.req = req
	s.text = []rune(req.Text)
	s.cursor = clamp(req.Cursor, 0, len(s.text))
	s.selEnd = s.cursor
	s.focused = true
	s.open = true
}

func (s *Simulated) ForceSetText(text string, cursor int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cursor = clamp(cursor, 0, len([]rune(text)))
	if string(s.text) == text && s.cursor == cursor && s.selEnd == cursor {
		return
	}
	s.text = []rune(text)
	s.cursor = cursor
	s.selEnd = cursor
	s.forced++
}

func (s *Simulated) ForceSetSelection(start, end int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursor = clamp(start, 0, len(s.text))
	s.selEnd = clamp(end, 0, len(s.text))
}

func (s *Simulated) ReleaseFocus(reason ReleaseReason) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.text = nil
	s.cursor = 0
	s.selEnd = 0
	s.focused = false
	s.open = false
	s.req = FocusRequest{}
}

// Type enters s at the cursor, replacing the selection, the way the current
// keyboard layout allows.
func (s *Simulated) Type(ctx context.Context, str string) error {
	s.mu.Lock()
	if !s.focused {
		s.mu.Unlock()
		return nil
	}
	ins := s.filter(str)
	if len(ins) == 0 {
		s.mu.Unlock()
		return nil
	}
	s.replaceSelection(ins)
	if s.req.AutoCorrect && unicode.IsSpace(ins[len(ins)-1]) {
		s.autocorrect()
	}
	e, ok := s.snapshot()
	s.mu.Unlock()
	return s.post(ctx, e, ok)
}

// Enter types a line break when the widget is multi-line.
func (s *Simulated) Enter(ctx context.Context) error {
	return s.Type(ctx, "\n")
}

// Backspace deletes the selection or the rune before the cursor.
func (s *Simulated) Backspace(ctx context.Context) error {
	s.mu.Lock()
	if !s.focused {
		s.mu.Unlock()
		return nil
	}
	lo, hi := s.selection()
	if lo == hi {
		if lo == 0 {
			s.mu.Unlock()
			return nil
		}
		lo--
	}
	s.text = append(s.text[:lo:lo], s.text[hi:]...)
	s.cursor, s.selEnd = lo, lo
	e, ok := s.snapshot()
	s.mu.Unlock()
	return s.post(ctx, e, ok)
}

// Dismiss closes the keyboard without telling the application, like the
// system back button does. The binding stays until the host notices.
func (s *Simulated) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}

// Open reports whether the keyboard is on screen.
func (s *Simulated) Open() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.open
}

// VisibleHeight returns the screen height left above the keyboard.
func (s *Simulated) VisibleHeight(screenHeight int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.open {
		return screenHeight
	}
	return maxInt(screenHeight-s.KeyboardHeight, 0)
}

// State returns the native text, cursor, and selection end.
func (s *Simulated) State() (text string, cursor, selEnd int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.text), s.cursor, s.selEnd
}

// Request returns the configuration of the current focus.
func (s *Simulated) Request() FocusRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.req
}

// ForcedCount returns how many ForceSetText calls changed the text.
func (s *Simulated) ForcedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.forced
}

func (s *Simulated) filter(str string) []rune {
	var out []rune
	for _, r := range str {
		switch {
		case r == '\n' || r == '\r':
			if !s.req.Multiline {
				continue
			}
		case s.req.Kind == KindNumeric:
			if !unicode.IsDigit(r) {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}

func (s *Simulated) selection() (lo, hi int) {
	lo, hi = s.cursor, s.selEnd
	if lo > hi {
		lo, hi = hi, lo
	}
	return lo, hi
}

func (s *Simulated) replaceSelection(ins []rune) {
	lo, hi := s.selection()
	next := make([]rune, 0, len(s.text)-(hi-lo)+len(ins))
	next = append(next, s.text[:lo]...)
	next = append(next, ins...)
	next = append(next, s.text[hi:]...)
	s.text = next
	s.cursor = lo + len(ins)
	s.selEnd = s.cursor
}

// autocorrect replaces the word that ends right before the typed separator.
func (s *Simulated) autocorrect() {
	end := s.cursor - 1
	start := end
	for start > 0 && !unicode.IsSpace(s.text[start-1]) {
		start--
	}
	if start == end {
		return
	}
	word := string(s.text[start:end])
	fix, ok := s.Corrections[strings.ToLower(word)]
	if !ok {
		return
	}
	repl := []rune(fix)
	next := make([]rune, 0, len(s.text)+len(repl))
	next = append(next, s.text[:start]...)
	next = append(next, repl...)
	next = append(next, s.text[end:]...)
	s.text = next
	s.cursor += len(repl) - (end - start)
	s.selEnd = s.cursor
}

func (s *Simulated) snapshot() (Edit, bool) {
	if !s.focused || s.out == nil {
		return Edit{}, false
	}
	return Edit{
		WidgetID: s.req.WidgetID,
		Epoch:    s.req.Epoch,
		Text:     string(s.text),
		Cursor:   s.cursor,
		SelEnd:   s.selEnd,
	}, true
}

func (s *Simulated) post(ctx context.Context, e Edit, ok bool) error {
	if !ok {
		return nil
	}
	s.mu.Lock()
	out := s.out
	s.mu.Unlock()
	return out.Post(ctx, e)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
