package editor

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func plainStyle() *Style {
	return &Style{
		Box:       lipgloss.NewStyle(),
		BoxFocus:  lipgloss.NewStyle(),
		Text:      lipgloss.NewStyle(),
		Selection: lipgloss.NewStyle().Transform(strings.ToUpper),
		Cursor:    lipgloss.NewStyle().Transform(func(s string) string { return "[" + s + "]" }),
	}
}

func TestView_CursorAndSelection(t *testing.T) {
	ta := New(Config{Text: "ab cd", Width: 10, Height: 1, Style: plainStyle()})

	if got := ta.View(); got != "ab cd" {
		t.Fatalf("blurred view: got %q, want %q", got, "ab cd")
	}

	ta.Focus()
	ta.MoveTo(1)
	if got := ta.View(); got != "a[b] cd" {
		t.Fatalf("cursor view: got %q, want %q", got, "a[b] cd")
	}

	ta.SetSelection(0, 2)
	if got := ta.View(); got != "AB[ ]cd" {
		t.Fatalf("selection view: got %q, want %q", got, "AB[ ]cd")
	}

	ta.End(false)
	if got := ta.View(); got != "ab cd[ ]" {
		t.Fatalf("cursor at end: got %q, want %q", got, "ab cd[ ]")
	}
}

func TestView_ShowsVisibleWindow(t *testing.T) {
	ta := New(Config{
		Text:      "one\ntwo\nthree\nfour",
		Width:     10,
		Height:    2,
		Multiline: true,
		Style:     plainStyle(),
	})
	ta.MoveTo(ta.Len())

	rows := strings.Split(ta.View(), "\n")
	if len(rows) != 2 {
		t.Fatalf("rows: got %d, want 2", len(rows))
	}
	if got := strings.TrimRight(rows[0], " "); got != "three" {
		t.Fatalf("row 0: got %q, want %q", got, "three")
	}
	if got := strings.TrimRight(rows[1], " "); got != "four" {
		t.Fatalf("row 1: got %q, want %q", got, "four")
	}
}

func TestView_PadsShortText(t *testing.T) {
	ta := New(Config{Text: "x", Width: 10, Height: 3, Multiline: true, Style: plainStyle()})

	if got := lipgloss.Height(ta.View()); got != 3 {
		t.Fatalf("view height: got %d, want 3", got)
	}
}

func TestView_DefaultStyleDrawsBorder(t *testing.T) {
	ta := New(Config{Text: "x", Width: 10, Height: 1})

	if got := lipgloss.Height(ta.View()); got != 3 {
		t.Fatalf("bordered view height: got %d, want 3", got)
	}
}

func TestView_SelectionStyledAsOneRun(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	r.SetHasDarkBackground(true)

	st := &Style{
		Box:       r.NewStyle(),
		BoxFocus:  r.NewStyle(),
		Text:      r.NewStyle(),
		Selection: r.NewStyle().Underline(true),
		Cursor:    r.NewStyle().Reverse(true),
	}
	ta := New(Config{Text: "abcd", Width: 10, Height: 1, Style: st})
	ta.SetSelection(1, 3)

	got := ta.View()
	want := st.Box.Render(st.Text.Render("a") + st.Selection.Render("bc") + st.Text.Render("d"))
	if got != want {
		t.Fatalf("styled view:\n got: %q\nwant: %q", got, want)
	}
}
