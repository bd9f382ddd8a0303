package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	graphemeutil "github.com/iw2rmb/textsync/internal/grapheme"
)

// View renders the visible lines. The caret is drawn only while focused.
func (t *TextArea) View() string {
	t.ensureLayout()
	st := t.cfg.Style

	count := maxInt(t.visibleLineCount, 1)
	n := maxInt(t.lineCount(), 1)
	rows := make([]string, 0, count)
	for i := t.firstVisibleLine; i < t.firstVisibleLine+count; i++ {
		if i >= n {
			rows = append(rows, "")
			continue
		}
		rows = append(rows, t.renderLine(st, i))
	}

	box := st.Box
	if t.focused {
		box = st.BoxFocus
	}
	return box.Render(strings.Join(rows, "\n"))
}

type runKind uint8

const (
	runText runKind = iota
	runSelection
	runCursor
)

func (t *TextArea) renderLine(st *Style, line int) string {
	s := t.span(line)
	text := t.buf.View()
	cursor := t.buf.Cursor()
	showCursor := t.focused && line == t.cursorLine
	sel, selOK := t.buf.Selection()

	var (
		sb   strings.Builder
		run  strings.Builder
		kind runKind
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		sb.WriteString(st.styleFor(kind).Render(run.String()))
		run.Reset()
	}

	bounds := graphemeutil.Boundaries(text[s.Start:s.End])
	for j := 0; j+1 < len(bounds); j++ {
		a, b := s.Start+bounds[j], s.Start+bounds[j+1]
		k := runText
		switch {
		case showCursor && a == cursor:
			k = runCursor
		case selOK && a >= sel.Start && a < sel.End:
			k = runSelection
		}
		if k != kind || k == runCursor {
			flush()
			kind = k
		}
		run.WriteString(string(text[a:b]))
	}
	flush()

	if showCursor && cursor == s.End {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func (st *Style) styleFor(k runKind) lipgloss.Style {
	switch k {
	case runSelection:
		return st.Selection
	case runCursor:
		return st.Cursor
	default:
		return st.Text
	}
}
