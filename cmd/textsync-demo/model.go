package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/textsync/editor"
	"github.com/iw2rmb/textsync/internal/config"
	"github.com/iw2rmb/textsync/internal/logging"
	"github.com/iw2rmb/textsync/keyboard"
)

var (
	labelStyle    = lipgloss.NewStyle().Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	keyboardStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), true, false, false, false).
			BorderForeground(lipgloss.Color("240")).
			Foreground(lipgloss.Color("246"))
)

type widget struct {
	cfg  config.Widget
	area *editor.TextArea
}

type model struct {
	widgets []widget
	focus   int // -1 when nothing is focused

	bridge *keyboard.Bridge
	sim    *keyboard.Simulated
	view   *keyboard.VisibleView
	inputs chan<- keyInput

	keys hostKeys
	help help.Model

	log     *slog.Logger
	ring    *logging.Ring
	changes int

	width, height int
}

// editMsg carries a snapshot from the native widget to the UI goroutine.
type editMsg keyboard.Edit

func newModel(cfg config.Config, sim *keyboard.Simulated, inputs chan<- keyInput, log *slog.Logger, ring *logging.Ring) (*model, error) {
	m := &model{
		focus:  -1,
		sim:    sim,
		inputs: inputs,
		log:    log,
		ring:   ring,
		keys:   defaultHostKeys(),
		help:   help.New(),
	}
	m.bridge = keyboard.NewBridge(sim, keyboard.BridgeConfig{Logger: log})
	sim.Attach(m.bridge)

	m.view = &keyboard.VisibleView{Scale: 1, OnChange: m.keyboardChanged}

	for _, w := range cfg.Widgets {
		ec, err := w.EditorConfig()
		if err != nil {
			return nil, err
		}
		ec.Logger = log
		ec.Syncer = m.bridge.SyncerFor(w.ID)
		ec.OnChange = m.onChange
		m.widgets = append(m.widgets, widget{cfg: w, area: editor.New(ec)})
	}
	return m, nil
}

func (m *model) Init() tea.Cmd { return m.waitEdit() }

// waitEdit blocks a command goroutine until the native widget reports text.
func (m *model) waitEdit() tea.Cmd {
	edits := m.bridge.Edits()
	return func() tea.Msg {
		return editMsg(<-edits)
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.resize()
		m.updateVisible()
		return m, nil

	case editMsg:
		m.bridge.Deliver(keyboard.Edit(msg))
		return m, m.waitEdit()

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.click(msg.X, msg.Y)
		}
		return m, nil

	case tea.KeyMsg:
		return m, m.key(msg)
	}
	return m, nil
}

func (m *model) key(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % len(m.widgets))
		return nil
	case key.Matches(msg, m.keys.Prev):
		prev := m.focus - 1
		if prev < 0 {
			prev = len(m.widgets) - 1
		}
		m.setFocus(prev)
		return nil
	case key.Matches(msg, m.keys.Hide):
		// Closes the keyboard behind the application's back; the visible
		// area grows and the heuristic releases the binding.
		m.sim.Dismiss()
		m.updateVisible()
		return nil
	case key.Matches(msg, m.keys.Pause):
		m.blur(m.bridge.Pause)
		return nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	}

	w, ok := m.focused()
	if !ok {
		return nil
	}
	switch {
	case msg.Type == tea.KeyRunes && !msg.Paste:
		m.send(keyInput{kind: inputText, text: string(msg.Runes)})
	case msg.Type == tea.KeySpace:
		m.send(keyInput{kind: inputText, text: " "})
	case msg.Type == tea.KeyBackspace:
		m.send(keyInput{kind: inputBackspace})
	case msg.Type == tea.KeyEnter:
		m.send(keyInput{kind: inputEnter})
	default:
		// Navigation and paste edit the TextArea directly; it mirrors the
		// result to the native widget.
		return w.area.Update(msg)
	}
	return nil
}

// send queues a keystroke for the native widget without blocking the UI.
func (m *model) send(k keyInput) {
	select {
	case m.inputs <- k:
	default:
		m.log.Warn("keystroke dropped", slog.String("kind", k.kind.String()))
	}
}

func (m *model) focused() (widget, bool) {
	if m.focus < 0 || m.focus >= len(m.widgets) {
		return widget{}, false
	}
	return m.widgets[m.focus], true
}

func (m *model) setFocus(i int) {
	if w, ok := m.focused(); ok {
		w.area.Blur()
	}
	m.focus = i
	w := m.widgets[i]
	w.area.Focus()
	m.bridge.Focus(w.area)
	m.updateVisible()
}

func (m *model) blur(release func()) {
	if w, ok := m.focused(); ok {
		w.area.Blur()
	}
	m.focus = -1
	release()
	m.updateVisible()
}

func (m *model) keyboardChanged(st keyboard.State) {
	m.log.Debug("keyboard state", slog.Bool("open", st.Open), slog.Int("height", st.Height))
	if !st.Open && m.bridge.Binding().Bound() {
		m.blur(m.bridge.KeyboardHidden)
	}
}

func (m *model) updateVisible() {
	if m.height <= 0 {
		return
	}
	m.view.SizeChanged(float64(m.height), float64(m.sim.VisibleHeight(m.height)))
}

func (m *model) onChange(ev editor.ChangeEvent) {
	m.changes++
	if ev.Rejected {
		m.log.Info("edit reverted", slog.Int("lines", ev.LineCount))
	}
}

func (m *model) resize() {
	for _, w := range m.widgets {
		width := w.cfg.Width
		if avail := float64(m.width - 2); m.width > 0 && avail < width {
			width = avail
		}
		h := w.cfg.Height
		if w.cfg.PrefRows > 0 {
			h = w.cfg.PrefRows
		}
		w.area.Resize(width, h)
	}
}

// click focuses the widget under (x, y) and moves its cursor there.
func (m *model) click(x, y int) {
	top := 0
	for i, w := range m.widgets {
		// Label row, then the bordered box.
		boxTop := top + 1
		boxH := lipgloss.Height(w.area.View())
		if y > boxTop && y < boxTop+boxH-1 {
			if i != m.focus {
				m.setFocus(i)
			}
			w.area.SetCursorPosition(float64(x-1), float64(y-boxTop-1))
			c := w.area.Cursor()
			m.bridge.ForceSetSelection(w.cfg.ID, c, c)
			return
		}
		top = boxTop + boxH
	}
}

func (m *model) View() string {
	var sb strings.Builder
	for _, w := range m.widgets {
		sb.WriteString(labelStyle.Render(w.cfg.Label))
		sb.WriteByte('\n')
		sb.WriteString(w.area.View())
		sb.WriteByte('\n')
	}
	sb.WriteString(statusStyle.Render(m.status()))
	sb.WriteByte('\n')
	sb.WriteString(m.help.View(m.keys))
	if m.sim.Open() {
		sb.WriteByte('\n')
		sb.WriteString(m.keyboardPanel())
	}
	return sb.String()
}

func (m *model) status() string {
	parts := []string{fmt.Sprintf("binding: %s", m.bridge.Binding())}
	if w, ok := m.focused(); ok {
		vs := w.area.ViewportState()
		parts = append(parts, fmt.Sprintf("cursor %d line %d/%d", w.area.Cursor(), w.area.CursorLine()+1, vs.LineCount))
		if w.cfg.MaxLines > 0 {
			parts = append(parts, fmt.Sprintf("max %d", w.cfg.MaxLines))
		}
		if vs.CanScrollUp() || vs.CanScrollDown() {
			parts = append(parts, fmt.Sprintf("rows %d-%d", vs.FirstVisibleLine+1, vs.FirstVisibleLine+vs.VisibleLines))
		}
	}
	st := m.view.State()
	parts = append(parts, fmt.Sprintf("keyboard: open=%t height=%d", st.Open, st.Height))
	parts = append(parts, fmt.Sprintf("changes: %d", m.changes))
	line := strings.Join(parts, " | ")
	if m.ring != nil {
		if e, ok := m.ring.Last(); ok {
			line += "\n" + e.String()
		}
	}
	return line
}

func (m *model) keyboardPanel() string {
	req := m.sim.Request()
	text, cursor, selEnd := m.sim.State()
	rows := []string{
		fmt.Sprintf("native keyboard (%s) for %q", req.Kind, req.WidgetID),
		fmt.Sprintf("native text %q cursor %d sel %d", text, cursor, selEnd),
	}
	for len(rows) < m.sim.KeyboardHeight-1 {
		rows = append(rows, "")
	}
	return keyboardStyle.Render(strings.Join(rows, "\n"))
}
