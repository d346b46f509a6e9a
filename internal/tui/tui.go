package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"unitval/internal/config"
	"unitval/internal/logging"
	"unitval/internal/tui/keys"
	"unitval/internal/tui/state"
	"unitval/internal/tui/util"
	"unitval/internal/tui/views/control"
	"unitval/internal/tui/widgets/diff"
	"unitval/internal/tui/widgets/helpoverlay"
	"unitval/internal/tui/widgets/statusbar"
	"unitval/internal/tui/widgets/unitselector"
)

// Result is what the user left the editor with.
type Result struct {
	Unit      state.Unit
	Value     float64 // last committed value
	Text      string  // displayed text at exit
	Cancelled bool
}

// Label renders the result like "12.5%".
func (r Result) Label() string {
	return state.FormatValue(r.Value) + r.Unit.Suffix()
}

// Run shows the value editor until the user quits.
func Run(opts config.Options, log zerolog.Logger) (Result, error) {
	m := newModel(opts, log)
	var popts []tea.ProgramOption
	if opts.AltScreen {
		popts = append(popts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(m, popts...).Run()
	if err != nil {
		return Result{}, fmt.Errorf("run editor: %w", err)
	}
	return final.(model).result(), nil
}

// ===== Model =====

type model struct {
	st    state.UIState
	input textinput.Model

	keys    keys.KeyMap
	help    help.Model
	panel   control.Panel
	status  statusbar.StatusBar
	overlay helpoverlay.HelpOverlay
	history history

	noColor     bool
	showHelp    bool
	showHistory bool
	cancelled   bool

	log  zerolog.Logger
	copy func(string) error
}

func newModel(opts config.Options, log zerolog.Logger) model {
	noColor := util.NoColor(opts.NoColor)
	pal := util.DefaultPalette()
	km := keys.Default()

	ti := textinput.New()
	ti.Prompt = ""
	ti.Width = 8

	m := model{
		st:      opts.Initial(),
		input:   ti,
		keys:    km,
		help:    help.New(),
		panel:   control.NewPanel(pal, noColor),
		status:  statusbar.NewStatusBar(),
		overlay: helpoverlay.NewHelpOverlay(km),
		history: newHistory(50),
		noColor: noColor,
		log:     log,
		copy:    clipboard.WriteAll,
	}
	m.input.SetValue(m.st.Text)
	if m.st.Focus == state.FocusInput {
		m.input.Focus()
	}
	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

// Update handles all TUI interactions.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.st.Width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQuit) {
			m.cancelled = true
			return m, tea.Quit
		}
		if m.st.Focus == state.FocusInput {
			return m.updateInput(msg)
		}
		return m.updateControls(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// updateInput handles keys while the text input has focus. Everything that
// is not navigation goes to the input and is reported as a text change.
func (m model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Next), key.Matches(msg, m.keys.Leave):
		return m, m.moveFocus(state.FocusIncrease)
	case key.Matches(msg, m.keys.Prev), key.Matches(msg, m.keys.Cancel):
		return m, m.moveFocus(state.FocusDecrease)
	case msg.Type == tea.KeyUp:
		// same as clicking +: the input loses focus first
		cmd := m.moveFocus(state.FocusIncrease)
		m.dispatch(state.IncreaseAction)
		return m, cmd
	case msg.Type == tea.KeyDown:
		cmd := m.moveFocus(state.FocusDecrease)
		m.dispatch(state.DecreaseAction)
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.st.Text {
		m.dispatch(state.TextChangeAction(v))
	}
	return m, cmd
}

func (m model) updateControls(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		return m, m.moveFocus(m.st.Focus.Step(1))
	case key.Matches(msg, m.keys.Prev):
		return m, m.moveFocus(m.st.Focus.Step(-1))
	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
	case key.Matches(msg, m.keys.History):
		m.showHistory = !m.showHistory
	case key.Matches(msg, m.keys.Copy):
		m.copyValue()
	case key.Matches(msg, m.keys.Percent):
		m.dispatch(state.SetUnitAction(state.Percent))
	case key.Matches(msg, m.keys.Pixel):
		m.dispatch(state.SetUnitAction(state.Pixel))
	case key.Matches(msg, m.keys.Increase):
		m.dispatch(state.IncreaseAction)
	case key.Matches(msg, m.keys.Decrease):
		m.dispatch(state.DecreaseAction)
	case key.Matches(msg, m.keys.Left):
		if m.st.Focus == state.FocusUnit {
			m.dispatch(state.SetUnitAction(unitselector.Cycle(m.st.Unit, -1)))
			return m, nil
		}
		return m, m.moveFocus(m.st.Focus - 1)
	case key.Matches(msg, m.keys.Right):
		if m.st.Focus == state.FocusUnit {
			m.dispatch(state.SetUnitAction(unitselector.Cycle(m.st.Unit, 1)))
			return m, nil
		}
		if m.st.Focus < state.FocusIncrease {
			return m, m.moveFocus(m.st.Focus + 1)
		}
	case key.Matches(msg, m.keys.Activate):
		switch m.st.Focus {
		case state.FocusUnit:
			m.dispatch(state.SetUnitAction(unitselector.Cycle(m.st.Unit, 1)))
		case state.FocusDecrease:
			m.dispatch(state.DecreaseAction)
		case state.FocusIncrease:
			m.dispatch(state.IncreaseAction)
		}
	default:
		switch msg.String() {
		case "pgup":
			m.history.scroll(-5)
		case "pgdown":
			m.history.scroll(5)
		}
	}
	return m, nil
}

// dispatch runs a through the state machine and mirrors the result into the
// text input, the notice line, the history and the log.
func (m *model) dispatch(a state.Action) {
	var out state.Outcome
	m.st, out = state.Dispatch(m.st, a)
	m.record(out)
}

func (m *model) record(out state.Outcome) {
	logging.Outcome(m.log, m.st, out)
	m.history.add(m.st, out)
	if out.Kind != state.UNCHANGED || out.Snapped {
		m.st.Notice = m.notice(out)
	}
	if m.input.Value() != m.st.Text {
		m.input.SetValue(m.st.Text)
	}
}

func (m model) notice(out state.Outcome) string {
	n := statusbar.Notice(out, m.st.Unit)
	if out.Kind == state.SANITIZED || out.Kind == state.REVERTED {
		n += "  " + diff.Inline(out.From, out.To, m.noColor)
	}
	return n
}

// moveFocus changes focus; leaving the input commits it.
func (m *model) moveFocus(f state.Focus) tea.Cmd {
	if f < state.FocusUnit || f > state.FocusIncrease {
		return nil
	}
	prev := m.st.Focus
	var out state.Outcome
	m.st, out = state.MoveFocus(m.st, f)
	if out.Kind != state.UNCHANGED || out.Snapped {
		m.record(out)
	}

	switch {
	case prev == state.FocusInput && f != state.FocusInput:
		m.input.Blur()
	case prev != state.FocusInput && f == state.FocusInput:
		m.input.CursorEnd()
		return m.input.Focus()
	}
	return nil
}

func (m *model) copyValue() {
	label := m.st.Label()
	if err := m.copy(label); err != nil {
		m.log.Warn().Err(err).Msg("clipboard")
		m.st.Notice = "copy failed: " + err.Error()
		return
	}
	m.st.Notice = "copied " + label
}

func (m model) result() Result {
	return Result{
		Unit:      m.st.Unit,
		Value:     m.st.Committed,
		Text:      m.st.Text,
		Cancelled: m.cancelled,
	}
}

// ===== View =====

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	faintStyle = lipgloss.NewStyle().Faint(true)
)

func (m model) View() string {
	var b strings.Builder
	title := "Value editor"
	if !m.noColor {
		title = titleStyle.Render(title)
	}
	b.WriteString(title + "\n\n")
	b.WriteString(m.panel.View(m.st, m.input.View()) + "\n\n")

	status := m.status.View(m.st)
	if !m.noColor {
		status = faintStyle.Render(status)
	}
	b.WriteString(status + "\n")

	if m.showHistory {
		b.WriteString("\n" + m.history.View(8) + "\n")
	}
	if m.showHelp {
		b.WriteString("\n" + m.overlay.View(m.st))
	} else {
		b.WriteString("\n" + m.help.View(m.keys) + "\n")
	}
	return b.String()
}
