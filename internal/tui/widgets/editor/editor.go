package editor

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "unitval/internal/tui/state"
    "unitval/internal/tui/util"
)

type Editor struct {
    pal     util.Palette
    noColor bool
}

func NewEditor(pal util.Palette, noColor bool) Editor { return Editor{pal: pal, noColor: noColor} }

// View renders the value row: decrement button, the input, increment button.
// input is the already rendered text input.
func (e Editor) View(s state.UIState, input string) string {
    minus := e.button("−", s.Focus == state.FocusDecrease)
    plus := e.button("+", s.Focus == state.FocusIncrease)
    if e.noColor {
        box := "[" + input + "]"
        if s.Focus == state.FocusInput {
            box = "{" + input + "}"
        }
        return strings.Join([]string{minus, box, plus}, " ")
    }
    field := lipgloss.NewStyle().Width(8).Align(lipgloss.Center).Background(e.pal.Panel).Foreground(e.pal.Text)
    if s.Focus == state.FocusInput {
        field = field.Background(lipgloss.Color("#2A2A2A"))
    }
    return lipgloss.JoinHorizontal(lipgloss.Center, minus, field.Render(input), plus)
}

func (e Editor) button(label string, focused bool) string {
    if e.noColor {
        if focused {
            return ">" + label + "<"
        }
        return " " + label + " "
    }
    st := lipgloss.NewStyle().Padding(0, 1).Background(e.pal.Panel).Foreground(e.pal.Muted)
    if focused {
        st = st.Background(e.pal.Active).Foreground(e.pal.Text).Bold(true)
    }
    return st.Render(label)
}
