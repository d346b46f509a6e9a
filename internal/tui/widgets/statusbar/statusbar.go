package statusbar

import (
    "fmt"
    "strings"

    "unitval/internal/tui/state"
)

type StatusBar struct{}

func NewStatusBar() StatusBar { return StatusBar{} }

// View composes a concise status line reflecting key UI state.
func (StatusBar) View(s state.UIState) string {
    focus := fmt.Sprintf("[%s]", strings.ToUpper(s.Focus.String()))
    unit := "Unit: " + s.Unit.Suffix()
    value := "Value: " + s.Label()

    parts := []string{focus, unit, value}
    if s.Width > 0 {
        parts = append(parts, fmt.Sprintf("W:%d", s.Width))
    }
    if s.Notice != "" {
        parts = append(parts, s.Notice)
    }
    return strings.Join(parts, "  ")
}

// Notice describes an outcome in a few words, or "" when there is nothing
// worth telling the user.
func Notice(out state.Outcome, u state.Unit) string {
    var msg string
    switch out.Kind {
    case state.CLAMPED:
        msg = "at minimum 0"
    case state.CAPPED:
        msg = fmt.Sprintf("max %s, kept %s", state.FormatValue(state.Ceiling), out.To)
    case state.REVERTED:
        msg = fmt.Sprintf("%q out of range, reverted to %s", out.From, out.To)
    case state.SANITIZED:
        msg = fmt.Sprintf("%q is not a number, cleaned to %q", out.From, out.To)
    case state.ACCEPTED:
        msg = "committed " + out.To + u.Suffix()
    case state.UNIT_CHANGED:
        msg = "unit " + u.String()
    }
    if out.Snapped {
        if msg != "" {
            msg += "; "
        }
        msg += "percent capped at 100"
    }
    return msg
}
