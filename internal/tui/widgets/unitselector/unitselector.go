package unitselector

import (
    "github.com/charmbracelet/lipgloss"
    "unitval/internal/tui/state"
    "unitval/internal/tui/util"
)

// Units lists the selectable units in display order.
var Units = []state.Unit{state.Percent, state.Pixel}

type UnitSelector struct {
    pal     util.Palette
    noColor bool
}

func NewUnitSelector(pal util.Palette, noColor bool) UnitSelector {
    return UnitSelector{pal: pal, noColor: noColor}
}

// View renders the two mutually exclusive unit buttons; the active one is
// derived from s.Unit.
func (u UnitSelector) View(s state.UIState) string {
    focused := s.Focus == state.FocusUnit
    parts := make([]string, 0, len(Units))
    for _, unit := range Units {
        parts = append(parts, u.button(unit.Suffix(), unit == s.Unit, focused))
    }
    if u.noColor {
        out := parts[0] + "|" + parts[1]
        if focused {
            return ">" + out + "<"
        }
        return " " + out + " "
    }
    return lipgloss.JoinHorizontal(lipgloss.Center, parts...)
}

func (u UnitSelector) button(label string, active, focused bool) string {
    if u.noColor {
        if active {
            return "[" + label + "]"
        }
        return " " + label + " "
    }
    st := lipgloss.NewStyle().Width(6).Align(lipgloss.Center).Background(u.pal.Panel).Foreground(u.pal.Muted)
    if active {
        st = st.Background(u.pal.Active).Foreground(u.pal.Text)
        if focused {
            st = st.Bold(true).Underline(true)
        }
    }
    return st.Render(label)
}

// Cycle returns the unit delta steps away from cur, wrapping around.
func Cycle(cur state.Unit, delta int) state.Unit {
    n := len(Units)
    i := 0
    for j, unit := range Units {
        if unit == cur {
            i = j
        }
    }
    return Units[((i+delta)%n+n)%n]
}
