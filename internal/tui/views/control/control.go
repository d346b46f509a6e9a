package control

import (
    "strings"

    "github.com/charmbracelet/lipgloss"
    "unitval/internal/tui/state"
    "unitval/internal/tui/util"
    chips "unitval/internal/tui/widgets/tagchips"
    "unitval/internal/tui/widgets/editor"
    "unitval/internal/tui/widgets/unitselector"
)

const labelWidth = 7

// Panel composes the unit row, the value row and the tag chips.
type Panel struct {
    pal     util.Palette
    noColor bool
    units   unitselector.UnitSelector
    editor  editor.Editor
}

func NewPanel(pal util.Palette, noColor bool) Panel {
    return Panel{
        pal:     pal,
        noColor: noColor,
        units:   unitselector.NewUnitSelector(pal, noColor),
        editor:  editor.NewEditor(pal, noColor),
    }
}

// View renders the control. input is the rendered text input.
func (p Panel) View(s state.UIState, input string) string {
    rows := []string{
        p.row("Unit", p.units.View(s)),
        p.row("Value", p.editor.View(s, input)),
        "",
        chips.View(util.ComputeTags(s), p.noColor),
    }
    body := strings.Join(rows, "\n")
    if p.noColor {
        return body
    }
    return lipgloss.NewStyle().
        Border(lipgloss.RoundedBorder()).
        BorderForeground(p.pal.Active).
        Padding(0, 1).
        Render(body)
}

func (p Panel) row(label, content string) string {
    l := label + strings.Repeat(" ", max(0, labelWidth-len(label)))
    if !p.noColor {
        l = lipgloss.NewStyle().Width(labelWidth).Foreground(p.pal.Muted).Render(label)
    }
    return lipgloss.JoinHorizontal(lipgloss.Center, l, content)
}
