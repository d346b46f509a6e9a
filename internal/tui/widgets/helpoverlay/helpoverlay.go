package helpoverlay

import (
    "fmt"
    "strings"

    "unitval/internal/tui/keys"
    "unitval/internal/tui/state"
)

type HelpOverlay struct {
    keys keys.KeyMap
}

func NewHelpOverlay(k keys.KeyMap) HelpOverlay { return HelpOverlay{keys: k} }

// View returns grouped keys help with the current focus indicated.
func (h HelpOverlay) View(s state.UIState) string {
    var b strings.Builder
    fmt.Fprintf(&b, "Help (Focus: %s)\n", s.Focus)
    for _, sec := range h.keys.Sections() {
        fmt.Fprintf(&b, "\n%s:\n", sec.Title)
        for _, kb := range sec.Bindings {
            hb := kb.Help()
            fmt.Fprintf(&b, "  %s: %s\n", hb.Key, hb.Desc)
        }
    }
    b.WriteString("\nTyping in the input is free; the value is checked when you leave it.\n")
    return b.String()
}
