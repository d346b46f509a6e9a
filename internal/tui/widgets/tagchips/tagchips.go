package tagchips

import (
    "fmt"
    "os"
    "strings"

    "github.com/charmbracelet/lipgloss"
    "unitval/internal/tui/state"
    "unitval/internal/tui/util"
)

// View renders status tags in a stable order using colored chips when
// possible and ASCII fallbacks when color is disabled or not desired.
func View(tags []state.Tag, noColor bool) string {
    if len(tags) == 0 {
        return ""
    }
    // Honor NO_COLOR env var in addition to explicit param
    if !noColor && os.Getenv("NO_COLOR") != "" {
        noColor = true
    }

    pal := util.DefaultPalette()
    parts := make([]string, 0, len(tags))
    for _, t := range tags {
        parts = append(parts, renderChip(t, pal, noColor))
    }
    return strings.Join(parts, " ")
}

func renderChip(t state.Tag, pal util.Palette, noColor bool) string {
    label := chipLabel(t)
    if noColor {
        return fmt.Sprintf("[%s]", label)
    }
    return chipStyle(t, pal).Render(label)
}

func chipLabel(t state.Tag) string {
    switch t.Kind {
    case state.UNIT:
        return t.Text
    case state.COMMITTED:
        return "Committed " + state.FormatValue(t.Value)
    case state.PENDING:
        return "Pending"
    case state.INVALID:
        return "Invalid"
    case state.AT_MAX:
        return "Max"
    case state.AT_MIN:
        return "Min"
    default:
        return "Tag"
    }
}

func chipStyle(t state.Tag, pal util.Palette) lipgloss.Style {
    base := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(pal.Text)
    switch t.Kind {
    case state.UNIT:
        return base.Background(pal.Primary)
    case state.COMMITTED:
        return base.Background(pal.Success)
    case state.PENDING:
        return base.Background(pal.Warning).Foreground(lipgloss.Color("#111111"))
    case state.INVALID:
        return base.Background(pal.Danger)
    default:
        return base.Background(pal.Active)
    }
}
