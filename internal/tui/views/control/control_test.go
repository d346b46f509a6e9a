package control

import (
    "strings"
    "testing"

    "unitval/internal/tui/state"
    "unitval/internal/tui/util"
)

func TestPanelRowsNoColor(t *testing.T) {
    p := NewPanel(util.DefaultPalette(), true)
    out := p.View(state.New(state.Percent, 12.5), "12.5")
    lines := strings.Split(out, "\n")
    if len(lines) < 4 {
        t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), out)
    }
    if !strings.HasPrefix(lines[0], "Unit") || !strings.Contains(lines[0], "[%]") {
        t.Fatalf("unexpected unit row %q", lines[0])
    }
    if !strings.HasPrefix(lines[1], "Value") || !strings.Contains(lines[1], "{12.5}") {
        t.Fatalf("unexpected value row %q", lines[1])
    }
    if !strings.Contains(lines[3], "[Committed 12.5]") {
        t.Fatalf("unexpected chips row %q", lines[3])
    }
}
