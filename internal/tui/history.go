package tui

import (
	"fmt"
	"strings"

	"unitval/internal/tui/state"
)

// history keeps the most recent outcomes for the history pane.
type history struct {
	lines  []string
	limit  int
	offset int // lines scrolled up from the bottom
}

func newHistory(limit int) history {
	return history{limit: limit}
}

func (h *history) add(s state.UIState, out state.Outcome) {
	if out.Kind == state.UNCHANGED && !out.Snapped {
		return
	}
	line := fmt.Sprintf("%-7s %-9s %q → %q  [%s]", out.Action, out.Kind, out.From, out.To, s.Label())
	if out.Snapped {
		line += " snapped"
	}
	h.lines = append(h.lines, line)
	if len(h.lines) > h.limit {
		h.lines = h.lines[len(h.lines)-h.limit:]
	}
	h.offset = 0
}

func (h *history) scroll(delta int) {
	h.offset -= delta
	if last := len(h.lines) - 1; h.offset > last {
		h.offset = last
	}
	if h.offset < 0 {
		h.offset = 0
	}
}

// View renders at most height lines, newest last.
func (h history) View(height int) string {
	var b strings.Builder
	b.WriteString(faintStyle.Render(fmt.Sprintf("History (%d)  pgup/pgdown scroll", len(h.lines))) + "\n")
	if len(h.lines) == 0 {
		b.WriteString("  (empty)")
		return b.String()
	}
	end := len(h.lines) - h.offset
	start := end - height
	if start < 0 {
		start = 0
	}
	for _, l := range h.lines[start:end] {
		b.WriteString("  " + l + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
