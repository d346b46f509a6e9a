package tui

import (
	"strings"
	"testing"

	"unitval/internal/tui/state"
)

func TestHistoryLimitAndScroll(t *testing.T) {
	h := newHistory(3)
	s := state.New(state.Percent, 0)
	for i := 0; i < 5; i++ {
		var out state.Outcome
		s, out = state.Dispatch(s, state.IncreaseAction)
		h.add(s, out)
	}
	if len(h.lines) != 3 {
		t.Fatalf("expected 3 lines kept, got %d", len(h.lines))
	}
	if !strings.Contains(h.View(1), "[0.5%]") {
		t.Fatalf("expected newest entry at the bottom:\n%s", h.View(1))
	}
	h.scroll(-1)
	if !strings.Contains(h.View(1), "[0.4%]") {
		t.Fatalf("expected scrolled entry:\n%s", h.View(1))
	}
	h.scroll(-10)
	if h.offset != 2 {
		t.Fatalf("expected offset clamped to 2, got %d", h.offset)
	}
}

func TestHistorySkipsNoops(t *testing.T) {
	h := newHistory(3)
	s := state.New(state.Percent, 0)
	_, out := state.Dispatch(s, state.CommitAction)
	h.add(s, out)
	if len(h.lines) != 0 {
		t.Fatalf("expected no entry for a no-op commit")
	}
}
