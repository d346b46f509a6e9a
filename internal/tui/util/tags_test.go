package util

import (
    "testing"

    "unitval/internal/tui/state"
)

func findKind(tags []state.Tag, k state.TagKind) (idx int, ok bool) {
    for i, t := range tags {
        if t.Kind == k {
            return i, true
        }
    }
    return -1, false
}

func TestPendingAndInvalidWhileTyping(t *testing.T) {
    s := state.New(state.Percent, 12.5)
    s, _ = state.Dispatch(s, state.TextChangeAction("ab"))

    tags := ComputeTags(s)
    if _, ok := findKind(tags, state.PENDING); !ok {
        t.Fatalf("expected PENDING tag present")
    }
    if _, ok := findKind(tags, state.INVALID); !ok {
        t.Fatalf("expected INVALID tag present")
    }
    idx, ok := findKind(tags, state.COMMITTED)
    if !ok || tags[idx].Value != 12.5 {
        t.Fatalf("expected COMMITTED 12.5, got %+v", tags)
    }
}

func TestBoundsAreExclusive(t *testing.T) {
    tags := ComputeTags(state.New(state.Pixel, 100))
    if _, ok := findKind(tags, state.AT_MAX); !ok {
        t.Fatalf("expected AT_MAX at 100")
    }
    if _, ok := findKind(tags, state.AT_MIN); ok {
        t.Fatalf("did not expect AT_MIN at 100")
    }

    tags = ComputeTags(state.New(state.Pixel, 0))
    if _, ok := findKind(tags, state.AT_MIN); !ok {
        t.Fatalf("expected AT_MIN at 0")
    }
    if _, ok := findKind(tags, state.PENDING); ok {
        t.Fatalf("did not expect PENDING on a fresh state")
    }
}

func TestStableOrder(t *testing.T) {
    s := state.New(state.Percent, 0)
    s, _ = state.Dispatch(s, state.TextChangeAction("x"))
    tags := ComputeTags(s)
    // Expected order: UNIT, COMMITTED, PENDING, INVALID, AT_MIN
    order := []state.TagKind{state.UNIT, state.COMMITTED, state.PENDING, state.INVALID, state.AT_MIN}
    if len(tags) != len(order) {
        t.Fatalf("expected %d tags, got %d", len(order), len(tags))
    }
    for i, k := range order {
        if tags[i].Kind != k {
            t.Fatalf("tag %d is %v, want %v", i, tags[i].Kind, k)
        }
    }
}

func TestPendingStaysAfterSanitize(t *testing.T) {
    s := state.New(state.Percent, 7)
    s, _ = state.Dispatch(s, state.TextChangeAction("abc12.3xyz"))
    s, _ = state.Dispatch(s, state.CommitAction)
    if s.Text != "12.3" || s.Committed != 7 {
        t.Fatalf("expected sanitized 12.3 over committed 7, got %q/%v", s.Text, s.Committed)
    }
    if _, ok := findKind(ComputeTags(s), state.PENDING); !ok {
        t.Fatalf("expected PENDING while sanitized text is not committed")
    }

    s, _ = state.Dispatch(s, state.TextChangeAction("12.3 "))
    s, _ = state.Dispatch(s, state.CommitAction)
    if _, ok := findKind(ComputeTags(s), state.PENDING); ok {
        t.Fatalf("did not expect PENDING once 12.3 is committed")
    }
}
