package state

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncreaseStepsEveryTenthUpToCeiling(t *testing.T) {
	for i := 0; i <= 999; i++ {
		v := float64(i) / 10
		s := New(Percent, 0)
		s, _ = Dispatch(s, TextChangeAction(FormatValue(v)))

		s, out := Dispatch(s, IncreaseAction)
		want := Round1(v + Step)
		require.Equal(t, FormatValue(want), s.Text, "v=%v", v)
		require.Equal(t, want, s.Committed, "v=%v", v)
		require.Equal(t, STEPPED, out.Kind)
	}
}

func TestIncreaseAtCeilingIsNoop(t *testing.T) {
	for _, u := range []Unit{Percent, Pixel} {
		s := New(u, 100)
		s, out := Dispatch(s, IncreaseAction)
		assert.Equal(t, "100", s.Text, u.String())
		assert.Equal(t, 100.0, s.Committed, u.String())
		assert.Equal(t, CAPPED, out.Kind)
	}
}

func TestDecreaseAtFloorIsNoop(t *testing.T) {
	s := New(Percent, 0)
	s, _ = Dispatch(s, DecreaseAction)
	assert.Equal(t, "0", s.Text)
	assert.Equal(t, 0.0, s.Committed)
}

func TestDecreaseNeverNegative(t *testing.T) {
	inputs := []string{"", "abc", "-5", "0.05", "0.1", "-Infinity", "Infinity", ".", "-0", "1e-9", "3,7"}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			s := New(Pixel, 0)
			s, _ = Dispatch(s, TextChangeAction(in))
			s, _ = Dispatch(s, DecreaseAction)
			assert.GreaterOrEqual(t, s.Committed, 0.0)
			assert.False(t, math.IsInf(s.Committed, 0))
			assert.Equal(t, FormatValue(s.Committed), s.Text)
		})
	}
}

func TestCommitOutcomes(t *testing.T) {
	tests := []struct {
		name          string
		unit          Unit
		start         float64
		raw           string
		wantText      string
		wantCommitted float64
		wantKind      OutcomeKind
	}{
		{name: "above ceiling reverts", unit: Pixel, start: 30, raw: "150", wantText: "30", wantCommitted: 30, wantKind: REVERTED},
		{name: "comma decimal", unit: Percent, start: 0, raw: "12,5", wantText: "12.5", wantCommitted: 12.5, wantKind: ACCEPTED},
		{name: "garbage sanitized", unit: Percent, start: 7, raw: "abc12.3xyz", wantText: "12.3", wantCommitted: 7, wantKind: SANITIZED},
		{name: "second dot group dropped", unit: Pixel, start: 7, raw: "x1.2.3", wantText: "1.2", wantCommitted: 7, wantKind: SANITIZED},
		{name: "negative accepted", unit: Percent, start: 5, raw: "-3", wantText: "-3", wantCommitted: -3, wantKind: ACCEPTED},
		{name: "exactly ceiling", unit: Pixel, start: 1, raw: "100", wantText: "100", wantCommitted: 100, wantKind: ACCEPTED},
		{name: "leading dot", unit: Percent, start: 1, raw: ".5", wantText: ".5", wantCommitted: 0.5, wantKind: ACCEPTED},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(tt.unit, tt.start)
			s, _ = Dispatch(s, TextChangeAction(tt.raw))
			s, out := Dispatch(s, CommitAction)
			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, tt.wantText, s.Text)
			assert.Equal(t, tt.wantCommitted, s.Committed)
		})
	}
}

func TestPercentSnapsWhileTyping(t *testing.T) {
	s := New(Percent, 12)
	s, out := Dispatch(s, TextChangeAction("101"))
	require.True(t, out.Snapped)
	assert.Equal(t, "100", s.Text)
	assert.Equal(t, 100.0, s.Committed)
	assert.False(t, s.Dirty)
}

func TestPixelTypingNotSnappedButIncreaseCapped(t *testing.T) {
	s := New(Pixel, 12)
	s, out := Dispatch(s, TextChangeAction("500"))
	require.False(t, out.Snapped)
	assert.Equal(t, "500", s.Text)
	assert.Equal(t, 12.0, s.Committed)

	s, out = Dispatch(s, IncreaseAction)
	assert.Equal(t, CAPPED, out.Kind)
	assert.Equal(t, "12", s.Text)
	assert.Equal(t, 12.0, s.Committed)
}

func TestCommitIsIdempotent(t *testing.T) {
	for _, raw := range []string{"42", "150", "abc12.3xyz", "", "7.", "-1"} {
		t.Run(fmt.Sprintf("%q", raw), func(t *testing.T) {
			s := New(Pixel, 9)
			s, _ = Dispatch(s, TextChangeAction(raw))
			s, _ = Dispatch(s, CommitAction)
			text, committed := s.Text, s.Committed

			s, out := Dispatch(s, CommitAction)
			assert.Equal(t, UNCHANGED, out.Kind)
			assert.Equal(t, text, s.Text)
			assert.Equal(t, committed, s.Committed)
		})
	}
}

func TestReconcileDoesNotWatchCommitted(t *testing.T) {
	s := UIState{Unit: Percent, Text: "50", Committed: 300}
	s, out := Dispatch(s, SetUnitAction(Percent))
	assert.False(t, out.Snapped)
	assert.Equal(t, 300.0, s.Committed)
}

func TestIncreaseOnPositiveInfinityKeepsCommitted(t *testing.T) {
	for _, raw := range []string{"Infinity", "1e309", "+Infinity kg"} {
		t.Run(raw, func(t *testing.T) {
			s := New(Pixel, 20)
			s, _ = Dispatch(s, TextChangeAction(raw))
			s, out := Dispatch(s, IncreaseAction)
			assert.Equal(t, CAPPED, out.Kind)
			assert.Equal(t, "20", s.Text)
			assert.Equal(t, 20.0, s.Committed)
			assert.False(t, s.Dirty)
		})
	}
}

func TestIncreaseOnNegativeInfinityStartsFromZero(t *testing.T) {
	s := New(Pixel, 20)
	s, _ = Dispatch(s, TextChangeAction("-Infinity"))
	s, out := Dispatch(s, IncreaseAction)
	assert.Equal(t, STEPPED, out.Kind)
	assert.Equal(t, "0.1", s.Text)
	assert.Equal(t, 0.1, s.Committed)
}
