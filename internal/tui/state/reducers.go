package state

import "math"

// Step is the amount increase and decrease move the value by.
const Step = 0.1

// Ceiling is the largest value increase or commit will accept, for either unit.
const Ceiling = 100.0

// OutcomeKind tells the presentation layer what an action did.
type OutcomeKind int

const (
    UNCHANGED OutcomeKind = iota
    UNIT_CHANGED
    EDITED
    STEPPED   // increase/decrease committed a new value
    CLAMPED   // decrease hit the 0 floor
    CAPPED    // increase would pass the ceiling, text reverted
    ACCEPTED  // commit stored the parsed value
    REVERTED  // commit rejected a value above the ceiling
    SANITIZED // commit could not parse and cleaned the text
)

func (k OutcomeKind) String() string {
    switch k {
    case UNCHANGED:
        return "unchanged"
    case UNIT_CHANGED:
        return "unit"
    case EDITED:
        return "edited"
    case STEPPED:
        return "stepped"
    case CLAMPED:
        return "clamped"
    case CAPPED:
        return "capped"
    case ACCEPTED:
        return "accepted"
    case REVERTED:
        return "reverted"
    case SANITIZED:
        return "sanitized"
    default:
        return "?"
    }
}

// Outcome describes one dispatched action. From and To are the displayed
// text before the action and after the reconcile hook. Snapped reports that
// the percent ceiling rule forced the value to 100.
type Outcome struct {
    Action  Action
    Kind    OutcomeKind
    From    string
    To      string
    Snapped bool
}

// Dispatch applies a to s and then runs Reconcile when the unit or the
// displayed text changed. Committed is not part of that check.
func Dispatch(s UIState, a Action) (UIState, Outcome) {
    before := s
    var kind OutcomeKind
    switch a.Kind {
    case SET_UNIT:
        s, kind = SetUnit(s, a.Unit)
    case DECREASE:
        s, kind = Decrease(s)
    case INCREASE:
        s, kind = Increase(s)
    case TEXT_CHANGE:
        s, kind = TextChange(s, a.Text)
    case COMMIT:
        s, kind = Commit(s)
    }

    out := Outcome{Action: a, Kind: kind, From: before.Text}
    if s.Unit != before.Unit || s.Text != before.Text {
        s, out.Snapped = Reconcile(s)
    }
    out.To = s.Text
    return s, out
}

// SetUnit replaces the unit. Clamping for the new unit is left to Reconcile.
func SetUnit(s UIState, u Unit) (UIState, OutcomeKind) {
    if s.Unit == u {
        return s, UNCHANGED
    }
    s.Unit = u
    return s, UNIT_CHANGED
}

// Decrease subtracts Step from the displayed number (0 when it does not
// parse), rounds to one decimal and floors at 0. The result is committed.
func Decrease(s UIState) (UIState, OutcomeKind) {
    next := Round1(stepBase(s.Text) - Step)
    kind := STEPPED
    if next < 0 {
        next = 0
        kind = CLAMPED
    }
    return commitValue(s, next), kind
}

// Increase adds Step to the displayed number (0 when it does not parse) and
// rounds to one decimal. Past Ceiling the display falls back to the committed
// value, regardless of unit. +Inf is past Ceiling too.
func Increase(s UIState) (UIState, OutcomeKind) {
    if v, ok := ParseNumber(s.Text); !ok || !math.IsInf(v, 1) {
        next := Round1(stepBase(s.Text) + Step)
        if next <= Ceiling {
            return commitValue(s, next), STEPPED
        }
    }
    s.Text = FormatValue(s.Committed)
    s.Dirty = false
    return s, CAPPED
}

// TextChange stores raw as the displayed text after decimal separator
// normalization. Nothing is validated until Commit.
func TextChange(s UIState, raw string) (UIState, OutcomeKind) {
    text := NormalizeSeparator(raw)
    if text == s.Text {
        return s, UNCHANGED
    }
    s.Text = text
    s.Dirty = true
    return s, EDITED
}

// Commit folds the displayed text into the committed value. Unparseable text
// is sanitized in place and not re-parsed, values above Ceiling are reverted,
// anything else is accepted as typed. Committing without an edit since the
// last commit does nothing.
func Commit(s UIState) (UIState, OutcomeKind) {
    if !s.Dirty {
        return s, UNCHANGED
    }
    s.Dirty = false

    v, ok := ParseNumber(s.Text)
    switch {
    case !ok:
        s.Text = Sanitize(s.Text)
        return s, SANITIZED
    case v > Ceiling || !finite(v):
        s.Text = FormatValue(s.Committed)
        return s, REVERTED
    }
    s.Committed = v
    return s, ACCEPTED
}

// Reconcile enforces the percent range: in Percent, a displayed number above
// Ceiling is replaced by Ceiling and committed. Pixel values are left alone.
func Reconcile(s UIState) (UIState, bool) {
    if s.Unit != Percent {
        return s, false
    }
    if v, ok := ParseNumber(s.Text); !ok || v <= Ceiling {
        return s, false
    }
    s = commitValue(s, Ceiling)
    return s, true
}

func commitValue(s UIState, v float64) UIState {
    s.Text = FormatValue(v)
    s.Committed = v
    s.Dirty = false
    return s
}

// stepBase is the number increase and decrease start from. Text that does not
// parse, or parses to an infinity, starts from 0.
func stepBase(text string) float64 {
    v, ok := ParseNumber(text)
    if !ok || !finite(v) {
        return 0
    }
    return v
}
