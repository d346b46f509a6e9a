package state

import (
    "errors"
    "fmt"
    "strings"
)

// Unit is the measurement unit the edited value is expressed in.
type Unit int

const (
    Percent Unit = iota
    Pixel
)

var ErrInvalidUnit = errors.New("invalid unit")

// Suffix is the short label shown next to values and on the unit buttons.
func (u Unit) Suffix() string {
    if u == Pixel {
        return "px"
    }
    return "%"
}

func (u Unit) String() string {
    if u == Pixel {
        return "pixel"
    }
    return "percent"
}

// ParseUnit accepts the long name or the suffix of a unit, case-insensitively.
func ParseUnit(s string) (Unit, error) {
    switch strings.ToLower(strings.TrimSpace(s)) {
    case "%", "percent", "pct":
        return Percent, nil
    case "px", "pixel", "pixels":
        return Pixel, nil
    }
    return Percent, fmt.Errorf("%w: %q", ErrInvalidUnit, s)
}

// Focus identifies which part of the control receives key input.
// The order matches the on-screen order and drives tab navigation.
type Focus int

const (
    FocusUnit Focus = iota
    FocusDecrease
    FocusInput
    FocusIncrease
)

const focusCount = 4

func (f Focus) String() string {
    switch f {
    case FocusUnit:
        return "unit"
    case FocusDecrease:
        return "decrease"
    case FocusInput:
        return "input"
    case FocusIncrease:
        return "increase"
    default:
        return "?"
    }
}

// UIState is the whole state of the value editor.
type UIState struct {
    // Value
    Unit Unit
    Text string // displayed text, may be invalid while typing

    // Committed is the last known-good value. It is written by the reducers
    // but never participates in change detection.
    Committed float64

    // Dirty is set when Text was edited since the last commit.
    Dirty bool

    // Presentation
    Focus  Focus
    Width  int
    Notice string
}

// New returns the initial editor state for unit u with committed value v.
func New(u Unit, v float64) UIState {
    return UIState{
        Unit:      u,
        Text:      FormatValue(v),
        Committed: v,
        Focus:     FocusInput,
    }
}

// Label renders the committed value with its unit suffix, e.g. "12.5%".
func (s UIState) Label() string {
    return FormatValue(s.Committed) + s.Unit.Suffix()
}
