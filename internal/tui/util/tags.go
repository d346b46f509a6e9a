package util

import "unitval/internal/tui/state"

// ComputeTags derives the status chips for s.
//
// The returned slice preserves a stable order:
//   Unit, Committed, Pending, Invalid, Max, Min
//
// Rules:
// - Unit and Committed are always present.
// - Pending marks text edited since the last commit, and text that reads as
//   a number other than the committed one (left behind by a sanitize).
// - Invalid marks text that does not start with a number; it is shown
//   whether or not the text is pending, since a sanitized text can be empty.
// - Max and Min are exclusive and reflect the committed value at 100 / 0.
func ComputeTags(s state.UIState) []state.Tag {
    tags := make([]state.Tag, 0, 5)
    tags = append(tags, state.Tag{Kind: state.UNIT, Text: s.Unit.Suffix()})
    tags = append(tags, state.Tag{Kind: state.COMMITTED, Value: s.Committed})

    v, ok := state.ParseNumber(s.Text)
    if s.Dirty || (ok && v != s.Committed) {
        tags = append(tags, state.Tag{Kind: state.PENDING})
    }
    if !ok {
        tags = append(tags, state.Tag{Kind: state.INVALID})
    }

    switch {
    case s.Committed >= state.Ceiling:
        tags = append(tags, state.Tag{Kind: state.AT_MAX})
    case s.Committed <= 0:
        tags = append(tags, state.Tag{Kind: state.AT_MIN})
    }
    return tags
}
