package state

import (
    "errors"
    "fmt"
    "strings"
)

// ActionKind enumerates the triggers the editor reacts to.
type ActionKind int

const (
    SET_UNIT ActionKind = iota
    DECREASE
    INCREASE
    TEXT_CHANGE
    COMMIT
)

var ErrUnknownAction = errors.New("unknown action")

func (k ActionKind) String() string {
    switch k {
    case SET_UNIT:
        return "unit"
    case DECREASE:
        return "dec"
    case INCREASE:
        return "inc"
    case TEXT_CHANGE:
        return "type"
    case COMMIT:
        return "commit"
    default:
        return "?"
    }
}

// Action is one user trigger. Unit is read by SET_UNIT and Text by TEXT_CHANGE.
type Action struct {
    Kind ActionKind
    Unit Unit
    Text string
}

func SetUnitAction(u Unit) Action { return Action{Kind: SET_UNIT, Unit: u} }
func TextChangeAction(raw string) Action { return Action{Kind: TEXT_CHANGE, Text: raw} }

var (
    DecreaseAction = Action{Kind: DECREASE}
    IncreaseAction = Action{Kind: INCREASE}
    CommitAction   = Action{Kind: COMMIT}
)

// String renders the action in the same form ParseAction reads.
func (a Action) String() string {
    switch a.Kind {
    case SET_UNIT:
        return "unit " + a.Unit.Suffix()
    case TEXT_CHANGE:
        return "type " + a.Text
    default:
        return a.Kind.String()
    }
}

// ParseAction reads a script line such as "inc", "unit px" or "type 12,5".
// Everything after "type " is kept verbatim, spaces included.
func ParseAction(line string) (Action, error) {
    line = strings.TrimRight(line, "\r\n")
    verb, arg, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
    switch strings.ToLower(verb) {
    case "inc", "increase", "+":
        return IncreaseAction, nil
    case "dec", "decrease", "-":
        return DecreaseAction, nil
    case "commit", "blur":
        return CommitAction, nil
    case "type", "text":
        return TextChangeAction(arg), nil
    case "unit":
        u, err := ParseUnit(arg)
        if err != nil {
            return Action{}, err
        }
        return SetUnitAction(u), nil
    }
    return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, line)
}
