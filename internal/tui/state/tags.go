package state

// TagKind enumerates the status chips shown under the control.
type TagKind int

const (
    // Stable ordering for display: Unit, Committed, Pending, Invalid, Max, Min
    UNIT TagKind = iota
    COMMITTED
    PENDING
    INVALID
    AT_MAX
    AT_MIN
)

// Tag represents a single status chip. Value carries the committed number
// for COMMITTED and is 0 otherwise; Text carries the unit suffix for UNIT.
type Tag struct {
    Kind  TagKind
    Value float64
    Text  string
}
