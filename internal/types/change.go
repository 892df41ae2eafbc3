//nolint:revive // types is a standard Go package name pattern
package types

// Op tags a line in a diff.
type Op int

const (
	// OpEqual is a line present in both snapshots
	OpEqual Op = iota
	// OpInsert is a line only in the new snapshot
	OpInsert
	// OpDelete is a line only in the old snapshot
	OpDelete
)

func (o Op) String() string {
	switch o {
	case OpInsert:
		return "insert"
	case OpDelete:
		return "delete"
	default:
		return "equal"
	}
}

// Change is one line of a line-level diff. Text keeps its trailing newline
// when the source line had one.
type Change struct {
	Op   Op
	Text string
}
