//nolint:revive // types is a standard Go package name pattern
package types

// Decision is the operator's answer to a detected change.
type Decision int

const (
	// DecisionOverwrite persists the new snapshot
	DecisionOverwrite Decision = iota + 1
	// DecisionIgnore keeps the old snapshot and continues
	DecisionIgnore
	// DecisionQuit stops the poll loop
	DecisionQuit
)

func (d Decision) String() string {
	switch d {
	case DecisionOverwrite:
		return "overwrite"
	case DecisionIgnore:
		return "ignore"
	case DecisionQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the result of one fetch-compare-decide cycle.
type Outcome int

const (
	// OutcomeUnchanged means the fetched snapshot matched the stored one byte for byte
	OutcomeUnchanged Outcome = iota + 1
	// OutcomeOverwritten means the operator accepted and the snapshot was saved
	OutcomeOverwritten
	// OutcomeIgnored means the operator declined the change
	OutcomeIgnored
	// OutcomeQuit means the operator asked to stop
	OutcomeQuit
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeOverwritten:
		return "overwritten"
	case OutcomeIgnored:
		return "ignored"
	case OutcomeQuit:
		return "quit"
	default:
		return "unknown"
	}
}
