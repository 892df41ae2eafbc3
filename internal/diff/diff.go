// Package diff computes and renders line-level differences between snapshots.
package diff

import (
	"strings"

	"github.com/jonathan/device-watch/internal/types"
	"github.com/pmezard/go-difflib/difflib"
)

// Lines compares old and new line by line and returns an edit script. Each
// change carries the literal line including its newline. Replaced ranges are
// emitted as deletions followed by insertions.
func Lines(oldText, newText string) []types.Change {
	a := splitLines(oldText)
	b := splitLines(newText)

	matcher := difflib.NewMatcher(a, b)
	var changes []types.Change
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			changes = appendLines(changes, types.OpEqual, a[op.I1:op.I2])
		case 'd':
			changes = appendLines(changes, types.OpDelete, a[op.I1:op.I2])
		case 'i':
			changes = appendLines(changes, types.OpInsert, b[op.J1:op.J2])
		case 'r':
			changes = appendLines(changes, types.OpDelete, a[op.I1:op.I2])
			changes = appendLines(changes, types.OpInsert, b[op.J1:op.J2])
		}
	}
	return changes
}

// Old reassembles the old text from an edit script.
func Old(changes []types.Change) string {
	return join(changes, types.OpDelete)
}

// New reassembles the new text from an edit script.
func New(changes []types.Change) string {
	return join(changes, types.OpInsert)
}

// Summary counts the lines of each kind in an edit script.
type Summary struct {
	Equal    int
	Inserted int
	Deleted  int
}

// Summarize counts the changes by kind.
func Summarize(changes []types.Change) Summary {
	var s Summary
	for _, c := range changes {
		switch c.Op {
		case types.OpInsert:
			s.Inserted++
		case types.OpDelete:
			s.Deleted++
		default:
			s.Equal++
		}
	}
	return s
}

func join(changes []types.Change, side types.Op) string {
	var sb strings.Builder
	for _, c := range changes {
		if c.Op == types.OpEqual || c.Op == side {
			sb.WriteString(c.Text)
		}
	}
	return sb.String()
}

func appendLines(changes []types.Change, op types.Op, lines []string) []types.Change {
	for _, line := range lines {
		changes = append(changes, types.Change{Op: op, Text: line})
	}
	return changes
}

// splitLines splits s after each newline. A final line without a newline is
// kept as is; an empty string has no lines.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	lines := strings.SplitAfter(s, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
