// Package catalog extracts the device catalog embedded in the source page and
// formats it as a deterministic snapshot.
package catalog

import "fmt"

// ExtractionError represents a page whose embedded catalog data is missing,
// malformed, or lacks a required field.
type ExtractionError struct {
	Message string
	Cause   error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extraction error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("extraction error: %s", e.Message)
}

func (e *ExtractionError) Unwrap() error {
	return e.Cause
}
