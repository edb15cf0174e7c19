// Package dialog holds the modal dialog controllers for sketch operations.
// Each controller owns its raw text-field state and validates on Confirm:
// a valid confirm fires the command callback exactly once and closes the
// dialog, an invalid confirm returns a ValidationError and leaves the dialog
// open with the user's input intact. Rendering is left to the UI layer.
package dialog

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidationError reports which field of a dialog failed validation
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// parseCount parses a pattern count field. Counts include the original
// element, so anything below 2 would be a no-op.
func parseCount(field, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, invalid(field, "must be a whole number")
	}
	if n < 2 {
		return 0, invalid(field, "must be at least 2")
	}
	return n, nil
}

// parseFloat parses a numeric field, rejecting NaN and infinities
func parseFloat(field, raw string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, invalid(field, "must be a number")
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, invalid(field, "must be finite")
	}
	return v, nil
}
