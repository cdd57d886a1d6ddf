// SPDX-License-Identifier: MIT

package autfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for format-level failures. Structural failures are
// core's business and are never wrapped by this package.
var (
	// ErrMissingSection - the input ends before all four header lines
	// (alphabet, states, finals, initial) were read.
	ErrMissingSection = errors.New("autfile: missing section")

	// ErrBadInitialLine - the initial-state line holds zero or several
	// tokens instead of exactly one state name.
	ErrBadInitialLine = errors.New("autfile: bad initial state line")

	// ErrBadTransitionLine - a transition line does not hold exactly
	// three tokens (origin, symbol, destination).
	ErrBadTransitionLine = errors.New("autfile: bad transition line")

	// ErrBadToken - Encode met a symbol or state name containing
	// whitespace, which the line format cannot represent.
	ErrBadToken = errors.New("autfile: token contains whitespace")

	// ErrAutomatonNil - Encode or Save received a nil automaton.
	ErrAutomatonNil = errors.New("autfile: automaton is nil")
)

// FormatError pinpoints a malformed line. Line is 1-based; zero means
// the failure is not tied to a line (the file simply ended early).
type FormatError struct {
	Line   int
	Detail string
	Err    error
}

// Error renders "line N: <sentinel>: <detail>", dropping the line part
// when no line applies.
func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %v: %s", e.Line, e.Err, e.Detail)
	}

	return fmt.Sprintf("%v: %s", e.Err, e.Detail)
}

// Unwrap exposes the sentinel for errors.Is.
func (e *FormatError) Unwrap() error { return e.Err }
