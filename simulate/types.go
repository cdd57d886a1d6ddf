// Package simulate: outcomes, tunable options and error definitions for
// word classification over a core.Automaton.

package simulate

import (
	"errors"
	"fmt"
)

// ErrAutomatonNil is returned if a nil automaton pointer is passed.
var ErrAutomatonNil = errors.New("simulate: automaton is nil")

// Outcome classifies one word against one automaton.
type Outcome int

const (
	// Invalid marks a word using at least one symbol outside the
	// automaton's alphabet. Detected at the first offending symbol.
	Invalid Outcome = iota

	// Rejected marks a well-formed word the automaton does not accept:
	// either the walk stopped on a missing transition, or the word ended
	// in a non-final state.
	Rejected

	// Accepted marks a word the automaton accepts.
	Accepted
)

// String renders the canonical upper-case form: INVALID, REJECTED or
// ACCEPTED.
func (o Outcome) String() string {
	switch o {
	case Invalid:
		return "INVALID"
	case Rejected:
		return "REJECTED"
	case Accepted:
		return "ACCEPTED"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Option configures simulation behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize a simulation run.
type Options struct {
	// OnStep is called for every move taken, after the symbol is
	// consumed. In frontier mode it fires once per destination first
	// reached on each symbol.
	OnStep func(from, symbol, to string)

	// FullExploration switches Run from the first-destination convention
	// to full frontier tracking: after each symbol the automaton is in
	// every simultaneously reachable state, and the word is accepted
	// when any frontier state is final at the end.
	FullExploration bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - first-destination convention (FullExploration off)
//   - no-op OnStep hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		OnStep:          func(string, string, string) {},
		FullExploration: false,
		err:             nil,
	}
}

// WithOnStep registers a callback fired for every move taken.
func WithOnStep(fn func(from, symbol, to string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithFullExploration tracks the complete frontier of reachable states
// instead of following only the first listed destination. Use it for
// true non-deterministic acceptance without determinizing first.
func WithFullExploration() Option {
	return func(o *Options) { o.FullExploration = true }
}

// Result holds the outcome of one simulation run.
type Result struct {
	// Outcome is the classification of the word.
	Outcome Outcome

	// Path lists the visited states, initial state first. Tracked only
	// under the first-destination convention; in frontier mode it holds
	// just the initial state.
	Path []string

	// Consumed counts the symbols processed before the run stopped.
	// Equal to the word length when the walk reached the end.
	Consumed int
}
