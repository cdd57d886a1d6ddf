// Package powerset: tunable options and error definitions for the
// subset construction over a core.Automaton.

package powerset

import (
	"errors"
	"fmt"
)

// DefaultStatePrefix is prepended to the mint counter when naming DFA
// states: q0, q1, q2, …
const DefaultStatePrefix = "q"

// Sentinel errors for subset construction.
var (
	// ErrAutomatonNil is returned if a nil automaton pointer is passed.
	ErrAutomatonNil = errors.New("powerset: automaton is nil")

	// ErrStateLimit is returned when the construction needs to mint more
	// DFA states than WithMaxStates allows.
	ErrStateLimit = errors.New("powerset: minted state limit exceeded")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("powerset: invalid option supplied")
)

// Option configures the subset construction via functional arguments.
// An invalid Option (e.g. a negative state cap) is recorded internally
// and surfaced as ErrOptionViolation when Determinize is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing Determinize.
type Options struct {
	// Prefix is prepended to the mint counter when naming DFA states.
	Prefix string

	// MaxStates, if > 0, caps how many DFA states may be minted before
	// the construction aborts with ErrStateLimit — a guard against the
	// exponential worst case. A value of 0 explicitly disables the cap.
	MaxStates int

	// OnSubset is called when a subset is first discovered and minted,
	// with the fresh DFA state name and the member source states in
	// declaration order.
	OnSubset func(id string, members []string)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - DefaultStatePrefix ("q")
//   - no state cap (MaxStates == 0)
//   - no-op OnSubset hook
//   - error channel clear.
func DefaultOptions() Options {
	return Options{
		Prefix:    DefaultStatePrefix,
		MaxStates: 0,
		OnSubset:  func(string, []string) {},
		err:       nil,
	}
}

// WithStatePrefix overrides the minted-name prefix. An empty prefix is
// ignored and the default kept.
func WithStatePrefix(p string) Option {
	return func(o *Options) {
		if p != "" {
			o.Prefix = p
		}
	}
}

// WithMaxStates caps the number of minted DFA states.
//
//	n > 0: abort with ErrStateLimit once construction needs state n+1
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxStates(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxStates cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			// explicit "no cap"
			o.MaxStates = 0
		default:
			o.MaxStates = n
		}
	}
}

// WithOnSubset registers a callback fired once per minted DFA state.
func WithOnSubset(fn func(id string, members []string)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSubset = fn
		}
	}
}
