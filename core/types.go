// Package core: type and sentinel declarations.
//
// This file declares Transition, Automaton, StructuralError, and the
// sentinel errors reported by the New constructor. Validation itself
// lives in automaton.go; read accessors live in methods.go.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for automaton construction.
var (
	// ErrEmptySymbol indicates an alphabet symbol is the empty string.
	ErrEmptySymbol = errors.New("core: alphabet symbol is empty")

	// ErrDuplicateSymbol indicates the same alphabet symbol was declared twice.
	ErrDuplicateSymbol = errors.New("core: duplicate alphabet symbol")

	// ErrEmptyStateName indicates a state name is the empty string.
	ErrEmptyStateName = errors.New("core: state name is empty")

	// ErrDuplicateState indicates the same state name was declared twice.
	ErrDuplicateState = errors.New("core: duplicate state name")

	// ErrInitialStateUnknown indicates the initial state is not declared in the state set.
	ErrInitialStateUnknown = errors.New("core: initial state not in state set")

	// ErrFinalStateUnknown indicates a final state is not declared in the state set.
	ErrFinalStateUnknown = errors.New("core: final state not in state set")

	// ErrTransitionOriginUnknown indicates a transition leaves an undeclared state.
	ErrTransitionOriginUnknown = errors.New("core: transition origin not in state set")

	// ErrTransitionDestUnknown indicates a transition enters an undeclared state.
	ErrTransitionDestUnknown = errors.New("core: transition destination not in state set")

	// ErrTransitionSymbolUnknown indicates a transition consumes a symbol outside the alphabet.
	ErrTransitionSymbolUnknown = errors.New("core: transition symbol not in alphabet")
)

// StructuralError reports the first construction invariant a definition
// violates, together with the offending token.
//
// Match the invariant with errors.Is against the sentinels above; recover
// the token with errors.As:
//
//	var serr *core.StructuralError
//	if errors.As(err, &serr) {
//		log.Printf("bad token %q", serr.Token)
//	}
type StructuralError struct {
	// Token is the state name or symbol that violated the invariant.
	Token string

	// Err is the violated invariant, one of the package sentinels.
	Err error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%v: %q", e.Err, e.Token)
}

func (e *StructuralError) Unwrap() error { return e.Err }

// Transition is one rule of the transition relation: reading Symbol in
// state From moves the automaton to state To.
//
// The same (From, Symbol) pair may appear in any number of rules; more
// than one marks the automaton non-deterministic. Listing order is
// preserved and significant: simulation follows the first listed
// destination.
type Transition struct {
	// From is the origin state name.
	From string

	// Symbol is the consumed alphabet symbol.
	Symbol string

	// To is the destination state name.
	To string
}

// Automaton is a validated finite automaton over a fixed alphabet.
//
// An Automaton is immutable: New checks every structural invariant up
// front and no mutating method exists, so all read methods are safe for
// unsynchronized concurrent use.
type Automaton struct {
	symbols []string // alphabet, declaration order
	states  []string // state names, declaration order

	symbolIdx map[string]int // symbol → index in symbols
	stateIdx  map[string]int // state name → index in states

	initial string
	finals  map[string]struct{}

	// delta[origin][symbol] = destinations in listing order
	delta map[string]map[string][]string

	transitionCount int
	deterministic   bool
}

// Stats is a read-only snapshot of an Automaton's catalog sizes and
// determinism flag, suitable for diagnostics and admission checks.
type Stats struct {
	SymbolCount     int
	StateCount      int
	FinalCount      int
	TransitionCount int
	Deterministic   bool
}
