// Package core defines the central Automaton and Transition types and the
// single validation gate every automaton definition passes through.
//
// What:
//
//   - Automaton: a finite automaton over a fixed alphabet — ordered state
//     set, ordered alphabet, one initial state, final-state set, and a
//     transition relation mapping (origin, symbol) to an ordered list of
//     destinations. One listed destination per pair means deterministic;
//     several mean non-deterministic.
//   - Transition: a single "origin symbol destination" rule, the unit both
//     the file format and the constructor speak.
//   - New: validates every structural invariant and returns an immutable
//     value; no partially valid Automaton is ever observable.
//
// Why:
//   - One validation gate keeps parser, builder, and converters honest:
//     whatever produced the definition, the same invariants hold after.
//   - Immutability makes every read method safe for unsynchronized
//     concurrent use and lets algorithm packages share one Automaton
//     across goroutines freely.
//
// Key Types:
//
//   - Automaton, Transition
//   - StructuralError: offending token + violated invariant (errors.As)
//
// Errors:
//
//   - ErrEmptySymbol             alphabet symbol is the empty string
//   - ErrDuplicateSymbol         alphabet symbol declared twice
//   - ErrEmptyStateName          state name is the empty string
//   - ErrDuplicateState          state name declared twice
//   - ErrInitialStateUnknown     initial state not in the state set
//   - ErrFinalStateUnknown       final state not in the state set
//   - ErrTransitionOriginUnknown transition leaves an undeclared state
//   - ErrTransitionDestUnknown   transition enters an undeclared state
//   - ErrTransitionSymbolUnknown transition consumes an undeclared symbol
//
// Complexity:
//
//   - New: Time O(K+N+T), Memory O(K+N+T) for K symbols, N states,
//     T transitions.
//   - All membership accessors are O(1); slice accessors copy in O(n).
package core
