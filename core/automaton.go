// Package core: Automaton construction and structural validation.
//
// New is the single validation gate of the library: every definition —
// parsed from a file, assembled by builder, or minted by powerset —
// passes through it, and the structural invariants are enforced nowhere
// else.

package core

// New constructs an immutable Automaton from an alphabet, a state list,
// the final states, the initial state, and the transition rules.
//
// Declaration order of alphabet and states is preserved and observable
// through Alphabet and States. Per (origin, symbol) pair, destination
// order follows the order of the transitions argument. Duplicate final
// states collapse silently; duplicate symbols or state names are
// rejected.
//
// On the first violated invariant New returns a *StructuralError
// wrapping one of ErrEmptySymbol, ErrDuplicateSymbol, ErrEmptyStateName,
// ErrDuplicateState, ErrInitialStateUnknown, ErrFinalStateUnknown,
// ErrTransitionOriginUnknown, ErrTransitionSymbolUnknown or
// ErrTransitionDestUnknown.
// Complexity: O(K+N+T) for K symbols, N states, T transitions.
func New(alphabet, states, finals []string, initial string, transitions []Transition) (*Automaton, error) {
	a := &Automaton{
		symbols:       make([]string, 0, len(alphabet)),
		states:        make([]string, 0, len(states)),
		symbolIdx:     make(map[string]int, len(alphabet)),
		stateIdx:      make(map[string]int, len(states)),
		finals:        make(map[string]struct{}, len(finals)),
		delta:         make(map[string]map[string][]string, len(states)),
		deterministic: true,
	}

	// 1) Alphabet: non-empty symbols, no duplicates, order preserved.
	for _, sym := range alphabet {
		if sym == "" {
			return nil, &StructuralError{Token: sym, Err: ErrEmptySymbol}
		}
		if _, dup := a.symbolIdx[sym]; dup {
			return nil, &StructuralError{Token: sym, Err: ErrDuplicateSymbol}
		}
		a.symbolIdx[sym] = len(a.symbols)
		a.symbols = append(a.symbols, sym)
	}

	// 2) States: non-empty names, no duplicates, order preserved.
	for _, st := range states {
		if st == "" {
			return nil, &StructuralError{Token: st, Err: ErrEmptyStateName}
		}
		if _, dup := a.stateIdx[st]; dup {
			return nil, &StructuralError{Token: st, Err: ErrDuplicateState}
		}
		a.stateIdx[st] = len(a.states)
		a.states = append(a.states, st)
	}

	// 3) Initial state must be declared.
	if _, ok := a.stateIdx[initial]; !ok {
		return nil, &StructuralError{Token: initial, Err: ErrInitialStateUnknown}
	}
	a.initial = initial

	// 4) Final states must be declared; duplicates collapse.
	for _, fin := range finals {
		if _, ok := a.stateIdx[fin]; !ok {
			return nil, &StructuralError{Token: fin, Err: ErrFinalStateUnknown}
		}
		a.finals[fin] = struct{}{}
	}

	// 5) Transitions: origin, symbol, destination checked in that order;
	//    listing order per (origin, symbol) pair is kept.
	for _, t := range transitions {
		if _, ok := a.stateIdx[t.From]; !ok {
			return nil, &StructuralError{Token: t.From, Err: ErrTransitionOriginUnknown}
		}
		if _, ok := a.symbolIdx[t.Symbol]; !ok {
			return nil, &StructuralError{Token: t.Symbol, Err: ErrTransitionSymbolUnknown}
		}
		if _, ok := a.stateIdx[t.To]; !ok {
			return nil, &StructuralError{Token: t.To, Err: ErrTransitionDestUnknown}
		}
		moves := a.delta[t.From]
		if moves == nil {
			moves = make(map[string][]string)
			a.delta[t.From] = moves
		}
		moves[t.Symbol] = append(moves[t.Symbol], t.To)
		if len(moves[t.Symbol]) > 1 {
			a.deterministic = false
		}
		a.transitionCount++
	}

	return a, nil
}
