// Package core: read accessors for Automaton.
//
// Every slice-returning accessor hands back a fresh copy, so callers can
// never reach the internal storage. The receiver is immutable after New,
// which makes all methods here safe for concurrent use without locks.

package core

// States returns the state names in declaration order.
// Complexity: O(N).
func (a *Automaton) States() []string {
	out := make([]string, len(a.states))
	copy(out, a.states)

	return out
}

// Alphabet returns the alphabet symbols in declaration order.
// Complexity: O(K).
func (a *Automaton) Alphabet() []string {
	out := make([]string, len(a.symbols))
	copy(out, a.symbols)

	return out
}

// InitialState returns the initial state name.
// Complexity: O(1).
func (a *Automaton) InitialState() string { return a.initial }

// FinalStates returns the final states in state declaration order.
// Complexity: O(N).
func (a *Automaton) FinalStates() []string {
	out := make([]string, 0, len(a.finals))
	for _, st := range a.states {
		if _, ok := a.finals[st]; ok {
			out = append(out, st)
		}
	}

	return out
}

// IsFinal reports whether state belongs to the final-state set.
// Complexity: O(1).
func (a *Automaton) IsFinal(state string) bool {
	_, ok := a.finals[state]

	return ok
}

// HasState reports whether the state name is declared.
// Complexity: O(1).
func (a *Automaton) HasState(state string) bool {
	_, ok := a.stateIdx[state]

	return ok
}

// HasSymbol reports whether symbol belongs to the alphabet.
// Complexity: O(1).
func (a *Automaton) HasSymbol(symbol string) bool {
	_, ok := a.symbolIdx[symbol]

	return ok
}

// Destinations returns a copy of the ordered destination list for
// (from, symbol), or nil when no such transition exists. Absence of a
// transition is not an error; simulation treats it as rejection.
// Complexity: O(D) for D listed destinations.
func (a *Automaton) Destinations(from, symbol string) []string {
	dests := a.delta[from][symbol]
	if len(dests) == 0 {
		return nil
	}
	out := make([]string, len(dests))
	copy(out, dests)

	return out
}

// Step returns the first listed destination for (from, symbol), or
// ("", false) when no transition exists. The first listed destination
// is the move the deterministic simulation convention follows.
// Complexity: O(1).
func (a *Automaton) Step(from, symbol string) (string, bool) {
	dests := a.delta[from][symbol]
	if len(dests) == 0 {
		return "", false
	}

	return dests[0], true
}

// Transitions returns every transition rule in canonical order: origins
// in state declaration order, symbols in alphabet order, destinations in
// listing order. The slice is freshly allocated.
// Complexity: O(N·K + T).
func (a *Automaton) Transitions() []Transition {
	out := make([]Transition, 0, a.transitionCount)
	for _, from := range a.states {
		moves := a.delta[from]
		if len(moves) == 0 {
			continue
		}
		for _, sym := range a.symbols {
			for _, to := range moves[sym] {
				out = append(out, Transition{From: from, Symbol: sym, To: to})
			}
		}
	}

	return out
}

// StateCount returns the number of declared states.
// Complexity: O(1).
func (a *Automaton) StateCount() int { return len(a.states) }

// SymbolCount returns the number of alphabet symbols.
// Complexity: O(1).
func (a *Automaton) SymbolCount() int { return len(a.symbols) }

// TransitionCount returns the number of transition rules.
// Complexity: O(1).
func (a *Automaton) TransitionCount() int { return a.transitionCount }

// Deterministic reports whether every (origin, symbol) pair has at most
// one listed destination. Computed once during construction.
// Complexity: O(1).
func (a *Automaton) Deterministic() bool { return a.deterministic }

// Stats produces a read-only snapshot of catalog sizes and the
// determinism flag, suitable for diagnostics and admission checks.
// Complexity: O(1).
func (a *Automaton) Stats() Stats {
	return Stats{
		SymbolCount:     len(a.symbols),
		StateCount:      len(a.states),
		FinalCount:      len(a.finals),
		TransitionCount: a.transitionCount,
		Deterministic:   a.deterministic,
	}
}
