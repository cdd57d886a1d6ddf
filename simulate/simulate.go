// Package simulate: word classification over a core.Automaton, following
// the first-destination convention by default with an opt-in full
// frontier mode.

package simulate

import (
	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/automata/core"
)

// Run classifies word against a, applying any number of functional
// Options, and returns the full Result.
//
// The walk stops at the first symbol outside the alphabet (INVALID) or
// the first (state, symbol) pair without a rule (REJECTED); otherwise
// the word is ACCEPTED iff the state after the last symbol is final.
// A nil word is the empty word.
//
// Returns ErrAutomatonNil for a nil automaton; word anomalies are
// reported through Result.Outcome, never as errors.
// Complexity: O(L) for word length L; O(L·T) with WithFullExploration.
func Run(a *core.Automaton, word []string, opts ...Option) (*Result, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if o.FullExploration {
		return runFrontier(a, word, o), nil
	}

	return runSingle(a, word, o), nil
}

// Classify runs word against a and returns only the Outcome.
// The Outcome is meaningful only when the error is nil.
func Classify(a *core.Automaton, word []string, opts ...Option) (Outcome, error) {
	res, err := Run(a, word, opts...)
	if err != nil {
		return Invalid, err
	}

	return res.Outcome, nil
}

// ClassifyAll classifies every word independently against the same
// automaton and returns the outcomes in input order. Equivalent to
// calling Classify once per word.
// Complexity: O(sum of word lengths).
func ClassifyAll(a *core.Automaton, words [][]string, opts ...Option) ([]Outcome, error) {
	if a == nil {
		return nil, ErrAutomatonNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out := make([]Outcome, len(words))
	for i, word := range words {
		if o.FullExploration {
			out[i] = runFrontier(a, word, o).Outcome
		} else {
			out[i] = runSingle(a, word, o).Outcome
		}
	}

	return out, nil
}

// walker encapsulates the mutable state of one first-destination run.
type walker struct {
	aut  *core.Automaton
	opts Options
	curr string
	res  *Result
}

// runSingle walks the word under the first-destination convention.
func runSingle(a *core.Automaton, word []string, o Options) *Result {
	w := &walker{
		aut:  a,
		opts: o,
		curr: a.InitialState(),
		res:  &Result{Path: make([]string, 1, len(word)+1)},
	}
	w.res.Path[0] = w.curr

	for _, sym := range word {
		if !w.step(sym) {
			return w.res
		}
	}
	w.finish()

	return w.res
}

// step consumes one symbol and returns false when the walk stops early,
// leaving the verdict in res.Outcome.
func (w *walker) step(symbol string) bool {
	// A symbol outside the alphabet invalidates the whole word.
	if !w.aut.HasSymbol(symbol) {
		w.res.Outcome = Invalid

		return false
	}
	// A missing rule rejects the word.
	next, ok := w.aut.Step(w.curr, symbol)
	if !ok {
		w.res.Outcome = Rejected

		return false
	}
	w.opts.OnStep(w.curr, symbol, next)
	w.curr = next
	w.res.Consumed++
	w.res.Path = append(w.res.Path, next)

	return true
}

// finish classifies a fully consumed word by its landing state.
func (w *walker) finish() {
	if w.aut.IsFinal(w.curr) {
		w.res.Outcome = Accepted
	} else {
		w.res.Outcome = Rejected
	}
}

// runFrontier walks the word tracking the complete set of reachable
// states as a bitset over state indices, stepping the whole frontier on
// each symbol.
func runFrontier(a *core.Automaton, word []string, o Options) *Result {
	states := a.States()
	idx := make(map[string]int, len(states))
	for i, st := range states {
		idx[st] = i
	}

	curr := bitset.New(uint(len(states)))
	next := bitset.New(uint(len(states)))
	curr.Set(uint(idx[a.InitialState()]))

	res := &Result{Path: []string{a.InitialState()}}

	for _, sym := range word {
		if !a.HasSymbol(sym) {
			res.Outcome = Invalid

			return res
		}
		next.ClearAll()
		for i, ok := curr.NextSet(0); ok; i, ok = curr.NextSet(i + 1) {
			for _, to := range a.Destinations(states[i], sym) {
				j := uint(idx[to])
				if !next.Test(j) {
					next.Set(j)
					o.OnStep(states[i], sym, to)
				}
			}
		}
		// Empty frontier: no branch survives this symbol.
		if next.Count() == 0 {
			res.Outcome = Rejected

			return res
		}
		curr, next = next, curr
		res.Consumed++
	}

	// Accept iff any surviving frontier state is final.
	for i, ok := curr.NextSet(0); ok; i, ok = curr.NextSet(i + 1) {
		if a.IsFinal(states[i]) {
			res.Outcome = Accepted

			return res
		}
	}
	res.Outcome = Rejected

	return res
}
