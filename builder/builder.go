// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/katalvlaran/automata/core"
)

// Builder accumulates an automaton definition. The zero value is ready
// to use; New is sugar for seeding the alphabet.
type Builder struct {
	alphabet    []string
	states      []string
	finals      []string
	initial     string
	transitions []core.Transition
}

// New starts a definition with the given alphabet symbols.
// Complexity: O(len(symbols)).
func New(symbols ...string) *Builder {
	b := &Builder{}

	return b.Symbols(symbols...)
}

// Symbols appends alphabet symbols in declaration order.
// Complexity: O(len(symbols)).
func (b *Builder) Symbols(symbols ...string) *Builder {
	b.alphabet = append(b.alphabet, symbols...)

	return b
}

// States appends state names in declaration order.
// Complexity: O(len(names)).
func (b *Builder) States(names ...string) *Builder {
	b.states = append(b.states, names...)

	return b
}

// Final marks states as final. Repeats are harmless: core collapses
// duplicate finals on Build.
// Complexity: O(len(names)).
func (b *Builder) Final(names ...string) *Builder {
	b.finals = append(b.finals, names...)

	return b
}

// Initial records the initial state. The last call wins.
// Complexity: O(1).
func (b *Builder) Initial(name string) *Builder {
	b.initial = name

	return b
}

// Transition records one rule per destination, preserving listing
// order. Several destinations spell nondeterminism.
// Complexity: O(len(to)).
func (b *Builder) Transition(from, symbol string, to ...string) *Builder {
	for _, dst := range to {
		b.transitions = append(b.transitions, core.Transition{From: from, Symbol: symbol, To: dst})
	}

	return b
}

// Add appends a ready transition value, for callers that already hold
// core.Transition records.
// Complexity: O(1).
func (b *Builder) Add(t core.Transition) *Builder {
	b.transitions = append(b.transitions, t)

	return b
}

// Build validates the accumulated definition through core.New and
// returns the automaton. core's *StructuralError passes through
// untouched. The builder stays usable: further calls keep accumulating
// and a later Build sees them.
// Complexity: core.New validation, O(K+N+T).
func (b *Builder) Build() (*core.Automaton, error) {
	return core.New(b.alphabet, b.states, b.finals, b.initial, b.transitions)
}
