package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/automata/core"
)

func TestAutomaton_DeclarationOrderPreserved(t *testing.T) {
	a, err := core.New(
		[]string{"z", "a", "m"},
		[]string{"s2", "s0", "s1"},
		[]string{"s1", "s2"},
		"s0",
		nil,
	)
	require.NoError(t, err)

	// Never sorted: declaration order is the canonical order.
	assert.Equal(t, []string{"z", "a", "m"}, a.Alphabet())
	assert.Equal(t, []string{"s2", "s0", "s1"}, a.States())
	// Finals are reported in state declaration order, not finals order.
	assert.Equal(t, []string{"s2", "s1"}, a.FinalStates())
}

func TestAutomaton_AccessorsReturnCopies(t *testing.T) {
	a := shiftRegister(t)

	states := a.States()
	states[0] = "mutated"
	assert.Equal(t, []string{"q0", "q1", "q2", "q3"}, a.States())

	alphabet := a.Alphabet()
	alphabet[0] = "mutated"
	assert.Equal(t, []string{"a", "b"}, a.Alphabet())

	dests := a.Destinations("q0", "a")
	dests[0] = "mutated"
	assert.Equal(t, []string{"q1"}, a.Destinations("q0", "a"))
}

func TestAutomaton_Membership(t *testing.T) {
	a := shiftRegister(t)

	assert.True(t, a.HasState("q2"))
	assert.False(t, a.HasState("q9"))
	assert.True(t, a.HasSymbol("b"))
	assert.False(t, a.HasSymbol("c"))
	assert.True(t, a.IsFinal("q3"))
	assert.False(t, a.IsFinal("q1"))
}

func TestAutomaton_DestinationsAbsent(t *testing.T) {
	a, err := core.New([]string{"a", "b"}, []string{"s", "t"}, nil, "s",
		[]core.Transition{{From: "s", Symbol: "a", To: "t"}})
	require.NoError(t, err)

	assert.Nil(t, a.Destinations("s", "b"), "undefined pair has no destinations")
	assert.Nil(t, a.Destinations("t", "a"))
	assert.Nil(t, a.Destinations("ghost", "a"), "unknown origin is simply absent")
}

func TestAutomaton_Step_FirstDestinationWins(t *testing.T) {
	a, err := core.New([]string{"a"}, []string{"s", "t", "u"}, nil, "s",
		[]core.Transition{
			{From: "s", Symbol: "a", To: "u"},
			{From: "s", Symbol: "a", To: "t"},
		})
	require.NoError(t, err)

	next, ok := a.Step("s", "a")
	assert.True(t, ok)
	assert.Equal(t, "u", next, "Step follows the first listed destination")

	_, ok = a.Step("t", "a")
	assert.False(t, ok)
}

func TestAutomaton_Transitions_CanonicalOrder(t *testing.T) {
	// Declared deliberately out of canonical order.
	a, err := core.New(
		[]string{"a", "b"},
		[]string{"s", "t"},
		nil,
		"s",
		[]core.Transition{
			{From: "t", Symbol: "b", To: "s"},
			{From: "s", Symbol: "b", To: "t"},
			{From: "s", Symbol: "a", To: "t"},
			{From: "s", Symbol: "a", To: "s"},
		},
	)
	require.NoError(t, err)

	// Origins in state order, symbols in alphabet order, destinations in
	// listing order.
	want := []core.Transition{
		{From: "s", Symbol: "a", To: "t"},
		{From: "s", Symbol: "a", To: "s"},
		{From: "s", Symbol: "b", To: "t"},
		{From: "t", Symbol: "b", To: "s"},
	}
	assert.Equal(t, want, a.Transitions())
}

func TestAutomaton_Stats(t *testing.T) {
	a := shiftRegister(t)

	assert.Equal(t, core.Stats{
		SymbolCount:     2,
		StateCount:      4,
		FinalCount:      2,
		TransitionCount: 8,
		Deterministic:   true,
	}, a.Stats())
}
