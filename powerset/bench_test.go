package powerset_test

import (
	"strconv"
	"testing"

	"github.com/katalvlaran/automata/core"
	"github.com/katalvlaran/automata/powerset"
)

// blowupNFA builds the classic "k-th symbol from the end is a" NFA:
// k+1 source states whose subset construction reaches 2^k subsets.
func blowupNFA(b *testing.B, k int) *core.Automaton {
	b.Helper()
	states := make([]string, k+1)
	for i := range states {
		states[i] = "c" + strconv.Itoa(i)
	}
	ts := []core.Transition{
		{From: "c0", Symbol: "a", To: "c0"},
		{From: "c0", Symbol: "b", To: "c0"},
		{From: "c0", Symbol: "a", To: "c1"},
	}
	for i := 1; i < k; i++ {
		ts = append(ts,
			core.Transition{From: states[i], Symbol: "a", To: states[i+1]},
			core.Transition{From: states[i], Symbol: "b", To: states[i+1]},
		)
	}
	nfa, err := core.New([]string{"a", "b"}, states, []string{states[k]}, "c0", ts)
	if err != nil {
		b.Fatal(err)
	}

	return nfa
}

func BenchmarkDeterminize_Blowup10(b *testing.B) {
	nfa := blowupNFA(b, 10)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := powerset.Determinize(nfa); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDeterminize_Blowup14(b *testing.B) {
	nfa := blowupNFA(b, 14)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := powerset.Determinize(nfa); err != nil {
			b.Fatal(err)
		}
	}
}
