// Package powerset: depth-first subset construction with canonical
// state minting, bitset subset representation, and a re-validated
// core.Automaton as output.

package powerset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bits-and-blooms/bitset"

	"github.com/katalvlaran/automata/core"
)

// Determinize converts a into a language-equivalent DFA via the subset
// construction, minting fresh state names Prefix+counter in
// first-discovery order.
//
// The construction seeds the worklist with {initial}, pops subsets LIFO
// (depth-first), and for each popped subset scans the alphabet in
// declaration order, taking the union of every member's listed
// destinations. A non-empty union becomes one DFA rule; minting and
// enqueuing happen only on first discovery, so each distinct subset is
// explored exactly once and termination is guaranteed. An empty union
// records nothing — the DFA keeps the hole and stays partial. A minted
// state is final iff any member is final. Unreachable source states are
// never visited and contribute no identifiers. An already deterministic
// input yields an isomorphic relabeling of itself.
//
// The result is rebuilt through core.New, so it satisfies every
// structural invariant; its alphabet is the source alphabet unchanged.
// Determinize never mutates a, and all working state is local to one
// call: same input and options always produce the same DFA.
//
// Returns ErrAutomatonNil for nil input, ErrOptionViolation for invalid
// options, and ErrStateLimit when WithMaxStates is exceeded.
// Complexity: O(2^N · K · N) worst case; proportional to the reachable
// subset count in practice.
func Determinize(a *core.Automaton, opts ...Option) (*core.Automaton, error) {
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

	c := newConstruction(a, o)
	if err := c.explore(); err != nil {
		return nil, err
	}

	return c.assemble()
}

// task pairs a minted DFA state with the source subset it stands for.
type task struct {
	id      int            // minted state index
	members *bitset.BitSet // member source states, by declaration index
}

// construction encapsulates the mutable state of one Determinize call.
// Everything here is owned by the call and garbage once it returns;
// conversions stay independent and reentrant.
type construction struct {
	src      *core.Automaton
	opts     Options
	alphabet []string
	states   []string       // source states, declaration order
	index    map[string]int // source state name → declaration index

	names  []string         // minted names, mint order
	accept []bool           // minted index → any member final
	moves  []map[string]int // minted index → symbol → minted index
	seen   map[string]int   // canonical subset key → minted index
	work   []task           // LIFO worklist
}

func newConstruction(a *core.Automaton, o Options) *construction {
	states := a.States()
	index := make(map[string]int, len(states))
	for i, st := range states {
		index[st] = i
	}

	return &construction{
		src:      a,
		opts:     o,
		alphabet: a.Alphabet(),
		states:   states,
		index:    index,
		seen:     make(map[string]int),
	}
}

// explore discovers every reachable subset, minting DFA states and
// recording moves until the worklist drains.
func (c *construction) explore() error {
	seed := bitset.New(uint(len(c.states)))
	seed.Set(uint(c.index[c.src.InitialState()]))
	if _, err := c.mint(seed); err != nil {
		return err
	}

	for len(c.work) > 0 {
		// LIFO pop: depth-first exploration order.
		t := c.work[len(c.work)-1]
		c.work = c.work[:len(c.work)-1]

		for _, sym := range c.alphabet {
			dest := c.unionOn(t.members, sym)
			if dest.Count() == 0 {
				// No member moves on sym; the DFA keeps the hole.
				continue
			}
			id, ok := c.seen[subsetKey(dest)]
			if !ok {
				var err error
				if id, err = c.mint(dest); err != nil {
					return err
				}
			}
			c.moves[t.id][sym] = id
		}
	}

	return nil
}

// unionOn collects every destination reachable from any member of set on
// sym, across all listed branches.
func (c *construction) unionOn(set *bitset.BitSet, sym string) *bitset.BitSet {
	dest := bitset.New(uint(len(c.states)))
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		for _, to := range c.src.Destinations(c.states[i], sym) {
			dest.Set(uint(c.index[to]))
		}
	}

	return dest
}

// mint registers a first-discovered subset: assigns the next canonical
// name, computes finality, fires OnSubset, and queues the subset for
// exploration. Enforces the MaxStates cap.
func (c *construction) mint(set *bitset.BitSet) (int, error) {
	if c.opts.MaxStates > 0 && len(c.names) >= c.opts.MaxStates {
		return 0, fmt.Errorf("%w: cap %d", ErrStateLimit, c.opts.MaxStates)
	}

	id := len(c.names)
	name := c.opts.Prefix + strconv.Itoa(id)

	members := make([]string, 0, set.Count())
	final := false
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		st := c.states[i]
		members = append(members, st)
		if c.src.IsFinal(st) {
			final = true
		}
	}

	c.names = append(c.names, name)
	c.accept = append(c.accept, final)
	c.moves = append(c.moves, make(map[string]int, len(c.alphabet)))
	c.seen[subsetKey(set)] = id
	c.work = append(c.work, task{id: id, members: set})
	c.opts.OnSubset(name, members)

	return id, nil
}

// assemble rebuilds the minted states, rules and finals into a validated
// core.Automaton. The first minted state is the DFA initial state.
func (c *construction) assemble() (*core.Automaton, error) {
	finals := make([]string, 0, len(c.names))
	for id, ok := range c.accept {
		if ok {
			finals = append(finals, c.names[id])
		}
	}

	ts := make([]core.Transition, 0, len(c.names)*len(c.alphabet))
	for id, name := range c.names {
		for _, sym := range c.alphabet {
			if to, ok := c.moves[id][sym]; ok {
				ts = append(ts, core.Transition{From: name, Symbol: sym, To: c.names[to]})
			}
		}
	}

	// The output re-passes the full structural gate.
	return core.New(c.alphabet, c.names, finals, c.names[0], ts)
}

// subsetKey renders the canonical registry key: ascending member indices
// joined by commas. Index keys stay injective whatever the source state
// names look like.
func subsetKey(set *bitset.BitSet) string {
	var b strings.Builder
	first := true
	for i, ok := set.NextSet(0); ok; i, ok = set.NextSet(i + 1) {
		if !first {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(i), 10))
		first = false
	}

	return b.String()
}
