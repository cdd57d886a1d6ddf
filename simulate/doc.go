// Package simulate classifies words against a core.Automaton, reporting
// ACCEPTED, REJECTED or INVALID per word.
//
// What:
//
//   - Run: walk one word symbol by symbol and return a full Result
//     (outcome, visited path, consumed count). Supports:
//   - Per-move hooks (WithOnStep)
//   - Full frontier tracking (WithFullExploration)
//   - Classify: Run reduced to the bare Outcome.
//   - ClassifyAll: classify a batch of words independently, in order.
//
// Why:
//   - Word classification is the operational answer an automaton exists
//     to give; everything else (conversion, storage) supports it.
//   - The three-way outcome keeps lexical noise (INVALID) distinct from
//     language membership (ACCEPTED/REJECTED), so batch callers can
//     tell malformed input apart from rejected input.
//
// Simulation convention:
//
// By default the automaton is treated as deterministic during the walk
// even when it is not: at each step exactly the FIRST listed destination
// of the current (state, symbol) pair is followed, and a pair with no
// rule stops the walk with REJECTED. Convert with powerset.Determinize
// first for true NFA acceptance, or opt into WithFullExploration, which
// tracks the complete set of simultaneously reachable states and accepts
// when any of them is final after the last symbol.
//
// Key Types:
//
//   - Outcome: Invalid, Rejected, Accepted (String() renders upper-case)
//   - Result: Outcome + Path + Consumed
//   - Option: WithOnStep, WithFullExploration
//
// Errors:
//
//   - ErrAutomatonNil  automaton pointer is nil
//
// Word anomalies are never errors: unknown symbols and missing
// transitions are Outcomes.
//
// Complexity:
//
//   - Run (default):          Time O(L), Memory O(L) for word length L
//   - Run (full exploration): Time O(L·T), Memory O(N) for T transition
//     rules and N states
package simulate
