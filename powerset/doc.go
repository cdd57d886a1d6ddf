// Package powerset implements the subset construction, converting any
// automaton — deterministic or not — into a language-equivalent DFA.
//
// What:
//
//   - Determinize: explore every reachable subset of source states,
//     mint one DFA state per distinct subset, and connect them by the
//     union of member moves per alphabet symbol. Supports:
//   - Custom minted-name prefix (WithStatePrefix)
//   - A hard cap on minted states (WithMaxStates) against the
//     exponential worst case
//   - A minting hook (WithOnSubset) exposing subset membership
//
// Why:
//   - Simulation follows one branch; the determinized automaton encodes
//     all branches at once, so plain first-destination walking of the
//     result answers true non-deterministic acceptance.
//   - Canonical minted names (q0, q1, …) and fixed iteration orders make
//     the output reproducible byte for byte, diffable and cacheable.
//
// Naming and order:
//
// Minted identifiers are Prefix+counter in first-discovery order. The
// worklist is a stack: subsets are explored depth-first, and each
// distinct subset is minted and enqueued exactly once — the canonical
// subset registry doubles as the visited set, which also guarantees
// termination. Within one subset, symbols are scanned in alphabet
// declaration order. The subset registry key is the ascending member
// index list, which stays injective regardless of what the source state
// names look like.
//
// Key Types:
//
//   - Option: WithStatePrefix, WithMaxStates, WithOnSubset
//   - Options: holds Prefix, MaxStates, OnSubset
//
// Errors:
//
//   - ErrAutomatonNil     automaton pointer is nil
//   - ErrStateLimit       construction needs more states than the cap
//   - ErrOptionViolation  invalid option value supplied
//
// Complexity:
//
//   - Determinize: Time O(2^N · K · N) worst case for N source states
//     and K symbols; in practice proportional to the reachable subset
//     count. Memory O(reachable subsets).
package powerset
