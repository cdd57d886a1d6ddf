// SPDX-License-Identifier: MIT

// Package autfile reads and writes the plain-text automaton interchange
// format and turns word lists into symbol sequences.
//
// # Format
//
// A definition is five sections over whitespace-separated tokens. The
// first four are one line each, in fixed order; everything after them
// is transition rules, one per line:
//
//	a b            alphabet symbols
//	q0 q1 q2 q3    state names
//	q0 q3          final states (may be a blank line)
//	q0             initial state, exactly one token
//	q0 a q1        transition: origin symbol destination
//	q0 b q2
//	...
//
// Blank lines in the transition section are skipped; the four header
// lines are positional, so a blank third line means "no final states"
// rather than being skipped.
//
// # Errors
//
// Shape problems (truncated file, wrong token counts) surface as
// *FormatError wrapping one of the package sentinels:
//
//	ErrMissingSection    - the file ends before all four header lines
//	ErrBadInitialLine    - the initial-state line is not exactly one token
//	ErrBadTransitionLine - a transition line is not exactly three tokens
//
// A file can be perfectly shaped and still describe a broken automaton;
// those violations come back from core.New as *core.StructuralError and
// pass through untouched, so errors.Is works against core's sentinels.
//
// # Words
//
// Tokenize splits one word into input symbols: on whitespace when the
// word contains any, one symbol per rune otherwise. ParseWords applies
// it line by line to a word list.
package autfile
