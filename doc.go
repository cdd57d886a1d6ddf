// Package automata is your in-memory toolkit for building, validating,
// and running finite automata — from raw definition files to word
// classification and NFA→DFA conversion.
//
// 🚀 What is automata?
//
//	A small, strict library that brings together:
//		• Core model: alphabets, states, final states, transition rules —
//		  validated once at construction, immutable afterwards
//		• Simulation: classify words as ACCEPTED, REJECTED or INVALID,
//		  with step hooks and an optional full-frontier mode
//		• Powerset construction: convert any NFA into an equivalent DFA
//		  with reproducible q0,q1,… state naming
//		• File format: load and save the five-section text definition
//		• Builder: fluent in-code construction for tests and tools
//
// ✨ Why choose automata?
//
//   - Strict guarantees – no partially valid automaton is ever observable
//   - Deterministic output – same input, same DFA, same names, every run
//   - Clear error taxonomy – format errors and structural errors never mix
//   - Extensible – hooks (OnStep, OnSubset) for tracing and custom logic
//
// Everything is organized under focused subpackages:
//
//	core/     — Automaton, Transition, structural validation
//	simulate/ — word classification (Run, Classify, ClassifyAll)
//	powerset/ — subset construction (Determinize)
//	autfile/  — definition-file codec (Parse, Load, Encode, Save)
//	builder/  — fluent construction helper
//	cmd/      — the automata command-line front end
//
// Quick ASCII example, the two-bit shift register over {a b}:
//
//	q0 --a--> q1 --b--> q3
//	q0 --b--> q2 --a--> q3
//
//	"ab" is accepted, "ba" is accepted, "c" is invalid,
//	and the empty word is accepted whenever q0 is final.
//
// Dive into each package's doc.go for models, complexity notes and the
// full error list.
//
//	go get github.com/katalvlaran/automata
package automata
