// SPDX-License-Identifier: MIT

// Package builder assembles automaton definitions in code without
// hand-maintaining parallel slices.
//
// The Builder is a plain accumulator: calls record declarations in
// order and Build hands everything to core.New, which remains the only
// validation gate. Nothing is deduplicated or auto-declared on the way,
// so a misspelled state surfaces as the same *core.StructuralError a
// file loader would produce.
//
//	a, err := builder.New("a", "b").
//		States("q0", "q1").
//		Final("q1").
//		Initial("q0").
//		Transition("q0", "a", "q1").
//		Transition("q1", "b", "q0").
//		Build()
//
// Transition takes one or more destinations; several destinations for
// the same origin and symbol is the natural spelling of
// nondeterminism.
package builder
