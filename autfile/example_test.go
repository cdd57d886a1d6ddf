// SPDX-License-Identifier: MIT

package autfile_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/automata/autfile"
	"github.com/katalvlaran/automata/core"
)

// ExampleParse reads a complete definition from a string.
func ExampleParse() {
	src := `a b
q0 q1
q1
q0
q0 a q1
q1 b q0
`
	a, err := autfile.Parse(strings.NewReader(src))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("states:", a.States())
	fmt.Println("finals:", a.FinalStates())
	fmt.Println("rules:", a.TransitionCount())
	// Output:
	// states: [q0 q1]
	// finals: [q1]
	// rules: 2
}

// ExampleEncode writes an automaton back out in the same format.
func ExampleEncode() {
	a, _ := core.New(
		[]string{"0", "1"},
		[]string{"even", "odd"},
		[]string{"even"},
		"even",
		[]core.Transition{
			{From: "even", Symbol: "1", To: "odd"},
			{From: "odd", Symbol: "1", To: "even"},
		},
	)

	if err := autfile.Encode(os.Stdout, a); err != nil {
		fmt.Println("error:", err)
	}
	// Output:
	// 0 1
	// even odd
	// even
	// even
	// even 1 odd
	// odd 1 even
}

// ExampleTokenize shows both splitting modes.
func ExampleTokenize() {
	fmt.Println(autfile.Tokenize("abba"))
	fmt.Println(autfile.Tokenize("go stop go"))
	// Output:
	// [a b b a]
	// [go stop go]
}
