// SPDX-License-Identifier: MIT

package autfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/katalvlaran/automata/core"
)

// Encode writes a in the five-section line format. The output parses
// back to an automaton with the same alphabet, states, finals, initial
// state and transition rules, with transitions in canonical order.
//
// Tokens containing whitespace cannot survive the round trip and are
// rejected with ErrBadToken before anything is written.
//
// Complexity: O(K+N+T) for K symbols, N states, T transitions.
func Encode(w io.Writer, a *core.Automaton) error {
	if a == nil {
		return ErrAutomatonNil
	}
	for _, sym := range a.Alphabet() {
		if err := checkToken(sym); err != nil {
			return err
		}
	}
	for _, st := range a.States() {
		if err := checkToken(st); err != nil {
			return err
		}
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, strings.Join(a.Alphabet(), " "))
	fmt.Fprintln(bw, strings.Join(a.States(), " "))
	fmt.Fprintln(bw, strings.Join(a.FinalStates(), " "))
	fmt.Fprintln(bw, a.InitialState())
	for _, tr := range a.Transitions() {
		fmt.Fprintf(bw, "%s %s %s\n", tr.From, tr.Symbol, tr.To)
	}

	return bw.Flush()
}

// Save encodes a into the file at path, replacing any previous content.
func Save(path string, a *core.Automaton) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, a); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// checkToken rejects tokens the whitespace-separated format cannot
// carry.
func checkToken(tok string) error {
	if strings.ContainsFunc(tok, unicode.IsSpace) {
		return fmt.Errorf("%w: %q", ErrBadToken, tok)
	}

	return nil
}
