// SPDX-License-Identifier: MIT

package autfile

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/automata/core"
)

// maxLineBytes caps a single input line; bufio.Scanner's default is too
// small for machine-generated transition tables.
const maxLineBytes = 1 << 20

// transitionFields is the exact token count of a transition line.
const transitionFields = 3

// headerSections names the four positional header lines, in order.
var headerSections = [...]string{"alphabet", "states", "final states", "initial state"}

// Parse reads one automaton definition from r and validates it through
// core.New. Shape problems return *FormatError; a well-shaped file
// describing a broken automaton returns core's *StructuralError
// untouched.
//
// Complexity: O(L) over the input length, plus core.New validation.
func Parse(r io.Reader) (*core.Automaton, error) {
	in := &reader{sc: bufio.NewScanner(r)}
	in.sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// Four positional header lines. Blank lines count here: a blank
	// line three is the legal spelling of "no final states".
	header := make([][]string, len(headerSections))
	for i := range headerSections {
		text, ok := in.next()
		if !ok {
			if err := in.sc.Err(); err != nil {
				return nil, fmt.Errorf("autfile: read: %w", err)
			}

			return nil, &FormatError{Err: ErrMissingSection, Detail: headerSections[i]}
		}
		header[i] = strings.Fields(text)
	}
	if len(header[3]) != 1 {
		return nil, &FormatError{
			Line:   in.line,
			Err:    ErrBadInitialLine,
			Detail: fmt.Sprintf("want exactly one state name, got %d tokens", len(header[3])),
		}
	}

	// Everything after the header is transition rules, one per line.
	var ts []core.Transition
	for {
		text, ok := in.next()
		if !ok {
			break
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		if len(fields) != transitionFields {
			return nil, &FormatError{
				Line:   in.line,
				Err:    ErrBadTransitionLine,
				Detail: fmt.Sprintf("want origin, symbol and destination, got %d tokens", len(fields)),
			}
		}
		ts = append(ts, core.Transition{From: fields[0], Symbol: fields[1], To: fields[2]})
	}
	if err := in.sc.Err(); err != nil {
		return nil, fmt.Errorf("autfile: read: %w", err)
	}

	return core.New(header[0], header[1], header[2], header[3][0], ts)
}

// ParseBytes is Parse over an in-memory definition.
func ParseBytes(b []byte) (*core.Automaton, error) {
	return Parse(bytes.NewReader(b))
}

// Load reads and parses the definition file at path.
func Load(path string) (*core.Automaton, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseBytes(b)
}

// reader walks input line by line, tracking 1-based positions.
type reader struct {
	sc   *bufio.Scanner
	line int
}

func (in *reader) next() (string, bool) {
	if !in.sc.Scan() {
		return "", false
	}
	in.line++

	return in.sc.Text(), true
}
