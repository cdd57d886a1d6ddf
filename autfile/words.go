// SPDX-License-Identifier: MIT

package autfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Tokenize splits one word into input symbols. A word containing any
// whitespace is split on it, so multi-rune symbols stay intact ("go stop
// go"). A word without whitespace splits one symbol per rune ("abba").
// The empty string is the empty word and yields nil.
//
// Complexity: O(len(word)).
func Tokenize(word string) []string {
	if word == "" {
		return nil
	}
	if strings.ContainsFunc(word, unicode.IsSpace) {
		return strings.Fields(word)
	}

	out := make([]string, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		out = append(out, string(r))
	}

	return out
}

// ParseWords reads a word list, one word per line, and tokenizes each.
// Blank lines separate nothing and are skipped; feed Tokenize("")
// directly when the empty word itself must be classified.
//
// Complexity: O(L) over the input length.
func ParseWords(r io.Reader) ([][]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var words [][]string
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		words = append(words, Tokenize(text))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("autfile: read: %w", err)
	}

	return words, nil
}
