package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/automata/autfile"
	"github.com/katalvlaran/automata/simulate"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <machine.aut> [word...]",
	Short: "Classify words against an automaton",
	Long: `Classify runs each word through the automaton and prints one verdict
per line: ACCEPTED, REJECTED or INVALID.

Words come from the positional arguments, from --words-file, or from
stdin when neither is given. A word containing whitespace is split into
multi-rune symbols; otherwise every rune is one symbol. Pass "" for the
empty word.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().String("words-file", "", "Read words from a file, one per line (- for stdin)")
	classifyCmd.Flags().Bool("trace", false, "Print every applied transition to stderr")
	classifyCmd.Flags().Bool("full-nfa", false, "Follow every nondeterministic branch instead of the first listed")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	wordsFile, _ := cmd.Flags().GetString("words-file")
	trace, _ := cmd.Flags().GetBool("trace")
	fullNFA, _ := cmd.Flags().GetBool("full-nfa")
	verbose := viper.GetBool("verbose")

	a, err := autfile.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading automaton: %w", err)
	}
	if verbose {
		st := a.Stats()
		fmt.Fprintf(os.Stderr, "[machine] %d states, %d symbols, %d rules, deterministic=%t\n",
			st.StateCount, st.SymbolCount, st.TransitionCount, st.Deterministic)
	}

	// Positional words first, then the optional file, then stdin as the
	// fallback source.
	var words [][]string
	for _, raw := range args[1:] {
		words = append(words, autfile.Tokenize(raw))
	}
	if wordsFile != "" {
		fromFile, err := readWords(wordsFile)
		if err != nil {
			return err
		}
		words = append(words, fromFile...)
	}
	if len(args) == 1 && wordsFile == "" {
		words, err = autfile.ParseWords(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading words: %w", err)
		}
	}

	var opts []simulate.Option
	if fullNFA {
		opts = append(opts, simulate.WithFullExploration())
	}
	if trace {
		opts = append(opts, simulate.WithOnStep(func(from, symbol, to string) {
			fmt.Fprintf(os.Stderr, "[trace] %s --%s--> %s\n", from, symbol, to)
		}))
	}

	for i, w := range words {
		out, err := simulate.Classify(a, w, opts...)
		if err != nil {
			return fmt.Errorf("classifying word %d: %w", i+1, err)
		}
		fmt.Println(out)
	}

	return nil
}

// readWords loads a word list from path, with "-" meaning stdin.
func readWords(path string) ([][]string, error) {
	if path == "-" {
		return autfile.ParseWords(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading words file: %w", err)
	}
	defer f.Close()

	return autfile.ParseWords(f)
}
