package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/automata/autfile"
	"github.com/katalvlaran/automata/powerset"
)

var determinizeCmd = &cobra.Command{
	Use:   "determinize <machine.aut>",
	Short: "Rewrite an automaton into a deterministic one",
	Long: `Determinize runs the subset construction and writes the resulting
deterministic automaton in the same five-section format, to stdout or
to --output. Constructed states are named by discovery order: q0 is the
initial subset, then q1, q2, ...`,
	Args: cobra.ExactArgs(1),
	RunE: runDeterminize,
}

func init() {
	determinizeCmd.Flags().StringP("output", "o", "", "Write the result to a file instead of stdout")
	determinizeCmd.Flags().String("prefix", powerset.DefaultStatePrefix, "Name prefix for constructed states")
	determinizeCmd.Flags().Int("max-states", 0, "Abort once this many states got constructed (0 = no cap)")

	rootCmd.AddCommand(determinizeCmd)
}

func runDeterminize(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("output")
	prefix, _ := cmd.Flags().GetString("prefix")
	maxStates, _ := cmd.Flags().GetInt("max-states")
	verbose := viper.GetBool("verbose")

	a, err := autfile.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading automaton: %w", err)
	}

	opts := []powerset.Option{
		powerset.WithStatePrefix(prefix),
		powerset.WithMaxStates(maxStates),
	}
	if verbose {
		opts = append(opts, powerset.WithOnSubset(func(id string, members []string) {
			fmt.Fprintf(os.Stderr, "[subset] %s = %v\n", id, members)
		}))
	}

	dfa, err := powerset.Determinize(a, opts...)
	if err != nil {
		return fmt.Errorf("determinizing: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[result] %d states, %d rules\n", dfa.StateCount(), dfa.TransitionCount())
	}

	if outPath == "" {
		return autfile.Encode(os.Stdout, dfa)
	}
	if err := autfile.Save(outPath, dfa); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "[result] written to %s\n", outPath)
	}

	return nil
}
