package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/automata/autfile"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <machine.aut>",
	Short: "Summarize an automaton definition",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Bool("transitions", false, "List every transition rule")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	listRules, _ := cmd.Flags().GetBool("transitions")

	a, err := autfile.Load(args[0])
	if err != nil {
		return fmt.Errorf("loading automaton: %w", err)
	}

	st := a.Stats()
	fmt.Printf("alphabet:      %s\n", strings.Join(a.Alphabet(), " "))
	fmt.Printf("states:        %d\n", st.StateCount)
	fmt.Printf("finals:        %s\n", strings.Join(a.FinalStates(), " "))
	fmt.Printf("initial:       %s\n", a.InitialState())
	fmt.Printf("rules:         %d\n", st.TransitionCount)
	fmt.Printf("deterministic: %t\n", st.Deterministic)

	if listRules {
		fmt.Println()
		for _, tr := range a.Transitions() {
			fmt.Printf("%s --%s--> %s\n", tr.From, tr.Symbol, tr.To)
		}
	}

	return nil
}
