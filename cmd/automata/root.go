package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "automata",
	Short: "Finite automaton toolkit",
	Long:  "Automata loads plain-text automaton definitions, classifies words against them and rewrites nondeterministic machines into deterministic ones.",
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose progress on stderr")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	viper.SetEnvPrefix("AUTOMATA")
	viper.AutomaticEnv()
}
