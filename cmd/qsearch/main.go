package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "qsearch",
		Short: "Pseudo-qubit amplification search experiments",
		Long: `qsearch runs quantum-inspired search heuristics on classical hardware.

Each pseudo-qubit is a goroutine toggling a bit on its own randomized
clock; a population of registers explores the search space and an
amplification loop reinforces promising candidates, in the spirit of
Grover-style amplitude amplification.`,
	}

	rootCmd.PersistentFlags().String("config", "", "Path to a YAML run configuration")
	rootCmd.PersistentFlags().Uint64("seed", 0, "Random seed (0 = time-seeded)")

	rootCmd.AddCommand(
		newVersionCmd(),
		newMazeCmd(),
		newDeutschCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("qsearch version %s\n", version)
		},
	}
}
