package main

import (
	"fmt"
	"math/rand/v2"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qsearch"
)

func newMazeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Search a randomly generated maze for a path to the exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			size, _ := cmd.Flags().GetInt("size")
			freeProb, _ := cmd.Flags().GetFloat64("free-prob")
			if size < 2 {
				return fmt.Errorf("maze size must be >= 2, got %d", size)
			}

			// Budget enough moves to reach the far corner with slack.
			cfg.BitWidth = 2 * 2 * (size - 1)
			if cfg.MutationBits > cfg.BitWidth {
				cfg.MutationBits = cfg.BitWidth
			}

			var rng *rand.Rand
			if cfg.Seed != 0 {
				rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
			} else {
				rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
			}
			grid := qsearch.GenerateGrid(size, freeProb, rng)

			fmt.Println(grid)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			report, err := qsearch.RunMaze(ctx, cfg, grid)
			if err != nil {
				return err
			}

			printReport(report)
			if report.State == qsearch.StateConverged {
				moves, _ := report.Best.Moves()
				fmt.Printf("path: %v\n", moves)
			}
			return nil
		},
	}

	cmd.Flags().Int("size", 20, "Maze width and height")
	cmd.Flags().Float64("free-prob", 0.75, "Probability a cell is free")
	return cmd
}

func printReport(report *qsearch.Report) {
	fmt.Printf("run %s: %s after %d iterations (best score %.3f", report.RunID, report.State, report.Iterations, report.BestScore)
	if report.OracleErrors > 0 {
		fmt.Printf(", %d oracle errors", report.OracleErrors)
	}
	fmt.Printf(", %s)\n", report.Elapsed.Round(time.Millisecond))
}
