package main

import (
	"fmt"
	"math/bits"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/theapemachine/qsearch"
)

func newDeutschCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deutsch",
		Short: "Discriminate a built-in predicate as constant or balanced",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			width, _ := cmd.Flags().GetInt("width")
			kind, _ := cmd.Flags().GetString("predicate")
			if width < 1 || width > 64 {
				return fmt.Errorf("width must be in [1, 64], got %d", width)
			}
			cfg.BitWidth = width
			if cfg.MutationBits > cfg.BitWidth {
				cfg.MutationBits = cfg.BitWidth
			}

			f, err := predicateByName(kind, width)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			verdict, report, err := qsearch.RunDeutschJozsa(ctx, cfg, f)
			if err != nil {
				return err
			}

			printReport(report)
			fmt.Printf("verdict: %s\n", verdict)
			return nil
		},
	}

	cmd.Flags().Int("width", 16, "Predicate input width in bits")
	cmd.Flags().String("predicate", "parity", "Predicate under test: parity, zero, one, msb")
	return cmd
}

// predicateByName provides the built-in black boxes: parity and msb are
// balanced, zero and one are constant.
func predicateByName(name string, width int) (qsearch.Predicate, error) {
	switch name {
	case "parity":
		return func(x uint64) bool { return bits.OnesCount64(x)%2 == 1 }, nil
	case "msb":
		return func(x uint64) bool { return x&(uint64(1)<<(width-1)) != 0 }, nil
	case "zero":
		return func(x uint64) bool { return false }, nil
	case "one":
		return func(x uint64) bool { return true }, nil
	default:
		return nil, fmt.Errorf("unknown predicate %q", name)
	}
}
