package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rngbias/adapters/rng"
	"rngbias/ports"
)

const version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		seqlen  int
		weights string
		seed    int64
	)

	cmd := &cobra.Command{
		Use:           "randseq",
		Short:         "Generate a random number sequence",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			var w []float64
			if weights != "" {
				if err := json.Unmarshal([]byte(weights), &w); err != nil {
					return fmt.Errorf("invalid option weights=%s, which must be a JSON list: %w", weights, err)
				}
			}
			if !cmd.Flags().Changed("seed") {
				seed = time.Now().UnixNano()
			}

			var gen ports.SequenceGenerator
			gen, err := rng.NewGenerator(seed, w)
			if err != nil {
				return err
			}

			seq, err := gen.Generate(cmd.Context(), seqlen)
			if err != nil {
				return err
			}
			fmt.Println(seq)
			return nil
		},
	}

	cmd.Flags().IntVarP(&seqlen, "seqlen", "n", 50, "Sequence length")
	cmd.Flags().StringVarP(&weights, "weights", "w", "", "Weights for choices (JSON, default to uniform)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed (default to current time)")

	return cmd
}
