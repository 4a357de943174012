package cmd

import (
	"fmt"
	"math/rand/v2"
	"strconv"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/dynstr"
)

func newRandCmd(a *app) *cobra.Command {
	var (
		seed  uint64
		count int
	)

	cmd := &cobra.Command{
		Use:   "rand <length>",
		Short: "Generate random alphanumeric fixtures",
		Long: `Rand prints random alphanumeric values of the given length. A seed from
--seed or random.seed in the config makes the output reproducible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return mdwerror.Newf("invalid length %q", args[0]).WithCode(mdwerror.CodeInvalidInput)
			}

			if !cmd.Flags().Changed("seed") {
				seed = a.cfg.Random.Seed
			}
			var r *rand.Rand
			if seed != 0 {
				r = dynstr.NewRand(seed)
			}

			out := cmd.OutOrStdout()
			for range count {
				s, err := dynstr.RandomFrom(r, n)
				if err != nil {
					return a.fail("failed to generate value", err)
				}
				fmt.Fprintln(out, s.String())
				s.Destroy()
			}
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "seed for reproducible output (0 picks a fresh seed)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of values to print")
	return cmd
}
