package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/internal/levenshtein"
	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/dynstr"
)

// maxRecursiveInput bounds the combined input length for --recursive
const maxRecursiveInput = 24

func newDistanceCmd(a *app) *cobra.Command {
	var recursive bool

	cmd := &cobra.Command{
		Use:   "distance <a> <b>",
		Short: "Levenshtein distance between two values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := dynstr.FromString(args[0])
			if err != nil {
				return a.fail("failed to build value", err)
			}
			defer x.Destroy()
			y, err := dynstr.FromString(args[1])
			if err != nil {
				return a.fail("failed to build value", err)
			}
			defer y.Destroy()

			var d int
			if recursive {
				if x.Len()+y.Len() > maxRecursiveInput {
					return mdwerror.Newf("inputs too long for --recursive (max %d bytes combined)", maxRecursiveInput).
						WithCode(mdwerror.CodeInvalidInput)
				}
				d = levenshtein.Recursive(x, y)
			} else {
				d = levenshtein.Distance(x, y)
			}

			fmt.Fprintln(cmd.OutOrStdout(), d)
			return nil
		},
	}

	cmd.Flags().BoolVar(&recursive, "recursive", false, "use the exponential recursive definition")
	return cmd
}
