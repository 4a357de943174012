package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/internal/ops"
	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
	"github.com/msto63/dynstr/pkg/dynstr"
)

func newApplyCmd(a *app) *cobra.Command {
	var (
		steps     []string
		fromStdin bool
		debug     bool
	)

	cmd := &cobra.Command{
		Use:   "apply [flags] [text]",
		Short: "Run a chain of operations on a value",
		Long: `Apply builds a value from the argument (or stdin with --stdin) and runs
every --op in order. Reports from query operations are printed before the
final value.

Example:
  dynstr apply "  hello world  " --op trim --op capitalize --op "replace o 0"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args, fromStdin)
			if err != nil {
				return err
			}

			parsed, err := ops.ParseLines(steps)
			if err != nil {
				return err
			}

			s, err := dynstr.FromString(input)
			if err != nil {
				return a.fail("failed to build value", err)
			}
			defer s.Destroy()

			reports, err := a.registry.ApplyAll(&s, parsed)
			out := cmd.OutOrStdout()
			for _, r := range reports {
				fmt.Fprintln(out, r)
			}
			if err != nil {
				return a.fail("operation chain failed", err)
			}

			a.logger.Debug("chain applied", log.Fields{
				"steps": len(parsed),
				"size":  s.Len(),
				"cap":   s.Cap(),
			})
			return a.writeValue(out, s, debug)
		},
	}

	cmd.Flags().StringArrayVarP(&steps, "op", "o", nil, "operation to apply, repeatable (e.g. \"pad-left 8 0\")")
	cmd.Flags().BoolVar(&fromStdin, "stdin", false, "read the value from stdin")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "print the debug representation")
	return cmd
}

func readInput(cmd *cobra.Command, args []string, fromStdin bool) (string, error) {
	switch {
	case fromStdin && len(args) > 0:
		return "", mdwerror.New("use either an argument or --stdin").WithCode(mdwerror.CodeInvalidInput)
	case fromStdin:
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", mdwerror.Wrap(err, "failed to read stdin").WithCode(mdwerror.CodeIOFailure)
		}
		return strings.TrimSuffix(string(data), "\n"), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", nil
	}
}
