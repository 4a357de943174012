package cmd

import (
	"bufio"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/internal/ops"
	"github.com/msto63/dynstr/pkg/core/log"
	"github.com/msto63/dynstr/pkg/dynstr"
)

func newScanCmd(a *app) *cobra.Command {
	var (
		steps []string
		debug bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Split stdin into tokens and process each one",
		Long: `Scan reads whitespace separated tokens from stdin, runs every --op on
each token and prints one result per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := ops.ParseLines(steps)
			if err != nil {
				return err
			}

			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()
			count := 0

			for {
				token, err := dynstr.ScanToken(in)
				if errors.Is(err, dynstr.ErrUnexpectedEndOfInput) {
					break
				}
				if err != nil {
					return a.fail("failed to scan input", err)
				}
				count++

				reports, err := a.registry.ApplyAll(&token, parsed)
				for _, r := range reports {
					fmt.Fprintln(out, r)
				}
				if err != nil {
					return a.fail(fmt.Sprintf("token %d", count), err)
				}
				if err := a.writeValue(out, token, debug); err != nil {
					return err
				}
				token.Destroy()
			}

			a.logger.Debug("input scanned", log.Int("tokens", count))
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&steps, "op", "o", nil, "operation to apply to each token, repeatable")
	cmd.Flags().BoolVarP(&debug, "debug", "d", false, "print the debug representation")
	return cmd
}
