package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newOpsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List available operations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, op := range a.registry.List() {
				line := fmt.Sprintf("  %-32s %s", op.Synopsis(), op.Description)
				if len(op.Aliases) > 0 {
					line += " (" + strings.Join(op.Aliases, ", ") + ")"
				}
				fmt.Fprintln(out, line)
			}
		},
	}
}
