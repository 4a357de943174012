package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/pkg/core/version"
)

func newVersionCmd(a *app) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			info := version.Get("cli")
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, info.Version)
				return
			}
			fmt.Fprintln(out, info.String())
			fmt.Fprintf(out, "  Library:    %s\n", version.Library)
			fmt.Fprintf(out, "  REPL:       %s\n", version.REPL)
			fmt.Fprintf(out, "  Git Commit: %s\n", info.GitCommit)
			fmt.Fprintf(out, "  Build Date: %s\n", info.BuildDate)
			fmt.Fprintf(out, "  Session:    %s\n", a.correlationID)
		},
	}
	cmd.Flags().BoolVarP(&short, "short", "s", false, "print the version number only")
	return cmd
}
