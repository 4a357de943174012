package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/internal/ops"
	"github.com/msto63/dynstr/internal/tui"
	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
	"github.com/msto63/dynstr/pkg/dynstr"
)

func newReplCmd(a *app) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "repl [initial]",
		Short: "Start an interactive session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// the alternate screen owns the terminal, so logs go to a file or nowhere
			logger := log.Discard()
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return mdwerror.Wrap(err, "failed to open log file").
						WithCode(mdwerror.CodeIOFailure).
						WithDetail("path", logFile)
				}
				defer f.Close()
				logger = a.logger.WithOutput(f)
			}
			dynstr.SetLogger(logger)

			initial := ""
			if len(args) == 1 {
				initial = args[0]
			}

			return tui.Run(tui.Options{
				Registry:      ops.Default(logger),
				Initial:       initial,
				History:       a.cfg.REPL.History,
				StatusTimeout: a.cfg.REPL.StatusTimeout.Duration,
				Logger:        logger,
			})
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "write session logs to this file")
	return cmd
}
