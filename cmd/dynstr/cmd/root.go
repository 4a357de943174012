package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/msto63/dynstr/internal/ops"
	"github.com/msto63/dynstr/internal/tui"
	"github.com/msto63/dynstr/pkg/core/config"
	mdwerror "github.com/msto63/dynstr/pkg/core/error"
	"github.com/msto63/dynstr/pkg/core/log"
	"github.com/msto63/dynstr/pkg/dynstr"
)

// app carries the state shared by all subcommands of one invocation
type app struct {
	cfgFile   string
	verbose   bool
	logFormat string
	styled    bool

	command       string
	cfg           *config.Config
	logger        *log.Logger
	correlationID string
	registry      *ops.Registry
	restore       func()
}

// Execute runs the dynstr command line
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "dynstr",
		Short: "dynstr - dynamic byte strings",
		Long: `dynstr exposes the dynstr byte string library on the command line.

Commands:
  apply     - run a chain of operations on a value
  scan      - split stdin into tokens and process each one
  parse     - parse integers and decimals
  rand      - generate random alphanumeric fixtures
  distance  - Levenshtein distance between two values
  ops       - list available operations
  repl      - interactive session`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(*cobra.Command, []string) { a.teardown() },
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $DYNSTR_CONFIG or ./configs/dynstr.toml)")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output (debug log level)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: json, text or console")
	flags.BoolVar(&a.styled, "styled", false, "render debug output with colors")

	rootCmd.AddCommand(
		newVersionCmd(a),
		newApplyCmd(a),
		newScanCmd(a),
		newParseCmd(a),
		newRandCmd(a),
		newDistanceCmd(a),
		newOpsCmd(a),
		newReplCmd(a),
	)
	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := a.loadConfig()
	if err != nil {
		return err
	}

	level := cfg.Level()
	if a.verbose {
		level = log.LevelDebug
	}
	format := cfg.Format()
	if a.logFormat != "" {
		if format, err = log.ParseFormat(a.logFormat); err != nil {
			return mdwerror.Wrap(err, "invalid --log-format").WithCode(mdwerror.CodeInvalidInput)
		}
	}

	a.command = cmd.Name()
	a.correlationID = uuid.NewString()
	a.logger = log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: cmd.ErrOrStderr(),
		Name:   cfg.General.Name,
	}).WithCorrelationID(a.correlationID).WithField("command", cmd.Name())

	dynstr.SetLogger(a.logger)
	a.restore = dynstr.SetAllocator(dynstr.HeapAllocator{Limit: cfg.Buffer.MaxCapacity})
	a.registry = ops.Default(a.logger)
	a.cfg = cfg

	a.logger.Debug("configuration loaded", log.Fields{
		"config":       a.cfgFile,
		"max_capacity": cfg.Buffer.MaxCapacity,
		"log_level":    level.String(),
	})
	return nil
}

func (a *app) teardown() {
	if a.restore != nil {
		a.restore()
		a.restore = nil
	}
	dynstr.SetLogger(nil)
}

func (a *app) loadConfig() (*config.Config, error) {
	if a.cfgFile != "" {
		return config.Load(a.cfgFile)
	}
	cfg, err := config.LoadFromEnv()
	if err != nil && os.Getenv(config.EnvVar) == "" && mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		return config.Default(), nil
	}
	return cfg, err
}

func (a *app) useStyles() bool {
	return a.styled || (a.cfg != nil && a.cfg.Output.Styled)
}

// writeValue prints s as plain content or in the debug representation
func (a *app) writeValue(w io.Writer, s dynstr.String, debug bool) error {
	if !debug {
		if err := s.Print(w); err != nil {
			return err
		}
		_, err := fmt.Fprintln(w)
		return err
	}
	if a.useStyles() {
		_, err := fmt.Fprintln(w, tui.RenderDebug(s))
		return err
	}
	return s.Debug(w)
}

// fail logs err and returns it wrapped with msg and the running command
func (a *app) fail(msg string, err error) error {
	wrapped := mdwerror.Wrap(err, msg).WithContext(a.command)
	a.logger.LogError(wrapped)
	return wrapped
}
