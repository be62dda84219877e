// Package cli implements the grove command line.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/billie-coop/grove/internal/config"
)

// app carries state shared by all subcommands once the root command has
// loaded the configuration.
type app struct {
	configPath string
	logLevel   string

	manager *config.Manager
	cfg     *config.Config
	logger  *slog.Logger
}

// NewRootCommand builds the grove command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "grove",
		Short: "Build, print and reshape a concurrent family tree",
		Long: `grove drives the concurrent tree library with the Stark family.

It builds Richard Stark's descendants, prints them, and moves Jon Snow from
Ned to Lyanna. Other commands render a report, run a concurrent stress
workload, or open an interactive browser.

Examples:
  grove show               # styled tree before and after the move
  grove show --plain       # plain indented listing
  grove stats              # markdown report
  grove stress -w 16 -n 50000
  grove browse --churn 500ms`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", config.DefaultPath("."), "config file (.json or .yaml)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level (debug, info, warn, error)")

	root.AddCommand(
		newShowCommand(a),
		newStatsCommand(a),
		newStressCommand(a),
		newBrowseCommand(a),
		newConfigCommand(a),
	)
	return root
}

// Execute runs the root command with the given arguments.
func Execute(args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func (a *app) load(logOut io.Writer) error {
	a.manager = config.NewManager(a.configPath)
	if err := a.manager.Load(); err != nil {
		return err
	}
	a.cfg = a.manager.Get()

	level := a.cfg.LogLevel
	if a.logLevel != "" {
		level = a.logLevel
	}
	logger, err := newLogger(logOut, level, a.cfg.LogFormat)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
