// Package cli is the stash command line: one cobra command per bookmark
// operation plus `serve` for the HTTP API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/MrSnakeDoc/stash/internal/config"
)

// globalFlags override the STASH_* environment for a single invocation.
type globalFlags struct {
	backend    string
	dataDir    string
	sqlitePath string
	slot       string
	verbose    bool
}

// notifiedError marks an error the user has already been told about.
type notifiedError struct{ err error }

func (e notifiedError) Error() string { return e.err.Error() }
func (e notifiedError) Unwrap() error { return e.err }

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	flags := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "stash",
		Short: "Save URLs with tags and find them again",
		Long: `stash keeps a list of bookmarked URLs with free-form tags.

The whole collection is stored as one JSON document in a slot of the configured
backend (file, sqlite, redis or memory). Use the subcommands to manage it from
the terminal, or "stash serve" to expose the same operations over HTTP.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.backend, "backend", "", "storage backend: file, sqlite, redis or memory (env STASH_BACKEND)")
	pf.StringVar(&flags.dataDir, "data-dir", "", "directory of the file backend (env STASH_DATA_DIR)")
	pf.StringVar(&flags.sqlitePath, "sqlite-path", "", "database of the sqlite backend (env STASH_SQLITE_PATH)")
	pf.StringVar(&flags.slot, "slot", "", "slot the collection is stored under (env STASH_SLOT)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log storage activity to stderr")

	cmd.AddCommand(
		serveCmd(flags),
		addCmd(flags),
		rmCmd(flags),
		lsCmd(flags),
		searchCmd(flags),
		clearCmd(flags),
		importCmd(flags),
		versionCmd(),
	)
	return cmd
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	return run(NewRootCmd(), os.Args[1:], os.Stderr)
}

func run(cmd *cobra.Command, args []string, stderr io.Writer) int {
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		var notified notifiedError
		if !errors.As(err, &notified) {
			fmt.Fprintln(stderr, color.RedString("Error: %v", err))
		}
		return 1
	}
	return 0
}

// loadConfig reads the environment and applies the command line overrides.
// quiet drops logging to errors unless --verbose is set, so one-shot commands
// only print their own output.
func (f *globalFlags) loadConfig(quiet bool) (*config.Config, error) {
	cfg := config.Load()

	if f.backend != "" {
		cfg.Backend = f.backend
	}
	if f.dataDir != "" {
		cfg.DataDir = f.dataDir
	}
	if f.sqlitePath != "" {
		cfg.SQLitePath = f.sqlitePath
	}
	if f.slot != "" {
		cfg.Slot = f.slot
	}
	switch {
	case f.verbose:
		cfg.LogLevel = "debug"
	case quiet:
		cfg.LogLevel = "error"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
