// Package cli implements the tracklet command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmehra/tracklet/internal/config"
	"github.com/dmehra/tracklet/internal/store"
	"github.com/dmehra/tracklet/internal/workflow"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	ConfigPath string
	DBPath     string // overrides the configured db_path
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the tracklet CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:           "tracklet",
		Short:         "tracklet - track and search items",
		Long:          "A local item tracker with a structured search query language (fields, AND/OR/NOT, filters).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "config file path")
	cmd.PersistentFlags().StringVar(&opts.DBPath, "db", "", "database path (overrides config)")

	// Add subcommands
	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewLsCommand(opts))
	cmd.AddCommand(NewShowCommand(opts))
	cmd.AddCommand(NewSearchCommand(opts))
	cmd.AddCommand(NewStatusCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "tracklet.yaml"
	}
	return filepath.Join(home, ".tracklet", "config.yaml")
}

// openStore loads config, opens the database and seeds the workflow
// statuses. Callers own the returned store and must Close it.
func (o *RootOptions) openStore(ctx context.Context) (*store.Store, config.Config, error) {
	cfg, err := config.Load(o.ConfigPath)
	if err != nil {
		return nil, config.Config{}, WrapExitError(ExitCommandError, "load config", err)
	}
	if o.DBPath != "" {
		cfg.DBPath = o.DBPath
	}

	if dir := filepath.Dir(cfg.DBPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, config.Config{}, WrapExitError(ExitCommandError, "create database directory", err)
		}
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, config.Config{}, WrapExitError(ExitCommandError, "open database", err)
	}

	statuses, err := workflow.Load(cfg.WorkflowPath)
	if err != nil {
		st.Close()
		return nil, config.Config{}, WrapExitError(ExitCommandError, "load workflow", err)
	}
	if err := st.SeedStatuses(ctx, statuses); err != nil {
		st.Close()
		return nil, config.Config{}, WrapExitError(ExitCommandError, "seed statuses", err)
	}

	return st, cfg, nil
}
