// Package cli builds the tagpicker command tree.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"tagpicker/internal/config"
	"tagpicker/internal/logging"
	"tagpicker/internal/tags"
	"tagpicker/ui/console"
	"tagpicker/ui/tui"

	"github.com/spf13/cobra"
)

// Version is overridden at build time with -ldflags "-X tagpicker/internal/cli.Version=...".
var Version = "dev"

type options struct {
	configPath string
	logFile    string
	logLevel   string
	noMouse    bool
}

// runTUI is swapped out in tests.
var runTUI = tui.Start

// NewRootCommand returns the tagpicker command with its subcommands.
func NewRootCommand() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "tagpicker",
		Short: "Pick tags from a suggested list",
		Long: `tagpicker shows two lists, "Selected Tags" on top and "Suggested Tags"
below. Click a tag (or press enter on it) to slide it into the other list.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := setup(opts)
			if err != nil {
				return err
			}
			defer closer.Close()

			slog.Info("starting tag picker", "seed", len(cfg.Tags.Seed), "mouse", cfg.UI.Mouse)
			if err := runTUI(cfg, tags.NewStore(cfg.Tags.Seed)); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&opts.logFile, "log-file", "", "write logs to this file")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse support")

	root.AddCommand(newListCommand(opts))
	root.AddCommand(newVersionCommand())
	return root
}

func newListCommand(opts *options) *cobra.Command {
	var selectTags []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the tag lists without starting the TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, closer, err := setup(opts)
			if err != nil {
				return err
			}
			defer closer.Close()

			store := tags.NewStore(cfg.Tags.Seed)
			store.InitializeSuggested()
			for _, t := range selectTags {
				store.MarkRotated(t)
				store.Select(t)
			}
			console.Print(cmd.OutOrStdout(), console.Snapshot{
				Selected:  store.Selected(),
				Suggested: store.Suggested(),
				Rotated:   store.Rotated,
			})
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&selectTags, "select", nil, "tags to move into the selected list first")
	return cmd
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tagpicker version %s\n", Version)
		},
	}
}

// setup loads config, applies flag overrides and installs the logger.
func setup(opts *options) (*config.Config, io.Closer, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if opts.logFile != "" {
		cfg.Log.File = opts.logFile
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.noMouse {
		cfg.UI.Mouse = false
	}

	closer, err := logging.Setup(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("setting up logging: %w", err)
	}
	return cfg, closer, nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
