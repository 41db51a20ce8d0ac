package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/filebatch/internal/config"
	"github.com/raphi011/filebatch/internal/log"
	"github.com/raphi011/filebatch/internal/output"
	"github.com/raphi011/filebatch/internal/prompt"
	"github.com/raphi011/filebatch/internal/ui/styles"
)

// Command group IDs for organizing help output
const (
	GroupCore   = "core"
	GroupConfig = "config"
)

// requireTerminal is replaced in tests.
var requireTerminal = prompt.RequireTerminal

// newRootCmd builds the command tree. Running it without a subcommand
// starts the create wizard.
func newRootCmd() *cobra.Command {
	var (
		verbose bool
		quiet   bool
		create  createFlags
	)

	cmd := &cobra.Command{
		Use:   "filebatch",
		Short: "Create a batch of files from a template",
		Long: `filebatch creates a set of related files in one go.

Pick a workspace, a template and a destination folder, enter a prefix, and
every file of the template is created as {prefix}{suffix}.

Global config: ~/.config/filebatch/config.toml
Local config:  .filebatch.toml (in a workspace root)`,
		SilenceUsage:               true,
		SilenceErrors:              true,
		SuggestionsMinimumDistance: 2, // Enable typo suggestions
		Args:                       cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose && quiet {
				return fmt.Errorf("--verbose and --quiet cannot be used together")
			}

			// Skip setup for completion and help commands
			if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
				return nil
			}

			ctx := cmd.Context()
			logger := log.New(cmd.ErrOrStderr(), verbose, quiet)
			ctx = log.WithLogger(ctx, logger)
			ctx = output.WithPrinter(ctx, cmd.OutOrStdout())

			if r := config.ResolverFromContext(ctx); r != nil {
				styles.Init(r.Global().Theme)
			}

			cmd.SetContext(ctx)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, create)
		},
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")
	create.register(cmd)

	cmd.Version = versionString()
	cmd.SetVersionTemplate("{{.Version}}\n")

	cmd.AddGroup(
		&cobra.Group{ID: GroupCore, Title: "Core Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Core commands
	cmd.AddCommand(newCreateCmd())
	cmd.AddCommand(newHereCmd())
	cmd.AddCommand(newTemplatesCmd())
	cmd.AddCommand(newRecentCmd())

	// Config commands
	cmd.AddCommand(newConfigCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newCompletionCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newContext loads the global config and stores everything commands share
// on the context.
func newContext(ctx context.Context) (context.Context, error) {
	loaded, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		loaded = config.Default()
	}

	workDir, err := os.Getwd()
	if err != nil {
		return ctx, fmt.Errorf("failed to get working directory: %w", err)
	}

	ctx = config.WithResolver(ctx, config.NewResolver(&loaded))
	ctx = config.WithWorkDir(ctx, workDir)
	return ctx, nil
}

// Execute runs the root command and exits non-zero on error.
func Execute() {
	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ctx, err := newContext(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "filebatch: %v\n", err)
		os.Exit(1)
	}

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "filebatch: %v\n", err)
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "Run 'filebatch -h' for help")
		cancel()
		os.Exit(1)
	}
}
