package main

import (
	"github.com/spf13/cobra"
)

// createFlags are shared by the root command and create.
type createFlags struct {
	workspaces []string
	force      bool
	dryRun     bool
	copy       bool
	edit       bool
	hook       string
	noHook     bool
	args       []string
	envFile    string
}

func (f *createFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&f.workspaces, "workspace", "w", nil, "Additional workspace folder (repeatable)")
	cmd.Flags().BoolVar(&f.force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&f.dryRun, "dry-run", false, "Show the files without creating them")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "Copy the destination folder to the clipboard")
	cmd.Flags().BoolVarP(&f.edit, "edit", "e", false, "Open the created files in $VISUAL or $EDITOR")
	cmd.Flags().StringVar(&f.hook, "hook", "", "Run only this hook")
	cmd.Flags().BoolVar(&f.noHook, "no-hook", false, "Skip hooks")
	cmd.Flags().StringArrayVarP(&f.args, "arg", "a", nil, "Hook variable KEY=VALUE (repeatable)")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "Read hook variables from a dotenv file")
	cmd.MarkFlagsMutuallyExclusive("hook", "no-hook")
	cmd.MarkFlagDirname("workspace")
	cmd.MarkFlagFilename("env-file", "env")
}

func newCreateCmd() *cobra.Command {
	var flags createFlags

	cmd := &cobra.Command{
		Use:     "create",
		Short:   "Create files with the wizard",
		Aliases: []string{"new"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `Create files with the wizard.

Asks for the workspace (only when there is more than one), the template,
the suffixes (custom template only), the destination folder and the prefix.

Cancel at any step with esc; go back with shift+tab.`,
		Example: `  filebatch                      # Same as filebatch create
  filebatch create --dry-run     # Show what would be created
  filebatch create -w ~/code/api # Offer an extra workspace
  filebatch create --copy        # Copy the destination folder path
  filebatch create -e            # Open the new files in $EDITOR
  filebatch create --hook=open   # Run only the "open" hook`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCreate(cmd, flags)
		},
	}

	flags.register(cmd)
	return cmd
}

func newHereCmd() *cobra.Command {
	var flags createFlags

	cmd := &cobra.Command{
		Use:     "here [dir]",
		Short:   "Create files in a folder",
		GroupID: GroupCore,
		Args:    cobra.MaximumNArgs(1),
		Long: `Create files in a folder.

The workspace is the one containing the folder (the current directory by
default). Asks for the template, the suffixes (custom template only) and
the prefix.`,
		Example: `  filebatch here                    # Create in the current directory
  filebatch here src/components     # Create in src/components`,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return nil, cobra.ShellCompDirectiveFilterDirs
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			return runHere(cmd, dir, flags)
		},
	}

	flags.register(cmd)
	return cmd
}
