package main

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/raphi011/filebatch/internal/config"
	"github.com/raphi011/filebatch/internal/log"
	"github.com/raphi011/filebatch/internal/output"
	"github.com/raphi011/filebatch/internal/ui/static"
	"github.com/raphi011/filebatch/internal/ui/styles"
	"github.com/raphi011/filebatch/internal/workspace"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "config",
		Short:   "Manage configuration",
		Aliases: []string{"cfg"},
		GroupID: GroupConfig,
		Long: `Manage filebatch configuration.

Global config: ~/.config/filebatch/config.toml ($FILEBATCH_CONFIG overrides)
Local config:  .filebatch.toml or .filebatch.yaml (in a workspace root)`,
		Example: `  filebatch config init          # Create default global config
  filebatch config init --local  # Create local workspace config
  filebatch config show          # Show effective config
  filebatch config hooks         # List available hooks`,
	}

	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	cmd.AddCommand(newConfigHooksCmd())

	return cmd
}

func newConfigInitCmd() *cobra.Command {
	var (
		force  bool
		stdout bool
		local  bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create default config file",
		Args:  cobra.NoArgs,
		Long: `Create default config file.

Without flags, creates the global config.
With --local, creates .filebatch.toml in the root of the current workspace.`,
		Example: `  filebatch config init           # Create global config
  filebatch config init --local   # Create local workspace config
  filebatch config init -f        # Overwrite existing config
  filebatch config init -s        # Print config to stdout`,
		RunE: func(cmd *cobra.Command, args []string) error {
			content := config.DefaultConfig()
			if local {
				content = config.DefaultLocalConfig()
			}

			out := output.FromContext(cmd.Context())
			if stdout {
				out.Printf("%s", content)
				return nil
			}

			var path string
			if local {
				root, err := currentWorkspace(cmd)
				if err != nil {
					return err
				}
				path = filepath.Join(root.Path, config.LocalConfigFileName)
			} else {
				p, err := config.Path()
				if err != nil {
					return err
				}
				path = p
			}

			if err := writeConfig(path, content, force); err != nil {
				return err
			}
			out.Printf("Created config file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config")
	cmd.Flags().BoolVarP(&stdout, "stdout", "s", false, "Print config to stdout")
	cmd.Flags().BoolVar(&local, "local", false, "Create .filebatch.toml in the workspace root instead of global config")

	return cmd
}

func writeConfig(path, content string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists: %s (use -f to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0644)
}

func newConfigShowCmd() *cobra.Command {
	var (
		jsonOutput bool
		yamlOutput bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show effective configuration",
		Args:  cobra.NoArgs,
		Long: `Show effective configuration.

Inside a workspace the local config is merged over the global one.`,
		Example: `  filebatch config show         # Show config
  filebatch config show --json  # Output as JSON
  filebatch config show --yaml  # Output as YAML`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			resolver, _, err := shared(ctx)
			if err != nil {
				return err
			}

			root, err := currentWorkspace(cmd)
			if err != nil {
				return err
			}

			eff, err := resolver.ConfigForWorkspace(root.Path)
			if err != nil {
				l.Printf("Warning: failed to load local config: %v (using global config)\n", err)
				eff = resolver.Global()
			}

			switch {
			case jsonOutput:
				return out.JSON(eff)
			case yamlOutput:
				return out.YAML(eff)
			}

			globalPath, _ := config.Path()
			out.Printf("Global config: %s\n", globalPath)
			out.Printf("Workspace:     %s (%s)\n", root.Name, root.Path)
			out.Println()
			out.Printf("theme.name: %s\n", eff.Theme.Name)
			out.Printf("theme.mode: %s\n", eff.Theme.Mode)
			out.Printf("overwrite: %v\n", eff.Overwrite)
			out.Printf("templates: %d configured\n", len(eff.Templates))
			out.Printf("hooks: %d configured\n", len(eff.Hooks))
			out.Printf("workspaces: %d configured\n", len(eff.Workspaces))
			for _, ws := range eff.Workspaces {
				out.Printf("  %s: %s\n", ws.Name, ws.Path)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}

func newConfigHooksCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "hooks",
		Short: "List available hooks",
		Args:  cobra.NoArgs,
		Long: `List available hooks.

Inside a workspace, local hooks are merged over the global ones.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			l := log.FromContext(ctx)
			out := output.FromContext(ctx)

			resolver, _, err := shared(ctx)
			if err != nil {
				return err
			}
			root, err := currentWorkspace(cmd)
			if err != nil {
				return err
			}
			eff, err := resolver.ConfigForWorkspace(root.Path)
			if err != nil {
				l.Printf("Warning: failed to load local config: %v (using global config)\n", err)
				eff = resolver.Global()
			}

			if jsonOutput {
				return out.JSON(eff.Hooks)
			}

			if len(eff.Hooks) == 0 {
				out.Println("No hooks configured")
				return nil
			}

			rows := make([][]string, 0, len(eff.Hooks))
			for _, name := range slices.Sorted(maps.Keys(eff.Hooks)) {
				h := eff.Hooks[name]
				on := strings.Join(h.On, ", ")
				if on == "" {
					on = styles.MutedStyle.Render("--hook only")
				}
				rows = append(rows, []string{name, on, h.Command})
			}
			out.Printf("%s", static.RenderTable([]string{"NAME", "ON", "COMMAND"}, rows))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	return cmd
}

// currentWorkspace returns the configured workspace containing the working
// directory, or the working directory itself.
func currentWorkspace(cmd *cobra.Command) (workspace.Folder, error) {
	resolver, workDir, err := shared(cmd.Context())
	if err != nil {
		return workspace.Folder{}, err
	}
	folders := workspace.Resolve(resolver.Global().Workspaces, nil, workDir)
	if f, ok := workspace.Identify(folders, workDir); ok {
		return f, nil
	}
	return workspace.Folder{Name: filepath.Base(workDir), Path: workDir}, nil
}
