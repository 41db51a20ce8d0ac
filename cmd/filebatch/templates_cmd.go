package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/filebatch/internal/output"
	"github.com/raphi011/filebatch/internal/ui/static"
	"github.com/raphi011/filebatch/internal/ui/styles"
)

func newTemplatesCmd() *cobra.Command {
	var (
		jsonOutput bool
		yamlOutput bool
	)

	cmd := &cobra.Command{
		Use:     "templates",
		Short:   "List templates",
		Aliases: []string{"ls"},
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the templates available in the current workspace.

Local templates replace global ones with the same label.`,
		Example: `  filebatch templates         # List templates
  filebatch templates --json  # Output as JSON`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			resolver, _, err := shared(ctx)
			if err != nil {
				return err
			}
			root, err := currentWorkspace(cmd)
			if err != nil {
				return err
			}

			list, err := templateSource(resolver)(root)
			if err != nil {
				return err
			}

			switch {
			case jsonOutput:
				return out.JSON(list)
			case yamlOutput:
				return out.YAML(list)
			}

			if len(list) == 0 {
				out.Println(styles.MutedStyle.Render("No templates configured (run 'filebatch config init')"))
				return nil
			}
			out.Printf("%s", static.TemplateTable(list))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().BoolVar(&yamlOutput, "yaml", false, "Output as YAML")
	cmd.MarkFlagsMutuallyExclusive("json", "yaml")

	return cmd
}
