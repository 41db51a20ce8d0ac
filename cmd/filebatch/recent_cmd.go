package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/raphi011/filebatch/internal/history"
	"github.com/raphi011/filebatch/internal/output"
	"github.com/raphi011/filebatch/internal/ui/static"
	"github.com/raphi011/filebatch/internal/ui/styles"
)

func newRecentCmd() *cobra.Command {
	var (
		jsonOutput bool
		limit      int
		clearAll   bool
	)

	cmd := &cobra.Command{
		Use:     "recent",
		Short:   "List recent destinations",
		GroupID: GroupCore,
		Args:    cobra.NoArgs,
		Long: `List the folders files were created in, most recent first.

The destination prompt suggests these folders first, and the template
picker starts on the template used last in the workspace.`,
		Example: `  filebatch recent           # List recent destinations
  filebatch recent -n 5      # Only the last 5
  filebatch recent --clear   # Forget all destinations`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			path, err := history.Path()
			if err != nil {
				return err
			}

			if clearAll {
				err := history.Update(path, func(h *history.History) { h.Entries = nil })
				if err != nil {
					return err
				}
				out.Println("Cleared recent destinations")
				return nil
			}

			h, err := history.Load(path)
			if err != nil {
				return err
			}
			entries := h.Recent()
			if limit > 0 && len(entries) > limit {
				entries = entries[:limit]
			}

			if jsonOutput {
				if entries == nil {
					entries = []history.Entry{}
				}
				return out.JSON(entries)
			}
			if len(entries) == 0 {
				out.Println(styles.MutedStyle.Render("No recent destinations"))
				return nil
			}
			out.Printf("%s", static.RecentTable(entries, time.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	cmd.Flags().IntVarP(&limit, "number", "n", 0, "Maximum number of entries (0 for all)")
	cmd.Flags().BoolVar(&clearAll, "clear", false, "Forget all recent destinations")
	cmd.MarkFlagsMutuallyExclusive("json", "clear")

	return cmd
}
