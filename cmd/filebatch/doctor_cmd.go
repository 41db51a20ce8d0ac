package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raphi011/filebatch/internal/config"
	"github.com/raphi011/filebatch/internal/doctor"
	"github.com/raphi011/filebatch/internal/history"
)

func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:     "doctor",
		Short:   "Diagnose and repair issues",
		GroupID: GroupConfig,
		Args:    cobra.NoArgs,
		Long: `Diagnose and repair config and history issues.

Checks:
- Global config file parses and is valid
- Configured workspaces exist and are directories
- Local workspace configs are valid
- Recent destinations still exist

Only history issues can be fixed automatically.`,
		Example: `  filebatch doctor          # Check for issues
  filebatch doctor --fix    # Auto-fix recoverable issues`,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := config.Path()
			if err != nil {
				return err
			}
			historyPath, err := history.Path()
			if err != nil {
				return err
			}

			report := doctor.Run(cmd.Context(), cmd.OutOrStdout(), doctor.Options{
				ConfigPath:  configPath,
				HistoryPath: historyPath,
				Fix:         fix,
			})
			if n := report.Remaining(); n > 0 {
				return fmt.Errorf("%d issues found", n)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Auto-fix recoverable issues")

	return cmd
}
