package commands

import (
	"fmt"

	"github.com/ppiankov/verbosity/internal/logging"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "verbosity version %s (commit %s, built %s, %s build)\n",
			GetVersion(), commit, date, logging.CurrentBuildMode())
	},
}
