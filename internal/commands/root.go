package commands

import (
	"log/slog"
	"os"

	"github.com/ppiankov/verbosity/internal/config"
	"github.com/ppiankov/verbosity/internal/logging"
	"github.com/spf13/cobra"
)

var (
	version string
	commit  string
	date    string
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:   "verbosity",
	Short: "Verbosity - process-wide log level policy inspector",
	Long: `Verbosity reports the logging threshold this binary installs at startup,
which build mode selected it, and which log records actually get through
the slog and zap facilities bound to it.

The threshold is decided at compile time: debug builds (-tags debug) select
debug, release builds select info, and the silencing override currently
replaces both with off.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = logging.Install(os.Stderr, "text")
		loaded, err := config.Load(".")
		if err != nil {
			slog.Warn("Failed to load config file", "error", err)
			return
		}
		cfg = loaded
		if cfg.LogFormat != "" {
			if err := logging.Install(os.Stderr, cfg.LogFormat); err != nil {
				slog.Warn("Ignoring log format from config", "error", err)
			}
		}
	},
}

// Execute runs the root command with injected build info.
func Execute(v, c, d string) error {
	version = v
	commit = c
	date = d
	return rootCmd.Execute()
}

// GetVersion returns the current version.
func GetVersion() string {
	return version
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}
