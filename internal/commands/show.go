package commands

import (
	"context"

	"github.com/spf13/cobra"
)

var showFlags struct {
	outputFormat string
	outputFile   string
	noColor      bool
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the verbosity policy and what it lets through",
	Long: `Shows the build mode, the level that build mode selects, the level
actually installed at startup, and a probe of which severities reach the
slog and zap facilities.`,
	RunE: runShow,
}

func init() {
	showCmd.Flags().StringVarP(&showFlags.outputFormat, "format", "f", "text", "Output format: text or json")
	showCmd.Flags().StringVarP(&showFlags.outputFile, "output", "o", "", "Output file (default: stdout)")
	showCmd.Flags().BoolVar(&showFlags.noColor, "no-color", false, "Disable colored output")
}

func runShow(cmd *cobra.Command, args []string) error {
	applyConfigToShowFlags(cmd)

	status := buildStatus(context.Background())

	writer, closeOutput, err := openOutput(showFlags.outputFile)
	if err != nil {
		return enhanceError("output file creation", err)
	}
	defer closeOutput()
	configureColor(writer, showFlags.noColor)

	reporter, err := selectReporter(showFlags.outputFormat, writer)
	if err != nil {
		return err
	}
	if err := reporter.Generate(status); err != nil {
		return enhanceError("report generation", err)
	}

	printStatus("Reported verbosity %s (%s build)", status.CurrentLevel, status.BuildMode)
	return nil
}

func applyConfigToShowFlags(cmd *cobra.Command) {
	if !cmd.Flags().Lookup("format").Changed && cfg.Format != "" {
		showFlags.outputFormat = cfg.Format
	}
	if !cmd.Flags().Lookup("no-color").Changed && cfg.NoColor {
		showFlags.noColor = true
	}
}
