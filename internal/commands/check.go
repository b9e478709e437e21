package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/ppiankov/verbosity/internal/baseline"
	"github.com/spf13/cobra"
)

var checkFlags struct {
	baselinePath   string
	updateBaseline bool
	failOnDrift    bool
	outputFormat   string
	outputFile     string
	noColor        bool
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Compare the verbosity policy against a saved baseline",
	Long: `Compares the current verbosity policy and probe results against a JSON
report saved earlier, so CI notices when a build starts logging at a
different level (for example when the silencing override is removed).`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().StringVar(&checkFlags.baselinePath, "baseline", "verbosity-baseline.json", "Path to previous JSON report")
	checkCmd.Flags().BoolVar(&checkFlags.updateBaseline, "update-baseline", false, "Write current results as the new baseline")
	checkCmd.Flags().BoolVar(&checkFlags.failOnDrift, "fail-on-drift", false, "Exit with error if the policy drifted from the baseline")
	checkCmd.Flags().StringVarP(&checkFlags.outputFormat, "format", "f", "text", "Output format: text or json")
	checkCmd.Flags().StringVarP(&checkFlags.outputFile, "output", "o", "", "Output file (default: stdout)")
	checkCmd.Flags().BoolVar(&checkFlags.noColor, "no-color", false, "Disable colored output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	applyConfigToCheckFlags(cmd)

	status := buildStatus(context.Background())

	if checkFlags.updateBaseline {
		if err := baseline.Write(checkFlags.baselinePath, status); err != nil {
			return enhanceError("baseline write", err)
		}
		slog.Info("Updated baseline", slog.String("path", checkFlags.baselinePath))
		return nil
	}

	previous, err := baseline.Load(checkFlags.baselinePath)
	if err != nil {
		return enhanceError("baseline load", err)
	}
	diff := baseline.Diff(baseline.Flatten(status), previous)
	slog.Info("Baseline comparison",
		slog.Int("changed", len(diff.Changed)),
		slog.Int("added", len(diff.Added)),
		slog.Int("removed", len(diff.Removed)),
		slog.Int("unchanged", len(diff.Unchanged)),
	)

	writer, closeOutput, err := openOutput(checkFlags.outputFile)
	if err != nil {
		return enhanceError("output file creation", err)
	}
	defer closeOutput()
	configureColor(writer, checkFlags.noColor)

	reporter, err := selectReporter(checkFlags.outputFormat, writer)
	if err != nil {
		return err
	}
	if err := reporter.Generate(status); err != nil {
		return enhanceError("report generation", err)
	}
	printDrift(cmd.ErrOrStderr(), diff)

	if checkFlags.failOnDrift && diff.Drifted() {
		return fmt.Errorf("verbosity policy drifted from baseline: %d changed, %d added, %d removed",
			len(diff.Changed), len(diff.Added), len(diff.Removed))
	}
	return nil
}

// printDrift lists every setting that differs from the baseline.
func printDrift(w io.Writer, diff baseline.DiffResult) {
	for _, c := range diff.Changed {
		fmt.Fprintf(w, "changed: %s %s -> %s\n", c.Name, c.Before, c.After)
	}
	for _, s := range diff.Added {
		fmt.Fprintf(w, "added: %s=%s\n", s.Name, s.Value)
	}
	for _, s := range diff.Removed {
		fmt.Fprintf(w, "removed: %s=%s\n", s.Name, s.Value)
	}
}

func applyConfigToCheckFlags(cmd *cobra.Command) {
	if !cmd.Flags().Lookup("baseline").Changed && cfg.Baseline != "" {
		checkFlags.baselinePath = cfg.Baseline
	}
	if !cmd.Flags().Lookup("format").Changed && cfg.Format != "" {
		checkFlags.outputFormat = cfg.Format
	}
	if !cmd.Flags().Lookup("no-color").Changed && cfg.NoColor {
		checkFlags.noColor = true
	}
}
