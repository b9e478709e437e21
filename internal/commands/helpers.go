package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/ppiankov/verbosity/internal/logging"
	"github.com/ppiankov/verbosity/internal/probe"
	"github.com/ppiankov/verbosity/internal/report"
	"golang.org/x/term"
)

func printStatus(format string, args ...interface{}) {
	slog.Info(fmt.Sprintf(format, args...))
}

// enhanceError enhances an error with additional context and helpful suggestions
func enhanceError(operation string, err error) error {
	if err == nil {
		return nil
	}

	errMsg := err.Error()

	if strings.Contains(errMsg, "no such file or directory") {
		return fmt.Errorf("%s failed: File not found.\n"+
			"Solutions:\n"+
			"  - Check the --baseline or --output path is correct\n"+
			"  - Create a baseline first with 'verbosity check --update-baseline'\n"+
			"Original error: %w", operation, err)
	}

	if strings.Contains(errMsg, "permission denied") {
		return fmt.Errorf("%s failed: Permission denied.\n"+
			"Solutions:\n"+
			"  - Ensure the file and its directory are writable\n"+
			"Original error: %w", operation, err)
	}

	if strings.Contains(errMsg, "parse baseline") || strings.Contains(errMsg, "unknown log level") {
		return fmt.Errorf("%s failed: Baseline is not a verbosity JSON report.\n"+
			"Solutions:\n"+
			"  - Regenerate it with 'verbosity show --format json'\n"+
			"Original error: %w", operation, err)
	}

	// Default error with context
	return fmt.Errorf("%s failed: %w", operation, err)
}

func selectReporter(format string, writer io.Writer) (report.Reporter, error) {
	switch format {
	case "json":
		return report.NewJSONReporter(writer), nil
	case "text":
		return report.NewTextReporter(writer), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s (supported: text, json)", format)
	}
}

// buildStatus snapshots the verbosity policy and probes the live threshold.
func buildStatus(ctx context.Context) report.Status {
	result := probe.Run(ctx)
	return report.Status{
		Tool:           "verbosity",
		Version:        GetVersion(),
		Timestamp:      time.Now(),
		BuildMode:      logging.CurrentBuildMode(),
		BuildModeLevel: logging.BuildModeLevel(),
		EffectiveLevel: logging.EffectiveLevel(),
		CurrentLevel:   logging.Verbosity(),
		OverrideActive: logging.OverrideActive(),
		Probe:          result,
		Summary:        probe.Summarize(result),
	}
}

// configureColor enables colors only for terminal output that was not
// explicitly opted out.
func configureColor(out *os.File, noColor bool) {
	color.NoColor = noColor || !term.IsTerminal(int(out.Fd()))
}

// openOutput returns stdout or the created file plus its closer.
func openOutput(path string) (*os.File, func(), error) {
	if path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
