package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/ppiankov/verbosity/internal/logging"
	"github.com/ppiankov/verbosity/internal/probe"
)

// TextReporter generates human-readable text reports
type TextReporter struct {
	writer io.Writer
}

// NewTextReporter creates a new text reporter
func NewTextReporter(w io.Writer) *TextReporter {
	return &TextReporter{writer: w}
}

// levelString colors a level by how much it lets through.
func levelString(l logging.Level) string {
	switch l {
	case logging.LevelTrace, logging.LevelDebug:
		return color.CyanString(l.String())
	case logging.LevelInfo:
		return color.GreenString(l.String())
	case logging.LevelWarn:
		return color.YellowString(l.String())
	case logging.LevelError:
		return color.RedString(l.String())
	default:
		return color.MagentaString(l.String())
	}
}

// Generate generates a text report
func (r *TextReporter) Generate(data Status) error {
	// Header
	fmt.Fprintf(r.writer, "Verbosity Report\n")
	fmt.Fprintf(r.writer, "================\n\n")
	fmt.Fprintf(r.writer, "Generated: %s\n", data.Timestamp.Format("2006-01-02 15:04:05"))
	if data.Version != "" {
		fmt.Fprintf(r.writer, "Version: %s\n", data.Version)
	}
	fmt.Fprintf(r.writer, "\n")

	r.printPolicy(data)
	r.printProbe(data.Probe, data.Summary)

	return nil
}

func (r *TextReporter) printPolicy(data Status) {
	fmt.Fprintf(r.writer, "Policy\n")
	fmt.Fprintf(r.writer, "------\n")
	fmt.Fprintf(r.writer, "Build Mode: %s\n", data.BuildMode)
	fmt.Fprintf(r.writer, "Build Mode Level: %s\n", levelString(data.BuildModeLevel))
	fmt.Fprintf(r.writer, "Effective Level: %s\n", levelString(data.EffectiveLevel))
	fmt.Fprintf(r.writer, "Current Level: %s\n", levelString(data.CurrentLevel))

	if data.OverrideActive {
		fmt.Fprintf(r.writer, "%s: build mode level replaced by %s\n",
			color.YellowString("Override"),
			data.EffectiveLevel)
	}
	if data.CurrentLevel != data.EffectiveLevel {
		fmt.Fprintf(r.writer, "%s: current level %s differs from effective level %s\n",
			color.RedString("Mismatch"),
			data.CurrentLevel,
			data.EffectiveLevel)
	}

	fmt.Fprintf(r.writer, "\n")
}

func (r *TextReporter) printProbe(result probe.Result, summary probe.Summary) {
	if len(result.Backends) == 0 {
		return
	}

	fmt.Fprintf(r.writer, "Probe\n")
	fmt.Fprintf(r.writer, "%s\n", strings.Repeat("-", 50))

	backends := make([]string, 0, len(result.Backends))
	for b := range result.Backends {
		backends = append(backends, string(b))
	}
	sort.Strings(backends)

	for _, name := range backends {
		backend := probe.Backend(name)
		fmt.Fprintf(r.writer, "  %s: %d emitted, %d suppressed\n",
			name,
			summary.Emitted[backend],
			summary.Suppressed[backend])
		for _, v := range result.Backends[backend] {
			mark := color.RedString("[SUPPRESSED]")
			if v.Emitted {
				mark = color.GreenString("[EMITTED]")
			}
			fmt.Fprintf(r.writer, "    %s %s\n", mark, v.Level)
		}
	}
	fmt.Fprintf(r.writer, "\n")
}
