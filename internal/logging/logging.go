package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Install configures the process-wide default slog logger. The handler is
// gated on the shared verbosity, so a later SetVerbosity applies to it
// without reinstalling. output defaults to os.Stderr if nil.
func Install(output io.Writer, format string) error {
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level: Leveler(),
	}

	var handler slog.Handler
	switch format {
	case "", "text":
		handler = slog.NewTextHandler(output, opts)
	case "json":
		handler = slog.NewJSONHandler(output, opts)
	default:
		return fmt.Errorf("unsupported log format: %s (supported: text, json)", format)
	}

	slog.SetDefault(slog.New(handler))
	return nil
}
