package logging

import "log/slog"

// DefaultLevel is the threshold in effect before InitGlobalStuff runs:
// silent unless there are problems.
const DefaultLevel = LevelWarn

// verbosity is the process-wide threshold. Every handler built by this
// package reads it on each record.
var verbosity = new(slog.LevelVar)

func init() {
	verbosity.Set(DefaultLevel.Slog())
}

// SetVerbosity replaces the process-wide threshold.
func SetVerbosity(l Level) {
	verbosity.Set(l.Slog())
}

// Verbosity returns the process-wide threshold.
func Verbosity() Level {
	return fromSlog(verbosity.Level())
}

// Leveler exposes the live threshold for slog.HandlerOptions.
func Leveler() slog.Leveler {
	return verbosity
}
