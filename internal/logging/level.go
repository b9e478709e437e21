package logging

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
)

// Level is an ordered logging severity threshold. Records below the active
// level are suppressed.
type Level int

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelOff
)

// slogTrace sits below slog.LevelDebug the same way debug sits below info.
const slogTrace = slog.LevelDebug - 4

var levelNames = map[Level]string{
	LevelTrace: "trace",
	LevelDebug: "debug",
	LevelInfo:  "info",
	LevelWarn:  "warn",
	LevelError: "error",
	LevelOff:   "off",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("level(%d)", int(l))
}

// Slog maps the level onto the slog scale. LevelOff maps past every level a
// record can carry, so a handler gated on it emits nothing.
func (l Level) Slog() slog.Level {
	switch l {
	case LevelTrace:
		return slogTrace
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.Level(math.MaxInt)
	}
}

// fromSlog returns the most severe Level whose slog value does not exceed s.
func fromSlog(s slog.Level) Level {
	result := LevelTrace
	for _, l := range Levels() {
		if l.Slog() <= s {
			result = l
		}
	}
	return result
}

// Levels returns every level from most to least verbose.
func Levels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelOff}
}

// ParseLevel parses a level name case-insensitively. "warning" is accepted
// for warn.
func ParseLevel(s string) (Level, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "warning" {
		return LevelWarn, nil
	}
	for l, n := range levelNames {
		if n == name {
			return l, nil
		}
	}
	return 0, fmt.Errorf("unknown log level %q (supported: trace, debug, info, warn, error, off)", s)
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	if _, ok := levelNames[l]; !ok {
		return nil, fmt.Errorf("invalid log level %d", int(l))
	}
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
