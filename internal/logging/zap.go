package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// zapEnabler gates a zap core on the shared verbosity.
type zapEnabler struct{}

func (zapEnabler) Enabled(lvl zapcore.Level) bool {
	return fromZap(lvl) >= Verbosity()
}

func fromZap(lvl zapcore.Level) Level {
	switch {
	case lvl < zapcore.DebugLevel:
		return LevelTrace
	case lvl == zapcore.DebugLevel:
		return LevelDebug
	case lvl == zapcore.InfoLevel:
		return LevelInfo
	case lvl == zapcore.WarnLevel:
		return LevelWarn
	default:
		return LevelError
	}
}

// ZapLevel maps l onto zap's scale. Trace has no zap counterpart and is
// carried one step below debug.
func ZapLevel(l Level) zapcore.Level {
	switch l {
	case LevelTrace:
		return zapcore.DebugLevel - 1
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelInfo:
		return zapcore.InfoLevel
	case LevelWarn:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

// NewZapLogger returns a JSON zap logger writing to w and filtered by the
// same process-wide verbosity as the slog default.
func NewZapLogger(w io.Writer) *zap.Logger {
	encoder := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey:  "msg",
		LevelKey:    "level",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
	})
	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zapEnabler{}))
}
