package probe

import (
	"bytes"
	"context"
	"log/slog"
	"strings"

	"github.com/ppiankov/verbosity/internal/logging"
)

// Backend names a logging facility bound to the process-wide verbosity.
type Backend string

const (
	BackendSlog Backend = "slog"
	BackendZap  Backend = "zap"
)

// Visibility records whether a record at Level made it through a backend.
type Visibility struct {
	Level   logging.Level `json:"level"`
	Emitted bool          `json:"emitted"`
}

// Result holds the per-backend outcome of a probe run.
type Result struct {
	Backends map[Backend][]Visibility `json:"backends"`
}

// Summary counts emitted levels per backend.
type Summary struct {
	Emitted    map[Backend]int `json:"emitted"`
	Suppressed map[Backend]int `json:"suppressed"`
}

// probeLevels are the levels a record can carry; off is a threshold only.
var probeLevels = []logging.Level{
	logging.LevelTrace,
	logging.LevelDebug,
	logging.LevelInfo,
	logging.LevelWarn,
	logging.LevelError,
}

// Run logs one marked record per level through each backend and reports
// which ones were written. Nothing reaches the process's real outputs.
func Run(ctx context.Context) Result {
	return Result{
		Backends: map[Backend][]Visibility{
			BackendSlog: probeSlog(ctx),
			BackendZap:  probeZap(),
		},
	}
}

func probeSlog(ctx context.Context) []Visibility {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: logging.Leveler()}))

	out := make([]Visibility, 0, len(probeLevels))
	for _, l := range probeLevels {
		buf.Reset()
		logger.Log(ctx, l.Slog(), "probe", slog.String("probe_level", l.String()))
		out = append(out, Visibility{Level: l, Emitted: strings.Contains(buf.String(), "probe_level="+l.String())})
	}
	return out
}

func probeZap() []Visibility {
	var buf bytes.Buffer
	logger := logging.NewZapLogger(&buf)
	defer func() { _ = logger.Sync() }()

	out := make([]Visibility, 0, len(probeLevels))
	for _, l := range probeLevels {
		buf.Reset()
		logger.Log(logging.ZapLevel(l), "probe")
		out = append(out, Visibility{Level: l, Emitted: buf.Len() > 0})
	}
	return out
}

// Summarize counts emitted and suppressed levels per backend.
func Summarize(r Result) Summary {
	s := Summary{
		Emitted:    make(map[Backend]int, len(r.Backends)),
		Suppressed: make(map[Backend]int, len(r.Backends)),
	}
	for backend, vis := range r.Backends {
		for _, v := range vis {
			if v.Emitted {
				s.Emitted[backend]++
			} else {
				s.Suppressed[backend]++
			}
		}
	}
	return s
}

// Silent reports whether no backend emitted anything.
func (r Result) Silent() bool {
	for _, vis := range r.Backends {
		for _, v := range vis {
			if v.Emitted {
				return false
			}
		}
	}
	return true
}
