package report

import (
	"time"

	"github.com/ppiankov/verbosity/internal/logging"
	"github.com/ppiankov/verbosity/internal/probe"
)

func sampleStatus() Status {
	result := probe.Result{
		Backends: map[probe.Backend][]probe.Visibility{
			probe.BackendSlog: {
				{Level: logging.LevelDebug, Emitted: false},
				{Level: logging.LevelInfo, Emitted: true},
			},
			probe.BackendZap: {
				{Level: logging.LevelDebug, Emitted: false},
				{Level: logging.LevelInfo, Emitted: true},
			},
		},
	}
	return Status{
		Tool:           "verbosity",
		Version:        "0.1.0",
		Timestamp:      time.Date(2024, 2, 3, 4, 5, 6, 0, time.UTC),
		BuildMode:      logging.BuildRelease,
		BuildModeLevel: logging.LevelInfo,
		EffectiveLevel: logging.LevelInfo,
		CurrentLevel:   logging.LevelInfo,
		Probe:          result,
		Summary:        probe.Summarize(result),
	}
}
