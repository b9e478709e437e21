package report

import (
	"time"

	"github.com/ppiankov/verbosity/internal/logging"
	"github.com/ppiankov/verbosity/internal/probe"
)

// Reporter interface for different report formats
type Reporter interface {
	Generate(data Status) error
}

// Status describes the verbosity policy of this binary and what it does to
// log calls.
type Status struct {
	Tool           string            `json:"tool"`
	Version        string            `json:"version"`
	Timestamp      time.Time         `json:"timestamp"`
	BuildMode      logging.BuildMode `json:"build_mode"`
	BuildModeLevel logging.Level     `json:"build_mode_level"`
	EffectiveLevel logging.Level     `json:"effective_level"`
	CurrentLevel   logging.Level     `json:"current_level"`
	OverrideActive bool              `json:"override_active"`
	Probe          probe.Result      `json:"probe"`
	Summary        probe.Summary     `json:"summary"`
}
