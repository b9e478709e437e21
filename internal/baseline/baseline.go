package baseline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/ppiankov/verbosity/internal/report"
)

// Setting is a flattened, identity-comparable fact from a status report.
type Setting struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Change is a setting whose value differs from the baseline.
type Change struct {
	Name   string `json:"name"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// DiffResult holds the outcome of comparing current settings against a baseline.
type DiffResult struct {
	Changed   []Change
	Added     []Setting
	Removed   []Setting
	Unchanged []Setting
}

// Drifted reports whether anything differs from the baseline.
func (d DiffResult) Drifted() bool {
	return len(d.Changed) > 0 || len(d.Added) > 0 || len(d.Removed) > 0
}

// Flatten converts a status report into settings sorted by name. The
// timestamp, version and observed current level are left out: they vary
// between runs of the same build.
func Flatten(data report.Status) []Setting {
	settings := []Setting{
		{Name: "build_mode", Value: data.BuildMode.String()},
		{Name: "build_mode_level", Value: data.BuildModeLevel.String()},
		{Name: "effective_level", Value: data.EffectiveLevel.String()},
		{Name: "override_active", Value: strconv.FormatBool(data.OverrideActive)},
	}
	for backend, vis := range data.Probe.Backends {
		for _, v := range vis {
			settings = append(settings, Setting{
				Name:  fmt.Sprintf("probe.%s.%s", backend, v.Level),
				Value: strconv.FormatBool(v.Emitted),
			})
		}
	}
	sort.Slice(settings, func(i, j int) bool {
		return settings[i].Name < settings[j].Name
	})
	return settings
}

// Load reads a previous JSON status report and flattens it.
func Load(path string) ([]Setting, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read baseline: %w", err)
	}
	var data report.Status
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse baseline: %w", err)
	}
	return Flatten(data), nil
}

// Write stores data as a JSON baseline at path.
func Write(path string, data report.Status) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode baseline: %w", err)
	}
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return fmt.Errorf("write baseline: %w", err)
	}
	return nil
}

// Diff compares current settings against a baseline.
func Diff(current, baseline []Setting) DiffResult {
	baseMap := make(map[string]string, len(baseline))
	for _, s := range baseline {
		baseMap[s.Name] = s.Value
	}
	curMap := make(map[string]struct{}, len(current))
	for _, s := range current {
		curMap[s.Name] = struct{}{}
	}

	var result DiffResult
	for _, s := range current {
		before, exists := baseMap[s.Name]
		switch {
		case !exists:
			result.Added = append(result.Added, s)
		case before != s.Value:
			result.Changed = append(result.Changed, Change{Name: s.Name, Before: before, After: s.Value})
		default:
			result.Unchanged = append(result.Unchanged, s)
		}
	}
	for _, s := range baseline {
		if _, exists := curMap[s.Name]; !exists {
			result.Removed = append(result.Removed, s)
		}
	}
	return result
}
