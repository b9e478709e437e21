package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ppiankov/verbosity/internal/baseline"
	"github.com/ppiankov/verbosity/internal/logging"
	"github.com/ppiankov/verbosity/internal/report"
)

func prepareCheck(t *testing.T) string {
	t.Helper()
	prev := logging.Verbosity()
	oldFlags := checkFlags
	t.Cleanup(func() {
		logging.SetVerbosity(prev)
		checkFlags = oldFlags
		checkCmd.SetErr(nil)
	})
	logging.InitGlobalStuff()

	dir := t.TempDir()
	checkFlags.baselinePath = filepath.Join(dir, "baseline.json")
	checkFlags.outputFile = filepath.Join(dir, "report.txt")
	checkFlags.outputFormat = "text"
	checkFlags.noColor = true
	return dir
}

func TestCheckFlagDefaults(t *testing.T) {
	if checkCmd.Flags().Lookup("baseline").DefValue != "verbosity-baseline.json" {
		t.Fatalf("unexpected baseline default %q", checkCmd.Flags().Lookup("baseline").DefValue)
	}
	if checkCmd.Flags().Lookup("fail-on-drift").DefValue != "false" {
		t.Fatalf("expected fail-on-drift default false")
	}
}

func TestRunCheckUpdateThenMatch(t *testing.T) {
	prepareCheck(t)

	checkFlags.updateBaseline = true
	if err := runCheck(checkCmd, nil); err != nil {
		t.Fatalf("update baseline failed: %v", err)
	}
	if _, err := os.Stat(checkFlags.baselinePath); err != nil {
		t.Fatalf("expected baseline file: %v", err)
	}

	checkFlags.updateBaseline = false
	checkFlags.failOnDrift = true
	var stderr bytes.Buffer
	checkCmd.SetErr(&stderr)
	if err := runCheck(checkCmd, nil); err != nil {
		t.Fatalf("expected no drift, got %v", err)
	}
	if stderr.Len() != 0 {
		t.Fatalf("expected no drift lines, got %q", stderr.String())
	}
}

func TestRunCheckDetectsDrift(t *testing.T) {
	prepareCheck(t)

	// A baseline recorded before the silencing override existed.
	old := buildStatus(context.Background())
	old.OverrideActive = false
	old.EffectiveLevel = logging.LevelInfo
	if err := baseline.Write(checkFlags.baselinePath, old); err != nil {
		t.Fatalf("write baseline: %v", err)
	}

	var stderr bytes.Buffer
	checkCmd.SetErr(&stderr)

	if err := runCheck(checkCmd, nil); err != nil {
		t.Fatalf("expected drift to be reported without failing, got %v", err)
	}
	if !strings.Contains(stderr.String(), "changed: effective_level info -> off") {
		t.Fatalf("expected effective_level drift, got %q", stderr.String())
	}

	stderr.Reset()
	checkFlags.failOnDrift = true
	err := runCheck(checkCmd, nil)
	if err == nil {
		t.Fatal("expected error with --fail-on-drift")
	}
	if !strings.Contains(err.Error(), "drifted from baseline") {
		t.Fatalf("unexpected error message: %v", err)
	}
}

func TestRunCheckMissingBaseline(t *testing.T) {
	prepareCheck(t)

	err := runCheck(checkCmd, nil)
	if err == nil {
		t.Fatal("expected error for missing baseline")
	}
	if !strings.Contains(err.Error(), "File not found") {
		t.Fatalf("expected enhanced error, got %v", err)
	}
}

func TestRunCheckJSONOutputStaysValid(t *testing.T) {
	dir := prepareCheck(t)

	checkFlags.updateBaseline = true
	if err := runCheck(checkCmd, nil); err != nil {
		t.Fatalf("update baseline failed: %v", err)
	}

	checkFlags.updateBaseline = false
	checkFlags.outputFormat = "json"
	checkFlags.outputFile = filepath.Join(dir, "report.json")
	checkCmd.SetErr(&bytes.Buffer{})
	if err := runCheck(checkCmd, nil); err != nil {
		t.Fatalf("runCheck failed: %v", err)
	}

	raw, err := os.ReadFile(checkFlags.outputFile)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	var status report.Status
	if err := json.Unmarshal(raw, &status); err != nil {
		t.Fatalf("expected valid JSON report, got %v", err)
	}
}
