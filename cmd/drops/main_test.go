package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-drops/internal/config"
)

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagConfig = ""
		flagSeed = 0
		flagLogPath = ""
		flagLogLevel = "info"
		flagSimDifficulty = string(config.DifficultyNormal)
		flagAccuracy = 0.85
		flagRuns = 1
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestConfigCommand(t *testing.T) {
	out, err := execute(t, "config")
	if err != nil {
		t.Fatalf("config failed: %v", err)
	}
	if out != string(config.DefaultYAML()) {
		t.Error("config should print the embedded defaults")
	}
}

func TestListCommand(t *testing.T) {
	out, err := execute(t, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"easy", "normal", "hard", "900ms"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "easy") > strings.Index(out, "hard") {
		t.Error("Presets should be listed in order")
	}
}

func TestListCustomConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drops.yaml")
	custom := `
difficulties:
  zen:
    name: Zen
    spawn_interval_ms: 1500
    fall_min_secs: 6
    fall_max_secs: 8
    bad_probability: 0
    target_score: 10
    good_delta: 1
    bad_delta: 0
`
	if err := os.WriteFile(path, []byte(custom), 0o600); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "list", "--config", path)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "zen") {
		t.Errorf("Custom difficulty should be listed:\n%s", out)
	}
}

func TestSimCommand(t *testing.T) {
	out, err := execute(t, "sim", "--seed", "4", "--runs", "3", "--log-level", "error")
	if err != nil {
		t.Fatalf("sim failed: %v", err)
	}
	if !strings.Contains(out, "3 rounds on Normal") {
		t.Errorf("Unexpected sim output:\n%s", out)
	}
}

func TestSimUnknownDifficulty(t *testing.T) {
	_, err := execute(t, "sim", "--difficulty", "nightmare", "--log-level", "error")
	if err == nil {
		t.Error("Unknown difficulty should fail")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	_, err := execute(t, "sim", "--log-level", "loud")
	if err == nil {
		t.Error("Invalid log level should fail")
	}
}
