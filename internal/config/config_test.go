// ABOUTME: Tests for config paths, URL resolution, and load/save.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/vael/internal/coach"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}

	cases := map[string]string{
		"":            "",
		"~":           home,
		"~/data/vael": filepath.Join(home, "data", "vael"),
		"/abs/path":   "/abs/path",
		"relative":    "relative",
	}
	for in, want := range cases {
		if got := ExpandPath(in); got != want {
			t.Errorf("ExpandPath(%q) mismatch: got %q, want %q", in, got, want)
		}
	}
}

func TestGetDataDirHonorsXDG(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/xdg-data")

	cfg := &Config{}
	if got := cfg.GetDataDir(); got != "/tmp/xdg-data/vael" {
		t.Errorf("default data dir mismatch: got %q", got)
	}

	cfg.DataDir = "/srv/vael"
	if got := cfg.GetDataDir(); got != "/srv/vael" {
		t.Errorf("configured data dir mismatch: got %q", got)
	}
}

func TestGetCoachURLPrecedence(t *testing.T) {
	t.Setenv("VAEL_COACH_URL", "")

	cfg := &Config{}
	if got := cfg.GetCoachURL(); got != coach.DefaultBaseURL {
		t.Errorf("default mismatch: got %q", got)
	}

	t.Setenv("VAEL_COACH_URL", "http://env:8000")
	if got := cfg.GetCoachURL(); got != "http://env:8000" {
		t.Errorf("env mismatch: got %q", got)
	}

	cfg.CoachURL = "http://config:8000"
	if got := cfg.GetCoachURL(); got != "http://config:8000" {
		t.Errorf("config precedence mismatch: got %q", got)
	}
}

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DataDir != "" || cfg.CoachURL != "" {
		t.Errorf("empty config mismatch: got %+v", cfg)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	want := &Config{DataDir: "~/vael-data", CoachURL: "http://coach:9000"}
	if err := want.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.DataDir != want.DataDir || got.CoachURL != want.CoachURL {
		t.Errorf("roundtrip mismatch: got %+v, want %+v", got, want)
	}
}
