package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Tolerance.MinSegmentM != 5 || cfg.Tolerance.BufferM != 1 {
		t.Errorf("tolerances = %g, %g, want 5, 1", cfg.Tolerance.MinSegmentM, cfg.Tolerance.BufferM)
	}
	if cfg.Projection.UTMZone != 17 {
		t.Errorf("utmZone = %d, want 17", cfg.Projection.UTMZone)
	}
	if cfg.Output.Dir == "" {
		t.Error("default output dir is empty")
	}
	if cfg.Output.CombinedMaxRoute != 300 {
		t.Errorf("combinedMaxRoute = %d, want 300", cfg.Output.CombinedMaxRoute)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
gtfs:
  path: ./feeds/grt
  calendars: [WEEKDAY]
projection:
  utmZone: 33
tolerance:
  minSegmentM: 10
jobs: 4
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.GTFS.Path != "./feeds/grt" {
		t.Errorf("gtfs.path = %q", cfg.GTFS.Path)
	}
	if len(cfg.GTFS.Calendars) != 1 || cfg.GTFS.Calendars[0] != "WEEKDAY" {
		t.Errorf("calendars = %v, want [WEEKDAY]", cfg.GTFS.Calendars)
	}
	if cfg.Projection.UTMZone != 33 {
		t.Errorf("utmZone = %d, want 33", cfg.Projection.UTMZone)
	}
	if cfg.Tolerance.MinSegmentM != 10 {
		t.Errorf("minSegmentM = %g, want 10", cfg.Tolerance.MinSegmentM)
	}
	// Untouched keys keep their defaults.
	if cfg.Tolerance.BufferM != 1 {
		t.Errorf("bufferM = %g, want default 1", cfg.Tolerance.BufferM)
	}
	if cfg.Jobs != 4 {
		t.Errorf("jobs = %d, want 4", cfg.Jobs)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{name: "zone out of range", yaml: "projection:\n  utmZone: 61\n"},
		{name: "negative tolerance", yaml: "tolerance:\n  minSegmentM: -1\n"},
		{name: "negative jobs", yaml: "jobs: -2\n"},
		{name: "malformed yaml", yaml: "tolerance: ["},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.yaml)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yml")); err == nil {
		t.Error("expected error")
	}
}
