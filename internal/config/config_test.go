package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "clipscout.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if s.BinSize != 10 || s.PeakPercentile != 75 || s.MaxClipDuration != 180 {
		t.Fatalf("expected defaults, got %+v", s)
	}
	if len(s.ReactionKeywords) == 0 || len(s.TopicMarkers) == 0 {
		t.Fatal("default keyword sets must be populated")
	}
}

func TestLoad_OverridesOnTopOfDefaults(t *testing.T) {
	path := writeFile(t, "bin_size_seconds: 5\nmin_clip_duration_seconds: 20\nreaction_keywords: [\"草\"]\n")
	s, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.BinSize != 5 || s.MinClipDuration != 20 {
		t.Fatalf("overrides not applied: %+v", s)
	}
	if len(s.ReactionKeywords) != 1 || s.ReactionKeywords[0] != "草" {
		t.Fatalf("keyword override not applied: %+v", s.ReactionKeywords)
	}
	// Untouched fields keep defaults.
	if s.MaxClipDuration != 180 || s.SilenceGap != 2 {
		t.Fatalf("defaults lost: %+v", s)
	}
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, "bin_size_seconds: [not a number\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_RejectsInvalidSettings(t *testing.T) {
	path := writeFile(t, "min_clip_duration_seconds: 200\nmax_clip_duration_seconds: 100\n")
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero bin size", func(s *Settings) { s.BinSize = 0 }},
		{"percentile over 100", func(s *Settings) { s.PeakPercentile = 101 }},
		{"negative percentile", func(s *Settings) { s.PeakPercentile = -1 }},
		{"zero min duration", func(s *Settings) { s.MinClipDuration = 0 }},
		{"zero max duration", func(s *Settings) { s.MaxClipDuration = 0 }},
		{"min over max", func(s *Settings) { s.MinClipDuration = 300 }},
		{"zero silence gap", func(s *Settings) { s.SilenceGap = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Default()
			tc.mutate(&s)
			if err := s.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
}
