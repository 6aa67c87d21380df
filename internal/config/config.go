// Package config loads the optional analysis settings file. Absent fields
// fall back to defaults, so an empty or missing file is fully usable.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yuikisato/clipscout/internal/domain/clips"
	"github.com/yuikisato/clipscout/internal/domain/subtitles"
)

// Settings are the tunable analysis parameters.
type Settings struct {
	// BinSize is the display-table bucket width in seconds.
	BinSize float64 `yaml:"bin_size_seconds"`
	// PeakPercentile is the display-table peak threshold (0-100).
	PeakPercentile float64 `yaml:"peak_threshold_percentile"`
	// PeakMinGap merges display-table peaks closer than this many seconds.
	PeakMinGap float64 `yaml:"peak_min_gap_seconds"`
	// MinClipDuration / MaxClipDuration bound candidate lengths in seconds.
	MinClipDuration float64 `yaml:"min_clip_duration_seconds"`
	MaxClipDuration float64 `yaml:"max_clip_duration_seconds"`
	// SilenceGap splits subtitle segments at pauses of at least this length.
	SilenceGap float64 `yaml:"silence_gap_seconds"`
	// ReactionKeywords are regex patterns matched against chat messages.
	ReactionKeywords []string `yaml:"reaction_keywords"`
	// TopicMarkers are regex patterns matched against subtitle texts.
	TopicMarkers []string `yaml:"topic_markers"`
	// TopCommenters is the ranking length in the statistics table.
	TopCommenters int `yaml:"top_commenters"`
}

// Default returns the settings used when no file overrides them.
func Default() Settings {
	return Settings{
		BinSize:          10,
		PeakPercentile:   75,
		PeakMinGap:       30,
		MinClipDuration:  30,
		MaxClipDuration:  180,
		SilenceGap:       2,
		ReactionKeywords: clips.DefaultReactionKeywords,
		TopicMarkers:     subtitles.DefaultTopicMarkers,
		TopCommenters:    10,
	}
}

// Load reads a settings file over the defaults. A missing file is not an
// error; a present but unreadable or invalid one is.
func Load(path string) (Settings, error) {
	s := Default()
	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return Settings{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(b, &s); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("config %s: %w", path, err)
	}
	return s, nil
}

// Validate rejects settings the analyzers cannot honor.
func (s Settings) Validate() error {
	if s.BinSize <= 0 {
		return fmt.Errorf("bin_size_seconds must be > 0, got %v", s.BinSize)
	}
	if s.PeakPercentile < 0 || s.PeakPercentile > 100 {
		return fmt.Errorf("peak_threshold_percentile must be in [0, 100], got %v", s.PeakPercentile)
	}
	if s.MinClipDuration <= 0 {
		return fmt.Errorf("min_clip_duration_seconds must be > 0, got %v", s.MinClipDuration)
	}
	if s.MaxClipDuration <= 0 {
		return fmt.Errorf("max_clip_duration_seconds must be > 0, got %v", s.MaxClipDuration)
	}
	if s.MinClipDuration > s.MaxClipDuration {
		return fmt.Errorf("min_clip_duration_seconds %v exceeds max_clip_duration_seconds %v",
			s.MinClipDuration, s.MaxClipDuration)
	}
	if s.SilenceGap <= 0 {
		return fmt.Errorf("silence_gap_seconds must be > 0, got %v", s.SilenceGap)
	}
	return nil
}
