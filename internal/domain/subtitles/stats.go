package subtitles

import (
	"unicode/utf8"

	"github.com/yuikisato/clipscout/internal/types"
)

// Statistics summarizes a subtitle stream for display.
type Statistics struct {
	TotalSubtitles      int     `json:"total_subtitles"`
	TotalDuration       float64 `json:"total_duration"`
	AvgSubtitleDuration float64 `json:"avg_subtitle_duration"`
	TotalCharacters     int     `json:"total_characters"`
	AvgCharacters       float64 `json:"avg_characters_per_subtitle"`
}

// Stats computes stream-level statistics. An empty stream yields zeroes.
func Stats(subs []types.SubtitleRecord) Statistics {
	if len(subs) == 0 {
		return Statistics{}
	}

	minStart := subs[0].Start
	maxEnd := subs[0].End
	totalDur := 0.0
	totalChars := 0
	for _, s := range subs {
		if s.Start < minStart {
			minStart = s.Start
		}
		if s.End > maxEnd {
			maxEnd = s.End
		}
		totalDur += s.Duration
		totalChars += utf8.RuneCountInString(s.Text)
	}

	n := float64(len(subs))
	return Statistics{
		TotalSubtitles:      len(subs),
		TotalDuration:       maxEnd - minStart,
		AvgSubtitleDuration: totalDur / n,
		TotalCharacters:     totalChars,
		AvgCharacters:       float64(totalChars) / n,
	}
}
