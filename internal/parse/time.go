package parse

import (
	"fmt"

	"github.com/yuikisato/clipscout/internal/types"
)

// FormatTimestamp renders seconds as H:MM:SS, or M:SS under an hour.
func FormatTimestamp(seconds float64) string {
	total := int(seconds)
	h := total / 3600
	m := total % 3600 / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// NormalizeComments shifts timestamps so the earliest comment sits at zero.
// Live-chat replays stamp messages with wall-clock microseconds; analysis
// wants stream-relative seconds.
func NormalizeComments(records []types.CommentRecord) []types.CommentRecord {
	if len(records) == 0 {
		return nil
	}
	minT := records[0].Timestamp
	for _, r := range records[1:] {
		if r.Timestamp < minT {
			minT = r.Timestamp
		}
	}
	out := make([]types.CommentRecord, len(records))
	for i, r := range records {
		r.Timestamp -= minT
		out[i] = r
	}
	return out
}

// NormalizeSubtitles shifts cue times so the earliest start sits at zero.
func NormalizeSubtitles(records []types.SubtitleRecord) []types.SubtitleRecord {
	if len(records) == 0 {
		return nil
	}
	minT := records[0].Start
	for _, r := range records[1:] {
		if r.Start < minT {
			minT = r.Start
		}
	}
	out := make([]types.SubtitleRecord, len(records))
	for i, r := range records {
		r.Start -= minT
		r.End -= minT
		out[i] = r
	}
	return out
}
