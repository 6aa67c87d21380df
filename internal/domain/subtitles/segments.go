// Package subtitles analyzes the subtitle side of an archive: silence-gap
// segmentation, topic-change markers, keyword search, and lookup helpers.
package subtitles

import (
	"math"
	"sort"
	"strings"

	"github.com/yuikisato/clipscout/internal/types"
)

// gapTolerance absorbs floating-point drift when matching a subtitle's end
// against a detected gap boundary.
const gapTolerance = 0.1

// Gap is a silent interval between two adjacent subtitles.
type Gap struct {
	Start    float64 `json:"gap_start"`
	End      float64 `json:"gap_end"`
	Duration float64 `json:"gap_duration"`
}

// DetectGaps finds silent intervals of at least minGap seconds between
// adjacent subtitles in time order. A gap of exactly minGap counts.
func DetectGaps(subs []types.SubtitleRecord, minGap float64) []Gap {
	if len(subs) < 2 {
		return nil
	}

	ordered := SortByStart(subs)
	var gaps []Gap
	for i := 0; i < len(ordered)-1; i++ {
		d := ordered[i+1].Start - ordered[i].End
		if d >= minGap {
			gaps = append(gaps, Gap{
				Start:    ordered[i].End,
				End:      ordered[i+1].Start,
				Duration: d,
			})
		}
	}
	return gaps
}

// SegmentBySilence splits the subtitle stream at silence gaps of at least
// minGap seconds. A segment closes right after the subtitle whose end sits on
// a gap boundary, or at the last subtitle. Segments shorter than
// minSegmentDuration are dropped, not merged into neighbors, so short
// throwaway runs disappear from the output. IDs are assigned 0-based in
// emission order after that filter.
func SegmentBySilence(subs []types.SubtitleRecord, minGap, minSegmentDuration float64) []types.Segment {
	if len(subs) == 0 {
		return nil
	}

	ordered := SortByStart(subs)
	gaps := DetectGaps(ordered, minGap)

	var segments []types.Segment
	segmentStart := ordered[0].Start
	var member []types.SubtitleRecord

	for i, sub := range ordered {
		member = append(member, sub)

		last := i == len(ordered)-1
		if !last && !endsOnGap(sub.End, gaps) {
			continue
		}

		duration := sub.End - segmentStart
		if duration >= minSegmentDuration {
			segments = append(segments, types.Segment{
				ID:            len(segments),
				Start:         segmentStart,
				End:           sub.End,
				Duration:      duration,
				SubtitleCount: len(member),
				Text:          joinTexts(member),
			})
		}
		if !last {
			segmentStart = ordered[i+1].Start
			member = nil
		}
	}
	return segments
}

func endsOnGap(end float64, gaps []Gap) bool {
	for _, g := range gaps {
		if math.Abs(g.Start-end) < gapTolerance {
			return true
		}
	}
	return false
}

func joinTexts(subs []types.SubtitleRecord) string {
	parts := make([]string, len(subs))
	for i, s := range subs {
		parts[i] = s.Text
	}
	return strings.Join(parts, " ")
}

// SortByStart returns a copy of subs ordered by start time ascending.
// Overlapping cues are kept as-is, not corrected.
func SortByStart(subs []types.SubtitleRecord) []types.SubtitleRecord {
	out := make([]types.SubtitleRecord, len(subs))
	copy(out, subs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Start < out[j].Start })
	return out
}
