// Package clips turns the four detection signals into a single ranked list
// of highlight-clip candidates.
package clips

import (
	"fmt"
	"math"

	"github.com/yuikisato/clipscout/internal/domain/comments"
	"github.com/yuikisato/clipscout/internal/domain/subtitles"
	"github.com/yuikisato/clipscout/internal/types"
)

// DefaultReactionKeywords match typical Japanese chat reactions: laughing
// shorthand, exclamations, and surprise words.
var DefaultReactionKeywords = []string{
	`w+`,
	`草`,
	`笑`,
	`！+`,
	`？+`,
	`すごい`,
	`やばい`,
}

// Producer tuning. These are part of the heuristic's observed behavior and
// stay fixed; only the duration bounds and keyword sets are caller-facing.
const (
	peakBinSize       = 10.0
	peakPercentile    = 75.0
	peakMinGap        = 30.0
	peakLeadIn        = 15.0
	peakTailMax       = 30.0
	peakWindowCap     = 60.0
	burstBinSize      = 10.0
	burstPercentile   = 75.0
	burstMaxBinGap    = 20.0
	burstPadding      = 10.0
	segmentMinGap     = 2.0
	topicFallbackSpan = 60.0
	previewRunes      = 100
)

// Params bounds candidate durations and configures the keyword producers.
// Nil keyword slices select the package defaults.
type Params struct {
	MinDuration      float64
	MaxDuration      float64
	ReactionKeywords []string
	TopicMarkers     []string
}

// Validate rejects bounds the producers cannot honor.
func (p Params) Validate() error {
	if p.MinDuration <= 0 {
		return fmt.Errorf("min duration must be > 0, got %v", p.MinDuration)
	}
	if p.MaxDuration <= 0 {
		return fmt.Errorf("max duration must be > 0, got %v", p.MaxDuration)
	}
	if p.MinDuration > p.MaxDuration {
		return fmt.Errorf("min duration %v exceeds max duration %v", p.MinDuration, p.MaxDuration)
	}
	return nil
}

func (p Params) reactionKeywords() []string {
	if p.ReactionKeywords == nil {
		return DefaultReactionKeywords
	}
	return p.ReactionKeywords
}

// Generate runs all four producers over the available sources, merges
// overlapping candidates, scores them, and returns the list ranked by score
// descending. Either record set may be empty or nil; producers without
// signal are skipped, and no sources at all yields an empty, non-error
// result.
func Generate(commentRecords []types.CommentRecord, subtitleRecords []types.SubtitleRecord, p Params) ([]types.Candidate, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var all []types.Candidate

	if len(commentRecords) > 0 {
		peakCands, err := fromCommentPeaks(commentRecords, p)
		if err != nil {
			return nil, err
		}
		all = append(all, peakCands...)

		burstCands, err := fromKeywordBursts(commentRecords, p)
		if err != nil {
			return nil, err
		}
		all = append(all, burstCands...)
	}

	if len(subtitleRecords) > 0 {
		all = append(all, fromSegments(subtitleRecords, p)...)

		topicCands, err := fromTopicChanges(subtitleRecords, p)
		if err != nil {
			return nil, err
		}
		all = append(all, topicCands...)
	}

	return mergeAndScore(all, p), nil
}

// fromCommentPeaks converts comment-volume peaks into candidate windows: a
// short lead-in before the peak and a capped tail after it.
func fromCommentPeaks(records []types.CommentRecord, p Params) ([]types.Candidate, error) {
	bins, err := comments.Bin(records, peakBinSize)
	if err != nil {
		return nil, err
	}
	peaks := comments.FindPeaks(bins, peakPercentile, peakMinGap)

	var out []types.Candidate
	for _, peak := range peaks {
		start := math.Max(0, peak.Start-peakLeadIn)
		end := math.Min(peak.End+peakTailMax, peak.Start+peakWindowCap)
		if d := end - start; d < p.MinDuration || d > p.MaxDuration {
			continue
		}
		out = append(out, newCandidate(start, end, "comment surge", types.PeakDetail{
			PeakCount: peak.Count,
			PeakTime:  peak.Start,
		}))
	}
	return out, nil
}

// fromKeywordBursts finds runs of buckets where summed reaction-keyword
// counts reach the 75th percentile, padded on both sides.
func fromKeywordBursts(records []types.CommentRecord, p Params) ([]types.Candidate, error) {
	freq, err := comments.FrequencyOverTime(records, p.reactionKeywords(), burstBinSize)
	if err != nil {
		return nil, err
	}
	if len(freq) == 0 {
		return nil, nil
	}

	summed := sumAcrossKeywords(freq)

	counts := make([]int, len(summed))
	for i, b := range summed {
		counts[i] = b.Count
	}
	threshold := comments.Percentile(counts, burstPercentile)

	var qualifying []types.TimeBin
	for _, b := range summed {
		if float64(b.Count) >= threshold {
			qualifying = append(qualifying, b)
		}
	}
	if len(qualifying) == 0 {
		return nil, nil
	}

	var out []types.Candidate
	group := []types.TimeBin{qualifying[0]}
	for _, b := range qualifying[1:] {
		if b.Start-group[len(group)-1].End <= burstMaxBinGap {
			group = append(group, b)
			continue
		}
		if c, ok := candidateFromBurstGroup(group, p); ok {
			out = append(out, c)
		}
		group = []types.TimeBin{b}
	}
	if c, ok := candidateFromBurstGroup(group, p); ok {
		out = append(out, c)
	}
	return out, nil
}

// sumAcrossKeywords collapses per-keyword bucket counts into one total per
// bucket, preserving bucket order. Input is already sorted by bucket start.
func sumAcrossKeywords(freq []types.KeywordBin) []types.TimeBin {
	var out []types.TimeBin
	for _, kb := range freq {
		if n := len(out); n > 0 && out[n-1].Start == kb.Start {
			out[n-1].Count += kb.Count
			continue
		}
		out = append(out, types.TimeBin{Start: kb.Start, End: kb.End, Count: kb.Count})
	}
	return out
}

func candidateFromBurstGroup(group []types.TimeBin, p Params) (types.Candidate, bool) {
	start := math.Max(0, group[0].Start-burstPadding)
	end := group[len(group)-1].End + burstPadding
	if d := end - start; d < p.MinDuration || d > p.MaxDuration {
		return types.Candidate{}, false
	}
	total := 0
	for _, b := range group {
		total += b.Count
	}
	return newCandidate(start, end, "keyword burst", types.KeywordDetail{TotalCount: total}), true
}

// fromSegments promotes silence-bounded subtitle segments directly to
// candidates.
func fromSegments(subs []types.SubtitleRecord, p Params) []types.Candidate {
	segments := subtitles.SegmentBySilence(subs, segmentMinGap, p.MinDuration)

	var out []types.Candidate
	for _, seg := range segments {
		if seg.Duration < p.MinDuration || seg.Duration > p.MaxDuration {
			continue
		}
		out = append(out, newCandidate(seg.Start, seg.End, "subtitle segment", types.SegmentDetail{
			SegmentID:     seg.ID,
			SubtitleCount: seg.SubtitleCount,
			TextPreview:   preview(seg.Text),
		}))
	}
	return out
}

// fromTopicChanges spans each detected change to the next one, or a fixed
// fallback length after the last.
func fromTopicChanges(subs []types.SubtitleRecord, p Params) ([]types.Candidate, error) {
	changes, err := subtitles.DetectTopicChanges(subs, p.TopicMarkers)
	if err != nil {
		return nil, err
	}

	var out []types.Candidate
	for i, change := range changes {
		start := change.Time
		end := start + topicFallbackSpan
		if i < len(changes)-1 {
			end = changes[i+1].Time
		}
		if d := end - start; d < p.MinDuration || d > p.MaxDuration {
			continue
		}
		reason := "topic shift: " + change.Keyword
		out = append(out, newCandidate(start, end, reason, types.TopicDetail{
			Keyword: change.Keyword,
			Text:    change.Text,
		}))
	}
	return out, nil
}

func newCandidate(start, end float64, reason string, detail types.Detail) types.Candidate {
	return types.Candidate{
		Start:   start,
		End:     end,
		Reasons: []string{reason},
		Details: []types.Detail{detail},
	}
}

func preview(text string) string {
	runes := []rune(text)
	if len(runes) <= previewRunes {
		return text
	}
	return string(runes[:previewRunes]) + "..."
}
