// Package usecase runs one full analysis pass over a pair of record
// snapshots. It is pure: no I/O, no retained state, so concurrent calls on
// distinct inputs need no coordination.
package usecase

import (
	"fmt"

	"github.com/yuikisato/clipscout/internal/domain/clips"
	"github.com/yuikisato/clipscout/internal/domain/comments"
	"github.com/yuikisato/clipscout/internal/domain/subtitles"
	"github.com/yuikisato/clipscout/internal/types"
)

// Params tunes one analysis pass.
type Params struct {
	BinSize          float64
	PeakPercentile   float64
	PeakMinGap       float64
	MinClipDuration  float64
	MaxClipDuration  float64
	SilenceGap       float64
	ReactionKeywords []string
	TopicMarkers     []string
	TopCommenters    int
}

// Validate rejects parameters the analyzers cannot honor. Validation happens
// up front so a bad request fails before any stage runs.
func (p Params) Validate() error {
	if p.BinSize <= 0 {
		return fmt.Errorf("bin size must be > 0, got %v", p.BinSize)
	}
	if p.PeakPercentile < 0 || p.PeakPercentile > 100 {
		return fmt.Errorf("peak percentile must be in [0, 100], got %v", p.PeakPercentile)
	}
	if p.SilenceGap <= 0 {
		return fmt.Errorf("silence gap must be > 0, got %v", p.SilenceGap)
	}
	return p.clipParams().Validate()
}

func (p Params) clipParams() clips.Params {
	return clips.Params{
		MinDuration:      p.MinClipDuration,
		MaxDuration:      p.MaxClipDuration,
		ReactionKeywords: p.ReactionKeywords,
		TopicMarkers:     p.TopicMarkers,
	}
}

// Input is one immutable analysis snapshot. Either record set may be empty.
type Input struct {
	Comments  []types.CommentRecord
	Subtitles []types.SubtitleRecord
	Params    Params
}

// Report carries the ranked candidates plus every intermediate table the
// display layer renders.
type Report struct {
	CommentStats  comments.Statistics       `json:"comment_stats"`
	SubtitleStats subtitles.Statistics      `json:"subtitle_stats"`
	TopCommenters []comments.CommenterCount `json:"top_commenters,omitempty"`
	Bins          []types.TimeBin           `json:"bins,omitempty"`
	Peaks         []types.Peak              `json:"peaks,omitempty"`
	KeywordTable  []types.KeywordBin        `json:"keyword_table,omitempty"`
	Segments      []types.Segment           `json:"segments,omitempty"`
	TopicChanges  []types.TopicChange       `json:"topic_changes,omitempty"`
	Candidates    []types.Candidate         `json:"candidates"`
}

// Analyze runs every stage over the snapshot. Empty sources skip their
// stages and an all-quiet input yields an empty, non-error report; only
// invalid parameters or an uncompilable keyword pattern fail the pass.
func Analyze(in Input) (Report, error) {
	if err := in.Params.Validate(); err != nil {
		return Report{}, err
	}

	var rep Report

	if len(in.Comments) > 0 {
		ordered := comments.SortByTime(in.Comments)

		bins, err := comments.Bin(ordered, in.Params.BinSize)
		if err != nil {
			return Report{}, err
		}
		rep.Bins = bins
		rep.Peaks = comments.FindPeaks(bins, in.Params.PeakPercentile, in.Params.PeakMinGap)

		keywords := in.Params.ReactionKeywords
		if keywords == nil {
			keywords = clips.DefaultReactionKeywords
		}
		table, err := comments.FrequencyOverTime(ordered, keywords, in.Params.BinSize)
		if err != nil {
			return Report{}, err
		}
		rep.KeywordTable = table

		rep.CommentStats = comments.Stats(ordered)
		rep.TopCommenters = comments.TopCommenters(ordered, in.Params.TopCommenters)
	}

	if len(in.Subtitles) > 0 {
		ordered := subtitles.SortByStart(in.Subtitles)

		rep.Segments = subtitles.SegmentBySilence(ordered, in.Params.SilenceGap, in.Params.MinClipDuration)

		changes, err := subtitles.DetectTopicChanges(ordered, in.Params.TopicMarkers)
		if err != nil {
			return Report{}, err
		}
		rep.TopicChanges = changes

		rep.SubtitleStats = subtitles.Stats(ordered)
	}

	cands, err := clips.Generate(in.Comments, in.Subtitles, in.Params.clipParams())
	if err != nil {
		return Report{}, err
	}
	rep.Candidates = cands

	return rep, nil
}
