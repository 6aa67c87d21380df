package types

// CommentRecord is one chat message replayed from an archived live stream.
// Timestamp is in seconds from the stream origin; input order is not guaranteed.
type CommentRecord struct {
	Timestamp float64 `json:"timestamp_sec"`
	Author    string  `json:"author"`
	Text      string  `json:"text"`
}

// SubtitleRecord is one subtitle cue. End is always Start+Duration.
type SubtitleRecord struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	End      float64 `json:"end"`
	Text     string  `json:"text"`
}

// TimeBin is a fixed-width bucket of comment activity. The interval is
// half-open [Start, End); only the final bin of a series is closed on the
// right. Bins with zero comments are omitted, so a bin sequence is sparse.
type TimeBin struct {
	Start float64 `json:"bin_start"`
	End   float64 `json:"bin_end"`
	Count int     `json:"count"`
	Rate  float64 `json:"comment_rate"`
}

// Peak is a region where comment density exceeded a percentile threshold.
// Its extent is the single highest-count bin of the merged group.
type Peak struct {
	Start float64 `json:"time"`
	End   float64 `json:"time_end"`
	Count int     `json:"count"`
	Rate  float64 `json:"comment_rate"`
}

// KeywordHit records one comment matching one keyword pattern. A comment
// matching several keywords produces one hit per keyword.
type KeywordHit struct {
	Keyword   string  `json:"keyword"`
	Timestamp float64 `json:"timestamp_sec"`
	Text      string  `json:"text"`
}

// KeywordBin is the per-bucket match count for one keyword.
type KeywordBin struct {
	Start   float64 `json:"bin_start"`
	End     float64 `json:"bin_end"`
	Keyword string  `json:"keyword"`
	Count   int     `json:"count"`
}

// Segment is a contiguous run of subtitles bounded by silence gaps.
type Segment struct {
	ID            int     `json:"segment_id"`
	Start         float64 `json:"start"`
	End           float64 `json:"end"`
	Duration      float64 `json:"duration"`
	SubtitleCount int     `json:"subtitle_count"`
	Text          string  `json:"text"`
}

// TopicChange marks a subtitle that contains a discourse-transition keyword.
type TopicChange struct {
	Time    float64 `json:"time"`
	Keyword string  `json:"keyword"`
	Text    string  `json:"text"`
}

// Candidate is a proposed clip interval with a heuristic score in [0, 1].
// Reasons accumulates one entry per contributing signal during merging;
// Reason is the deduplicated display string.
type Candidate struct {
	Start   float64  `json:"start"`
	End     float64  `json:"end"`
	Reason  string   `json:"reason"`
	Reasons []string `json:"-"`
	Score   float64  `json:"score"`
	Details []Detail `json:"details"`
}

// Duration returns the candidate interval length in seconds.
func (c Candidate) Duration() float64 { return c.End - c.Start }

// Detail is opaque per-source metadata carried by a candidate, one entry per
// signal that contributed to it. The concrete variants below let scoring
// switch on the source instead of probing optional fields.
type Detail interface{ detail() }

// PeakDetail comes from a comment-volume peak.
type PeakDetail struct {
	PeakCount int     `json:"peak_count"`
	PeakTime  float64 `json:"peak_time"`
}

// KeywordDetail comes from a reaction-keyword burst.
type KeywordDetail struct {
	TotalCount int `json:"total_count"`
}

// SegmentDetail comes from a silence-bounded subtitle segment.
type SegmentDetail struct {
	SegmentID     int    `json:"segment_id"`
	SubtitleCount int    `json:"subtitle_count"`
	TextPreview   string `json:"text_preview"`
}

// TopicDetail comes from a topic-change marker.
type TopicDetail struct {
	Keyword string `json:"keyword"`
	Text    string `json:"text"`
}

func (PeakDetail) detail()    {}
func (KeywordDetail) detail() {}
func (SegmentDetail) detail() {}
func (TopicDetail) detail()   {}
