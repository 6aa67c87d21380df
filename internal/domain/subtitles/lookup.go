package subtitles

import (
	"strings"

	"github.com/yuikisato/clipscout/internal/textmatch"
	"github.com/yuikisato/clipscout/internal/types"
)

// At returns the text of the first subtitle covering the given time
// ([start, end) per cue), or false when nothing is on screen.
func At(subs []types.SubtitleRecord, timestamp float64) (string, bool) {
	for _, s := range SortByStart(subs) {
		if s.Start <= timestamp && s.End > timestamp {
			return s.Text, true
		}
	}
	return "", false
}

// Range returns the subtitles overlapping [start, end), time-ordered.
func Range(subs []types.SubtitleRecord, start, end float64) []types.SubtitleRecord {
	var out []types.SubtitleRecord
	for _, s := range SortByStart(subs) {
		if s.Start < end && s.End > start {
			out = append(out, s)
		}
	}
	return out
}

// FullText joins all subtitle texts in time order with the separator.
func FullText(subs []types.SubtitleRecord, separator string) string {
	if len(subs) == 0 {
		return ""
	}
	ordered := SortByStart(subs)
	parts := make([]string, len(ordered))
	for i, s := range ordered {
		parts[i] = s.Text
	}
	return strings.Join(parts, separator)
}

// KeywordHit records one subtitle matching one keyword pattern.
type KeywordHit struct {
	Keyword string  `json:"keyword"`
	Start   float64 `json:"start"`
	End     float64 `json:"end"`
	Text    string  `json:"text"`
}

// FindKeywords searches subtitle texts for each keyword pattern. Hits are
// grouped by keyword in the given order, time-ascending within each keyword.
func FindKeywords(subs []types.SubtitleRecord, keywords []string, caseSensitive bool) ([]KeywordHit, error) {
	matchers, err := textmatch.CompileSet(keywords, caseSensitive)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		return nil, nil
	}

	ordered := SortByStart(subs)
	var hits []KeywordHit
	for _, m := range matchers {
		for _, s := range ordered {
			if m.Matches(s.Text) {
				hits = append(hits, KeywordHit{
					Keyword: m.Keyword(),
					Start:   s.Start,
					End:     s.End,
					Text:    s.Text,
				})
			}
		}
	}
	return hits, nil
}
