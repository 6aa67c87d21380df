package comments

import (
	"fmt"
	"math"
	"sort"

	"github.com/yuikisato/clipscout/internal/textmatch"
	"github.com/yuikisato/clipscout/internal/types"
)

// CountKeywords finds every comment matching each keyword pattern. A comment
// matching several keywords is reported once per keyword. Hits are grouped by
// keyword in the given order, time-ascending within each keyword.
func CountKeywords(records []types.CommentRecord, keywords []string, caseSensitive bool) ([]types.KeywordHit, error) {
	matchers, err := textmatch.CompileSet(keywords, caseSensitive)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	sorted := SortByTime(records)
	var hits []types.KeywordHit
	for _, m := range matchers {
		for _, r := range sorted {
			if m.Matches(r.Text) {
				hits = append(hits, types.KeywordHit{
					Keyword:   m.Keyword(),
					Timestamp: r.Timestamp,
					Text:      r.Text,
				})
			}
		}
	}
	return hits, nil
}

// FrequencyOverTime bins keyword matches over the full record set's time
// range (not per keyword), grouped by bucket and keyword. Buckets or
// keywords with zero matches are omitted. Results are ordered by bucket
// start, then keyword.
func FrequencyOverTime(records []types.CommentRecord, keywords []string, binSize float64) ([]types.KeywordBin, error) {
	hits, err := CountKeywords(records, keywords, false)
	if err != nil {
		return nil, err
	}
	if binSize <= 0 {
		return nil, fmt.Errorf("bin size must be > 0, got %v", binSize)
	}
	if len(hits) == 0 {
		return nil, nil
	}

	minT, maxT := timeRange(records)
	lo := math.Floor(minT)
	n := binCount(lo, maxT, binSize)

	type key struct {
		bin     int
		keyword string
	}
	grouped := make(map[key]int)
	for _, h := range hits {
		grouped[key{binIndex(h.Timestamp, lo, binSize, n), h.Keyword}]++
	}

	out := make([]types.KeywordBin, 0, len(grouped))
	for k, c := range grouped {
		start := lo + float64(k.bin)*binSize
		out = append(out, types.KeywordBin{
			Start:   start,
			End:     start + binSize,
			Keyword: k.keyword,
			Count:   c,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].Keyword < out[j].Keyword
	})
	return out, nil
}
