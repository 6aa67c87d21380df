// Package comments analyzes the chat side of an archive: time binning,
// peak detection, reaction-keyword frequency, and commenter statistics.
package comments

import (
	"fmt"
	"math"
	"sort"

	"github.com/yuikisato/clipscout/internal/types"
)

// Bin aggregates comments into fixed-width buckets. Boundaries run from
// floor(min timestamp) in steps of binSize; each bucket is half-open
// [start, start+binSize) except the last, which is closed on the right so
// the maximum timestamp lands inside it. Buckets with zero comments are
// omitted, so the result is a sparse, time-ordered sequence.
func Bin(records []types.CommentRecord, binSize float64) ([]types.TimeBin, error) {
	if binSize <= 0 {
		return nil, fmt.Errorf("bin size must be > 0, got %v", binSize)
	}
	if len(records) == 0 {
		return nil, nil
	}

	minT, maxT := timeRange(records)
	lo := math.Floor(minT)
	n := binCount(lo, maxT, binSize)

	counts := make([]int, n)
	for _, r := range records {
		counts[binIndex(r.Timestamp, lo, binSize, n)]++
	}

	bins := make([]types.TimeBin, 0, n)
	for i, c := range counts {
		if c == 0 {
			continue
		}
		start := lo + float64(i)*binSize
		bins = append(bins, types.TimeBin{
			Start: start,
			End:   start + binSize,
			Count: c,
			Rate:  float64(c) / binSize,
		})
	}
	return bins, nil
}

func timeRange(records []types.CommentRecord) (minT, maxT float64) {
	minT, maxT = records[0].Timestamp, records[0].Timestamp
	for _, r := range records[1:] {
		if r.Timestamp < minT {
			minT = r.Timestamp
		}
		if r.Timestamp > maxT {
			maxT = r.Timestamp
		}
	}
	return minT, maxT
}

func binCount(lo, maxT, binSize float64) int {
	n := int(math.Ceil((math.Ceil(maxT) - lo) / binSize))
	if n < 1 {
		n = 1
	}
	return n
}

// binIndex maps a timestamp onto a bucket, clamping onto the final bucket
// when the timestamp sits exactly on the last boundary.
func binIndex(t, lo, binSize float64, n int) int {
	idx := int(math.Floor((t - lo) / binSize))
	if idx < 0 {
		idx = 0
	}
	if idx >= n {
		idx = n - 1
	}
	return idx
}

// SortByTime returns a copy of records ordered by timestamp ascending.
// Input streams carry no ordering guarantee, so analyses that need
// adjacency sort up front.
func SortByTime(records []types.CommentRecord) []types.CommentRecord {
	out := make([]types.CommentRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp < out[j].Timestamp })
	return out
}
