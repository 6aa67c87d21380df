package comments

import (
	"math"
	"sort"

	"github.com/yuikisato/clipscout/internal/types"
)

// Percentile computes the p-th percentile of values using linear
// interpolation between closest ranks. p is in [0, 100].
func Percentile(values []int, p float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	for i, v := range values {
		sorted[i] = float64(v)
	}
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	loIdx := int(math.Floor(rank))
	hiIdx := int(math.Ceil(rank))
	if loIdx < 0 {
		loIdx = 0
	}
	if hiIdx > len(sorted)-1 {
		hiIdx = len(sorted) - 1
	}
	if loIdx == hiIdx {
		return sorted[loIdx]
	}
	frac := rank - float64(loIdx)
	return sorted[loIdx] + frac*(sorted[hiIdx]-sorted[loIdx])
}

// FindPeaks detects surges in a binned series. Bins whose count reaches the
// thresholdPercentile-th percentile qualify; qualifying bins within
// minGap seconds of each other (next start minus previous end) fold into one
// group. Each group is reported as its single highest-count bin, ties going
// to the earlier bin. The grouped span around that bin is intentionally
// discarded.
func FindPeaks(bins []types.TimeBin, thresholdPercentile, minGap float64) []types.Peak {
	if len(bins) == 0 {
		return nil
	}

	counts := make([]int, len(bins))
	for i, b := range bins {
		counts[i] = b.Count
	}
	threshold := Percentile(counts, thresholdPercentile)

	var qualifying []types.TimeBin
	for _, b := range bins {
		if float64(b.Count) >= threshold {
			qualifying = append(qualifying, b)
		}
	}
	if len(qualifying) == 0 {
		return nil
	}

	var peaks []types.Peak
	group := []types.TimeBin{qualifying[0]}
	for _, b := range qualifying[1:] {
		if b.Start-group[len(group)-1].End <= minGap {
			group = append(group, b)
			continue
		}
		peaks = append(peaks, collapseGroup(group))
		group = []types.TimeBin{b}
	}
	peaks = append(peaks, collapseGroup(group))
	return peaks
}

func collapseGroup(group []types.TimeBin) types.Peak {
	repr := group[0]
	for _, b := range group[1:] {
		if b.Count > repr.Count {
			repr = b
		}
	}
	return types.Peak{Start: repr.Start, End: repr.End, Count: repr.Count, Rate: repr.Rate}
}
