package clips

import (
	"math"
	"sort"
	"strings"

	"github.com/yuikisato/clipscout/internal/types"
)

// mergeRatio is the overlap fraction above which two candidates fold into
// one. Exactly half overlap does not merge.
const mergeRatio = 0.5

// mergeAndScore folds overlapping candidates, scores each merged interval,
// filters by duration bounds, and ranks by score descending.
//
// The merge is a single left-to-right sweep over the start-sorted list: each
// next candidate is compared only against the current accumulator, never
// against earlier finalized intervals. A pathological ordering can therefore
// leave two overlapping but non-consecutive candidates unmerged.
func mergeAndScore(cands []types.Candidate, p Params) []types.Candidate {
	if len(cands) == 0 {
		return nil
	}

	sort.SliceStable(cands, func(i, j int) bool { return cands[i].Start < cands[j].Start })

	var merged []types.Candidate
	current := cands[0]
	for _, next := range cands[1:] {
		if overlapRatio(current, next) > mergeRatio {
			current.Start = math.Min(current.Start, next.Start)
			current.End = math.Max(current.End, next.End)
			current.Reasons = append(current.Reasons, next.Reasons...)
			current.Details = append(current.Details, next.Details...)
			continue
		}
		merged = append(merged, finalize(current))
		current = next
	}
	merged = append(merged, finalize(current))

	valid := merged[:0]
	for _, c := range merged {
		if d := c.Duration(); d >= p.MinDuration && d <= p.MaxDuration {
			valid = append(valid, c)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Score > valid[j].Score })
	return valid
}

// overlapRatio is the shared duration divided by the shorter interval's
// duration. It is symmetric in its arguments.
func overlapRatio(a, b types.Candidate) float64 {
	overlap := math.Min(a.End, b.End) - math.Max(a.Start, b.Start)
	if overlap <= 0 {
		return 0
	}
	shorter := math.Min(a.Duration(), b.Duration())
	if shorter <= 0 {
		return 0
	}
	return overlap / shorter
}

// finalize deduplicates reasons (keeping first-occurrence order, so the
// display string is deterministic) and computes the composite score.
func finalize(c types.Candidate) types.Candidate {
	seen := make(map[string]struct{}, len(c.Reasons))
	distinct := make([]string, 0, len(c.Reasons))
	for _, r := range c.Reasons {
		if _, ok := seen[r]; ok {
			continue
		}
		seen[r] = struct{}{}
		distinct = append(distinct, r)
	}
	c.Reasons = distinct
	c.Reason = strings.Join(distinct, ", ")
	c.Score = score(c)
	return c
}
