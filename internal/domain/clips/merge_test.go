package clips

import (
	"math"
	"testing"

	"github.com/yuikisato/clipscout/internal/types"
)

func cand(start, end float64, reason string) types.Candidate {
	return newCandidate(start, end, reason, types.SegmentDetail{})
}

func TestOverlapRatio(t *testing.T) {
	cases := []struct {
		name string
		a, b types.Candidate
		want float64
	}{
		{"disjoint", cand(0, 10, "a"), cand(20, 30, "b"), 0},
		{"touching", cand(0, 10, "a"), cand(10, 20, "b"), 0},
		{"half of shorter", cand(0, 10, "a"), cand(5, 15, "b"), 0.5},
		{"contained", cand(0, 100, "a"), cand(40, 50, "b"), 1},
		{"mostly shared", cand(0, 10, "a"), cand(4, 14, "b"), 0.6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := overlapRatio(tc.a, tc.b)
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("overlapRatio = %v, want %v", got, tc.want)
			}
			if rev := overlapRatio(tc.b, tc.a); rev != got {
				t.Fatalf("not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestMergeAndScore_ExactHalfOverlapStaysSeparate(t *testing.T) {
	p := Params{MinDuration: 1, MaxDuration: 100}
	got := mergeAndScore([]types.Candidate{cand(0, 10, "a"), cand(5, 15, "b")}, p)
	if len(got) != 2 {
		t.Fatalf("50%% overlap must not merge, got %+v", got)
	}
}

func TestMergeAndScore_MajorityOverlapMerges(t *testing.T) {
	p := Params{MinDuration: 1, MaxDuration: 100}
	got := mergeAndScore([]types.Candidate{cand(0, 10, "a"), cand(4, 14, "b")}, p)
	if len(got) != 1 {
		t.Fatalf("expected merge, got %+v", got)
	}
	c := got[0]
	if c.Start != 0 || c.End != 14 {
		t.Fatalf("merged interval = [%v, %v], want [0, 14]", c.Start, c.End)
	}
	if c.Reason != "a, b" {
		t.Fatalf("reasons = %q, want %q", c.Reason, "a, b")
	}
}

func TestMergeAndScore_DuplicateReasonCountedOnce(t *testing.T) {
	p := Params{MinDuration: 1, MaxDuration: 100}
	got := mergeAndScore([]types.Candidate{cand(0, 10, "a"), cand(1, 11, "a")}, p)
	if len(got) != 1 {
		t.Fatalf("expected merge, got %+v", got)
	}
	c := got[0]
	if c.Reason != "a" {
		t.Fatalf("reason = %q, want deduplicated %q", c.Reason, "a")
	}
	if math.Abs(c.Score-0.3) > 1e-9 {
		t.Fatalf("score = %v, want single-reason 0.3", c.Score)
	}
}

func TestMergeAndScore_SweepIsGreedy(t *testing.T) {
	// The accumulator resets at b; c overlaps a but is only compared
	// against b, so a and c stay separate.
	p := Params{MinDuration: 1, MaxDuration: 1000}
	a := cand(0, 100, "a")
	b := cand(90, 400, "b") // 10% of a's span, no merge
	c := cand(95, 105, "c") // inside a, but compared against b
	got := mergeAndScore([]types.Candidate{a, b, c}, p)
	if len(got) != 2 {
		t.Fatalf("expected a alone plus b+c, got %+v", got)
	}
}

func TestMergeAndScore_DurationFilterAfterMerge(t *testing.T) {
	// Both inputs are in bounds, the merged interval is not.
	p := Params{MinDuration: 1, MaxDuration: 12}
	got := mergeAndScore([]types.Candidate{cand(0, 10, "a"), cand(4, 14, "b")}, p)
	if len(got) != 0 {
		t.Fatalf("merged interval over max must be dropped, got %+v", got)
	}
}

func TestScore_Composite(t *testing.T) {
	c := types.Candidate{
		Reasons: []string{"comment surge"},
		Details: []types.Detail{
			types.PeakDetail{PeakCount: 20},
			types.KeywordDetail{TotalCount: 5},
		},
	}
	// One reason (0.3) + 20/100 (0.2) + 5/50 (0.1).
	want := 0.3 + 0.2 + 0.1
	if got := score(c); math.Abs(got-want) > 1e-9 {
		t.Fatalf("score = %v, want %v", got, want)
	}
}

func TestScore_ClampedToOne(t *testing.T) {
	c := types.Candidate{
		Reasons: []string{"a", "b", "c", "d"},
		Details: []types.Detail{
			types.PeakDetail{PeakCount: 1000},
			types.PeakDetail{PeakCount: 1000},
			types.KeywordDetail{TotalCount: 1000},
		},
	}
	if got := score(c); got != 1 {
		t.Fatalf("score = %v, want clamped 1", got)
	}
}

func TestScore_ReasonTermCaps(t *testing.T) {
	c := types.Candidate{Reasons: []string{"a", "b", "c"}}
	if got := score(c); math.Abs(got-0.6) > 1e-9 {
		t.Fatalf("score = %v, want reason cap 0.6", got)
	}
}

func TestMergeAndScore_Empty(t *testing.T) {
	if got := mergeAndScore(nil, Params{MinDuration: 1, MaxDuration: 10}); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}
