package clips

import (
	"math"

	"github.com/yuikisato/clipscout/internal/types"
)

// score rates a merged candidate in [0, 1]. Corroboration across distinct
// signals carries most of the weight; raw comment and keyword volume add the
// rest. Detail variants without a recognized count contribute nothing beyond
// the reason term.
func score(c types.Candidate) float64 {
	s := math.Min(float64(len(c.Reasons))*0.3, 0.6)

	for _, d := range c.Details {
		switch d := d.(type) {
		case types.PeakDetail:
			s += math.Min(float64(d.PeakCount)/100, 0.3)
		case types.KeywordDetail:
			s += math.Min(float64(d.TotalCount)/50, 0.2)
		}
	}

	return clamp(s, 0, 1)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
