package patterns

import (
	"fmt"

	"chart-analysis/pkg/types"
)

// Tuned thresholds; changing them is a behavior change, not a refactor.
const (
	// hsHeadLiftMin is how far the head must exceed the shoulder average.
	hsHeadLiftMin = 0.02

	// hsShoulderTolerance is the maximum relative mismatch between the two
	// shoulder heights.
	hsShoulderTolerance = 0.05

	// hsNecklineTolerance is the maximum relative tilt of the neckline.
	hsNecklineTolerance = 0.03

	// hsHeadLiftFull is the head lift that earns full prominence credit.
	hsHeadLiftFull = 0.10

	// hsMinSpacing is the minimum bar distance between consecutive extrema
	// of a candidate triple.
	hsMinSpacing = 2

	hsScoreCap      = 0.9
	hsConfidenceMin = 0.55
	hsConfidenceMax = 0.9
)

// detectHeadShoulders scans consecutive triples of local extrema: peaks for
// the bearish shape, troughs for the bullish inverse.
func detectHeadShoulders(series types.Series) []Pattern {
	var out []Pattern
	out = append(out, scanTriples(series, localMaxima(series), false)...)
	out = append(out, scanTriples(series, localMinima(series), true)...)
	return out
}

func scanTriples(series types.Series, extrema []extremum, inverse bool) []Pattern {
	var out []Pattern
	for i := 1; i+1 < len(extrema); i++ {
		left, head, right := extrema[i-1], extrema[i], extrema[i+1]
		if head.index-left.index < hsMinSpacing || right.index-head.index < hsMinSpacing {
			continue
		}
		if p, ok := buildHeadShoulders(series, left, head, right, inverse); ok {
			out = append(out, p)
		}
	}
	return out
}

func buildHeadShoulders(series types.Series, left, head, right extremum, inverse bool) (Pattern, bool) {
	shoulderAvg := (left.price + right.price) / 2
	if shoulderAvg <= 0 {
		return Pattern{}, false
	}

	// Head prominence relative to the shoulder average.
	var lift float64
	if inverse {
		lift = (shoulderAvg - head.price) / shoulderAvg
	} else {
		lift = (head.price - shoulderAvg) / shoulderAvg
	}
	if lift < hsHeadLiftMin {
		return Pattern{}, false
	}

	// Shoulder symmetry.
	hi := left.price
	if right.price > hi {
		hi = right.price
	}
	mismatch := left.price - right.price
	if mismatch < 0 {
		mismatch = -mismatch
	}
	symmetry := mismatch / hi
	if symmetry > hsShoulderTolerance {
		return Pattern{}, false
	}

	// Neckline: the counter-extremes between shoulders and head must be
	// level within tolerance.
	neckA := counterExtreme(series, left.index, head.index, inverse)
	neckB := counterExtreme(series, head.index, right.index, inverse)
	neckHi := neckA.price
	if neckB.price > neckHi {
		neckHi = neckB.price
	}
	if neckHi <= 0 {
		return Pattern{}, false
	}
	neckTilt := neckA.price - neckB.price
	if neckTilt < 0 {
		neckTilt = -neckTilt
	}
	neckTilt /= neckHi
	if neckTilt > hsNecklineTolerance {
		return Pattern{}, false
	}

	promScore := clamp01(lift / hsHeadLiftFull)
	symScore := clamp01(1 - symmetry/hsShoulderTolerance)
	neckScore := clamp01(1 - neckTilt/hsNecklineTolerance)

	score := 0.4 + 0.3*promScore + 0.2*symScore
	if score > hsScoreCap {
		score = hsScoreCap
	}
	confidence := hsConfidenceMin + (hsConfidenceMax-hsConfidenceMin)*(0.5*symScore+0.5*neckScore)

	direction := "bearish"
	if inverse {
		direction = "bullish"
	}
	return Pattern{
		Name:       "head_shoulders",
		Score:      score,
		Confidence: confidence,
		StartTS:    series[left.index].Timestamp,
		EndTS:      series[right.index].Timestamp,
		Points: []Point{
			{Timestamp: series[left.index].Timestamp, Price: left.price},
			{Timestamp: series[neckA.index].Timestamp, Price: neckA.price},
			{Timestamp: series[head.index].Timestamp, Price: head.price},
			{Timestamp: series[neckB.index].Timestamp, Price: neckB.price},
			{Timestamp: series[right.index].Timestamp, Price: right.price},
		},
		Metadata: map[string]string{
			"direction":     direction,
			"head_lift":     fmt.Sprintf("%.4f", lift),
			"shoulder_diff": fmt.Sprintf("%.4f", symmetry),
			"neckline_tilt": fmt.Sprintf("%.4f", neckTilt),
		},
	}, true
}

// counterExtreme finds the lowest close between two peaks (or the highest
// close between two troughs for the inverse shape), exclusive bounds.
func counterExtreme(series types.Series, from, to int, inverse bool) extremum {
	best := extremum{index: from + 1, price: series[from+1].Close}
	for i := from + 1; i < to; i++ {
		c := series[i].Close
		if inverse {
			if c > best.price {
				best = extremum{index: i, price: c}
			}
		} else {
			if c < best.price {
				best = extremum{index: i, price: c}
			}
		}
	}
	return best
}
