package patterns

import (
	"fmt"
	"sort"

	"chart-analysis/pkg/types"
)

// Tuned thresholds; changing them is a behavior change, not a refactor.
const (
	// doublePriceTolerance is the maximum relative gap between the two
	// peaks (or bottoms) of the pair.
	doublePriceTolerance = 0.015

	// doubleRetraceMin is how far the intervening trough/peak must retrace
	// beyond the pair for the shape to count as a reversal, not noise.
	doubleRetraceMin = 0.02

	// doubleRetraceFull is the retrace depth that earns a full depth score.
	doubleRetraceFull = 0.05
)

// detectDoubleTop accepts the two highest local maxima when they sit within
// doublePriceTolerance of each other and the valley between them retraces
// at least doubleRetraceMin below the pair.
func detectDoubleTop(series types.Series) []Pattern {
	maxima := localMaxima(series)
	if len(maxima) < 2 {
		return nil
	}
	first, second := twoHighest(maxima)
	return buildDouble(series, first, second, true)
}

// detectDoubleBottom mirrors detectDoubleTop on the two lowest minima.
func detectDoubleBottom(series types.Series) []Pattern {
	minima := localMinima(series)
	if len(minima) < 2 {
		return nil
	}
	first, second := twoLowest(minima)
	return buildDouble(series, first, second, false)
}

func buildDouble(series types.Series, a, b extremum, top bool) []Pattern {
	if a.index > b.index {
		a, b = b, a
	}
	ref := a.price
	if b.price > ref {
		ref = b.price
	}
	if ref == 0 {
		return nil
	}
	diff := a.price - b.price
	if diff < 0 {
		diff = -diff
	}
	relDiff := diff / ref
	if relDiff > doublePriceTolerance {
		return nil
	}

	pairAvg := (a.price + b.price) / 2

	// Deepest retrace between the two extremes.
	var retrace float64
	if top {
		valley := series[a.index].Close
		for i := a.index; i <= b.index; i++ {
			if series[i].Close < valley {
				valley = series[i].Close
			}
		}
		retrace = (pairAvg - valley) / pairAvg
	} else {
		peak := series[a.index].Close
		for i := a.index; i <= b.index; i++ {
			if series[i].Close > peak {
				peak = series[i].Close
			}
		}
		retrace = (peak - pairAvg) / pairAvg
	}
	if retrace < doubleRetraceMin {
		return nil
	}

	matchScore := 1 - relDiff/doublePriceTolerance
	depthScore := clamp01(retrace / doubleRetraceFull)
	name := "double_top"
	direction := "bearish"
	if !top {
		name = "double_bottom"
		direction = "bullish"
	}
	return []Pattern{{
		Name:       name,
		Score:      clamp01(0.5*matchScore + 0.5*depthScore),
		Confidence: clamp01(0.5 + 0.4*matchScore),
		StartTS:    series[a.index].Timestamp,
		EndTS:      series[b.index].Timestamp,
		Points: []Point{
			{Timestamp: series[a.index].Timestamp, Price: a.price},
			{Timestamp: series[b.index].Timestamp, Price: b.price},
		},
		Metadata: map[string]string{
			"direction": direction,
			"retrace":   fmt.Sprintf("%.4f", retrace),
		},
	}}
}

func twoHighest(ex []extremum) (extremum, extremum) {
	sorted := make([]extremum, len(ex))
	copy(sorted, ex)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].price > sorted[j].price })
	return sorted[0], sorted[1]
}

func twoLowest(ex []extremum) (extremum, extremum) {
	sorted := make([]extremum, len(ex))
	copy(sorted, ex)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].price < sorted[j].price })
	return sorted[0], sorted[1]
}
