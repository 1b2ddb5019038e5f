package patterns

import (
	"fmt"

	"chart-analysis/pkg/types"
)

// detectTriangle fits regression lines to the highs and lows of the most
// recent half of the series and accepts converging slopes (highs falling,
// lows rising) with a shrinking high/low spread. Score scales with how much
// of the spread has converged away.
func detectTriangle(series types.Series) []Pattern {
	half := series[len(series)/2:]
	if len(half) < 4 {
		return nil
	}

	highSlope, highIntercept := linreg(half.Highs())
	lowSlope, lowIntercept := linreg(half.Lows())
	if highSlope >= 0 || lowSlope <= 0 {
		return nil
	}

	last := float64(len(half) - 1)
	startSpread := highIntercept - lowIntercept
	endSpread := (highSlope*last + highIntercept) - (lowSlope*last + lowIntercept)
	if startSpread <= 0 || endSpread >= startSpread {
		return nil
	}

	convergence := 1 - endSpread/startSpread
	return []Pattern{{
		Name:       "triangle",
		Score:      clamp01(convergence),
		Confidence: clamp01(0.5 + 0.4*convergence),
		StartTS:    half[0].Timestamp,
		EndTS:      half[len(half)-1].Timestamp,
		Points: []Point{
			{Timestamp: half[0].Timestamp, Price: highIntercept},
			{Timestamp: half[len(half)-1].Timestamp, Price: highSlope*last + highIntercept},
			{Timestamp: half[0].Timestamp, Price: lowIntercept},
			{Timestamp: half[len(half)-1].Timestamp, Price: lowSlope*last + lowIntercept},
		},
		Metadata: map[string]string{
			"high_slope":  fmt.Sprintf("%.6f", highSlope),
			"low_slope":   fmt.Sprintf("%.6f", lowSlope),
			"convergence": fmt.Sprintf("%.4f", convergence),
		},
	}}
}
