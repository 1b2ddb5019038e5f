package patterns

import (
	"fmt"
	"math"

	"chart-analysis/pkg/types"
)

// channelResidualBand is the maximum peak-to-peak deviation from the fitted
// trend, as a fraction of the mean price, for closes to count as a channel.
const channelResidualBand = 0.02

// channelRMSEBand is the RMSE, as a fraction of the mean price, above which
// confidence bottoms out.
const channelRMSEBand = 0.01

// detectChannel fits one regression line to the closes and accepts the
// series as a channel when every close stays within a tight residual band
// around the trend. Tighter band means higher score; lower RMSE means
// higher confidence.
func detectChannel(series types.Series) []Pattern {
	closes := series.Closes()
	slope, intercept := linreg(closes)
	mean := meanOf(closes)
	if mean <= 0 {
		return nil
	}

	minResid, maxResid := math.Inf(1), math.Inf(-1)
	sumSq := 0.0
	for i, c := range closes {
		resid := c - (slope*float64(i) + intercept)
		if resid < minResid {
			minResid = resid
		}
		if resid > maxResid {
			maxResid = resid
		}
		sumSq += resid * resid
	}
	band := maxResid - minResid
	if band > channelResidualBand*mean {
		return nil
	}

	rmse := math.Sqrt(sumSq / float64(len(closes)))
	direction := "flat"
	if slope > 0 {
		direction = "up"
	} else if slope < 0 {
		direction = "down"
	}
	return []Pattern{{
		Name:       "channel",
		Score:      clamp01(1 - band/(channelResidualBand*mean)),
		Confidence: clamp01(1 - rmse/(channelRMSEBand*mean)),
		StartTS:    series[0].Timestamp,
		EndTS:      series[len(series)-1].Timestamp,
		Points: []Point{
			{Timestamp: series[0].Timestamp, Price: intercept},
			{Timestamp: series[len(series)-1].Timestamp, Price: slope*float64(len(series)-1) + intercept},
		},
		Metadata: map[string]string{
			"direction": direction,
			"slope":     fmt.Sprintf("%.6f", slope),
			"rmse":      fmt.Sprintf("%.6f", rmse),
		},
	}}
}
