package indicators

import (
	"math"

	"chart-analysis/internal/errors"
	"chart-analysis/pkg/types"
)

// bollinger computes Bollinger Bands: middle = SMA(window), upper/lower =
// middle +/- stdDev * rolling population standard deviation. Rows before
// window-1 carry the missing marker.
func (e *Engine) bollinger(series types.Series, window int, stdDev float64) (*Result, error) {
	if window <= 0 {
		return nil, errors.InvalidParameter(component, "bbands", "window must be positive, got %d", window)
	}
	if stdDev <= 0 {
		return nil, errors.InvalidParameter(component, "bbands", "stddev multiplier must be positive, got %g", stdDev)
	}
	if len(series) < window {
		return nil, errors.InsufficientData(component, "bbands", "need at least %d candles, got %d", window, len(series))
	}

	closes := series.Closes()
	res := newResult(len(closes), "bb_middle", "bb_upper", "bb_lower")
	middle := res.Values["bb_middle"]
	rollingMean(middle, closes, window)

	for i := window - 1; i < len(closes); i++ {
		m := middle[i]
		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := closes[j] - m
			variance += d * d
		}
		sd := math.Sqrt(variance / float64(window))
		res.Values["bb_upper"][i] = m + stdDev*sd
		res.Values["bb_lower"][i] = m - stdDev*sd
	}
	return res, nil
}
