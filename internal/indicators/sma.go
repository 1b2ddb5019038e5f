package indicators

import (
	"chart-analysis/internal/errors"
	"chart-analysis/pkg/types"
)

// sma computes the simple moving average of closes over a rolling window.
// Rows before window-1 stay at the missing marker.
func (e *Engine) sma(series types.Series, window int) (*Result, error) {
	if window <= 0 {
		return nil, errors.InvalidParameter(component, "sma", "window must be positive, got %d", window)
	}
	if len(series) < window {
		return nil, errors.InsufficientData(component, "sma", "need at least %d candles, got %d", window, len(series))
	}

	closes := series.Closes()
	res := newResult(len(closes), "sma")
	col := res.Values["sma"]

	sum := 0.0
	for i, c := range closes {
		sum += c
		if i >= window {
			sum -= closes[i-window]
		}
		if i >= window-1 {
			col[i] = sum / float64(window)
		}
	}
	return res, nil
}

// rollingMean fills dst with the rolling arithmetic mean of src; rows
// before window-1 are left untouched. Shared by the Bollinger middle band.
func rollingMean(dst, src []float64, window int) {
	sum := 0.0
	for i, v := range src {
		sum += v
		if i >= window {
			sum -= src[i-window]
		}
		if i >= window-1 {
			dst[i] = sum / float64(window)
		}
	}
}
