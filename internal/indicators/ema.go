package indicators

import (
	"chart-analysis/internal/errors"
	"chart-analysis/pkg/types"
)

// ema computes an exponential moving average with the span convention
// alpha = 2/(window+1), seeded with the first close. Gaps are never
// forward-filled; the column is defined from index 0.
func (e *Engine) ema(series types.Series, window int) (*Result, error) {
	if window <= 0 {
		return nil, errors.InvalidParameter(component, "ema", "window must be positive, got %d", window)
	}
	if len(series) < window {
		return nil, errors.InsufficientData(component, "ema", "need at least %d candles, got %d", window, len(series))
	}

	res := newResult(len(series), "ema")
	copy(res.Values["ema"], emaColumn(series.Closes(), window))
	return res, nil
}

// emaColumn applies the recursive EMA formula over the full input.
func emaColumn(values []float64, window int) []float64 {
	alpha := 2.0 / float64(window+1)
	out := make([]float64, len(values))
	for i, v := range values {
		if i == 0 {
			out[i] = v
			continue
		}
		out[i] = v*alpha + out[i-1]*(1-alpha)
	}
	return out
}
