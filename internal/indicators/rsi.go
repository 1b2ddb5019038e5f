package indicators

import (
	"chart-analysis/internal/errors"
	"chart-analysis/pkg/types"
)

// rsiNeutral fills rows that do not yet have a full lookback; the series
// must never report an out-of-range or undefined early value.
const rsiNeutral = 50.0

// rsi computes the Relative Strength Index with Wilder's smoothing on
// gains and losses. A zero average loss means "all gains" and maps to 100;
// a flat window (no gains, no losses) stays at the neutral value.
func (e *Engine) rsi(series types.Series, window int) (*Result, error) {
	if window < 2 {
		return nil, errors.InvalidParameter(component, "rsi", "window must be at least 2, got %d", window)
	}
	if len(series) < window+1 {
		return nil, errors.InsufficientData(component, "rsi", "need at least %d candles, got %d", window+1, len(series))
	}

	closes := series.Closes()
	res := newResult(len(closes), "rsi")
	col := res.Values["rsi"]

	gains := make([]float64, len(closes))
	losses := make([]float64, len(closes))
	for i := 1; i < len(closes); i++ {
		delta := closes[i] - closes[i-1]
		if delta > 0 {
			gains[i] = delta
		} else {
			losses[i] = -delta
		}
	}

	var avgGain, avgLoss float64
	for i := range closes {
		if i < window {
			col[i] = rsiNeutral
			continue
		}
		if i == window {
			// Seed with the plain mean of the first window deltas.
			for j := 1; j <= window; j++ {
				avgGain += gains[j]
				avgLoss += losses[j]
			}
			avgGain /= float64(window)
			avgLoss /= float64(window)
		} else {
			avgGain = (avgGain*float64(window-1) + gains[i]) / float64(window)
			avgLoss = (avgLoss*float64(window-1) + losses[i]) / float64(window)
		}

		switch {
		case avgLoss == 0 && avgGain == 0:
			col[i] = rsiNeutral
		case avgLoss == 0:
			// RS -> +Inf, RSI -> 100.
			col[i] = 100.0
		default:
			rs := avgGain / avgLoss
			col[i] = 100.0 - 100.0/(1.0+rs)
		}
	}
	return res, nil
}
