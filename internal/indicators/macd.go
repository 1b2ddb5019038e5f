package indicators

import (
	"chart-analysis/internal/errors"
	"chart-analysis/pkg/types"
)

// macd computes the MACD line (EMA(fast) - EMA(slow)), its signal line
// (EMA of the MACD line over the signal window) and the histogram.
// Rows before max(slow, signal)-1 are warm-up and carry the missing marker
// in all three columns.
func (e *Engine) macd(series types.Series, fast, slow, signal int) (*Result, error) {
	if fast <= 0 || slow <= 0 || signal <= 0 {
		return nil, errors.InvalidParameter(component, "macd",
			"windows must be positive, got fast=%d slow=%d signal=%d", fast, slow, signal)
	}
	if slow <= fast {
		return nil, errors.InvalidParameter(component, "macd", "slow window (%d) must exceed fast window (%d)", slow, fast)
	}
	minLen := slow + signal
	if len(series) < minLen {
		return nil, errors.InsufficientData(component, "macd", "need at least %d candles, got %d", minLen, len(series))
	}

	closes := series.Closes()
	fastEMA := emaColumn(closes, fast)
	slowEMA := emaColumn(closes, slow)

	macdLine := make([]float64, len(closes))
	for i := range closes {
		macdLine[i] = fastEMA[i] - slowEMA[i]
	}
	signalLine := emaColumn(macdLine, signal)

	res := newResult(len(closes), "macd", "macd_signal", "macd_hist")
	warmup := slow
	if signal > slow {
		warmup = signal
	}
	for i := warmup - 1; i < len(closes); i++ {
		res.Values["macd"][i] = macdLine[i]
		res.Values["macd_signal"][i] = signalLine[i]
		res.Values["macd_hist"][i] = macdLine[i] - signalLine[i]
	}
	return res, nil
}
