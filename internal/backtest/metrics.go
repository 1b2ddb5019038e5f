package backtest

import (
	"math"
	"time"
)

const hoursPerYear = 24 * 365

// computeMetrics derives the aggregate performance numbers. Every ratio
// falls back to 0 when its denominator is empty: no trades, no losing
// trades and zero variance are expected data shapes, not errors.
func computeMetrics(trades []Trade, curve []EquityPoint, barDuration time.Duration, barCount int) Metrics {
	var m Metrics
	if len(curve) == 0 {
		return m
	}

	final := curve[len(curve)-1].Equity
	m.TotalReturn = final - 1
	m.CAGR = cagr(final, barDuration, barCount)
	m.MaxDrawdown = maxDrawdown(curve)

	if len(trades) == 0 {
		return m
	}

	wins := 0
	grossProfit := 0.0
	grossLoss := 0.0
	returns := make([]float64, len(trades))
	for i, t := range trades {
		returns[i] = t.ReturnPct
		if t.ReturnPct > 0 {
			wins++
			grossProfit += t.ReturnPct
		} else {
			grossLoss += -t.ReturnPct
		}
	}

	m.WinRate = float64(wins) / float64(len(trades))
	m.Sharpe = sharpe(returns)
	if grossLoss > 0 {
		m.ProfitFactor = grossProfit / grossLoss
	}
	return m
}

// cagr annualizes the total return over the wall-clock span implied by the
// timeframe and the candle count.
func cagr(finalEquity float64, barDuration time.Duration, barCount int) float64 {
	if barCount < 2 || finalEquity <= 0 {
		return 0
	}
	years := barDuration.Hours() * float64(barCount-1) / hoursPerYear
	if years <= 0 {
		return 0
	}
	return math.Pow(finalEquity, 1/years) - 1
}

// maxDrawdown is the largest peak-to-trough equity decline.
func maxDrawdown(curve []EquityPoint) float64 {
	peak := curve[0].Equity
	maxDD := 0.0
	for _, p := range curve {
		if p.Equity > peak {
			peak = p.Equity
		}
		if peak > 0 {
			dd := (peak - p.Equity) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

// sharpe is the mean per-trade return over its standard deviation, 0 when
// the deviation vanishes.
func sharpe(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}
	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns))
	std := math.Sqrt(variance)
	if std == 0 || std < 1e-12 {
		return 0
	}
	return mean / std
}
