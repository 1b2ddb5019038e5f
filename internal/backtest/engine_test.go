package backtest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-analysis/internal/errors"
	"chart-analysis/internal/strategy"
	"chart-analysis/pkg/types"
)

func seriesFromCloses(closes ...float64) types.Series {
	series := make(types.Series, len(closes))
	for i, c := range closes {
		series[i] = types.Candle{
			Timestamp: int64(1700000000 + i*3600),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    1000,
		}
	}
	return series
}

func ascendingSeries(n int) types.Series {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	return seriesFromCloses(closes...)
}

func flatSeries(n int, price float64) types.Series {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = price
	}
	return seriesFromCloses(closes...)
}

func mustCrossover(t *testing.T, fast, slow int) *strategy.SMACrossover {
	t.Helper()
	s, err := strategy.NewSMACrossover(fast, slow)
	require.NoError(t, err)
	return s
}

func TestRun_UnknownTimeframe(t *testing.T) {
	engine := NewEngine(nil, nil)

	_, err := engine.Run(ascendingSeries(60), mustCrossover(t, 4, 12), "7h", 0, 0)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))
}

func TestRun_NegativeFees(t *testing.T) {
	engine := NewEngine(nil, nil)

	_, err := engine.Run(ascendingSeries(60), mustCrossover(t, 4, 12), "1h", -1, 0)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))
}

func TestRun_FlatSeriesNeverTrades(t *testing.T) {
	engine := NewEngine(nil, nil)

	res, err := engine.Run(flatSeries(60, 100), mustCrossover(t, 4, 12), "1h", 10, 5)
	require.NoError(t, err)

	assert.Empty(t, res.Trades)
	assert.Equal(t, 0.0, res.Metrics.TotalReturn)
	assert.Equal(t, 0.0, res.Metrics.MaxDrawdown)
	assert.Equal(t, 0.0, res.Metrics.Sharpe)
	assert.Equal(t, 0.0, res.Metrics.WinRate)
	assert.Equal(t, 0.0, res.Metrics.ProfitFactor)

	require.Len(t, res.EquityCurve, 60)
	for _, p := range res.EquityCurve {
		assert.Equal(t, 1.0, p.Equity)
	}
}

func TestRun_RisingSeriesScenario(t *testing.T) {
	// Monotonically rising closes with a 4-vs-12 crossover and zero fees:
	// at least one trade and a strictly positive final equity.
	engine := NewEngine(nil, nil)

	res, err := engine.Run(ascendingSeries(60), mustCrossover(t, 4, 12), "1h", 0, 0)
	require.NoError(t, err)

	require.NotEmpty(t, res.Trades)
	final := res.EquityCurve[len(res.EquityCurve)-1].Equity
	assert.Greater(t, final, 1.0)
	assert.Greater(t, res.Metrics.TotalReturn, 0.0)
	assert.Greater(t, res.Metrics.CAGR, 0.0)

	for _, tr := range res.Trades {
		assert.LessOrEqual(t, tr.EntryTS, tr.ExitTS)
	}
}

func TestRun_FeesNeverIncreaseReturn(t *testing.T) {
	engine := NewEngine(nil, nil)
	series := ascendingSeries(60)
	strat := mustCrossover(t, 4, 12)

	prev := 0.0
	for i, bps := range []float64{0, 10, 100, 1000, 100000} {
		res, err := engine.Run(series, strat, "1h", bps, 0)
		require.NoError(t, err)

		total := res.Metrics.TotalReturn
		assert.False(t, total != total, "total return must not be NaN at %g bps", bps)
		if i > 0 {
			assert.LessOrEqual(t, total, prev, "fees %g bps", bps)
		}
		prev = total
	}
}

func TestRun_ExtremeFeesStayFinite(t *testing.T) {
	engine := NewEngine(nil, nil)

	res, err := engine.Run(ascendingSeries(60), mustCrossover(t, 4, 12), "1h", 1e9, 1e9)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, res.Metrics.TotalReturn, -1.0)
	for _, p := range res.EquityCurve {
		assert.GreaterOrEqual(t, p.Equity, 0.0)
	}
}

func TestRun_ProfitFactorZeroWithoutLosses(t *testing.T) {
	engine := NewEngine(nil, nil)

	res, err := engine.Run(ascendingSeries(60), mustCrossover(t, 4, 12), "1h", 0, 0)
	require.NoError(t, err)

	require.NotEmpty(t, res.Trades)
	for _, tr := range res.Trades {
		require.Greater(t, tr.ReturnPct, 0.0)
	}
	assert.Equal(t, 0.0, res.Metrics.ProfitFactor)
	assert.Equal(t, 1.0, res.Metrics.WinRate)
}

func TestRun_RoundTripOnReversal(t *testing.T) {
	// Rally then sell-off: the long opened on the bullish cross must close
	// on the bearish one, not at the end of the series.
	engine := NewEngine(nil, nil)

	closes := make([]float64, 0, 60)
	for i := 0; i < 30; i++ {
		closes = append(closes, 100+float64(i))
	}
	for i := 0; i < 30; i++ {
		closes = append(closes, 129-float64(i)*2)
	}

	res, err := engine.Run(seriesFromCloses(closes...), mustCrossover(t, 4, 12), "1h", 0, 0)
	require.NoError(t, err)

	require.NotEmpty(t, res.Trades)
	first := res.Trades[0]
	lastTS := res.EquityCurve[len(res.EquityCurve)-1].Timestamp
	assert.Less(t, first.ExitTS, lastTS)
}

func TestMaxDrawdown(t *testing.T) {
	curve := []EquityPoint{
		{Timestamp: 1, Equity: 1.0},
		{Timestamp: 2, Equity: 1.5},
		{Timestamp: 3, Equity: 0.9},
		{Timestamp: 4, Equity: 1.2},
	}
	assert.InDelta(t, (1.5-0.9)/1.5, maxDrawdown(curve), 1e-12)
}

func TestSharpe_ZeroVariance(t *testing.T) {
	assert.Equal(t, 0.0, sharpe([]float64{0.05, 0.05, 0.05}))
	assert.Equal(t, 0.0, sharpe([]float64{0.05}))
}
