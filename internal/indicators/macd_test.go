package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-analysis/internal/errors"
)

func TestMACD_SlowMustExceedFast(t *testing.T) {
	engine := NewEngine(nil, nil)

	_, err := engine.Compute(ascendingSeries(60), "macd", Params{Fast: 26, Slow: 12, Signal: 9})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))

	_, err = engine.Compute(ascendingSeries(60), "macd", Params{Fast: 12, Slow: 12, Signal: 9})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))
}

func TestMACD_AscendingScenario(t *testing.T) {
	// 60 ascending integer closes: all three columns present, histogram
	// identity holds at every index past warm-up.
	engine := NewEngine(nil, nil)
	series := ascendingSeries(60)

	res, err := engine.Compute(series, "macd", Params{Fast: 12, Slow: 26, Signal: 9})
	require.NoError(t, err)
	assert.Equal(t, []string{"macd", "macd_signal", "macd_hist"}, res.Columns)

	macd := res.Values["macd"]
	signal := res.Values["macd_signal"]
	hist := res.Values["macd_hist"]

	warmup := 26 - 1
	for i := 0; i < warmup; i++ {
		assert.True(t, Missing(macd[i]), "macd index %d", i)
		assert.True(t, Missing(signal[i]), "signal index %d", i)
		assert.True(t, Missing(hist[i]), "hist index %d", i)
	}
	for i := warmup; i < len(series); i++ {
		require.False(t, Missing(macd[i]), "macd index %d", i)
		require.False(t, Missing(signal[i]), "signal index %d", i)
		assert.Equal(t, macd[i]-signal[i], hist[i], "index %d", i)
	}
}

func TestMACD_WarmupUsesLargerOfSlowAndSignal(t *testing.T) {
	engine := NewEngine(nil, nil)
	series := ascendingSeries(60)

	res, err := engine.Compute(series, "macd", Params{Fast: 3, Slow: 5, Signal: 12})
	require.NoError(t, err)

	col := res.Values["macd"]
	for i := 0; i < 11; i++ {
		assert.True(t, Missing(col[i]), "index %d", i)
	}
	assert.False(t, Missing(col[11]))
}
