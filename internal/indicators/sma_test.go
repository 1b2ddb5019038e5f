package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-analysis/internal/errors"
)

func TestSMA_InvalidWindow(t *testing.T) {
	engine := NewEngine(nil, nil)

	_, err := engine.Compute(ascendingSeries(10), "sma", Params{Window: 0})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))

	_, err = engine.Compute(ascendingSeries(10), "sma", Params{Window: -3})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))
}

func TestSMA_ExactMeanAtEveryIndex(t *testing.T) {
	engine := NewEngine(nil, nil)
	series := seriesFromCloses(10, 12, 11, 15, 14, 13, 16, 18, 17, 19)
	closes := series.Closes()
	window := 4

	res, err := engine.Compute(series, "sma", Params{Window: window})
	require.NoError(t, err)

	col, ok := res.Column("sma")
	require.True(t, ok)
	require.Len(t, col, len(series))

	for i := range col {
		if i < window-1 {
			assert.True(t, Missing(col[i]), "index %d should be warm-up", i)
			continue
		}
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += closes[j]
		}
		assert.Equal(t, sum/float64(window), col[i], "index %d", i)
	}
}

func TestSMA_AscendingScenario(t *testing.T) {
	// 60 ascending integer closes: SMA(5) at the final index is exactly 58.
	engine := NewEngine(nil, nil)
	series := ascendingSeries(60)

	res, err := engine.Compute(series, "sma", Params{Window: 5})
	require.NoError(t, err)

	col := res.Values["sma"]
	assert.Equal(t, 58.0, col[len(col)-1])
}
