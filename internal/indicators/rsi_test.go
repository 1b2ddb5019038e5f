package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-analysis/internal/errors"
)

func TestRSI_WindowTooSmall(t *testing.T) {
	engine := NewEngine(nil, nil)

	_, err := engine.Compute(ascendingSeries(30), "rsi", Params{Window: 1})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidParameter(err))
}

func TestRSI_AlwaysInRange(t *testing.T) {
	engine := NewEngine(nil, nil)
	series := seriesFromCloses(
		100, 102, 101, 105, 103, 99, 98, 104, 107, 106,
		110, 108, 111, 109, 113, 112, 115, 114, 118, 117,
	)

	res, err := engine.Compute(series, "rsi", Params{Window: 14})
	require.NoError(t, err)

	for i, v := range res.Values["rsi"] {
		assert.GreaterOrEqual(t, v, 0.0, "index %d", i)
		assert.LessOrEqual(t, v, 100.0, "index %d", i)
	}
}

func TestRSI_FlatSeriesIsNeutral(t *testing.T) {
	engine := NewEngine(nil, nil)

	res, err := engine.Compute(flatSeries(30, 50), "rsi", Params{Window: 14})
	require.NoError(t, err)

	for i, v := range res.Values["rsi"] {
		assert.Equal(t, 50.0, v, "index %d", i)
	}
}

func TestRSI_AllGainsSaturatesAtHundred(t *testing.T) {
	engine := NewEngine(nil, nil)

	res, err := engine.Compute(ascendingSeries(30), "rsi", Params{Window: 14})
	require.NoError(t, err)

	col := res.Values["rsi"]
	for i := 14; i < len(col); i++ {
		assert.Equal(t, 100.0, col[i], "index %d", i)
	}
}

func TestRSI_WarmupRowsDefaultToNeutral(t *testing.T) {
	engine := NewEngine(nil, nil)

	res, err := engine.Compute(ascendingSeries(30), "rsi", Params{Window: 14})
	require.NoError(t, err)

	col := res.Values["rsi"]
	for i := 0; i < 14; i++ {
		assert.Equal(t, 50.0, col[i], "index %d", i)
	}
}
