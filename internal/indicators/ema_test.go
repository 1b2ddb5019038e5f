package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-analysis/internal/errors"
)

func TestEMA_RecursiveFormula(t *testing.T) {
	engine := NewEngine(nil, nil)
	series := seriesFromCloses(10, 11, 12, 13, 14)

	res, err := engine.Compute(series, "ema", Params{Window: 3})
	require.NoError(t, err)

	col := res.Values["ema"]
	alpha := 2.0 / 4.0
	want := 10.0
	assert.Equal(t, want, col[0])
	for i := 1; i < len(col); i++ {
		want = series[i].Close*alpha + want*(1-alpha)
		assert.InDelta(t, want, col[i], 1e-12, "index %d", i)
	}
}

func TestEMA_FlatSeriesStaysFlat(t *testing.T) {
	engine := NewEngine(nil, nil)

	res, err := engine.Compute(flatSeries(20, 42), "ema", Params{Window: 5})
	require.NoError(t, err)

	for i, v := range res.Values["ema"] {
		assert.Equal(t, 42.0, v, "index %d", i)
	}
}

func TestEMA_InsufficientData(t *testing.T) {
	engine := NewEngine(nil, nil)

	_, err := engine.Compute(ascendingSeries(4), "ema", Params{Window: 10})
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientData(err))
}
