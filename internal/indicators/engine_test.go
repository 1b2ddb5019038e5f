package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-analysis/internal/errors"
)

func TestEngine_Compute_UnknownIndicator(t *testing.T) {
	engine := NewEngine(nil, nil)

	_, err := engine.Compute(ascendingSeries(30), "vwap", Params{Window: 5})
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedIndicator(err))
}

func TestEngine_Compute_MAAlias(t *testing.T) {
	engine := NewEngine(nil, nil)
	series := ascendingSeries(30)

	viaMA, err := engine.Compute(series, "ma", Params{Window: 5})
	require.NoError(t, err)
	viaSMA, err := engine.Compute(series, "sma", Params{Window: 5})
	require.NoError(t, err)

	smaVals := viaSMA.Values["sma"]
	maVals := viaMA.Values["sma"]
	require.Equal(t, len(smaVals), len(maVals))
	for i := range smaVals {
		if Missing(smaVals[i]) {
			assert.True(t, Missing(maVals[i]), "index %d", i)
			continue
		}
		assert.Equal(t, smaVals[i], maVals[i], "index %d", i)
	}
}

func TestEngine_Compute_NoPartialResultOnFailure(t *testing.T) {
	engine := NewEngine(nil, nil)

	res, err := engine.Compute(ascendingSeries(3), "sma", Params{Window: 10})
	require.Error(t, err)
	assert.True(t, errors.IsInsufficientData(err))
	assert.Nil(t, res)
}
