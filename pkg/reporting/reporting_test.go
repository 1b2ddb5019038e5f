package reporting

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chart-analysis/internal/backtest"
	"chart-analysis/internal/indicators"
	"chart-analysis/internal/levels"
	"chart-analysis/internal/strategy"
	"chart-analysis/pkg/types"
)

func sampleReport(t *testing.T) *Report {
	t.Helper()

	series := make(types.Series, 60)
	for i := range series {
		price := float64(i + 1)
		series[i] = types.Candle{
			Timestamp: int64(1700000000 + i*3600),
			Open:      price,
			High:      price,
			Low:       price,
			Close:     price,
			Volume:    1000,
		}
	}

	engine := indicators.NewEngine(nil, nil)
	smaRes, err := engine.Compute(series, "sma", indicators.Params{Window: 5})
	require.NoError(t, err)

	crossover, err := strategy.NewSMACrossover(4, 12)
	require.NoError(t, err)
	btRes, err := backtest.NewEngine(nil, nil).Run(series, crossover, "1h", 0, 0)
	require.NoError(t, err)

	return &Report{
		Symbol:     "BTCUSDT",
		Timeframe:  "1h",
		Candles:    len(series),
		Indicators: []IndicatorBlock{{Name: "sma", Result: smaRes}},
		Levels: []levels.Level{
			{
				Kind:          levels.Resistance,
				Price:         110,
				Touches:       []levels.Touch{{Price: 110, Timestamp: 1700000000, Index: 1}},
				Strength:      0.1,
				StrengthLabel: levels.LabelGeneral,
			},
		},
		Backtest: btRes,
	}
}

func TestJSONReporter_EncodesWarmupAsNull(t *testing.T) {
	rep := sampleReport(t)

	var buf bytes.Buffer
	require.NoError(t, NewJSONReporter().Write(rep, &buf))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	ind, ok := decoded["indicators"].(map[string]interface{})
	require.True(t, ok)
	sma, ok := ind["sma"].(map[string]interface{})
	require.True(t, ok)
	col, ok := sma["sma"].([]interface{})
	require.True(t, ok)
	require.Len(t, col, rep.Candles)

	// Warm-up rows serialize as null, defined rows as numbers.
	assert.Nil(t, col[0])
	assert.NotNil(t, col[len(col)-1])
}

func TestConsoleReporter_RendersAllSections(t *testing.T) {
	rep := sampleReport(t)

	var buf bytes.Buffer
	NewConsoleReporterTo(&buf).Write(rep)

	out := buf.String()
	assert.Contains(t, out, "BTCUSDT")
	assert.Contains(t, out, "INDICATORS")
	assert.Contains(t, out, "SUPPORT / RESISTANCE")
	assert.Contains(t, out, "BACKTEST")
}

func TestExcelReporter_WritesWorkbook(t *testing.T) {
	rep := sampleReport(t)
	path := filepath.Join(t.TempDir(), "out", "report.xlsx")

	require.NoError(t, NewExcelReporter().Write(rep, path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
