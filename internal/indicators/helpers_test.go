package indicators

import (
	"chart-analysis/pkg/types"
)

// seriesFromCloses builds hourly candles around the given closes.
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

// ascendingSeries builds closes 1..n.
func ascendingSeries(n int) types.Series {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	return seriesFromCloses(closes...)
}

// flatSeries builds n candles all closing at price.
func flatSeries(n int, price float64) types.Series {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = price
	}
	return seriesFromCloses(closes...)
}
