package backtest

import (
	"time"

	"chart-analysis/internal/errors"
)

// timeframeDurations maps the supported candle intervals to their length.
var timeframeDurations = map[string]time.Duration{
	"1m":  time.Minute,
	"3m":  3 * time.Minute,
	"5m":  5 * time.Minute,
	"15m": 15 * time.Minute,
	"30m": 30 * time.Minute,
	"1h":  time.Hour,
	"2h":  2 * time.Hour,
	"4h":  4 * time.Hour,
	"6h":  6 * time.Hour,
	"12h": 12 * time.Hour,
	"1d":  24 * time.Hour,
	"1w":  7 * 24 * time.Hour,
}

// parseTimeframe resolves a timeframe token to a candle duration.
func parseTimeframe(tf string) (time.Duration, error) {
	d, ok := timeframeDurations[tf]
	if !ok {
		return 0, errors.InvalidParameter(component, "timeframe", "unknown timeframe %q", tf)
	}
	return d, nil
}
