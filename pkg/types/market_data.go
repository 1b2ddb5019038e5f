package types

import (
	"fmt"
	"time"
)

// Candle is one OHLCV bar. Timestamp is Unix seconds of the bar open.
type Candle struct {
	Timestamp int64
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
}

// Time returns the candle open time as a time.Time in UTC.
func (c Candle) Time() time.Time {
	return time.Unix(c.Timestamp, 0).UTC()
}

// Body returns the absolute open-to-close size of the candle.
func (c Candle) Body() float64 {
	if c.Close >= c.Open {
		return c.Close - c.Open
	}
	return c.Open - c.Close
}

// Bullish reports whether the candle closed above its open.
func (c Candle) Bullish() bool {
	return c.Close > c.Open
}

// Series is a chronologically ascending sequence of candles with unique
// timestamps. Callers sort and deduplicate before handing a series to any
// analyzer; Validate enforces the ordering contract.
type Series []Candle

// Validate checks that timestamps are strictly ascending, which also
// guarantees uniqueness.
func (s Series) Validate() error {
	for i := 1; i < len(s); i++ {
		if s[i].Timestamp <= s[i-1].Timestamp {
			return fmt.Errorf("series not strictly ascending at index %d (ts %d after %d)",
				i, s[i].Timestamp, s[i-1].Timestamp)
		}
	}
	return nil
}

// Closes extracts the closing prices as a fresh slice.
func (s Series) Closes() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Close
	}
	return out
}

// Highs extracts the high prices as a fresh slice.
func (s Series) Highs() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.High
	}
	return out
}

// Lows extracts the low prices as a fresh slice.
func (s Series) Lows() []float64 {
	out := make([]float64, len(s))
	for i, c := range s {
		out[i] = c.Low
	}
	return out
}
