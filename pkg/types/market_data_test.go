package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeries_Validate(t *testing.T) {
	ok := Series{
		{Timestamp: 100, Close: 1},
		{Timestamp: 200, Close: 2},
		{Timestamp: 300, Close: 3},
	}
	assert.NoError(t, ok.Validate())

	duplicate := Series{
		{Timestamp: 100, Close: 1},
		{Timestamp: 100, Close: 2},
	}
	assert.Error(t, duplicate.Validate())

	descending := Series{
		{Timestamp: 200, Close: 1},
		{Timestamp: 100, Close: 2},
	}
	assert.Error(t, descending.Validate())

	assert.NoError(t, Series{}.Validate())
}

func TestSeries_Closes(t *testing.T) {
	s := Series{
		{Timestamp: 1, Close: 10},
		{Timestamp: 2, Close: 20},
	}
	closes := s.Closes()
	require.Equal(t, []float64{10, 20}, closes)

	// Mutating the copy must not touch the series.
	closes[0] = 99
	assert.Equal(t, 10.0, s[0].Close)
}

func TestCandle_BodyAndDirection(t *testing.T) {
	bull := Candle{Open: 10, Close: 12}
	assert.Equal(t, 2.0, bull.Body())
	assert.True(t, bull.Bullish())

	bear := Candle{Open: 12, Close: 10}
	assert.Equal(t, 2.0, bear.Body())
	assert.False(t, bear.Bullish())
}
