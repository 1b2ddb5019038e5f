package patterns

import (
	"fmt"

	"chart-analysis/pkg/types"
)

// Tuned thresholds; changing them is a behavior change, not a refactor.
const (
	// candleScanWindow bounds the candlestick scan to the most recent bars.
	candleScanWindow = 20

	// trendLookback is how many bars feed the regression whose slope sign
	// decides the trend context.
	trendLookback = 4

	// hammerShadowRatio is the minimum shadow-to-body ratio.
	hammerShadowRatio = 2.0

	// hammerClosePct is how close (as a fraction of the full range) the
	// close must sit to the candle's extreme.
	hammerClosePct = 0.20

	// engulfSizeRatio is the minimum current-to-prior body size ratio.
	engulfSizeRatio = 1.1

	// dojiEpsilon skips near-zero bodies that would inflate ratios.
	dojiEpsilon = 1e-6
)

// detectCandlesticks evaluates hammer and engulfing shapes over the most
// recent candleScanWindow candles, gated on the local trend context.
func detectCandlesticks(series types.Series) []Pattern {
	var out []Pattern

	from := len(series) - candleScanWindow
	if from < trendLookback {
		from = trendLookback
	}
	closes := series.Closes()

	for i := from; i < len(series); i++ {
		// Trend before this candle: sign of the regression slope over the
		// short lookback.
		slope, _ := linreg(closes[i-trendLookback : i])

		if p, ok := hammerAt(series, i, slope); ok {
			out = append(out, p)
		}
		if p, ok := engulfingAt(series, i, slope); ok {
			out = append(out, p)
		}
	}
	return out
}

func hammerAt(series types.Series, i int, trendSlope float64) (Pattern, bool) {
	c := series[i]
	body := c.Body()
	if body < dojiEpsilon*c.Close {
		return Pattern{}, false
	}
	fullRange := c.High - c.Low
	if fullRange <= 0 {
		return Pattern{}, false
	}

	bodyLow := c.Open
	if c.Close < bodyLow {
		bodyLow = c.Close
	}
	bodyHigh := c.Open
	if c.Close > bodyHigh {
		bodyHigh = c.Close
	}
	lowerShadow := bodyLow - c.Low
	upperShadow := c.High - bodyHigh

	var direction string
	var shadow float64
	switch {
	// Bullish hammer: long lower shadow, close near the high, after a
	// local downtrend.
	case trendSlope < 0 && lowerShadow >= hammerShadowRatio*body && (c.High-c.Close) <= hammerClosePct*fullRange:
		direction = "bullish"
		shadow = lowerShadow
	// Bearish variant: long upper shadow, close near the low, after a
	// local uptrend.
	case trendSlope > 0 && upperShadow >= hammerShadowRatio*body && (c.Close-c.Low) <= hammerClosePct*fullRange:
		direction = "bearish"
		shadow = upperShadow
	default:
		return Pattern{}, false
	}

	ratio := shadow / body
	return Pattern{
		Name:       "hammer",
		Score:      clamp01(0.4 + 0.1*(ratio-hammerShadowRatio)),
		Confidence: clamp01(0.5 + 0.05*(ratio-hammerShadowRatio)),
		StartTS:    c.Timestamp,
		EndTS:      c.Timestamp,
		Points:     []Point{{Timestamp: c.Timestamp, Price: c.Close}},
		Metadata: map[string]string{
			"direction":    direction,
			"shadow_ratio": fmt.Sprintf("%.2f", ratio),
		},
	}, true
}

func engulfingAt(series types.Series, i int, trendSlope float64) (Pattern, bool) {
	cur := series[i]
	prev := series[i-1]
	curBody := cur.Body()
	prevBody := prev.Body()
	if curBody < dojiEpsilon*cur.Close || prevBody < dojiEpsilon*prev.Close {
		return Pattern{}, false
	}

	prevLow, prevHigh := prev.Open, prev.Close
	if prevLow > prevHigh {
		prevLow, prevHigh = prevHigh, prevLow
	}
	curLow, curHigh := cur.Open, cur.Close
	if curLow > curHigh {
		curLow, curHigh = curHigh, curLow
	}

	// Current body must fully contain the prior body and be meaningfully
	// larger.
	if curLow > prevLow || curHigh < prevHigh || curBody < engulfSizeRatio*prevBody {
		return Pattern{}, false
	}

	var direction string
	switch {
	case cur.Bullish() && !prev.Bullish() && trendSlope < 0:
		direction = "bullish"
	case !cur.Bullish() && prev.Bullish() && trendSlope > 0:
		direction = "bearish"
	default:
		return Pattern{}, false
	}

	ratio := curBody / prevBody
	return Pattern{
		Name:       "engulfing",
		Score:      clamp01(0.4 + 0.2*(ratio-engulfSizeRatio)),
		Confidence: clamp01(0.5 + 0.1*(ratio-engulfSizeRatio)),
		StartTS:    prev.Timestamp,
		EndTS:      cur.Timestamp,
		Points: []Point{
			{Timestamp: prev.Timestamp, Price: prev.Close},
			{Timestamp: cur.Timestamp, Price: cur.Close},
		},
		Metadata: map[string]string{
			"direction":  direction,
			"body_ratio": fmt.Sprintf("%.2f", ratio),
		},
	}, true
}
