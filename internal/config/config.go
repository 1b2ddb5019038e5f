package config

import (
	"os"
	"strconv"
)

// Defaults holds the tunables the CLI passes down to the analysis engines.
// The engines themselves never read configuration; everything arrives as
// explicit call parameters.
type Defaults struct {
	LogLevel string

	Indicator struct {
		Window     int
		MACDFast   int
		MACDSlow   int
		MACDSignal int
		BandStdDev float64
	}

	Levels struct {
		MaxLevels      int
		MergeThreshold float64
		MinTouches     int
	}

	Backtest struct {
		FastWindow  int
		SlowWindow  int
		FeesBps     float64
		SlippageBps float64
	}
}

// Load reads defaults from the environment, falling back to the documented
// values.
func Load() *Defaults {
	d := &Defaults{}
	d.LogLevel = getEnv("LOG_LEVEL", "info")

	d.Indicator.Window = getEnvInt("INDICATOR_WINDOW", 14)
	d.Indicator.MACDFast = getEnvInt("MACD_FAST", 12)
	d.Indicator.MACDSlow = getEnvInt("MACD_SLOW", 26)
	d.Indicator.MACDSignal = getEnvInt("MACD_SIGNAL", 9)
	d.Indicator.BandStdDev = getEnvFloat("BBANDS_STDDEV", 2.0)

	d.Levels.MaxLevels = getEnvInt("LEVELS_MAX", 5)
	d.Levels.MergeThreshold = getEnvFloat("LEVELS_MERGE_THRESHOLD", 0.002)
	d.Levels.MinTouches = getEnvInt("LEVELS_MIN_TOUCHES", 1)

	d.Backtest.FastWindow = getEnvInt("BACKTEST_FAST", 10)
	d.Backtest.SlowWindow = getEnvInt("BACKTEST_SLOW", 30)
	d.Backtest.FeesBps = getEnvFloat("BACKTEST_FEES_BPS", 10)
	d.Backtest.SlippageBps = getEnvFloat("BACKTEST_SLIPPAGE_BPS", 5)
	return d
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
