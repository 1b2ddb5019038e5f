package reporting

import (
	"chart-analysis/internal/backtest"
	"chart-analysis/internal/indicators"
	"chart-analysis/internal/levels"
	"chart-analysis/internal/patterns"
)

// IndicatorBlock pairs a computed indicator with the name it was requested
// under.
type IndicatorBlock struct {
	Name   string
	Result *indicators.Result
}

// Report aggregates one analysis run for the writers in this package. Any
// section may be nil/empty when the corresponding analysis was not run.
type Report struct {
	Symbol     string
	Timeframe  string
	Candles    int
	Indicators []IndicatorBlock
	Levels     []levels.Level
	Patterns   []patterns.Pattern
	Backtest   *backtest.Result
}
