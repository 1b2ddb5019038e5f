package backtest

import (
	"time"

	"go.uber.org/zap"

	"chart-analysis/internal/errors"
	"chart-analysis/internal/monitoring"
	"chart-analysis/internal/strategy"
	"chart-analysis/pkg/types"
)

const component = "backtest"

// Trade is one completed round trip. ReturnPct is the realized return net
// of fees and slippage, as a fraction (0.05 = +5%).
type Trade struct {
	EntryTS    int64
	ExitTS     int64
	EntryPrice float64
	ExitPrice  float64
	ReturnPct  float64
}

// EquityPoint is one sample of the compounded equity curve.
type EquityPoint struct {
	Timestamp int64
	Equity    float64
}

// Metrics aggregates backtest performance. All values stay finite: zero is
// the neutral value whenever a ratio has no defined denominator.
type Metrics struct {
	TotalReturn  float64
	CAGR         float64
	MaxDrawdown  float64
	WinRate      float64
	Sharpe       float64
	ProfitFactor float64
}

// Result is the full outcome of one backtest run.
type Result struct {
	Strategy    string
	Trades      []Trade
	EquityCurve []EquityPoint
	Metrics     Metrics
}

// Engine simulates a trading rule over a candle series. Stateless and safe
// for concurrent use; each run builds its own state.
type Engine struct {
	log     *zap.Logger
	metrics *monitoring.Collector
}

// NewEngine creates a backtest engine. logger may be nil.
func NewEngine(logger *zap.Logger, metrics *monitoring.Collector) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{log: logger, metrics: metrics}
}

// Run walks the strategy positions bar by bar with a flat/long state
// machine. Only transitions trade: flat->long enters at the crossing bar's
// close, long->flat exits at the next opposing crossing. A position still
// open at the end of the series is closed at the final bar. Each round trip
// deducts (feesBps+slippageBps)/10000 from the realized return.
func (e *Engine) Run(series types.Series, strat strategy.Strategy, timeframe string, feesBps, slippageBps float64) (*Result, error) {
	start := time.Now()
	res, err := e.run(series, strat, timeframe, feesBps, slippageBps)
	e.metrics.Observe(component, time.Since(start), err)
	return res, err
}

func (e *Engine) run(series types.Series, strat strategy.Strategy, timeframe string, feesBps, slippageBps float64) (*Result, error) {
	if feesBps < 0 || slippageBps < 0 {
		return nil, errors.InvalidParameter(component, "run",
			"fees and slippage must be non-negative, got fees=%g slippage=%g", feesBps, slippageBps)
	}
	barDuration, err := parseTimeframe(timeframe)
	if err != nil {
		return nil, err
	}
	positions, err := strat.Positions(series)
	if err != nil {
		return nil, err
	}

	cost := (feesBps + slippageBps) / 10000.0

	res := &Result{
		Strategy:    strat.Name(),
		EquityCurve: make([]EquityPoint, 0, len(series)),
	}

	equity := 1.0
	inPosition := false
	var entryTS int64
	var entryPrice float64

	closeTrade := func(exitTS int64, exitPrice float64) {
		ret := exitPrice/entryPrice - 1 - cost
		if ret < -1 {
			// Total loss floor keeps equity non-negative under extreme
			// fee/slippage inputs.
			ret = -1
		}
		equity *= 1 + ret
		res.Trades = append(res.Trades, Trade{
			EntryTS:    entryTS,
			ExitTS:     exitTS,
			EntryPrice: entryPrice,
			ExitPrice:  exitPrice,
			ReturnPct:  ret,
		})
		inPosition = false
	}

	for i, c := range series {
		switch {
		case !inPosition && positions[i] == strategy.Long:
			inPosition = true
			entryTS = c.Timestamp
			entryPrice = c.Close
		case inPosition && positions[i] == strategy.Flat:
			closeTrade(c.Timestamp, c.Close)
		}
		res.EquityCurve = append(res.EquityCurve, EquityPoint{Timestamp: c.Timestamp, Equity: equity})
	}

	if inPosition {
		last := series[len(series)-1]
		closeTrade(last.Timestamp, last.Close)
		res.EquityCurve[len(res.EquityCurve)-1].Equity = equity
	}

	res.Metrics = computeMetrics(res.Trades, res.EquityCurve, barDuration, len(series))

	e.log.Debug("backtest finished",
		zap.String("strategy", strat.Name()),
		zap.Int("trades", len(res.Trades)),
		zap.Float64("total_return", res.Metrics.TotalReturn))
	return res, nil
}
