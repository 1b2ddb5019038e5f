package indicators

import (
	"time"

	"go.uber.org/zap"

	"chart-analysis/internal/errors"
	"chart-analysis/internal/monitoring"
	"chart-analysis/pkg/types"
)

const component = "indicators"

// Params carries the tunables for a single indicator computation. Only the
// fields relevant to the requested indicator are read.
type Params struct {
	Window int // sma, ema, rsi, bbands

	// macd
	Fast   int
	Slow   int
	Signal int

	// bbands
	StdDev float64
}

// Engine computes technical indicator columns over closing prices. It is
// stateless: every call works on its own intermediate arrays, so a single
// Engine is safe for concurrent use.
type Engine struct {
	log     *zap.Logger
	metrics *monitoring.Collector
}

// NewEngine creates an indicator engine. logger may be nil.
func NewEngine(logger *zap.Logger, metrics *monitoring.Collector) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{log: logger, metrics: metrics}
}

// Compute dispatches by canonical indicator name: "ma" (alias "sma"),
// "ema", "rsi", "macd", "bbands". Validation runs before any computation;
// no partial result is ever returned.
func (e *Engine) Compute(series types.Series, name string, p Params) (*Result, error) {
	start := time.Now()

	var (
		res *Result
		err error
	)
	switch name {
	case "ma", "sma":
		res, err = e.sma(series, p.Window)
	case "ema":
		res, err = e.ema(series, p.Window)
	case "rsi":
		res, err = e.rsi(series, p.Window)
	case "macd":
		res, err = e.macd(series, p.Fast, p.Slow, p.Signal)
	case "bbands":
		res, err = e.bollinger(series, p.Window, p.StdDev)
	default:
		err = errors.UnsupportedIndicator(component, name)
	}

	e.metrics.Observe(component, time.Since(start), err)
	if err != nil {
		e.log.Debug("indicator computation rejected",
			zap.String("indicator", name),
			zap.Int("series_len", len(series)),
			zap.Error(err))
		return nil, err
	}
	return res, nil
}
