package strategy

import (
	"fmt"

	"chart-analysis/internal/errors"
	"chart-analysis/pkg/types"
)

const component = "strategy"

// SMACrossover goes long while the fast simple moving average sits above
// the slow one and stays flat otherwise. Transitions between the two states
// are the crossover events the backtest engine trades on.
type SMACrossover struct {
	fast int
	slow int
}

// NewSMACrossover creates a crossover strategy; fast must be smaller than
// slow and both positive.
func NewSMACrossover(fast, slow int) (*SMACrossover, error) {
	if fast <= 0 || slow <= 0 {
		return nil, errors.InvalidParameter(component, "crossover",
			"windows must be positive, got fast=%d slow=%d", fast, slow)
	}
	if fast >= slow {
		return nil, errors.InvalidParameter(component, "crossover",
			"fast window (%d) must be smaller than slow window (%d)", fast, slow)
	}
	return &SMACrossover{fast: fast, slow: slow}, nil
}

// Name implements Strategy.
func (s *SMACrossover) Name() string {
	return fmt.Sprintf("sma_crossover_%d_%d", s.fast, s.slow)
}

// Positions implements Strategy. Bars without a full slow window are flat.
func (s *SMACrossover) Positions(series types.Series) ([]Position, error) {
	if len(series) < s.slow+1 {
		return nil, errors.InsufficientData(component, "crossover",
			"need at least %d candles, got %d", s.slow+1, len(series))
	}

	closes := series.Closes()
	fastMA := rollingMeanColumn(closes, s.fast)
	slowMA := rollingMeanColumn(closes, s.slow)

	out := make([]Position, len(series))
	for i := s.slow - 1; i < len(series); i++ {
		if fastMA[i] > slowMA[i] {
			out[i] = Long
		}
	}
	return out, nil
}

// rollingMeanColumn returns the rolling mean; rows before window-1 hold 0
// and are never read (the caller starts at slow-1).
func rollingMeanColumn(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	sum := 0.0
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		if i >= window-1 {
			out[i] = sum / float64(window)
		}
	}
	return out
}
