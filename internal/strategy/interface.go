package strategy

import "chart-analysis/pkg/types"

// Position is the target exposure a strategy wants at one bar.
type Position int

const (
	Flat Position = iota
	Long
)

// String returns a readable position name.
func (p Position) String() string {
	switch p {
	case Flat:
		return "FLAT"
	case Long:
		return "LONG"
	default:
		return "UNKNOWN"
	}
}

// Strategy is a replaceable signal-generation unit: it maps a series to a
// target position per bar, aligned 1:1 with the input. Implementations must
// be pure so a backtest over the same series is reproducible.
type Strategy interface {
	// Name returns the strategy name for reports.
	Name() string

	// Positions returns the desired position for every bar of the series.
	Positions(series types.Series) ([]Position, error)
}
