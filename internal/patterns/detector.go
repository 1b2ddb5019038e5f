package patterns

import (
	"sort"
	"time"

	"go.uber.org/zap"

	"chart-analysis/internal/errors"
	"chart-analysis/internal/monitoring"
	"chart-analysis/pkg/types"
)

const component = "patterns"

const (
	// minSeriesLen gates the whole detector battery; multi-extremum
	// detectors (double top/bottom, triangle, head & shoulders) need more
	// structure to work with.
	minSeriesLen        = 5
	minMultiExtremumLen = 10
	maxReturnedPatterns = 5
)

// Point is one (timestamp, price) anchor of a detected pattern.
type Point struct {
	Timestamp int64
	Price     float64
}

// Pattern is one detected chart pattern. Score ranks candidates against
// each other; Confidence estimates how clean the geometry is. Both live in
// [0, 1]. Metadata carries free-form diagnostics such as the direction.
type Pattern struct {
	Name       string
	Score      float64
	Confidence float64
	StartTS    int64
	EndTS      int64
	Points     []Point
	Metadata   map[string]string
}

// Detector runs a battery of independent heuristics and pools their
// candidates. Stateless and safe for concurrent use.
type Detector struct {
	log     *zap.Logger
	metrics *monitoring.Collector
}

// NewDetector creates a pattern detector. logger may be nil.
func NewDetector(logger *zap.Logger, metrics *monitoring.Collector) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{log: logger, metrics: metrics}
}

// Detect runs every detector over the series and returns the top candidates
// by score. A series below the minimum length is rejected; a flat series is
// valid input and simply yields no patterns.
func (d *Detector) Detect(series types.Series) ([]Pattern, error) {
	start := time.Now()
	out, err := d.detect(series)
	d.metrics.Observe(component, time.Since(start), err)
	return out, err
}

func (d *Detector) detect(series types.Series) ([]Pattern, error) {
	if len(series) < minSeriesLen {
		return nil, errors.InsufficientData(component, "detect",
			"need at least %d candles, got %d", minSeriesLen, len(series))
	}
	if flatSeries(series) {
		return nil, nil
	}

	var pool []Pattern
	pool = append(pool, detectChannel(series)...)
	pool = append(pool, detectCandlesticks(series)...)
	if len(series) >= minMultiExtremumLen {
		pool = append(pool, detectDoubleTop(series)...)
		pool = append(pool, detectDoubleBottom(series)...)
		pool = append(pool, detectTriangle(series)...)
		pool = append(pool, detectHeadShoulders(series)...)
	}

	sort.SliceStable(pool, func(i, j int) bool {
		if pool[i].Score != pool[j].Score {
			return pool[i].Score > pool[j].Score
		}
		if pool[i].Name != pool[j].Name {
			return pool[i].Name < pool[j].Name
		}
		return pool[i].StartTS < pool[j].StartTS
	})
	if len(pool) > maxReturnedPatterns {
		pool = pool[:maxReturnedPatterns]
	}

	d.log.Debug("patterns detected", zap.Int("count", len(pool)))
	return pool, nil
}

func flatSeries(series types.Series) bool {
	lo, hi := series[0].Close, series[0].Close
	for _, c := range series {
		if c.Close < lo {
			lo = c.Close
		}
		if c.Close > hi {
			hi = c.Close
		}
	}
	return hi == lo
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
