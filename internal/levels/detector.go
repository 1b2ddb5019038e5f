package levels

import (
	"math"
	"sort"
	"time"

	"go.uber.org/zap"

	"chart-analysis/internal/monitoring"
	"chart-analysis/pkg/types"
)

const component = "levels"

// Kind distinguishes support from resistance.
type Kind string

const (
	Support    Kind = "support"
	Resistance Kind = "resistance"
)

// Strength labels. A level earns the strong tier at strongTouchCount
// touches; everything else stays general.
const (
	LabelStrong  = "fort"
	LabelGeneral = "général"

	strongTouchCount = 3
)

// defaultMergeThreshold is the fraction of the mean close used as the
// clustering tolerance.
const defaultMergeThreshold = 0.002

// Touch records one extremum merged into a level.
type Touch struct {
	Price     float64
	Timestamp int64
	Index     int
}

// Level is a clustered support or resistance price band. Price is the
// running mean of the merged touch prices. Immutable once returned.
type Level struct {
	Kind          Kind
	Price         float64
	Touches       []Touch
	Strength      float64
	StrengthLabel string
}

// Options tunes detection. Zero values select the documented defaults:
// distance max(2, n/20), prominence 0.5 x stddev of closes, merge
// threshold 0.2% of the mean close, min touches 1.
type Options struct {
	MaxLevels      int
	Distance       int
	Prominence     float64
	MergeThreshold float64
	MinTouches     int
}

// Detector finds and clusters local price extrema into support/resistance
// levels. Stateless and safe for concurrent use.
type Detector struct {
	log     *zap.Logger
	metrics *monitoring.Collector
}

// NewDetector creates a level detector. logger may be nil.
func NewDetector(logger *zap.Logger, metrics *monitoring.Collector) *Detector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Detector{log: logger, metrics: metrics}
}

// Detect returns levels sorted by strength descending, truncated to
// opts.MaxLevels. Empty, too-short or flat series produce an empty result
// rather than an error: a market without extrema is an expected data
// shape, not a caller mistake.
func (d *Detector) Detect(series types.Series, opts Options) []Level {
	start := time.Now()
	out := d.detect(series, opts)
	d.metrics.Observe(component, time.Since(start), nil)
	return out
}

func (d *Detector) detect(series types.Series, opts Options) []Level {
	if opts.MaxLevels <= 0 || len(series) < 3 {
		return nil
	}

	closes := series.Closes()
	mean, std := meanStd(closes)

	distance := opts.Distance
	if distance <= 0 {
		distance = len(series) / 20
		if distance < 2 {
			distance = 2
		}
	}
	minProm := opts.Prominence
	if minProm <= 0 {
		minProm = 0.5 * std
	}
	mergeThreshold := opts.MergeThreshold
	if mergeThreshold <= 0 {
		mergeThreshold = defaultMergeThreshold
	}
	minTouches := opts.MinTouches
	if minTouches <= 0 {
		minTouches = 1
	}

	tolerance := mergeThreshold * mean
	if tolerance <= 0 {
		tolerance = 1.0
	}

	maxima := findPeaks(closes, distance, minProm)
	minima := findTroughs(closes, distance, minProm)
	if len(maxima) == 0 && len(minima) == 0 {
		return nil
	}

	builders := make(map[bucketKey]*levelBuilder)
	var order []bucketKey
	cluster := func(kind Kind, indices []int) {
		for _, idx := range indices {
			price := closes[idx]
			key := bucketKey{kind: kind, bucket: int64(math.Floor(price / tolerance))}
			b, ok := builders[key]
			if !ok {
				b = &levelBuilder{kind: kind}
				builders[key] = b
				order = append(order, key)
			}
			b.add(Touch{Price: price, Timestamp: series[idx].Timestamp, Index: idx})
		}
	}
	cluster(Resistance, maxima)
	cluster(Support, minima)

	var out []Level
	for _, key := range order {
		b := builders[key]
		if len(b.touches) < minTouches {
			continue
		}
		out = append(out, b.build())
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Strength != out[j].Strength {
			return out[i].Strength > out[j].Strength
		}
		if len(out[i].Touches) != len(out[j].Touches) {
			return len(out[i].Touches) > len(out[j].Touches)
		}
		return out[i].Price < out[j].Price
	})

	if len(out) > opts.MaxLevels {
		out = out[:opts.MaxLevels]
	}

	d.log.Debug("levels detected",
		zap.Int("maxima", len(maxima)),
		zap.Int("minima", len(minima)),
		zap.Int("levels", len(out)))
	return out
}

type bucketKey struct {
	kind   Kind
	bucket int64
}

// levelBuilder accumulates touches during detection; the running weighted
// mean avoids re-walking the touch list on every merge. The immutable
// Level is constructed once detection completes.
type levelBuilder struct {
	kind     Kind
	touches  []Touch
	priceSum float64
}

func (b *levelBuilder) add(t Touch) {
	b.touches = append(b.touches, t)
	b.priceSum += t.Price
}

func (b *levelBuilder) build() Level {
	n := len(b.touches)
	strength := float64(n) / 10.0
	if strength > 1 {
		strength = 1
	}
	label := LabelGeneral
	if n >= strongTouchCount {
		label = LabelStrong
	}
	touches := make([]Touch, n)
	copy(touches, b.touches)
	return Level{
		Kind:          b.kind,
		Price:         b.priceSum / float64(n),
		Touches:       touches,
		Strength:      strength,
		StrengthLabel: label,
	}
}

// meanStd returns the mean and sample standard deviation.
func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))

	if len(values) < 2 {
		return mean, 0
	}
	variance := 0.0
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	return mean, math.Sqrt(variance / float64(len(values)-1))
}
