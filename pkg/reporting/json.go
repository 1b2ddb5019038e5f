package reporting

import (
	"encoding/json"
	"io"
	"math"
	"os"

	"chart-analysis/internal/backtest"
)

// JSONReporter serializes a Report as a single JSON document. Warm-up
// indicator cells become null — encoding/json cannot represent NaN.
type JSONReporter struct{}

// NewJSONReporter creates a JSON reporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Write renders the report to w.
func (r *JSONReporter) Write(rep *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(toJSONReport(rep))
}

// WriteFile renders the report to a file at path.
func (r *JSONReporter) WriteFile(rep *Report, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return r.Write(rep, f)
}

type jsonReport struct {
	Symbol     string                           `json:"symbol"`
	Timeframe  string                           `json:"timeframe"`
	Candles    int                              `json:"candles"`
	Indicators map[string]map[string][]*float64 `json:"indicators,omitempty"`
	Levels     []jsonLevel                      `json:"levels,omitempty"`
	Patterns   []jsonPattern                    `json:"patterns,omitempty"`
	Backtest   *jsonBacktest                    `json:"backtest,omitempty"`
}

type jsonLevel struct {
	Kind     string  `json:"kind"`
	Price    float64 `json:"price"`
	Touches  int     `json:"touches"`
	Strength float64 `json:"strength"`
	Label    string  `json:"strength_label"`
}

type jsonPattern struct {
	Name       string            `json:"name"`
	Score      float64           `json:"score"`
	Confidence float64           `json:"confidence"`
	StartTS    int64             `json:"start_ts"`
	EndTS      int64             `json:"end_ts"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

type jsonBacktest struct {
	Strategy string           `json:"strategy"`
	Trades   []backtest.Trade `json:"trades"`
	Metrics  backtest.Metrics `json:"metrics"`
}

func toJSONReport(rep *Report) *jsonReport {
	out := &jsonReport{
		Symbol:    rep.Symbol,
		Timeframe: rep.Timeframe,
		Candles:   rep.Candles,
	}

	if len(rep.Indicators) > 0 {
		out.Indicators = make(map[string]map[string][]*float64, len(rep.Indicators))
		for _, block := range rep.Indicators {
			cols := make(map[string][]*float64, len(block.Result.Columns))
			for _, name := range block.Result.Columns {
				src := block.Result.Values[name]
				col := make([]*float64, len(src))
				for i, v := range src {
					if !math.IsNaN(v) {
						value := v
						col[i] = &value
					}
				}
				cols[name] = col
			}
			out.Indicators[block.Name] = cols
		}
	}

	for _, lvl := range rep.Levels {
		out.Levels = append(out.Levels, jsonLevel{
			Kind:     string(lvl.Kind),
			Price:    lvl.Price,
			Touches:  len(lvl.Touches),
			Strength: lvl.Strength,
			Label:    lvl.StrengthLabel,
		})
	}

	for _, p := range rep.Patterns {
		out.Patterns = append(out.Patterns, jsonPattern{
			Name:       p.Name,
			Score:      p.Score,
			Confidence: p.Confidence,
			StartTS:    p.StartTS,
			EndTS:      p.EndTS,
			Metadata:   p.Metadata,
		})
	}

	if rep.Backtest != nil {
		out.Backtest = &jsonBacktest{
			Strategy: rep.Backtest.Strategy,
			Trades:   rep.Backtest.Trades,
			Metrics:  rep.Backtest.Metrics,
		}
	}
	return out
}
