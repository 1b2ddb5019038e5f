package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"chart-analysis/pkg/types"
)

// CSVProvider loads candle series from CSV files with the column order
// timestamp,open,high,low,close,volume and a header row. Timestamps are
// Unix seconds.
type CSVProvider struct{}

// NewCSVProvider creates a CSV candle provider.
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{}
}

// Name returns the provider name.
func (p *CSVProvider) Name() string {
	return "csv"
}

// Load reads a candle series from filename and validates its ordering.
func (p *CSVProvider) Load(filename string) (types.Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return p.read(file)
}

func (p *CSVProvider) read(r io.Reader) (types.Series, error) {
	reader := csv.NewReader(r)

	// Header row.
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}

	var series types.Series
	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV line %d: %w", line+1, err)
		}
		line++

		if len(record) < 6 {
			return nil, fmt.Errorf("CSV line %d: expected 6 columns, got %d", line, len(record))
		}

		candle, err := parseCandle(record)
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		series = append(series, candle)
	}

	if err := series.Validate(); err != nil {
		return nil, fmt.Errorf("CSV candles: %w", err)
	}
	return series, nil
}

func parseCandle(record []string) (types.Candle, error) {
	ts, err := strconv.ParseInt(record[0], 10, 64)
	if err != nil {
		return types.Candle{}, fmt.Errorf("bad timestamp %q: %w", record[0], err)
	}

	fields := make([]float64, 5)
	names := []string{"open", "high", "low", "close", "volume"}
	for i := 0; i < 5; i++ {
		v, err := strconv.ParseFloat(record[i+1], 64)
		if err != nil {
			return types.Candle{}, fmt.Errorf("bad %s %q: %w", names[i], record[i+1], err)
		}
		fields[i] = v
	}

	return types.Candle{
		Timestamp: ts,
		Open:      fields[0],
		High:      fields[1],
		Low:       fields[2],
		Close:     fields[3],
		Volume:    fields[4],
	}, nil
}
