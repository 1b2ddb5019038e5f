package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"chart-analysis/internal/backtest"
	"chart-analysis/internal/config"
	"chart-analysis/internal/indicators"
	"chart-analysis/internal/levels"
	"chart-analysis/internal/monitoring"
	"chart-analysis/internal/patterns"
	"chart-analysis/internal/strategy"
	"chart-analysis/pkg/data"
	"chart-analysis/pkg/logger"
	"chart-analysis/pkg/reporting"
)

func main() {
	var (
		dataFile  = flag.String("data", "", "CSV file with candles (timestamp,open,high,low,close,volume)")
		symbol    = flag.String("symbol", "UNKNOWN", "Instrument symbol for reports")
		timeframe = flag.String("timeframe", "1h", "Candle timeframe (1m 5m 15m 30m 1h 4h 1d 1w)")
		envFile   = flag.String("env", ".env", "Env file with default tunables")
		xlsxOut   = flag.String("xlsx", "", "Write an xlsx report to this path")
		jsonOut   = flag.String("json", "", "Write a json report to this path")
	)
	flag.Parse()

	if *dataFile == "" {
		flag.Usage()
		os.Exit(2)
	}

	// Missing env file is fine; defaults apply.
	if err := godotenv.Load(*envFile); err != nil && !os.IsNotExist(err) {
		log.Printf("loading %s: %v", *envFile, err)
	}
	cfg := config.Load()

	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("building logger: %v", err)
	}
	defer zlog.Sync()

	if err := run(cfg, zlog, *dataFile, *symbol, *timeframe, *xlsxOut, *jsonOut); err != nil {
		zlog.Fatal("analysis failed", zap.Error(err))
	}
}

func run(cfg *config.Defaults, zlog *zap.Logger, dataFile, symbol, timeframe, xlsxOut, jsonOut string) error {
	series, err := data.NewCSVProvider().Load(dataFile)
	if err != nil {
		return fmt.Errorf("loading candles: %w", err)
	}
	zlog.Info("candles loaded", zap.String("file", dataFile), zap.Int("count", len(series)))

	metrics := monitoring.NewCollector(prometheus.NewRegistry())

	engine := indicators.NewEngine(zlog, metrics)
	levelDetector := levels.NewDetector(zlog, metrics)
	patternDetector := patterns.NewDetector(zlog, metrics)
	backtester := backtest.NewEngine(zlog, metrics)

	rep := &reporting.Report{
		Symbol:    symbol,
		Timeframe: timeframe,
		Candles:   len(series),
	}

	for _, spec := range []struct {
		name   string
		params indicators.Params
	}{
		{"sma", indicators.Params{Window: cfg.Indicator.Window}},
		{"ema", indicators.Params{Window: cfg.Indicator.Window}},
		{"rsi", indicators.Params{Window: cfg.Indicator.Window}},
		{"macd", indicators.Params{Fast: cfg.Indicator.MACDFast, Slow: cfg.Indicator.MACDSlow, Signal: cfg.Indicator.MACDSignal}},
		{"bbands", indicators.Params{Window: cfg.Indicator.Window, StdDev: cfg.Indicator.BandStdDev}},
	} {
		res, err := engine.Compute(series, spec.name, spec.params)
		if err != nil {
			zlog.Warn("indicator skipped", zap.String("indicator", spec.name), zap.Error(err))
			continue
		}
		rep.Indicators = append(rep.Indicators, reporting.IndicatorBlock{Name: spec.name, Result: res})
	}

	rep.Levels = levelDetector.Detect(series, levels.Options{
		MaxLevels:      cfg.Levels.MaxLevels,
		MergeThreshold: cfg.Levels.MergeThreshold,
		MinTouches:     cfg.Levels.MinTouches,
	})

	rep.Patterns, err = patternDetector.Detect(series)
	if err != nil {
		return fmt.Errorf("detecting patterns: %w", err)
	}

	crossover, err := strategy.NewSMACrossover(cfg.Backtest.FastWindow, cfg.Backtest.SlowWindow)
	if err != nil {
		return fmt.Errorf("building strategy: %w", err)
	}
	rep.Backtest, err = backtester.Run(series, crossover, timeframe, cfg.Backtest.FeesBps, cfg.Backtest.SlippageBps)
	if err != nil {
		return fmt.Errorf("running backtest: %w", err)
	}

	reporting.NewConsoleReporter().Write(rep)

	if xlsxOut != "" {
		if err := reporting.NewExcelReporter().Write(rep, xlsxOut); err != nil {
			return fmt.Errorf("writing xlsx report: %w", err)
		}
		zlog.Info("xlsx report written", zap.String("path", xlsxOut))
	}
	if jsonOut != "" {
		if err := reporting.NewJSONReporter().WriteFile(rep, jsonOut); err != nil {
			return fmt.Errorf("writing json report: %w", err)
		}
		zlog.Info("json report written", zap.String("path", jsonOut))
	}
	return nil
}
