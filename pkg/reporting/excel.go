package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
)

// ExcelReporter writes a Report as an xlsx workbook with one sheet per
// analysis section.
type ExcelReporter struct{}

// NewExcelReporter creates an Excel reporter.
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

// Write renders the report to path, creating parent directories as needed.
func (r *ExcelReporter) Write(rep *Report, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	fx.SetSheetName(fx.GetSheetName(0), summarySheet)

	if err := r.writeSummary(fx, summarySheet, rep); err != nil {
		return err
	}
	if len(rep.Levels) > 0 {
		if err := r.writeLevels(fx, rep); err != nil {
			return err
		}
	}
	if len(rep.Patterns) > 0 {
		if err := r.writePatterns(fx, rep); err != nil {
			return err
		}
	}
	if rep.Backtest != nil {
		if err := r.writeTrades(fx, rep); err != nil {
			return err
		}
	}

	return fx.SaveAs(path)
}

func (r *ExcelReporter) writeSummary(fx *excelize.File, sheet string, rep *Report) error {
	rows := [][]interface{}{
		{"Symbol", rep.Symbol},
		{"Timeframe", rep.Timeframe},
		{"Candles", rep.Candles},
		{"Levels", len(rep.Levels)},
		{"Patterns", len(rep.Patterns)},
	}
	if rep.Backtest != nil {
		rows = append(rows,
			[]interface{}{"Strategy", rep.Backtest.Strategy},
			[]interface{}{"Total Return", rep.Backtest.Metrics.TotalReturn},
			[]interface{}{"CAGR", rep.Backtest.Metrics.CAGR},
			[]interface{}{"Max Drawdown", rep.Backtest.Metrics.MaxDrawdown},
			[]interface{}{"Win Rate", rep.Backtest.Metrics.WinRate},
			[]interface{}{"Sharpe", rep.Backtest.Metrics.Sharpe},
			[]interface{}{"Profit Factor", rep.Backtest.Metrics.ProfitFactor},
		)
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := fx.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func (r *ExcelReporter) writeLevels(fx *excelize.File, rep *Report) error {
	const sheet = "Levels"
	if _, err := fx.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Kind", "Price", "Touches", "Strength", "Label"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, lvl := range rep.Levels {
		row := []interface{}{string(lvl.Kind), lvl.Price, len(lvl.Touches), lvl.Strength, lvl.StrengthLabel}
		if err := fx.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func (r *ExcelReporter) writePatterns(fx *excelize.File, rep *Report) error {
	const sheet = "Patterns"
	if _, err := fx.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Name", "Score", "Confidence", "Start", "End", "Direction"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, p := range rep.Patterns {
		row := []interface{}{
			p.Name,
			p.Score,
			p.Confidence,
			time.Unix(p.StartTS, 0).UTC().Format(time.RFC3339),
			time.Unix(p.EndTS, 0).UTC().Format(time.RFC3339),
			p.Metadata["direction"],
		}
		if err := fx.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}

func (r *ExcelReporter) writeTrades(fx *excelize.File, rep *Report) error {
	const sheet = "Trades"
	if _, err := fx.NewSheet(sheet); err != nil {
		return err
	}
	header := []interface{}{"Entry Time", "Exit Time", "Entry Price", "Exit Price", "Return %"}
	if err := fx.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, t := range rep.Backtest.Trades {
		row := []interface{}{
			time.Unix(t.EntryTS, 0).UTC().Format(time.RFC3339),
			time.Unix(t.ExitTS, 0).UTC().Format(time.RFC3339),
			t.EntryPrice,
			t.ExitPrice,
			t.ReturnPct * 100,
		}
		if err := fx.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return err
		}
	}
	return nil
}
