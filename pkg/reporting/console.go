package reporting

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleReporter renders a Report as tables on a writer.
type ConsoleReporter struct {
	out io.Writer
}

// NewConsoleReporter creates a console reporter writing to stdout.
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{out: os.Stdout}
}

// NewConsoleReporterTo creates a console reporter writing to w.
func NewConsoleReporterTo(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{out: w}
}

// Write renders every populated section of the report.
func (r *ConsoleReporter) Write(rep *Report) {
	fmt.Fprintf(r.out, "%s %s (%d candles)\n", rep.Symbol, rep.Timeframe, rep.Candles)

	if len(rep.Indicators) > 0 {
		r.writeIndicators(rep)
	}
	if len(rep.Levels) > 0 {
		r.writeLevels(rep)
	}
	if len(rep.Patterns) > 0 {
		r.writePatterns(rep)
	}
	if rep.Backtest != nil {
		r.writeBacktest(rep)
	}
}

func (r *ConsoleReporter) writeIndicators(rep *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("INDICATORS (latest values)")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Indicator", "Column", "Value"})

	for _, block := range rep.Indicators {
		for _, col := range block.Result.Columns {
			values := block.Result.Values[col]
			last := math.NaN()
			if len(values) > 0 {
				last = values[len(values)-1]
			}
			t.AppendRow(table.Row{block.Name, col, fmt.Sprintf("%.4f", last)})
		}
	}
	t.Render()
}

func (r *ConsoleReporter) writeLevels(rep *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("SUPPORT / RESISTANCE")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Kind", "Price", "Touches", "Strength", "Label"})

	for _, lvl := range rep.Levels {
		t.AppendRow(table.Row{
			string(lvl.Kind),
			fmt.Sprintf("%.4f", lvl.Price),
			len(lvl.Touches),
			fmt.Sprintf("%.2f", lvl.Strength),
			lvl.StrengthLabel,
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	t.Render()
}

func (r *ConsoleReporter) writePatterns(rep *Report) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("CHART PATTERNS")
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"Pattern", "Score", "Confidence", "Direction"})

	for _, p := range rep.Patterns {
		t.AppendRow(table.Row{
			p.Name,
			fmt.Sprintf("%.2f", p.Score),
			fmt.Sprintf("%.2f", p.Confidence),
			p.Metadata["direction"],
		})
	}
	t.Render()
}

func (r *ConsoleReporter) writeBacktest(rep *Report) {
	bt := rep.Backtest
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle(fmt.Sprintf("BACKTEST — %s", bt.Strategy))
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"Total Return", fmt.Sprintf("%.2f%%", bt.Metrics.TotalReturn*100)},
		{"CAGR", fmt.Sprintf("%.2f%%", bt.Metrics.CAGR*100)},
		{"Max Drawdown", fmt.Sprintf("%.2f%%", bt.Metrics.MaxDrawdown*100)},
		{"Win Rate", fmt.Sprintf("%.1f%%", bt.Metrics.WinRate*100)},
		{"Sharpe", fmt.Sprintf("%.2f", bt.Metrics.Sharpe)},
		{"Profit Factor", fmt.Sprintf("%.2f", bt.Metrics.ProfitFactor)},
		{"Trades", len(bt.Trades)},
	})
	t.Render()
}
