package reports

import (
	"bytes"
	"fmt"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Chart dimensions of the monthly spend PNG.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
)

// MonthlySpendChart renders the month breakdown of summary as a PNG bar chart.
func MonthlySpendChart(summary *domain.ExpenseSummary) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Monthly travel spend"
	p.Y.Label.Text = "Amount"
	p.Y.Min = 0

	values := make(plotter.Values, len(summary.ExpensesByMonth))
	labels := make([]string, len(summary.ExpensesByMonth))
	for i, m := range summary.ExpensesByMonth {
		values[i] = m.Amount.InexactFloat64()
		labels[i] = m.Month
	}

	if len(values) > 0 {
		bars, err := plotter.NewBarChart(values, vg.Points(20))
		if err != nil {
			return nil, fmt.Errorf("build monthly spend bars: %w", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotter.DefaultLineStyle.Color
		p.Add(bars)
		p.NominalX(labels...)
	} else {
		p.X.Label.Text = "No expenses in this period"
	}

	w, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, fmt.Errorf("render monthly spend chart: %w", err)
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write monthly spend chart: %w", err)
	}
	return buf.Bytes(), nil
}
