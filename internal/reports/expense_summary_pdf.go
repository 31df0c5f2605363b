// Package reports renders the expense summary as downloadable documents.
package reports

import (
	"bytes"
	"fmt"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/SscSPs/workplace_services/internal/utils"
	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

// ExpenseSummaryPDF renders summary as a one-page A4 report.
func ExpenseSummaryPDF(summary *domain.ExpenseSummary, filter domain.ExpenseSummaryFilter, generatedAt time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Travel Expense Summary", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Travel Expense Summary")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, "Period: "+string(filter.Period))
	pdf.Ln(6)
	if filter.ExpenseType != "" {
		pdf.Cell(0, 7, "Expense type: "+string(filter.ExpenseType))
		pdf.Ln(6)
	}
	if filter.MinAmount != nil || filter.MaxAmount != nil {
		pdf.Cell(0, 7, "Amount range: "+amountRange(filter, summary.Currency))
		pdf.Ln(6)
	}
	if summary.Currency == "" {
		pdf.Cell(0, 7, "Amounts mix currencies and are shown unconverted")
		pdf.Ln(6)
	}
	pdf.Cell(0, 7, "Generated: "+generatedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	for _, row := range [][2]string{
		{"Total spent", money(summary.TotalSpent, summary.Currency)},
		{"Total budget", money(summary.TotalBudget, summary.Currency)},
		{"Remaining budget", money(summary.RemainingBudget, summary.Currency)},
	} {
		pdf.Cell(60, 8, row[0])
		pdf.CellFormat(40, 8, row[1], "", 0, "R", false, 0, "")
		pdf.Ln(8)
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "By category")
	pdf.Ln(8)
	tableHeader(pdf, "Category", "Amount", "%")
	pdf.SetFont("Helvetica", "", 11)
	for _, c := range summary.ExpensesByCategory {
		pdf.CellFormat(70, 7, string(c.Category), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, money(c.Amount, summary.Currency), "1", 0, "R", false, 0, "")
		pdf.CellFormat(30, 7, fmt.Sprintf("%.1f%%", c.Percentage), "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, "By month")
	pdf.Ln(8)
	tableHeader(pdf, "Month", "Amount")
	pdf.SetFont("Helvetica", "", 11)
	for _, m := range summary.ExpensesByMonth {
		pdf.CellFormat(70, 7, m.Month, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, money(m.Amount, summary.Currency), "1", 0, "R", false, 0, "")
		pdf.Ln(7)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render expense summary pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func tableHeader(pdf *gofpdf.Fpdf, columns ...string) {
	widths := []float64{70, 50, 30}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(230, 230, 230)
	for i, col := range columns {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(7)
}

func amountRange(f domain.ExpenseSummaryFilter, currency string) string {
	lo, hi := "any", "any"
	if f.MinAmount != nil {
		lo = money(*f.MinAmount, currency)
	}
	if f.MaxAmount != nil {
		hi = money(*f.MaxAmount, currency)
	}
	return lo + " - " + hi
}

func money(d decimal.Decimal, currency string) string {
	return utils.FormatMoney(d, currency)
}
