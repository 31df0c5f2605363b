package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSummary() *domain.ExpenseSummary {
	return &domain.ExpenseSummary{
		TotalSpent:      decimal.NewFromInt(250),
		TotalBudget:     decimal.NewFromInt(5000),
		RemainingBudget: decimal.NewFromInt(4750),
		ExpensesByCategory: []domain.CategoryAmount{
			{Category: domain.ExpenseAccommodation, Amount: decimal.NewFromInt(200), Percentage: 80},
			{Category: domain.ExpenseMeals, Amount: decimal.NewFromInt(50), Percentage: 20},
		},
		ExpensesByMonth: []domain.MonthAmount{
			{Month: "2024-04", Amount: decimal.NewFromInt(150)},
			{Month: "2024-05", Amount: decimal.NewFromInt(100)},
		},
		Currency: "USD",
	}
}

func TestExpenseSummaryPDF(t *testing.T) {
	lo := decimal.NewFromInt(10)
	out, err := ExpenseSummaryPDF(sampleSummary(), domain.ExpenseSummaryFilter{
		Period:      domain.PeriodMonth,
		ExpenseType: domain.ExpenseMeals,
		MinAmount:   &lo,
	}, time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestExpenseSummaryPDF_MixedCurrencies(t *testing.T) {
	summary := sampleSummary()
	summary.Currency = ""

	out, err := ExpenseSummaryPDF(summary, domain.ExpenseSummaryFilter{Period: domain.PeriodAll}, time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestAmountRange(t *testing.T) {
	lo := decimal.RequireFromString("10.5")
	hi := decimal.NewFromInt(2000)

	assert.Equal(t, "10.50 USD - 2000.00 USD", amountRange(domain.ExpenseSummaryFilter{MinAmount: &lo, MaxAmount: &hi}, "usd"))
	assert.Equal(t, "11 JPY - any", amountRange(domain.ExpenseSummaryFilter{MinAmount: &lo}, "JPY"))
	assert.Equal(t, "any - 2000.00", amountRange(domain.ExpenseSummaryFilter{MaxAmount: &hi}, ""))
}

func TestMonthlySpendChart(t *testing.T) {
	pngMagic := []byte("\x89PNG\r\n\x1a\n")

	out, err := MonthlySpendChart(sampleSummary())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, pngMagic))

	empty, err := MonthlySpendChart(&domain.ExpenseSummary{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(empty, pngMagic))
}
