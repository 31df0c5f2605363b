package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityType identifies which collection an activity item was projected from.
type ActivityType string

const (
	ActivitySickLeave     ActivityType = "sick-leave"
	ActivityTravelExpense ActivityType = "travel-expense"
	ActivityTripBooking   ActivityType = "trip-booking"
)

// RecentActivityLimit caps the merged activity feed.
const RecentActivityLimit = 4

// ActivityItem is a record of any collection projected into the common feed shape.
type ActivityItem struct {
	ID        string       `json:"id"`
	Type      ActivityType `json:"type"`
	Title     string       `json:"title"`
	Status    string       `json:"status"`
	Date      string       `json:"date"` // Human-relative, e.g. "2 hours ago"
	Section   string       `json:"section"`
	CreatedAt time.Time    `json:"createdAt"`
}

// DashboardStats are the headline counters of the main dashboard.
type DashboardStats struct {
	PendingRequests  int64           `json:"pendingRequests"`
	ApprovedItems    int64           `json:"approvedItems"`
	MonthlyExpenses  decimal.Decimal `json:"monthlyExpenses"`
	UpcomingBookings int64           `json:"upcomingBookings"`
}

// SummaryPeriod is the created_at window of an expense summary.
type SummaryPeriod string

const (
	PeriodWeek    SummaryPeriod = "week"
	PeriodMonth   SummaryPeriod = "month"
	PeriodQuarter SummaryPeriod = "quarter"
	PeriodYear    SummaryPeriod = "year"
	PeriodAll     SummaryPeriod = "all"
)

// Since returns the lower created_at bound of the period relative to now.
// ok is false for PeriodAll (and unknown periods), which have no bound.
func (p SummaryPeriod) Since(now time.Time) (since time.Time, ok bool) {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7), true
	case PeriodMonth:
		return now.AddDate(0, -1, 0), true
	case PeriodQuarter:
		return now.AddDate(0, -3, 0), true
	case PeriodYear:
		return now.AddDate(-1, 0, 0), true
	default:
		return time.Time{}, false
	}
}

// IsValid reports whether p is a known period.
func (p SummaryPeriod) IsValid() bool {
	switch p {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear, PeriodAll:
		return true
	}
	return false
}

// ExpenseSummaryFilter selects the expenses an ExpenseSummary is computed over.
type ExpenseSummaryFilter struct {
	Period      SummaryPeriod
	ExpenseType ExpenseType // Empty matches every type
	MinAmount   *decimal.Decimal
	MaxAmount   *decimal.Decimal
}

// CategoryAmount is the spend of one expense type and its share of the total.
type CategoryAmount struct {
	Category   ExpenseType     `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// MonthAmount is the spend of one YYYY-MM month.
type MonthAmount struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseSummary is the derived view behind the expense dashboard.
type ExpenseSummary struct {
	TotalSpent         decimal.Decimal  `json:"totalSpent"`
	TotalBudget        decimal.Decimal  `json:"totalBudget"`
	RemainingBudget    decimal.Decimal  `json:"remainingBudget"`
	ExpensesByCategory []CategoryAmount `json:"expensesByCategory"`
	ExpensesByMonth    []MonthAmount    `json:"expensesByMonth"`
	// Currency is shared by every summed expense, empty when they differ.
	Currency string `json:"currency"`
}
