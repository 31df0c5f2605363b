package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExpenseType categorizes a travel expense.
type ExpenseType string

const (
	ExpenseAccommodation  ExpenseType = "accommodation"
	ExpenseTransportation ExpenseType = "transportation"
	ExpenseMeals          ExpenseType = "meals"
	ExpenseOther          ExpenseType = "other"
)

// ExpenseStatus is the approval state of a travel expense.
type ExpenseStatus string

const (
	ExpensePending  ExpenseStatus = "pending"
	ExpenseApproved ExpenseStatus = "approved"
)

// Columns of travel_expenses.
const (
	ColumnTripDestination = "trip_destination"
	ColumnTripPurpose     = "trip_purpose"
	ColumnExpenseStart    = "start_date"
	ColumnExpenseEnd      = "end_date"
	ColumnExpenseType     = "expense_type"
	ColumnAmount          = "amount"
	ColumnCurrency        = "currency"
	ColumnDescription     = "description"
)

// TravelExpense is a single expense line of a business trip.
type TravelExpense struct {
	ID              string          `json:"id"`
	TripDestination string          `json:"tripDestination"`
	TripPurpose     string          `json:"tripPurpose"`
	StartDate       time.Time       `json:"startDate"`
	EndDate         time.Time       `json:"endDate"`
	ExpenseType     ExpenseType     `json:"expenseType"`
	Amount          decimal.Decimal `json:"amount"`      // Non-negative
	Currency        string          `json:"currency"`    // ISO 4217 code
	Description     string          `json:"description"` // Nullable
	Status          ExpenseStatus   `json:"status"`
	AuditFields
}

// TravelExpensePatch carries the fields of a partial update; nil means unchanged.
type TravelExpensePatch struct {
	TripDestination *string
	TripPurpose     *string
	StartDate       *time.Time
	EndDate         *time.Time
	ExpenseType     *ExpenseType
	Amount          *decimal.Decimal
	Currency        *string
	Description     *string
	Status          *ExpenseStatus
}

// IsEmpty reports whether the patch changes nothing.
func (p TravelExpensePatch) IsEmpty() bool {
	return p.TripDestination == nil && p.TripPurpose == nil && p.StartDate == nil && p.EndDate == nil &&
		p.ExpenseType == nil && p.Amount == nil && p.Currency == nil && p.Description == nil && p.Status == nil
}

// ExpensePage is one page of a searched expense list.
type ExpensePage struct {
	Items      []TravelExpense
	Page       int
	PageSize   int
	TotalCount int
	TotalPages int
}
