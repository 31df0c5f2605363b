package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TravelExpense is a row of travel_expenses.
type TravelExpense struct {
	ID              string          `db:"id"`
	TripDestination string          `db:"trip_destination"`
	TripPurpose     string          `db:"trip_purpose"`
	StartDate       time.Time       `db:"start_date"`
	EndDate         time.Time       `db:"end_date"`
	ExpenseType     string          `db:"expense_type"`
	Amount          decimal.Decimal `db:"amount"`
	Currency        string          `db:"currency"`
	Description     sql.NullString  `db:"description"`
	Status          string          `db:"status"`
	AuditFields
}
