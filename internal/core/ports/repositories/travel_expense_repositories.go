package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TravelExpenseReader defines read operations for travel_expenses
type TravelExpenseReader interface {
	// ListTravelExpenses returns the rows matching q in q's order.
	ListTravelExpenses(ctx context.Context, q domain.Query) ([]domain.TravelExpense, error)

	// FindTravelExpenseByID returns apperrors.ErrNotFound when no row matches.
	FindTravelExpenseByID(ctx context.Context, id string) (*domain.TravelExpense, error)

	// CountTravelExpenses counts the rows matching q's conditions.
	CountTravelExpenses(ctx context.Context, q domain.Query) (int64, error)

	// SumTravelExpenseAmounts sums amount over the rows matching q's conditions. Zero when none match.
	SumTravelExpenseAmounts(ctx context.Context, q domain.Query) (decimal.Decimal, error)
}

// TravelExpenseWriter defines write operations for travel_expenses
type TravelExpenseWriter interface {
	SaveTravelExpense(ctx context.Context, expense domain.TravelExpense) (*domain.TravelExpense, error)
	UpdateTravelExpense(ctx context.Context, id string, patch domain.TravelExpensePatch, now time.Time) error
	DeleteTravelExpense(ctx context.Context, id string) error
}

// TravelExpenseRepositoryFacade combines all travel expense repository interfaces
type TravelExpenseRepositoryFacade interface {
	TravelExpenseReader
	TravelExpenseWriter
}
