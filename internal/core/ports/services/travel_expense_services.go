package services

import (
	"context"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/SscSPs/workplace_services/internal/dto"
)

// TravelExpenseReaderSvc defines read operations for travel expenses
type TravelExpenseReaderSvc interface {
	// ListTravelExpenses returns the expenses whose destination or purpose contains search, newest first.
	ListTravelExpenses(ctx context.Context, search string) ([]domain.TravelExpense, error)

	// PageTravelExpenses returns one page of ListTravelExpenses. Pages are 1-based.
	PageTravelExpenses(ctx context.Context, search string, page int) (*domain.ExpensePage, error)

	GetTravelExpenseByID(ctx context.Context, id string) (*domain.TravelExpense, error)
}

// TravelExpenseWriterSvc defines write operations for travel expenses
type TravelExpenseWriterSvc interface {
	CreateTravelExpense(ctx context.Context, req dto.CreateTravelExpenseRequest, userID string) (*domain.TravelExpense, error)
	UpdateTravelExpense(ctx context.Context, id string, req dto.UpdateTravelExpenseRequest, userID string) error
	DeleteTravelExpense(ctx context.Context, id string, userID string) error
}

// TravelExpenseSvcFacade combines all travel expense service interfaces
type TravelExpenseSvcFacade interface {
	TravelExpenseReaderSvc
	TravelExpenseWriterSvc
}
