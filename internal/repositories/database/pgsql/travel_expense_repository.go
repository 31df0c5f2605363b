package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	portsrepo "github.com/SscSPs/workplace_services/internal/core/ports/repositories"
	"github.com/SscSPs/workplace_services/internal/models"
	"github.com/SscSPs/workplace_services/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

var travelExpensesTable = table{
	name: "travel_expenses",
	columns: []string{
		domain.ColumnID, domain.ColumnTripDestination, domain.ColumnTripPurpose, domain.ColumnExpenseStart,
		domain.ColumnExpenseEnd, domain.ColumnExpenseType, domain.ColumnAmount, domain.ColumnCurrency,
		domain.ColumnDescription, domain.ColumnStatus, domain.ColumnCreatedAt, domain.ColumnUpdatedAt, domain.ColumnUserID,
	},
}

type PgxTravelExpenseRepository struct {
	BaseRepository
}

// newPgxTravelExpenseRepository creates a new repository for travel_expenses.
func newPgxTravelExpenseRepository(pool *pgxpool.Pool) portsrepo.TravelExpenseRepositoryFacade {
	return &PgxTravelExpenseRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TravelExpenseRepositoryFacade = (*PgxTravelExpenseRepository)(nil)

func scanTravelExpense(row pgx.CollectableRow) (models.TravelExpense, error) {
	var m models.TravelExpense
	err := row.Scan(
		&m.ID,
		&m.TripDestination,
		&m.TripPurpose,
		&m.StartDate,
		&m.EndDate,
		&m.ExpenseType,
		&m.Amount,
		&m.Currency,
		&m.Description,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.UserID,
	)
	return m, err
}

// ListTravelExpenses retrieves the travel expenses matching q.
func (r *PgxTravelExpenseRepository) ListTravelExpenses(ctx context.Context, q domain.Query) ([]domain.TravelExpense, error) {
	rows, err := listRows(ctx, r.Pool, "list travel expenses", travelExpensesTable, q, scanTravelExpense)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTravelExpenseSlice(rows), nil
}

// FindTravelExpenseByID retrieves a travel expense by its id.
func (r *PgxTravelExpenseRepository) FindTravelExpenseByID(ctx context.Context, id string) (*domain.TravelExpense, error) {
	m, err := findByID(ctx, r.Pool, "find travel expense", travelExpensesTable, id, scanTravelExpense)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTravelExpense(*m)
	return &d, nil
}

func (r *PgxTravelExpenseRepository) CountTravelExpenses(ctx context.Context, q domain.Query) (int64, error) {
	return r.count(ctx, "count travel expenses", travelExpensesTable, q)
}

// SumTravelExpenseAmounts sums the amount column over the rows matching q.
func (r *PgxTravelExpenseRepository) SumTravelExpenseAmounts(ctx context.Context, q domain.Query) (decimal.Decimal, error) {
	where, args, err := travelExpensesTable.whereSQL(q, 1)
	if err != nil {
		return decimal.Zero, err
	}
	var total decimal.Decimal
	query := "SELECT COALESCE(SUM(amount), 0) FROM travel_expenses" + where
	if err := r.Pool.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return decimal.Zero, apperrors.NewFetchError("sum travel expenses", err)
	}
	return total, nil
}

// SaveTravelExpense inserts a travel expense and returns the stored row.
func (r *PgxTravelExpenseRepository) SaveTravelExpense(ctx context.Context, expense domain.TravelExpense) (*domain.TravelExpense, error) {
	m := mapping.ToModelTravelExpense(expense)

	query := fmt.Sprintf(`
		INSERT INTO travel_expenses (%[1]s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %[1]s;
	`, travelExpensesTable.columnList())

	rows, err := r.Pool.Query(ctx, query,
		m.ID,
		m.TripDestination,
		m.TripPurpose,
		m.StartDate,
		m.EndDate,
		m.ExpenseType,
		m.Amount,
		m.Currency,
		m.Description,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
		m.UserID,
	)
	if err != nil {
		return nil, apperrors.NewFetchError("save travel expense", err)
	}
	defer rows.Close()

	stored, err := pgx.CollectExactlyOneRow(rows, scanTravelExpense)
	if err != nil {
		return nil, apperrors.NewFetchError("save travel expense", err)
	}
	d := mapping.ToDomainTravelExpense(stored)
	return &d, nil
}

// UpdateTravelExpense applies the non-nil fields of patch.
func (r *PgxTravelExpenseRepository) UpdateTravelExpense(ctx context.Context, id string, patch domain.TravelExpensePatch, now time.Time) error {
	var set []assignment
	if patch.TripDestination != nil {
		set = append(set, assignment{domain.ColumnTripDestination, *patch.TripDestination})
	}
	if patch.TripPurpose != nil {
		set = append(set, assignment{domain.ColumnTripPurpose, *patch.TripPurpose})
	}
	if patch.StartDate != nil {
		set = append(set, assignment{domain.ColumnExpenseStart, *patch.StartDate})
	}
	if patch.EndDate != nil {
		set = append(set, assignment{domain.ColumnExpenseEnd, *patch.EndDate})
	}
	if patch.ExpenseType != nil {
		set = append(set, assignment{domain.ColumnExpenseType, string(*patch.ExpenseType)})
	}
	if patch.Amount != nil {
		set = append(set, assignment{domain.ColumnAmount, *patch.Amount})
	}
	if patch.Currency != nil {
		set = append(set, assignment{domain.ColumnCurrency, *patch.Currency})
	}
	if patch.Description != nil {
		set = append(set, assignment{domain.ColumnDescription, mapping.ToNullString(*patch.Description)})
	}
	if patch.Status != nil {
		set = append(set, assignment{domain.ColumnStatus, string(*patch.Status)})
	}
	return r.updateByID(ctx, "update travel expense", travelExpensesTable, id, set, now)
}

func (r *PgxTravelExpenseRepository) DeleteTravelExpense(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "delete travel expense", travelExpensesTable, id)
}
