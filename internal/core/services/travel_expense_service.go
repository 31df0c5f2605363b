package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	portsrepo "github.com/SscSPs/workplace_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/utils/pagination"
	"github.com/SscSPs/workplace_services/internal/utils/validation"
	"github.com/google/uuid"
)

type travelExpenseService struct {
	BaseService
	repo portsrepo.TravelExpenseRepositoryFacade
}

var _ portssvc.TravelExpenseSvcFacade = (*travelExpenseService)(nil)

// NewTravelExpenseService creates the travel expense service.
func NewTravelExpenseService(repo portsrepo.TravelExpenseRepositoryFacade, opts ...Option) portssvc.TravelExpenseSvcFacade {
	return &travelExpenseService{BaseService: newBaseService(opts...), repo: repo}
}

func (s *travelExpenseService) ListTravelExpenses(ctx context.Context, search string) ([]domain.TravelExpense, error) {
	q := domain.NewQuery().WithSearch(search, domain.ColumnTripDestination, domain.ColumnTripPurpose)
	return cached(s.cache, listKey(keyTravelExpenses, q), func() ([]domain.TravelExpense, error) {
		expenses, err := s.repo.ListTravelExpenses(ctx, q)
		if err != nil {
			s.LogError(ctx, err, "Failed to list travel expenses", slog.String("search", search))
			return nil, err
		}
		return expenses, nil
	})
}

func (s *travelExpenseService) PageTravelExpenses(ctx context.Context, search string, page int) (*domain.ExpensePage, error) {
	if page < 1 {
		return nil, apperrors.NewValidationError("page", pagination.ErrInvalidPage.Error())
	}
	expenses, err := s.ListTravelExpenses(ctx, search)
	if err != nil {
		return nil, err
	}

	p, err := pagination.Paginate(expenses, page, pagination.DefaultPageSize)
	if err != nil {
		return nil, err
	}
	return &domain.ExpensePage{
		Items:      p.Items,
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}, nil
}

func (s *travelExpenseService) GetTravelExpenseByID(ctx context.Context, id string) (*domain.TravelExpense, error) {
	return cached(s.cache, idKey(keyTravelExpenses, id), func() (*domain.TravelExpense, error) {
		expense, err := s.repo.FindTravelExpenseByID(ctx, id)
		if err != nil {
			s.logFailure(ctx, err, "Failed to find travel expense", slog.String("travel_expense_id", id))
			return nil, err
		}
		return expense, nil
	})
}

func (s *travelExpenseService) CreateTravelExpense(ctx context.Context, req dto.CreateTravelExpenseRequest, userID string) (*domain.TravelExpense, error) {
	created, err := s.createTravelExpense(ctx, req, userID)
	if err := s.completeMutation(ctx, expenseCreated, userID, err, expenseInvalidations); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Travel expense created",
		slog.String("travel_expense_id", created.ID),
		slog.String("amount", created.Amount.String()),
		slog.String("currency", created.Currency))
	return created, nil
}

func (s *travelExpenseService) createTravelExpense(ctx context.Context, req dto.CreateTravelExpenseRequest, userID string) (*domain.TravelExpense, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	start, err := parseDate("startDate", req.StartDate)
	if err != nil {
		return nil, err
	}
	end, err := parseDate("endDate", req.EndDate)
	if err != nil {
		return nil, err
	}
	if err := checkDateRange(start, end, "endDate"); err != nil {
		return nil, err
	}

	now := s.now()
	return s.repo.SaveTravelExpense(ctx, domain.TravelExpense{
		ID:              uuid.NewString(),
		TripDestination: req.TripDestination,
		TripPurpose:     req.TripPurpose,
		StartDate:       start,
		EndDate:         end,
		ExpenseType:     domain.ExpenseType(req.ExpenseType),
		Amount:          req.Amount,
		Currency:        req.Currency,
		Description:     req.Description,
		Status:          domain.ExpensePending,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
			UserID:    userID,
		},
	})
}

func (s *travelExpenseService) UpdateTravelExpense(ctx context.Context, id string, req dto.UpdateTravelExpenseRequest, userID string) error {
	err := s.updateTravelExpense(ctx, id, req)
	return s.completeMutation(ctx, expenseUpdated, userID, err, expenseInvalidations)
}

func (s *travelExpenseService) updateTravelExpense(ctx context.Context, id string, req dto.UpdateTravelExpenseRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	patch, err := toTravelExpensePatch(req)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errEmptyPatch
	}

	if patch.StartDate != nil || patch.EndDate != nil {
		current, err := s.repo.FindTravelExpenseByID(ctx, id)
		if err != nil {
			return err
		}
		start, end := current.StartDate, current.EndDate
		if patch.StartDate != nil {
			start = *patch.StartDate
		}
		if patch.EndDate != nil {
			end = *patch.EndDate
		}
		if err := checkDateRange(start, end, "endDate"); err != nil {
			return err
		}
	}

	return s.repo.UpdateTravelExpense(ctx, id, patch, s.now())
}

func (s *travelExpenseService) DeleteTravelExpense(ctx context.Context, id string, userID string) error {
	err := s.repo.DeleteTravelExpense(ctx, id)
	return s.completeMutation(ctx, expenseDeleted, userID, err, expenseInvalidations)
}

func toTravelExpensePatch(req dto.UpdateTravelExpenseRequest) (domain.TravelExpensePatch, error) {
	patch := domain.TravelExpensePatch{
		TripDestination: req.TripDestination,
		TripPurpose:     req.TripPurpose,
		Amount:          req.Amount,
		Currency:        req.Currency,
		Description:     req.Description,
	}
	var err error
	if patch.StartDate, err = parseOptionalDate("startDate", req.StartDate); err != nil {
		return patch, err
	}
	if patch.EndDate, err = parseOptionalDate("endDate", req.EndDate); err != nil {
		return patch, err
	}
	if req.ExpenseType != nil {
		t := domain.ExpenseType(*req.ExpenseType)
		patch.ExpenseType = &t
	}
	if req.Status != nil {
		st := domain.ExpenseStatus(*req.Status)
		patch.Status = &st
	}
	return patch, nil
}
