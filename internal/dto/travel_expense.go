package dto

import (
	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTravelExpenseRequest defines the data needed to file a travel expense.
type CreateTravelExpenseRequest struct {
	TripDestination string          `json:"tripDestination" validate:"required,max=200"`
	TripPurpose     string          `json:"tripPurpose" validate:"required,max=500"`
	StartDate       string          `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate         string          `json:"endDate" validate:"required,datetime=2006-01-02"`
	ExpenseType     string          `json:"expenseType" validate:"required,oneof=accommodation transportation meals other"`
	Amount          decimal.Decimal `json:"amount" validate:"required,gt=0"`
	Currency        string          `json:"currency" validate:"required,len=3,uppercase"`
	Description     string          `json:"description" validate:"max=2000"`
}

// UpdateTravelExpenseRequest defines a partial update; omitted fields are left unchanged.
type UpdateTravelExpenseRequest struct {
	TripDestination *string          `json:"tripDestination" validate:"omitnil,min=1,max=200"`
	TripPurpose     *string          `json:"tripPurpose" validate:"omitnil,min=1,max=500"`
	StartDate       *string          `json:"startDate" validate:"omitnil,datetime=2006-01-02"`
	EndDate         *string          `json:"endDate" validate:"omitnil,datetime=2006-01-02"`
	ExpenseType     *string          `json:"expenseType" validate:"omitnil,oneof=accommodation transportation meals other"`
	Amount          *decimal.Decimal `json:"amount" validate:"omitnil,gt=0"`
	Currency        *string          `json:"currency" validate:"omitnil,len=3,uppercase"`
	Description     *string          `json:"description" validate:"omitnil,max=2000"`
	Status          *string          `json:"status" validate:"omitnil,oneof=pending approved"`
}

// ListTravelExpensesParams are the query parameters of the expense list.
type ListTravelExpensesParams struct {
	Search string `form:"search"`
	Page   int    `form:"page,default=1"`
}

// TravelExpenseResponse defines the data returned for a travel expense.
type TravelExpenseResponse struct {
	ID              string          `json:"id"`
	TripDestination string          `json:"tripDestination"`
	TripPurpose     string          `json:"tripPurpose"`
	StartDate       string          `json:"startDate"`
	EndDate         string          `json:"endDate"`
	ExpenseType     string          `json:"expenseType"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	Description     *string         `json:"description"`
	Status          string          `json:"status"`
	AuditResponse
}

// ListTravelExpensesResponse is one page of the searched expense list.
type ListTravelExpensesResponse struct {
	Items      []TravelExpenseResponse `json:"items"`
	Page       int                     `json:"page"`
	PageSize   int                     `json:"pageSize"`
	TotalCount int                     `json:"totalCount"`
	TotalPages int                     `json:"totalPages"`
}

// ExpenseSummaryParams are the query parameters of the expense summary.
type ExpenseSummaryParams struct {
	Period    string `form:"period,default=all"`
	Type      string `form:"type"`
	MinAmount string `form:"minAmount"`
	MaxAmount string `form:"maxAmount"`
}

// ToFilter parses the parameters into a summary filter. Period is checked by
// the dashboard service; type and amounts are checked here.
func (p ExpenseSummaryParams) ToFilter() (domain.ExpenseSummaryFilter, error) {
	filter := domain.ExpenseSummaryFilter{Period: domain.SummaryPeriod(p.Period)}
	verrs := apperrors.ValidationErrors{}

	switch t := domain.ExpenseType(p.Type); t {
	case "":
	case domain.ExpenseAccommodation, domain.ExpenseTransportation, domain.ExpenseMeals, domain.ExpenseOther:
		filter.ExpenseType = t
	default:
		verrs["type"] = "must be one of: accommodation, transportation, meals, other"
	}

	parseAmount := func(field, raw string) *decimal.Decimal {
		if raw == "" {
			return nil
		}
		d, err := decimal.NewFromString(raw)
		if err != nil || d.IsNegative() {
			verrs[field] = "must be a non-negative number"
			return nil
		}
		return &d
	}
	filter.MinAmount = parseAmount("minAmount", p.MinAmount)
	filter.MaxAmount = parseAmount("maxAmount", p.MaxAmount)

	if len(verrs) > 0 {
		return filter, verrs
	}
	return filter, nil
}

// CategoryAmountResponse is one row of the category breakdown.
type CategoryAmountResponse struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage float64         `json:"percentage"`
}

// MonthAmountResponse is one row of the month breakdown.
type MonthAmountResponse struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

// ExpenseSummaryResponse defines the data returned for the expense dashboard.
type ExpenseSummaryResponse struct {
	TotalSpent         decimal.Decimal          `json:"totalSpent"`
	TotalBudget        decimal.Decimal          `json:"totalBudget"`
	RemainingBudget    decimal.Decimal          `json:"remainingBudget"`
	ExpensesByCategory []CategoryAmountResponse `json:"expensesByCategory"`
	ExpensesByMonth    []MonthAmountResponse    `json:"expensesByMonth"`
	Currency           string                   `json:"currency,omitempty"`
}

// ToTravelExpenseResponse converts a domain.TravelExpense to TravelExpenseResponse DTO.
func ToTravelExpenseResponse(e *domain.TravelExpense) TravelExpenseResponse {
	return TravelExpenseResponse{
		ID:              e.ID,
		TripDestination: e.TripDestination,
		TripPurpose:     e.TripPurpose,
		StartDate:       formatDate(e.StartDate),
		EndDate:         formatDate(e.EndDate),
		ExpenseType:     string(e.ExpenseType),
		Amount:          e.Amount,
		Currency:        e.Currency,
		Description:     optionalString(e.Description),
		Status:          string(e.Status),
		AuditResponse:   toAuditResponse(e.AuditFields),
	}
}

// ToTravelExpenseResponses converts a slice of domain.TravelExpense to []TravelExpenseResponse.
func ToTravelExpenseResponses(es []domain.TravelExpense) []TravelExpenseResponse {
	res := make([]TravelExpenseResponse, len(es))
	for i := range es {
		res[i] = ToTravelExpenseResponse(&es[i])
	}
	return res
}

// ToListTravelExpensesResponse converts a domain.ExpensePage to its response DTO.
func ToListTravelExpensesResponse(p *domain.ExpensePage) ListTravelExpensesResponse {
	return ListTravelExpensesResponse{
		Items:      ToTravelExpenseResponses(p.Items),
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalCount: p.TotalCount,
		TotalPages: p.TotalPages,
	}
}

// ToExpenseSummaryResponse converts a domain.ExpenseSummary to its response DTO.
func ToExpenseSummaryResponse(s *domain.ExpenseSummary) ExpenseSummaryResponse {
	res := ExpenseSummaryResponse{
		TotalSpent:         s.TotalSpent,
		TotalBudget:        s.TotalBudget,
		RemainingBudget:    s.RemainingBudget,
		ExpensesByCategory: make([]CategoryAmountResponse, len(s.ExpensesByCategory)),
		ExpensesByMonth:    make([]MonthAmountResponse, len(s.ExpensesByMonth)),
		Currency:           s.Currency,
	}
	for i, c := range s.ExpensesByCategory {
		res.ExpensesByCategory[i] = CategoryAmountResponse{
			Category:   string(c.Category),
			Amount:     c.Amount,
			Percentage: c.Percentage,
		}
	}
	for i, m := range s.ExpensesByMonth {
		res.ExpensesByMonth[i] = MonthAmountResponse{Month: m.Month, Amount: m.Amount}
	}
	return res
}
