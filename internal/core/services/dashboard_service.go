package services

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	portsrepo "github.com/SscSPs/workplace_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/utils"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// perCollectionActivities is how many records each collection contributes to the feed.
const perCollectionActivities = 3

// Sections of the portal an activity item links to.
const (
	SectionSickLeave      = "Sick Leave"
	SectionTravelExpenses = "Travel Expenses"
	SectionTripBooking    = "Trip Booking"
)

// monthKeyLayout groups expenses in the month breakdown.
const monthKeyLayout = "2006-01"

type dashboardService struct {
	BaseService
	leaves      portsrepo.LeaveRequestReader
	expenses    portsrepo.TravelExpenseReader
	bookings    portsrepo.TripBookingReader
	totalBudget decimal.Decimal
}

var _ portssvc.DashboardSvc = (*dashboardService)(nil)

// NewDashboardService creates the aggregation service. totalBudget is the
// spending limit the expense summary is measured against.
func NewDashboardService(repos portsrepo.RepositoryProvider, totalBudget decimal.Decimal, opts ...Option) portssvc.DashboardSvc {
	return &dashboardService{
		BaseService: newBaseService(opts...),
		leaves:      repos.LeaveRequestRepo,
		expenses:    repos.TravelExpenseRepo,
		bookings:    repos.TripBookingRepo,
		totalBudget: totalBudget,
	}
}

// RecentActivities merges the latest records of every collection. Relative
// dates are rendered on each call so cached items never go stale.
func (s *dashboardService) RecentActivities(ctx context.Context) ([]domain.ActivityItem, error) {
	items, err := cached(s.cache, keyRecentActivities, func() ([]domain.ActivityItem, error) {
		return s.loadRecentActivities(ctx)
	})
	if err != nil {
		return nil, err
	}

	now := s.now()
	out := make([]domain.ActivityItem, len(items))
	for i, it := range items {
		it.Date = utils.RelativeTime(it.CreatedAt, now)
		out[i] = it
	}
	return out, nil
}

func (s *dashboardService) loadRecentActivities(ctx context.Context) ([]domain.ActivityItem, error) {
	q := domain.NewQuery().WithLimit(perCollectionActivities)
	var (
		leaves   []domain.LeaveRequest
		expenses []domain.TravelExpense
		bookings []domain.TripBooking
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		leaves, err = s.leaves.ListLeaveRequests(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		expenses, err = s.expenses.ListTravelExpenses(gctx, q)
		return err
	})
	g.Go(func() (err error) {
		bookings, err = s.bookings.ListTripBookings(gctx, q)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load recent activities")
		return nil, err
	}

	title := cases.Title(language.English)
	items := make([]domain.ActivityItem, 0, len(leaves)+len(expenses)+len(bookings))
	for _, l := range leaves {
		items = append(items, domain.ActivityItem{
			ID:        l.ID,
			Type:      domain.ActivitySickLeave,
			Title:     fmt.Sprintf("%s Leave Request", title.String(string(l.LeaveType))),
			Status:    string(l.Status),
			Section:   SectionSickLeave,
			CreatedAt: l.CreatedAt,
		})
	}
	for _, e := range expenses {
		items = append(items, domain.ActivityItem{
			ID:        e.ID,
			Type:      domain.ActivityTravelExpense,
			Title:     fmt.Sprintf("%s Expense - %s", title.String(string(e.ExpenseType)), e.TripDestination),
			Status:    string(e.Status),
			Section:   SectionTravelExpenses,
			CreatedAt: e.CreatedAt,
		})
	}
	for _, b := range bookings {
		items = append(items, domain.ActivityItem{
			ID:        b.ID,
			Type:      domain.ActivityTripBooking,
			Title:     "Trip to " + b.ToLocation,
			Status:    string(b.Status),
			Section:   SectionTripBooking,
			CreatedAt: b.CreatedAt,
		})
	}

	slices.SortStableFunc(items, func(a, b domain.ActivityItem) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if len(items) > domain.RecentActivityLimit {
		items = items[:domain.RecentActivityLimit]
	}
	return items, nil
}

func (s *dashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	return cached(s.cache, keyDashboardStats, func() (*domain.DashboardStats, error) {
		return s.loadStats(ctx)
	})
}

func (s *dashboardService) loadStats(ctx context.Context) (*domain.DashboardStats, error) {
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var pendingLeaves, pendingExpenses, approvedLeaves, upcoming int64
	var monthly decimal.Decimal

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		pendingLeaves, err = s.leaves.CountLeaveRequests(gctx, domain.NewQuery().Eq(domain.ColumnStatus, domain.LeavePending))
		return err
	})
	g.Go(func() (err error) {
		pendingExpenses, err = s.expenses.CountTravelExpenses(gctx, domain.NewQuery().Eq(domain.ColumnStatus, domain.ExpensePending))
		return err
	})
	g.Go(func() (err error) {
		approvedLeaves, err = s.leaves.CountLeaveRequests(gctx, domain.NewQuery().Eq(domain.ColumnStatus, domain.LeaveApproved))
		return err
	})
	g.Go(func() (err error) {
		monthly, err = s.expenses.SumTravelExpenseAmounts(gctx, domain.NewQuery().Gte(domain.ColumnCreatedAt, monthStart))
		return err
	})
	g.Go(func() (err error) {
		upcoming, err = s.bookings.CountTripBookings(gctx, domain.NewQuery().Gte(domain.ColumnDepartureDate, today(now)))
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to load dashboard stats")
		return nil, err
	}

	return &domain.DashboardStats{
		PendingRequests:  pendingLeaves + pendingExpenses,
		ApprovedItems:    approvedLeaves,
		MonthlyExpenses:  monthly,
		UpcomingBookings: upcoming,
	}, nil
}

func (s *dashboardService) ExpenseSummary(ctx context.Context, filter domain.ExpenseSummaryFilter) (*domain.ExpenseSummary, error) {
	if filter.Period == "" {
		filter.Period = domain.PeriodAll
	}
	if !filter.Period.IsValid() {
		return nil, apperrors.NewValidationError("period", "must be one of: week, month, quarter, year, all")
	}
	if filter.MinAmount != nil && filter.MaxAmount != nil && filter.MinAmount.GreaterThan(*filter.MaxAmount) {
		return nil, apperrors.NewValidationError("minAmount", "must not be greater than maxAmount")
	}

	now := s.now()
	q := domain.NewQuery()
	if since, ok := filter.Period.Since(now); ok {
		q = q.Gte(domain.ColumnCreatedAt, since)
	}
	if filter.ExpenseType != "" {
		q = q.Eq(domain.ColumnExpenseType, filter.ExpenseType)
	}
	if filter.MinAmount != nil {
		q = q.Gte(domain.ColumnAmount, *filter.MinAmount)
	}
	if filter.MaxAmount != nil {
		q = q.Lte(domain.ColumnAmount, *filter.MaxAmount)
	}

	key := keyExpenseSummary + summaryFilterKey(filter)
	return cached(s.cache, key, func() (*domain.ExpenseSummary, error) {
		expenses, err := s.expenses.ListTravelExpenses(ctx, q)
		if err != nil {
			s.LogError(ctx, err, "Failed to load expense summary")
			return nil, err
		}
		return summarizeExpenses(expenses, s.totalBudget, now.Location()), nil
	})
}

func summaryFilterKey(f domain.ExpenseSummaryFilter) string {
	parts := []string{"period=" + string(f.Period), "type=" + string(f.ExpenseType)}
	if f.MinAmount != nil {
		parts = append(parts, "min="+f.MinAmount.String())
	}
	if f.MaxAmount != nil {
		parts = append(parts, "max="+f.MaxAmount.String())
	}
	return strings.Join(parts, ";")
}

// summarizeExpenses computes totals and breakdowns. Percentages are of the
// total spent, unrounded, and are all zero when nothing was spent.
// Currency is set only when every expense uses the same one.
func summarizeExpenses(expenses []domain.TravelExpense, budget decimal.Decimal, loc *time.Location) *domain.ExpenseSummary {
	total := decimal.Zero
	byCategory := map[domain.ExpenseType]decimal.Decimal{}
	byMonth := map[string]decimal.Decimal{}
	currency := ""
	for i, e := range expenses {
		if i == 0 {
			currency = strings.ToUpper(e.Currency)
		} else if !strings.EqualFold(currency, e.Currency) {
			currency = ""
		}
		total = total.Add(e.Amount)
		byCategory[e.ExpenseType] = byCategory[e.ExpenseType].Add(e.Amount)
		month := e.CreatedAt.In(loc).Format(monthKeyLayout)
		byMonth[month] = byMonth[month].Add(e.Amount)
	}

	categories := make([]domain.CategoryAmount, 0, len(byCategory))
	for category, amount := range byCategory {
		pct := 0.0
		if !total.IsZero() {
			pct = amount.Div(total).Mul(decimal.NewFromInt(100)).InexactFloat64()
		}
		categories = append(categories, domain.CategoryAmount{Category: category, Amount: amount, Percentage: pct})
	}
	slices.SortFunc(categories, func(a, b domain.CategoryAmount) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})

	months := make([]domain.MonthAmount, 0, len(byMonth))
	for month, amount := range byMonth {
		months = append(months, domain.MonthAmount{Month: month, Amount: amount})
	}
	slices.SortFunc(months, func(a, b domain.MonthAmount) int {
		return cmp.Compare(a.Month, b.Month)
	})

	return &domain.ExpenseSummary{
		TotalSpent:         total,
		TotalBudget:        budget,
		RemainingBudget:    budget.Sub(total),
		ExpensesByCategory: categories,
		ExpensesByMonth:    months,
		Currency:           currency,
	}
}
