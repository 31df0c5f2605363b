package memory

import (
	"context"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	portsrepo "github.com/SscSPs/workplace_services/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// NewRepositoryProvider returns empty in-memory repositories.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LeaveRequestRepo:  NewLeaveRequestRepository(),
		TravelExpenseRepo: NewTravelExpenseRepository(),
		TripBookingRepo:   NewTripBookingRepository(),
	}
}

func auditField(a domain.AuditFields, column string) (any, bool) {
	switch column {
	case domain.ColumnCreatedAt:
		return a.CreatedAt, true
	case domain.ColumnUpdatedAt:
		return a.UpdatedAt, true
	case domain.ColumnUserID:
		if a.UserID == "" {
			return nil, true
		}
		return a.UserID, true
	}
	return nil, false
}

// LeaveRequestRepository stores leave requests in memory.
type LeaveRequestRepository struct {
	t *table[domain.LeaveRequest]
}

var _ portsrepo.LeaveRequestRepositoryFacade = (*LeaveRequestRepository)(nil)

func NewLeaveRequestRepository() *LeaveRequestRepository {
	return &LeaveRequestRepository{t: newTable("sick_leave_requests",
		func(r domain.LeaveRequest) string { return r.ID },
		func(r domain.LeaveRequest, column string) (any, bool) {
			switch column {
			case domain.ColumnID:
				return r.ID, true
			case domain.ColumnLeaveStartDate:
				return r.StartDate, true
			case domain.ColumnLeaveEndDate:
				return r.EndDate, true
			case domain.ColumnLeaveType:
				return string(r.LeaveType), true
			case domain.ColumnLeaveReason:
				return r.Reason, true
			case domain.ColumnStatus:
				return string(r.Status), true
			}
			return auditField(r.AuditFields, column)
		})}
}

func (r *LeaveRequestRepository) ListLeaveRequests(_ context.Context, q domain.Query) ([]domain.LeaveRequest, error) {
	return r.t.list(q)
}

func (r *LeaveRequestRepository) FindLeaveRequestByID(_ context.Context, id string) (*domain.LeaveRequest, error) {
	rec, err := r.t.find(id)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *LeaveRequestRepository) CountLeaveRequests(_ context.Context, q domain.Query) (int64, error) {
	return r.t.count(q)
}

func (r *LeaveRequestRepository) SaveLeaveRequest(_ context.Context, req domain.LeaveRequest) (*domain.LeaveRequest, error) {
	stored, err := r.t.insert(req)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *LeaveRequestRepository) UpdateLeaveRequest(_ context.Context, id string, p domain.LeaveRequestPatch, now time.Time) error {
	return r.t.update(id, func(rec *domain.LeaveRequest) {
		setIf(&rec.StartDate, p.StartDate)
		setIf(&rec.EndDate, p.EndDate)
		setIf(&rec.LeaveType, p.LeaveType)
		setIf(&rec.Reason, p.Reason)
		setIf(&rec.Status, p.Status)
		rec.UpdatedAt = now
	})
}

func (r *LeaveRequestRepository) DeleteLeaveRequest(_ context.Context, id string) error {
	return r.t.delete(id)
}

// TravelExpenseRepository stores travel expenses in memory.
type TravelExpenseRepository struct {
	t *table[domain.TravelExpense]
}

var _ portsrepo.TravelExpenseRepositoryFacade = (*TravelExpenseRepository)(nil)

func NewTravelExpenseRepository() *TravelExpenseRepository {
	return &TravelExpenseRepository{t: newTable("travel_expenses",
		func(e domain.TravelExpense) string { return e.ID },
		func(e domain.TravelExpense, column string) (any, bool) {
			switch column {
			case domain.ColumnID:
				return e.ID, true
			case domain.ColumnTripDestination:
				return e.TripDestination, true
			case domain.ColumnTripPurpose:
				return e.TripPurpose, true
			case domain.ColumnExpenseStart:
				return e.StartDate, true
			case domain.ColumnExpenseEnd:
				return e.EndDate, true
			case domain.ColumnExpenseType:
				return string(e.ExpenseType), true
			case domain.ColumnAmount:
				return e.Amount, true
			case domain.ColumnCurrency:
				return e.Currency, true
			case domain.ColumnDescription:
				return e.Description, true
			case domain.ColumnStatus:
				return string(e.Status), true
			}
			return auditField(e.AuditFields, column)
		})}
}

func (r *TravelExpenseRepository) ListTravelExpenses(_ context.Context, q domain.Query) ([]domain.TravelExpense, error) {
	return r.t.list(q)
}

func (r *TravelExpenseRepository) FindTravelExpenseByID(_ context.Context, id string) (*domain.TravelExpense, error) {
	rec, err := r.t.find(id)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *TravelExpenseRepository) CountTravelExpenses(_ context.Context, q domain.Query) (int64, error) {
	return r.t.count(q)
}

func (r *TravelExpenseRepository) SumTravelExpenseAmounts(_ context.Context, q domain.Query) (decimal.Decimal, error) {
	rows, err := r.t.list(q.WithLimit(0))
	if err != nil {
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, e := range rows {
		total = total.Add(e.Amount)
	}
	return total, nil
}

func (r *TravelExpenseRepository) SaveTravelExpense(_ context.Context, expense domain.TravelExpense) (*domain.TravelExpense, error) {
	stored, err := r.t.insert(expense)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *TravelExpenseRepository) UpdateTravelExpense(_ context.Context, id string, p domain.TravelExpensePatch, now time.Time) error {
	return r.t.update(id, func(rec *domain.TravelExpense) {
		setIf(&rec.TripDestination, p.TripDestination)
		setIf(&rec.TripPurpose, p.TripPurpose)
		setIf(&rec.StartDate, p.StartDate)
		setIf(&rec.EndDate, p.EndDate)
		setIf(&rec.ExpenseType, p.ExpenseType)
		setIf(&rec.Amount, p.Amount)
		setIf(&rec.Currency, p.Currency)
		setIf(&rec.Description, p.Description)
		setIf(&rec.Status, p.Status)
		rec.UpdatedAt = now
	})
}

func (r *TravelExpenseRepository) DeleteTravelExpense(_ context.Context, id string) error {
	return r.t.delete(id)
}

// TripBookingRepository stores trip bookings in memory.
type TripBookingRepository struct {
	t *table[domain.TripBooking]
}

var _ portsrepo.TripBookingRepositoryFacade = (*TripBookingRepository)(nil)

func NewTripBookingRepository() *TripBookingRepository {
	return &TripBookingRepository{t: newTable("trip_bookings",
		func(b domain.TripBooking) string { return b.ID },
		func(b domain.TripBooking, column string) (any, bool) {
			switch column {
			case domain.ColumnID:
				return b.ID, true
			case domain.ColumnTripType:
				return b.TripType, true
			case domain.ColumnFromLocation:
				return b.FromLocation, true
			case domain.ColumnToLocation:
				return b.ToLocation, true
			case domain.ColumnDepartureDate:
				return b.DepartureDate, true
			case domain.ColumnReturnDate:
				return dateOrNil(b.ReturnDate), true
			case domain.ColumnPurpose:
				return b.Purpose, true
			case domain.ColumnPreferredTime:
				return b.PreferredTime, true
			case domain.ColumnAccommodation:
				return b.Accommodation, true
			case domain.ColumnStatus:
				return string(b.Status), true
			}
			return auditField(b.AuditFields, column)
		})}
}

func (r *TripBookingRepository) ListTripBookings(_ context.Context, q domain.Query) ([]domain.TripBooking, error) {
	return r.t.list(q)
}

func (r *TripBookingRepository) FindTripBookingByID(_ context.Context, id string) (*domain.TripBooking, error) {
	rec, err := r.t.find(id)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *TripBookingRepository) CountTripBookings(_ context.Context, q domain.Query) (int64, error) {
	return r.t.count(q)
}

func (r *TripBookingRepository) SaveTripBooking(_ context.Context, booking domain.TripBooking) (*domain.TripBooking, error) {
	stored, err := r.t.insert(booking)
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

func (r *TripBookingRepository) UpdateTripBooking(_ context.Context, id string, p domain.TripBookingPatch, now time.Time) error {
	return r.t.update(id, func(rec *domain.TripBooking) {
		setIf(&rec.TripType, p.TripType)
		setIf(&rec.FromLocation, p.FromLocation)
		setIf(&rec.ToLocation, p.ToLocation)
		setIf(&rec.DepartureDate, p.DepartureDate)
		if p.ReturnDate != nil {
			d := *p.ReturnDate
			rec.ReturnDate = &d
		}
		setIf(&rec.Purpose, p.Purpose)
		setIf(&rec.PreferredTime, p.PreferredTime)
		setIf(&rec.Accommodation, p.Accommodation)
		setIf(&rec.Status, p.Status)
		rec.UpdatedAt = now
	})
}

func (r *TripBookingRepository) DeleteTripBooking(_ context.Context, id string) error {
	return r.t.delete(id)
}

func setIf[V any](dst *V, src *V) {
	if src != nil {
		*dst = *src
	}
}
