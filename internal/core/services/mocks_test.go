package services_test

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock LeaveRequestRepository ---
type MockLeaveRequestRepository struct {
	mock.Mock
}

func (m *MockLeaveRequestRepository) ListLeaveRequests(ctx context.Context, q domain.Query) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) FindLeaveRequestByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) CountLeaveRequests(ctx context.Context, q domain.Query) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaveRequestRepository) SaveLeaveRequest(ctx context.Context, req domain.LeaveRequest) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestRepository) UpdateLeaveRequest(ctx context.Context, id string, patch domain.LeaveRequestPatch, now time.Time) error {
	args := m.Called(ctx, id, patch, now)
	return args.Error(0)
}

func (m *MockLeaveRequestRepository) DeleteLeaveRequest(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock TravelExpenseRepository ---
type MockTravelExpenseRepository struct {
	mock.Mock
}

func (m *MockTravelExpenseRepository) ListTravelExpenses(ctx context.Context, q domain.Query) ([]domain.TravelExpense, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelExpense), args.Error(1)
}

func (m *MockTravelExpenseRepository) FindTravelExpenseByID(ctx context.Context, id string) (*domain.TravelExpense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelExpense), args.Error(1)
}

func (m *MockTravelExpenseRepository) CountTravelExpenses(ctx context.Context, q domain.Query) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTravelExpenseRepository) SumTravelExpenseAmounts(ctx context.Context, q domain.Query) (decimal.Decimal, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockTravelExpenseRepository) SaveTravelExpense(ctx context.Context, e domain.TravelExpense) (*domain.TravelExpense, error) {
	args := m.Called(ctx, e)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelExpense), args.Error(1)
}

func (m *MockTravelExpenseRepository) UpdateTravelExpense(ctx context.Context, id string, patch domain.TravelExpensePatch, now time.Time) error {
	args := m.Called(ctx, id, patch, now)
	return args.Error(0)
}

func (m *MockTravelExpenseRepository) DeleteTravelExpense(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// --- Mock TripBookingRepository ---
type MockTripBookingRepository struct {
	mock.Mock
}

func (m *MockTripBookingRepository) ListTripBookings(ctx context.Context, q domain.Query) ([]domain.TripBooking, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripBooking), args.Error(1)
}

func (m *MockTripBookingRepository) FindTripBookingByID(ctx context.Context, id string) (*domain.TripBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripBooking), args.Error(1)
}

func (m *MockTripBookingRepository) CountTripBookings(ctx context.Context, q domain.Query) (int64, error) {
	args := m.Called(ctx, q)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTripBookingRepository) SaveTripBooking(ctx context.Context, b domain.TripBooking) (*domain.TripBooking, error) {
	args := m.Called(ctx, b)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripBooking), args.Error(1)
}

func (m *MockTripBookingRepository) UpdateTripBooking(ctx context.Context, id string, patch domain.TripBookingPatch, now time.Time) error {
	args := m.Called(ctx, id, patch, now)
	return args.Error(0)
}

func (m *MockTripBookingRepository) DeleteTripBooking(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// recordingNotifier keeps every published notification.
type recordingNotifier struct {
	mu   sync.Mutex
	sent []domain.Notification
}

func (r *recordingNotifier) Publish(n domain.Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

func (r *recordingNotifier) all() []domain.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]domain.Notification(nil), r.sent...)
}

var fixedNow = time.Date(2024, 5, 31, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }
