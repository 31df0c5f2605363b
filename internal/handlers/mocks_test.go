package handlers_test

import (
	"context"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock LeaveRequestService ---
type MockLeaveRequestService struct {
	mock.Mock
}

func (m *MockLeaveRequestService) ListLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestService) GetLeaveRequestByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestService) CreateLeaveRequest(ctx context.Context, req dto.CreateLeaveRequestRequest, userID string) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LeaveRequest), args.Error(1)
}

func (m *MockLeaveRequestService) UpdateLeaveRequest(ctx context.Context, id string, req dto.UpdateLeaveRequestRequest, userID string) error {
	return m.Called(ctx, id, req, userID).Error(0)
}

func (m *MockLeaveRequestService) DeleteLeaveRequest(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

var _ portssvc.LeaveRequestSvcFacade = (*MockLeaveRequestService)(nil)

// --- Mock TravelExpenseService ---
type MockTravelExpenseService struct {
	mock.Mock
}

func (m *MockTravelExpenseService) ListTravelExpenses(ctx context.Context, search string) ([]domain.TravelExpense, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TravelExpense), args.Error(1)
}

func (m *MockTravelExpenseService) PageTravelExpenses(ctx context.Context, search string, page int) (*domain.ExpensePage, error) {
	args := m.Called(ctx, search, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpensePage), args.Error(1)
}

func (m *MockTravelExpenseService) GetTravelExpenseByID(ctx context.Context, id string) (*domain.TravelExpense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelExpense), args.Error(1)
}

func (m *MockTravelExpenseService) CreateTravelExpense(ctx context.Context, req dto.CreateTravelExpenseRequest, userID string) (*domain.TravelExpense, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TravelExpense), args.Error(1)
}

func (m *MockTravelExpenseService) UpdateTravelExpense(ctx context.Context, id string, req dto.UpdateTravelExpenseRequest, userID string) error {
	return m.Called(ctx, id, req, userID).Error(0)
}

func (m *MockTravelExpenseService) DeleteTravelExpense(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

var _ portssvc.TravelExpenseSvcFacade = (*MockTravelExpenseService)(nil)

// --- Mock TripBookingService ---
type MockTripBookingService struct {
	mock.Mock
}

func (m *MockTripBookingService) ListTripBookings(ctx context.Context) ([]domain.TripBooking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripBooking), args.Error(1)
}

func (m *MockTripBookingService) GetTripBookingByID(ctx context.Context, id string) (*domain.TripBooking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripBooking), args.Error(1)
}

func (m *MockTripBookingService) ListUpcomingTripBookings(ctx context.Context) ([]domain.TripBooking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripBooking), args.Error(1)
}

func (m *MockTripBookingService) TripBookingCalendar(ctx context.Context, month string) ([]domain.TripCalendarDay, error) {
	args := m.Called(ctx, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TripCalendarDay), args.Error(1)
}

func (m *MockTripBookingService) CreateTripBooking(ctx context.Context, req dto.CreateTripBookingRequest, userID string) (*domain.TripBooking, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TripBooking), args.Error(1)
}

func (m *MockTripBookingService) UpdateTripBooking(ctx context.Context, id string, req dto.UpdateTripBookingRequest, userID string) error {
	return m.Called(ctx, id, req, userID).Error(0)
}

func (m *MockTripBookingService) DeleteTripBooking(ctx context.Context, id string, userID string) error {
	return m.Called(ctx, id, userID).Error(0)
}

var _ portssvc.TripBookingSvcFacade = (*MockTripBookingService)(nil)

// --- Mock DashboardService ---
type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) RecentActivities(ctx context.Context) ([]domain.ActivityItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityItem), args.Error(1)
}

func (m *MockDashboardService) Stats(ctx context.Context) (*domain.DashboardStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardStats), args.Error(1)
}

func (m *MockDashboardService) ExpenseSummary(ctx context.Context, filter domain.ExpenseSummaryFilter) (*domain.ExpenseSummary, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExpenseSummary), args.Error(1)
}

var _ portssvc.DashboardSvc = (*MockDashboardService)(nil)

// replaySubscriber hands every subscriber the same notifications and then
// closes the stream, which ends the SSE handler deterministically.
type replaySubscriber struct {
	notifications []domain.Notification
}

func (s replaySubscriber) Subscribe() (<-chan domain.Notification, func()) {
	ch := make(chan domain.Notification, len(s.notifications))
	for _, n := range s.notifications {
		ch <- n
	}
	close(ch)
	return ch, func() {}
}

var _ portssvc.NotificationSubscriber = replaySubscriber{}
