package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/handlers"
	"github.com/SscSPs/workplace_services/internal/middleware"
	"github.com/SscSPs/workplace_services/internal/platform/config"
	"github.com/SscSPs/workplace_services/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/ulule/limiter/v3"
)

const testJWTSecret = "test-secret-key-that-is-long-enough"

var createdAt = time.Date(2024, 5, 31, 9, 30, 0, 0, time.UTC)

// --- Test Suite ---
type HandlersTestSuite struct {
	suite.Suite
	router        *gin.Engine
	mockLeave     *MockLeaveRequestService
	mockExpense   *MockTravelExpenseService
	mockBooking   *MockTripBookingService
	mockDashboard *MockDashboardService
	notifications []domain.Notification
	rateLimiter   *limiter.Limiter
}

func TestHandlersTestSuite(t *testing.T) {
	suite.Run(t, new(HandlersTestSuite))
}

func (suite *HandlersTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockLeave = new(MockLeaveRequestService)
	suite.mockExpense = new(MockTravelExpenseService)
	suite.mockBooking = new(MockTripBookingService)
	suite.mockDashboard = new(MockDashboardService)
	suite.notifications = nil
	suite.rateLimiter = nil
	suite.buildRouter()
}

func (suite *HandlersTestSuite) buildRouter() {
	cfg := &config.Config{
		IsProduction:       true,
		JWTSecret:          testJWTSecret,
		CORSAllowedOrigins: []string{"http://localhost:5173"},
	}
	services := &portssvc.ServiceContainer{
		LeaveRequest:  suite.mockLeave,
		TravelExpense: suite.mockExpense,
		TripBooking:   suite.mockBooking,
		Dashboard:     suite.mockDashboard,
		Notifications: replaySubscriber{notifications: suite.notifications},
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, cfg, services, handlers.Deps{
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Limiter: suite.rateLimiter,
	})
}

func (suite *HandlersTestSuite) TearDownTest() {
	suite.mockLeave.AssertExpectations(suite.T())
	suite.mockExpense.AssertExpectations(suite.T())
	suite.mockBooking.AssertExpectations(suite.T())
	suite.mockDashboard.AssertExpectations(suite.T())
}

func (suite *HandlersTestSuite) generateTestToken(userID string) string {
	token, err := utils.GenerateJWT(userID, testJWTSecret, time.Hour, time.Now())
	suite.Require().NoError(err)
	return token
}

func (suite *HandlersTestSuite) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		switch b := body.(type) {
		case string:
			reader = bytes.NewBufferString(b)
		default:
			raw, err := json.Marshal(b)
			suite.Require().NoError(err)
			reader = bytes.NewBuffer(raw)
		}
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlersTestSuite) decodeError(w *httptest.ResponseRecorder) dto.ErrorResponse {
	var res dto.ErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func sampleLeaveRequest(userID string) *domain.LeaveRequest {
	return &domain.LeaveRequest{
		ID:        "leave-1",
		StartDate: time.Date(2024, 6, 3, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 6, 5, 0, 0, 0, 0, time.UTC),
		LeaveType: domain.LeaveSick,
		Status:    domain.LeavePending,
		AuditFields: domain.AuditFields{
			CreatedAt: createdAt,
			UpdatedAt: createdAt,
			UserID:    userID,
		},
	}
}

// --- Root ---

func (suite *HandlersTestSuite) TestHealth() {
	w := suite.do(http.MethodGet, "/health", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *HandlersTestSuite) TestHome() {
	w := suite.do(http.MethodGet, "/api/v1", nil, "")
	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), handlers.ServiceName)
}

func (suite *HandlersTestSuite) TestSwaggerDisabledInProduction() {
	w := suite.do(http.MethodGet, "/swagger/index.html", nil, "")
	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Leave requests ---

func (suite *HandlersTestSuite) TestCreateLeaveRequest_Anonymous() {
	req := dto.CreateLeaveRequestRequest{StartDate: "2024-06-03", EndDate: "2024-06-05", LeaveType: "sick"}
	suite.mockLeave.On("CreateLeaveRequest", mock.Anything, req, "").Return(sampleLeaveRequest(""), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/sick-leave-requests", req, "")

	suite.Require().Equal(http.StatusCreated, w.Code)
	var res dto.LeaveRequestResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal("leave-1", res.ID)
	suite.Equal("2024-06-03", res.StartDate)
	suite.Equal("pending", res.Status)
	suite.Nil(res.UserID)
	suite.Nil(res.Reason)
}

func (suite *HandlersTestSuite) TestCreateLeaveRequest_UsesTokenSubject() {
	req := dto.CreateLeaveRequestRequest{StartDate: "2024-06-03", EndDate: "2024-06-05", LeaveType: "sick"}
	suite.mockLeave.On("CreateLeaveRequest", mock.Anything, req, "user-7").Return(sampleLeaveRequest("user-7"), nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/sick-leave-requests", req, suite.generateTestToken("user-7"))

	suite.Require().Equal(http.StatusCreated, w.Code)
	var res dto.LeaveRequestResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().NotNil(res.UserID)
	suite.Equal("user-7", *res.UserID)
}

func (suite *HandlersTestSuite) TestCreateLeaveRequest_ValidationError() {
	req := dto.CreateLeaveRequestRequest{StartDate: "2024-06-05", EndDate: "2024-06-03", LeaveType: "sick"}
	suite.mockLeave.On("CreateLeaveRequest", mock.Anything, req, "").
		Return(nil, apperrors.NewValidationError("endDate", "must not be before startDate")).Once()

	w := suite.do(http.MethodPost, "/api/v1/sick-leave-requests", req, "")

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	res := suite.decodeError(w)
	suite.Equal("must not be before startDate", res.Fields["endDate"])
}

func (suite *HandlersTestSuite) TestCreateLeaveRequest_MalformedBody() {
	w := suite.do(http.MethodPost, "/api/v1/sick-leave-requests", `{"startDate":`, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Error, "Invalid request format")
}

func (suite *HandlersTestSuite) TestCreateLeaveRequest_InvalidToken() {
	w := suite.do(http.MethodPost, "/api/v1/sick-leave-requests", dto.CreateLeaveRequestRequest{}, "not-a-jwt")

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockLeave.AssertNotCalled(suite.T(), "CreateLeaveRequest", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestListLeaveRequests_StoreUnavailable() {
	suite.mockLeave.On("ListLeaveRequests", mock.Anything).
		Return(nil, apperrors.NewFetchError("list leave requests", errors.New("connection refused"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/sick-leave-requests", nil, "")

	suite.Equal(http.StatusBadGateway, w.Code)
	suite.Equal("record store unavailable", suite.decodeError(w).Error)
}

func (suite *HandlersTestSuite) TestListLeaveRequests_UnexpectedError() {
	suite.mockLeave.On("ListLeaveRequests", mock.Anything).Return(nil, errors.New("boom")).Once()

	w := suite.do(http.MethodGet, "/api/v1/sick-leave-requests", nil, "")

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.Equal("Failed to list leave requests", suite.decodeError(w).Error)
}

func (suite *HandlersTestSuite) TestGetLeaveRequest_NotFound() {
	suite.mockLeave.On("GetLeaveRequestByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodGet, "/api/v1/sick-leave-requests/missing", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Leave request not found", suite.decodeError(w).Error)
}

func (suite *HandlersTestSuite) TestUpdateLeaveRequest() {
	status := "approved"
	req := dto.UpdateLeaveRequestRequest{Status: &status}
	suite.mockLeave.On("UpdateLeaveRequest", mock.Anything, "leave-1", req, "").Return(nil).Once()

	w := suite.do(http.MethodPatch, "/api/v1/sick-leave-requests/leave-1", req, "")

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *HandlersTestSuite) TestDeleteLeaveRequest_NotFound() {
	suite.mockLeave.On("DeleteLeaveRequest", mock.Anything, "leave-1", "").Return(apperrors.ErrNotFound).Once()

	w := suite.do(http.MethodDelete, "/api/v1/sick-leave-requests/leave-1", nil, "")

	suite.Equal(http.StatusNotFound, w.Code)
}

// --- Travel expenses ---

func (suite *HandlersTestSuite) TestListTravelExpenses_PassesSearchAndPage() {
	page := &domain.ExpensePage{
		Items: []domain.TravelExpense{{
			ID:              "exp-1",
			TripDestination: "Paris",
			ExpenseType:     domain.ExpenseAccommodation,
			Amount:          decimal.NewFromInt(200),
			Currency:        "EUR",
			Status:          domain.ExpensePending,
		}},
		Page:       2,
		PageSize:   10,
		TotalCount: 11,
		TotalPages: 2,
	}
	suite.mockExpense.On("PageTravelExpenses", mock.Anything, "paris", 2).Return(page, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/travel-expenses?search=paris&page=2", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.ListTravelExpensesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Equal(11, res.TotalCount)
	suite.Equal(2, res.TotalPages)
	suite.Require().Len(res.Items, 1)
	suite.Equal("Paris", res.Items[0].TripDestination)
}

func (suite *HandlersTestSuite) TestListTravelExpenses_DefaultsToFirstPage() {
	suite.mockExpense.On("PageTravelExpenses", mock.Anything, "", 1).
		Return(&domain.ExpensePage{Page: 1, PageSize: 10}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/travel-expenses", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"items":[]`)
}

func (suite *HandlersTestSuite) TestListTravelExpenses_InvalidPage() {
	suite.mockExpense.On("PageTravelExpenses", mock.Anything, "", 0).
		Return(nil, apperrors.NewValidationError("page", "page must be at least 1")).Once()

	w := suite.do(http.MethodGet, "/api/v1/travel-expenses?page=0", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.decodeError(w).Fields, "page")
}

func (suite *HandlersTestSuite) TestListTravelExpenses_NonNumericPage() {
	w := suite.do(http.MethodGet, "/api/v1/travel-expenses?page=two", nil, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestCreateTravelExpense() {
	req := dto.CreateTravelExpenseRequest{
		TripDestination: "Paris",
		TripPurpose:     "Client visit",
		StartDate:       "2024-06-01",
		EndDate:         "2024-06-03",
		ExpenseType:     "accommodation",
		Amount:          decimal.NewFromInt(200),
		Currency:        "EUR",
	}
	created := &domain.TravelExpense{
		ID:              "exp-1",
		TripDestination: "Paris",
		Amount:          decimal.NewFromInt(200),
		Status:          domain.ExpensePending,
	}
	suite.mockExpense.On("CreateTravelExpense", mock.Anything, mock.MatchedBy(func(r dto.CreateTravelExpenseRequest) bool {
		return r.TripDestination == "Paris" && r.Amount.Equal(decimal.NewFromInt(200)) && r.Currency == "EUR"
	}), "").Return(created, nil).Once()

	w := suite.do(http.MethodPost, "/api/v1/travel-expenses", req, "")

	suite.Require().Equal(http.StatusCreated, w.Code)
	suite.Contains(w.Body.String(), `"id":"exp-1"`)
}

func (suite *HandlersTestSuite) TestExpenseSummary_ParsesFilter() {
	summary := &domain.ExpenseSummary{
		TotalSpent:      decimal.NewFromInt(300),
		TotalBudget:     decimal.NewFromInt(5000),
		RemainingBudget: decimal.NewFromInt(4700),
		ExpensesByCategory: []domain.CategoryAmount{
			{Category: domain.ExpenseMeals, Amount: decimal.NewFromInt(300), Percentage: 100},
		},
		ExpensesByMonth: []domain.MonthAmount{{Month: "2024-05", Amount: decimal.NewFromInt(300)}},
	}
	suite.mockDashboard.On("ExpenseSummary", mock.Anything, mock.MatchedBy(func(f domain.ExpenseSummaryFilter) bool {
		return f.Period == domain.PeriodMonth &&
			f.ExpenseType == domain.ExpenseMeals &&
			f.MinAmount != nil && f.MinAmount.Equal(decimal.NewFromInt(10)) &&
			f.MaxAmount == nil
	})).Return(summary, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/travel-expenses/summary?period=month&type=meals&minAmount=10", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var res dto.ExpenseSummaryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.True(res.RemainingBudget.Equal(decimal.NewFromInt(4700)))
	suite.Require().Len(res.ExpensesByCategory, 1)
	suite.Equal(100.0, res.ExpensesByCategory[0].Percentage)
}

func (suite *HandlersTestSuite) TestExpenseSummary_DefaultsToAllPeriods() {
	suite.mockDashboard.On("ExpenseSummary", mock.Anything, domain.ExpenseSummaryFilter{Period: domain.PeriodAll}).
		Return(&domain.ExpenseSummary{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/travel-expenses/summary", nil, "")

	suite.Equal(http.StatusOK, w.Code)
}

func (suite *HandlersTestSuite) TestExpenseSummary_RejectsBadFilterWithoutServiceCall() {
	w := suite.do(http.MethodGet, "/api/v1/travel-expenses/summary?type=yacht&maxAmount=-5", nil, "")

	suite.Require().Equal(http.StatusBadRequest, w.Code)
	res := suite.decodeError(w)
	suite.Contains(res.Fields, "type")
	suite.Contains(res.Fields, "maxAmount")
	suite.mockDashboard.AssertNotCalled(suite.T(), "ExpenseSummary", mock.Anything, mock.Anything)
}

func (suite *HandlersTestSuite) TestExpenseSummaryPDF() {
	suite.mockDashboard.On("ExpenseSummary", mock.Anything, mock.Anything).Return(&domain.ExpenseSummary{
		TotalSpent:      decimal.NewFromInt(120),
		TotalBudget:     decimal.NewFromInt(5000),
		RemainingBudget: decimal.NewFromInt(4880),
		ExpensesByMonth: []domain.MonthAmount{{Month: "2024-05", Amount: decimal.NewFromInt(120)}},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/travel-expenses/summary/report.pdf", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("application/pdf", w.Header().Get("Content-Type"))
	suite.True(bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF-")))
}

func (suite *HandlersTestSuite) TestExpenseSummaryChart() {
	suite.mockDashboard.On("ExpenseSummary", mock.Anything, mock.Anything).Return(&domain.ExpenseSummary{
		ExpensesByMonth: []domain.MonthAmount{
			{Month: "2024-04", Amount: decimal.NewFromInt(80)},
			{Month: "2024-05", Amount: decimal.NewFromInt(120)},
		},
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/travel-expenses/summary/chart.png", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("image/png", w.Header().Get("Content-Type"))
	suite.True(bytes.HasPrefix(w.Body.Bytes(), []byte("\x89PNG")))
}

func (suite *HandlersTestSuite) TestExpenseSummaryChart_StoreUnavailable() {
	suite.mockDashboard.On("ExpenseSummary", mock.Anything, mock.Anything).
		Return(nil, apperrors.NewFetchError("list travel expenses", errors.New("timeout"))).Once()

	w := suite.do(http.MethodGet, "/api/v1/travel-expenses/summary/chart.png", nil, "")

	suite.Equal(http.StatusBadGateway, w.Code)
}

// --- Trip bookings ---

func (suite *HandlersTestSuite) TestTripCalendar_PassesMonth() {
	day := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	suite.mockBooking.On("TripBookingCalendar", mock.Anything, "2024-06").Return([]domain.TripCalendarDay{{
		Date:     day,
		Bookings: []domain.TripBooking{{ID: "trip-1", ToLocation: "Berlin", DepartureDate: day}},
	}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/trip-bookings/calendar?month=2024-06", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var res []dto.TripCalendarDayResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res, 1)
	suite.Equal("2024-06-10", res[0].Date)
	suite.Equal("trip-1", res[0].Bookings[0].ID)
	suite.Nil(res[0].Bookings[0].ReturnDate)
}

func (suite *HandlersTestSuite) TestTripCalendar_InvalidMonth() {
	suite.mockBooking.On("TripBookingCalendar", mock.Anything, "June").
		Return(nil, apperrors.NewValidationError("month", "must be formatted as YYYY-MM")).Once()

	w := suite.do(http.MethodGet, "/api/v1/trip-bookings/calendar?month=June", nil, "")

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlersTestSuite) TestUpcomingTrips() {
	suite.mockBooking.On("ListUpcomingTripBookings", mock.Anything).Return([]domain.TripBooking{}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/trip-bookings/upcoming", nil, "")

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[]`, w.Body.String())
}

func (suite *HandlersTestSuite) TestDeleteTripBooking() {
	suite.mockBooking.On("DeleteTripBooking", mock.Anything, "trip-1", "user-3").Return(nil).Once()

	w := suite.do(http.MethodDelete, "/api/v1/trip-bookings/trip-1", nil, suite.generateTestToken("user-3"))

	suite.Equal(http.StatusNoContent, w.Code)
}

// --- Dashboard ---

func (suite *HandlersTestSuite) TestDashboardStats() {
	suite.mockDashboard.On("Stats", mock.Anything).Return(&domain.DashboardStats{
		PendingRequests:  3,
		ApprovedItems:    1,
		MonthlyExpenses:  decimal.NewFromInt(450),
		UpcomingBookings: 2,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard/stats", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"pendingRequests":3,"approvedItems":1,"monthlyExpenses":"450","upcomingBookings":2}`, w.Body.String())
}

func (suite *HandlersTestSuite) TestRecentActivities() {
	suite.mockDashboard.On("RecentActivities", mock.Anything).Return([]domain.ActivityItem{{
		ID:        "trip-1",
		Type:      domain.ActivityTripBooking,
		Title:     "Trip to Berlin",
		Status:    "pending",
		Date:      "2 hours ago",
		Section:   "Trip Booking",
		CreatedAt: createdAt,
	}}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/dashboard/recent-activities", nil, "")

	suite.Require().Equal(http.StatusOK, w.Code)
	var res []dto.ActivityItemResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &res))
	suite.Require().Len(res, 1)
	suite.Equal("Trip to Berlin", res[0].Title)
	suite.Equal("2 hours ago", res[0].Date)
}

// --- Rate limiting ---

func (suite *HandlersTestSuite) TestMutationsAreRateLimited() {
	lim, err := middleware.NewLimiter("1-M")
	suite.Require().NoError(err)
	suite.rateLimiter = lim
	suite.buildRouter()

	suite.mockLeave.On("DeleteLeaveRequest", mock.Anything, "leave-1", "").Return(nil).Once()
	suite.mockLeave.On("ListLeaveRequests", mock.Anything).Return([]domain.LeaveRequest{}, nil).Twice()

	suite.Equal(http.StatusNoContent, suite.do(http.MethodDelete, "/api/v1/sick-leave-requests/leave-1", nil, "").Code)
	suite.Equal(http.StatusTooManyRequests, suite.do(http.MethodDelete, "/api/v1/sick-leave-requests/leave-1", nil, "").Code)

	// Reads are not limited.
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/sick-leave-requests", nil, "").Code)
	suite.Equal(http.StatusOK, suite.do(http.MethodGet, "/api/v1/sick-leave-requests", nil, "").Code)
}

// --- Notification stream ---

func (suite *HandlersTestSuite) streamWith(path, token string) string {
	suite.notifications = []domain.Notification{
		{Title: "Leave request submitted", Variant: domain.VariantDefault, CreatedAt: createdAt},
		{Title: "Expense submitted", Variant: domain.VariantDefault, UserID: "user-1", CreatedAt: createdAt},
		{Title: "Trip booking requested", Variant: domain.VariantDefault, UserID: "user-2", CreatedAt: createdAt},
	}
	suite.buildRouter()

	w := suite.do(http.MethodGet, path, nil, token)
	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Equal("text/event-stream", w.Header().Get("Content-Type"))
	return w.Body.String()
}

func (suite *HandlersTestSuite) TestNotificationStream_Anonymous() {
	body := suite.streamWith("/api/v1/notifications/stream", "")

	suite.Contains(body, "event:connected")
	suite.Contains(body, "Leave request submitted")
	suite.NotContains(body, "Expense submitted")
	suite.NotContains(body, "Trip booking requested")
}

func (suite *HandlersTestSuite) TestNotificationStream_BearerHeader() {
	body := suite.streamWith("/api/v1/notifications/stream", suite.generateTestToken("user-1"))

	suite.Contains(body, "Expense submitted")
	suite.NotContains(body, "Leave request submitted")
	suite.NotContains(body, "Trip booking requested")
}

func (suite *HandlersTestSuite) TestNotificationStream_TokenQueryParameter() {
	body := suite.streamWith("/api/v1/notifications/stream?token="+suite.generateTestToken("user-2"), "")

	suite.Contains(body, "event:notification")
	suite.Contains(body, "Trip booking requested")
	suite.NotContains(body, "Expense submitted")
}

func (suite *HandlersTestSuite) TestNotificationStream_BadTokenQueryParameter() {
	w := suite.do(http.MethodGet, "/api/v1/notifications/stream?token=garbage", nil, "")
	suite.Equal(http.StatusUnauthorized, w.Code)
}
