package services

import "github.com/SscSPs/workplace_services/internal/core/domain"

// Query cache keys. Collection keys share a prefix so one mutation drops them all.
const (
	keyLeaveRequests    = "leave-requests:"
	keyTravelExpenses   = "travel-expenses:"
	keyTripBookings     = "trip-bookings:"
	keyRecentActivities = "recent-activities"
	keyDashboardStats   = "dashboard-stats"
	keyExpenseSummary   = "expense-summary:"
)

var (
	leaveInvalidations   = []string{keyLeaveRequests, keyRecentActivities, keyDashboardStats}
	expenseInvalidations = []string{keyTravelExpenses, keyRecentActivities, keyDashboardStats, keyExpenseSummary}
	bookingInvalidations = []string{keyTripBookings, keyRecentActivities, keyDashboardStats}
)

func listKey(prefix string, q domain.Query) string {
	return prefix + "list:" + q.Key()
}

func idKey(prefix, id string) string {
	return prefix + "id:" + id
}
