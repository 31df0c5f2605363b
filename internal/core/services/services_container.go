package services

import (
	"time"

	portsrepo "github.com/SscSPs/workplace_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/platform/config"
	"github.com/SscSPs/workplace_services/internal/platform/notify"
)

// NewServiceContainer wires every service to the shared cache, notification hub and clock.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, queryCache portssvc.QueryCache, hub *notify.Hub) *portssvc.ServiceContainer {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	opts := []Option{
		WithCache(queryCache),
		WithNotifier(hub),
		WithClock(func() time.Time { return time.Now().In(loc) }),
	}

	return &portssvc.ServiceContainer{
		LeaveRequest:  NewLeaveRequestService(repos.LeaveRequestRepo, opts...),
		TravelExpense: NewTravelExpenseService(repos.TravelExpenseRepo, opts...),
		TripBooking:   NewTripBookingService(repos.TripBookingRepo, opts...),
		Dashboard:     NewDashboardService(repos, cfg.ExpenseTotalBudget, opts...),
		Notifications: hub,
	}
}
