package pgsql

import (
	portsrepo "github.com/SscSPs/workplace_services/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		LeaveRequestRepo:  newPgxLeaveRequestRepository(dbPool),
		TravelExpenseRepo: newPgxTravelExpenseRepository(dbPool),
		TripBookingRepo:   newPgxTripBookingRepository(dbPool),
	}
}
