package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
)

// TripBookingReader defines read operations for trip_bookings
type TripBookingReader interface {
	ListTripBookings(ctx context.Context, q domain.Query) ([]domain.TripBooking, error)
	FindTripBookingByID(ctx context.Context, id string) (*domain.TripBooking, error)
	CountTripBookings(ctx context.Context, q domain.Query) (int64, error)
}

// TripBookingWriter defines write operations for trip_bookings
type TripBookingWriter interface {
	SaveTripBooking(ctx context.Context, booking domain.TripBooking) (*domain.TripBooking, error)
	UpdateTripBooking(ctx context.Context, id string, patch domain.TripBookingPatch, now time.Time) error
	DeleteTripBooking(ctx context.Context, id string) error
}

// TripBookingRepositoryFacade combines all trip booking repository interfaces
type TripBookingRepositoryFacade interface {
	TripBookingReader
	TripBookingWriter
}
