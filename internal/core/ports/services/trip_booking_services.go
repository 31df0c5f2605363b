package services

import (
	"context"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/SscSPs/workplace_services/internal/dto"
)

// TripBookingReaderSvc defines read operations for trip bookings
type TripBookingReaderSvc interface {
	ListTripBookings(ctx context.Context) ([]domain.TripBooking, error)
	GetTripBookingByID(ctx context.Context, id string) (*domain.TripBooking, error)

	// ListUpcomingTripBookings returns bookings departing today or later, soonest first.
	ListUpcomingTripBookings(ctx context.Context) ([]domain.TripBooking, error)

	// TripBookingCalendar groups the upcoming bookings of a YYYY-MM month by departure day.
	TripBookingCalendar(ctx context.Context, month string) ([]domain.TripCalendarDay, error)
}

// TripBookingWriterSvc defines write operations for trip bookings
type TripBookingWriterSvc interface {
	CreateTripBooking(ctx context.Context, req dto.CreateTripBookingRequest, userID string) (*domain.TripBooking, error)
	UpdateTripBooking(ctx context.Context, id string, req dto.UpdateTripBookingRequest, userID string) error
	DeleteTripBooking(ctx context.Context, id string, userID string) error
}

// TripBookingSvcFacade combines all trip booking service interfaces
type TripBookingSvcFacade interface {
	TripBookingReaderSvc
	TripBookingWriterSvc
}
