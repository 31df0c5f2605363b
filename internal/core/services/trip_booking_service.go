package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	portsrepo "github.com/SscSPs/workplace_services/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/workplace_services/internal/core/ports/services"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/utils/validation"
	"github.com/google/uuid"
)

// monthLayout is the format of calendar month parameters.
const monthLayout = "2006-01"

type tripBookingService struct {
	BaseService
	repo portsrepo.TripBookingRepositoryFacade
}

var _ portssvc.TripBookingSvcFacade = (*tripBookingService)(nil)

// NewTripBookingService creates the trip booking service.
func NewTripBookingService(repo portsrepo.TripBookingRepositoryFacade, opts ...Option) portssvc.TripBookingSvcFacade {
	return &tripBookingService{BaseService: newBaseService(opts...), repo: repo}
}

func (s *tripBookingService) ListTripBookings(ctx context.Context) ([]domain.TripBooking, error) {
	return s.listTripBookings(ctx, domain.NewQuery())
}

func (s *tripBookingService) listTripBookings(ctx context.Context, q domain.Query) ([]domain.TripBooking, error) {
	return cached(s.cache, listKey(keyTripBookings, q), func() ([]domain.TripBooking, error) {
		bookings, err := s.repo.ListTripBookings(ctx, q)
		if err != nil {
			s.LogError(ctx, err, "Failed to list trip bookings", slog.String("query", q.Key()))
			return nil, err
		}
		return bookings, nil
	})
}

func (s *tripBookingService) GetTripBookingByID(ctx context.Context, id string) (*domain.TripBooking, error) {
	return cached(s.cache, idKey(keyTripBookings, id), func() (*domain.TripBooking, error) {
		booking, err := s.repo.FindTripBookingByID(ctx, id)
		if err != nil {
			s.logFailure(ctx, err, "Failed to find trip booking", slog.String("trip_booking_id", id))
			return nil, err
		}
		return booking, nil
	})
}

func (s *tripBookingService) ListUpcomingTripBookings(ctx context.Context) ([]domain.TripBooking, error) {
	q := domain.NewQuery().
		Gte(domain.ColumnDepartureDate, today(s.now())).
		OrderedBy(domain.ColumnDepartureDate, true)
	return s.listTripBookings(ctx, q)
}

func (s *tripBookingService) TripBookingCalendar(ctx context.Context, month string) ([]domain.TripCalendarDay, error) {
	from := today(s.now())
	first := time.Date(from.Year(), from.Month(), 1, 0, 0, 0, 0, time.UTC)
	if month != "" {
		var err error
		if first, err = time.Parse(monthLayout, month); err != nil {
			return nil, apperrors.NewValidationError("month", "must be a month in YYYY-MM format")
		}
	}
	last := first.AddDate(0, 1, -1)
	if last.Before(from) {
		return []domain.TripCalendarDay{}, nil
	}
	if first.After(from) {
		from = first
	}

	q := domain.NewQuery().
		Gte(domain.ColumnDepartureDate, from).
		Lte(domain.ColumnDepartureDate, last).
		OrderedBy(domain.ColumnDepartureDate, true)
	bookings, err := s.listTripBookings(ctx, q)
	if err != nil {
		return nil, err
	}
	return groupByDeparture(bookings), nil
}

// groupByDeparture expects bookings sorted by departure date.
func groupByDeparture(bookings []domain.TripBooking) []domain.TripCalendarDay {
	days := []domain.TripCalendarDay{}
	for _, b := range bookings {
		if n := len(days); n > 0 && days[n-1].Date.Equal(b.DepartureDate) {
			days[n-1].Bookings = append(days[n-1].Bookings, b)
			continue
		}
		days = append(days, domain.TripCalendarDay{Date: b.DepartureDate, Bookings: []domain.TripBooking{b}})
	}
	return days
}

func (s *tripBookingService) CreateTripBooking(ctx context.Context, req dto.CreateTripBookingRequest, userID string) (*domain.TripBooking, error) {
	created, err := s.createTripBooking(ctx, req, userID)
	if err := s.completeMutation(ctx, bookingCreated, userID, err, bookingInvalidations); err != nil {
		return nil, err
	}
	s.LogInfo(ctx, "Trip booking created", slog.String("trip_booking_id", created.ID))
	return created, nil
}

func (s *tripBookingService) createTripBooking(ctx context.Context, req dto.CreateTripBookingRequest, userID string) (*domain.TripBooking, error) {
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	departure, err := parseDate("departureDate", req.DepartureDate)
	if err != nil {
		return nil, err
	}
	var ret *time.Time
	if req.ReturnDate != "" {
		if ret, err = parseOptionalDate("returnDate", &req.ReturnDate); err != nil {
			return nil, err
		}
		if err := checkDateRange(departure, *ret, "returnDate"); err != nil {
			return nil, err
		}
	}

	now := s.now()
	return s.repo.SaveTripBooking(ctx, domain.TripBooking{
		ID:            uuid.NewString(),
		TripType:      req.TripType,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		DepartureDate: departure,
		ReturnDate:    ret,
		Purpose:       req.Purpose,
		PreferredTime: req.PreferredTime,
		Accommodation: req.Accommodation,
		Status:        domain.BookingPending,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
			UserID:    userID,
		},
	})
}

func (s *tripBookingService) UpdateTripBooking(ctx context.Context, id string, req dto.UpdateTripBookingRequest, userID string) error {
	err := s.updateTripBooking(ctx, id, req)
	return s.completeMutation(ctx, bookingUpdated, userID, err, bookingInvalidations)
}

func (s *tripBookingService) updateTripBooking(ctx context.Context, id string, req dto.UpdateTripBookingRequest) error {
	if err := validation.Struct(req); err != nil {
		return err
	}
	patch, err := toTripBookingPatch(req)
	if err != nil {
		return err
	}
	if patch.IsEmpty() {
		return errEmptyPatch
	}

	if patch.DepartureDate != nil || patch.ReturnDate != nil {
		current, err := s.repo.FindTripBookingByID(ctx, id)
		if err != nil {
			return err
		}
		departure, ret := current.DepartureDate, current.ReturnDate
		if patch.DepartureDate != nil {
			departure = *patch.DepartureDate
		}
		if patch.ReturnDate != nil {
			ret = patch.ReturnDate
		}
		if ret != nil {
			if err := checkDateRange(departure, *ret, "returnDate"); err != nil {
				return err
			}
		}
	}

	return s.repo.UpdateTripBooking(ctx, id, patch, s.now())
}

func (s *tripBookingService) DeleteTripBooking(ctx context.Context, id string, userID string) error {
	err := s.repo.DeleteTripBooking(ctx, id)
	return s.completeMutation(ctx, bookingDeleted, userID, err, bookingInvalidations)
}

func toTripBookingPatch(req dto.UpdateTripBookingRequest) (domain.TripBookingPatch, error) {
	patch := domain.TripBookingPatch{
		TripType:      req.TripType,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		Purpose:       req.Purpose,
		PreferredTime: req.PreferredTime,
		Accommodation: req.Accommodation,
	}
	var err error
	if patch.DepartureDate, err = parseOptionalDate("departureDate", req.DepartureDate); err != nil {
		return patch, err
	}
	if patch.ReturnDate, err = parseOptionalDate("returnDate", req.ReturnDate); err != nil {
		return patch, err
	}
	if req.Status != nil {
		st := domain.BookingStatus(*req.Status)
		patch.Status = &st
	}
	return patch, nil
}
