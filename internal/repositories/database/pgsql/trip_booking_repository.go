package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	portsrepo "github.com/SscSPs/workplace_services/internal/core/ports/repositories"
	"github.com/SscSPs/workplace_services/internal/models"
	"github.com/SscSPs/workplace_services/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var tripBookingsTable = table{
	name: "trip_bookings",
	columns: []string{
		domain.ColumnID, domain.ColumnTripType, domain.ColumnFromLocation, domain.ColumnToLocation,
		domain.ColumnDepartureDate, domain.ColumnReturnDate, domain.ColumnPurpose, domain.ColumnPreferredTime,
		domain.ColumnAccommodation, domain.ColumnStatus, domain.ColumnCreatedAt, domain.ColumnUpdatedAt, domain.ColumnUserID,
	},
}

type PgxTripBookingRepository struct {
	BaseRepository
}

// newPgxTripBookingRepository creates a new repository for trip_bookings.
func newPgxTripBookingRepository(pool *pgxpool.Pool) portsrepo.TripBookingRepositoryFacade {
	return &PgxTripBookingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.TripBookingRepositoryFacade = (*PgxTripBookingRepository)(nil)

func scanTripBooking(row pgx.CollectableRow) (models.TripBooking, error) {
	var m models.TripBooking
	err := row.Scan(
		&m.ID,
		&m.TripType,
		&m.FromLocation,
		&m.ToLocation,
		&m.DepartureDate,
		&m.ReturnDate,
		&m.Purpose,
		&m.PreferredTime,
		&m.Accommodation,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.UserID,
	)
	return m, err
}

func (r *PgxTripBookingRepository) ListTripBookings(ctx context.Context, q domain.Query) ([]domain.TripBooking, error) {
	rows, err := listRows(ctx, r.Pool, "list trip bookings", tripBookingsTable, q, scanTripBooking)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTripBookingSlice(rows), nil
}

func (r *PgxTripBookingRepository) FindTripBookingByID(ctx context.Context, id string) (*domain.TripBooking, error) {
	m, err := findByID(ctx, r.Pool, "find trip booking", tripBookingsTable, id, scanTripBooking)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainTripBooking(*m)
	return &d, nil
}

func (r *PgxTripBookingRepository) CountTripBookings(ctx context.Context, q domain.Query) (int64, error) {
	return r.count(ctx, "count trip bookings", tripBookingsTable, q)
}

// SaveTripBooking inserts a trip booking and returns the stored row.
func (r *PgxTripBookingRepository) SaveTripBooking(ctx context.Context, booking domain.TripBooking) (*domain.TripBooking, error) {
	m := mapping.ToModelTripBooking(booking)

	query := fmt.Sprintf(`
		INSERT INTO trip_bookings (%[1]s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING %[1]s;
	`, tripBookingsTable.columnList())

	rows, err := r.Pool.Query(ctx, query,
		m.ID,
		m.TripType,
		m.FromLocation,
		m.ToLocation,
		m.DepartureDate,
		m.ReturnDate,
		m.Purpose,
		m.PreferredTime,
		m.Accommodation,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
		m.UserID,
	)
	if err != nil {
		return nil, apperrors.NewFetchError("save trip booking", err)
	}
	defer rows.Close()

	stored, err := pgx.CollectExactlyOneRow(rows, scanTripBooking)
	if err != nil {
		return nil, apperrors.NewFetchError("save trip booking", err)
	}
	d := mapping.ToDomainTripBooking(stored)
	return &d, nil
}

// UpdateTripBooking applies the non-nil fields of patch.
func (r *PgxTripBookingRepository) UpdateTripBooking(ctx context.Context, id string, patch domain.TripBookingPatch, now time.Time) error {
	var set []assignment
	if patch.TripType != nil {
		set = append(set, assignment{domain.ColumnTripType, *patch.TripType})
	}
	if patch.FromLocation != nil {
		set = append(set, assignment{domain.ColumnFromLocation, *patch.FromLocation})
	}
	if patch.ToLocation != nil {
		set = append(set, assignment{domain.ColumnToLocation, *patch.ToLocation})
	}
	if patch.DepartureDate != nil {
		set = append(set, assignment{domain.ColumnDepartureDate, *patch.DepartureDate})
	}
	if patch.ReturnDate != nil {
		set = append(set, assignment{domain.ColumnReturnDate, *patch.ReturnDate})
	}
	if patch.Purpose != nil {
		set = append(set, assignment{domain.ColumnPurpose, *patch.Purpose})
	}
	if patch.PreferredTime != nil {
		set = append(set, assignment{domain.ColumnPreferredTime, *patch.PreferredTime})
	}
	if patch.Accommodation != nil {
		set = append(set, assignment{domain.ColumnAccommodation, *patch.Accommodation})
	}
	if patch.Status != nil {
		set = append(set, assignment{domain.ColumnStatus, string(*patch.Status)})
	}
	return r.updateByID(ctx, "update trip booking", tripBookingsTable, id, set, now)
}

func (r *PgxTripBookingRepository) DeleteTripBooking(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "delete trip booking", tripBookingsTable, id)
}
