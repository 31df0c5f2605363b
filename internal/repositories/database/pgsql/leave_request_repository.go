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

var leaveRequestsTable = table{
	name: "sick_leave_requests",
	columns: []string{
		domain.ColumnID, domain.ColumnLeaveStartDate, domain.ColumnLeaveEndDate, domain.ColumnLeaveType,
		domain.ColumnLeaveReason, domain.ColumnStatus, domain.ColumnCreatedAt, domain.ColumnUpdatedAt, domain.ColumnUserID,
	},
}

type PgxLeaveRequestRepository struct {
	BaseRepository
}

// newPgxLeaveRequestRepository creates a new repository for sick_leave_requests.
func newPgxLeaveRequestRepository(pool *pgxpool.Pool) portsrepo.LeaveRequestRepositoryFacade {
	return &PgxLeaveRequestRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.LeaveRequestRepositoryFacade = (*PgxLeaveRequestRepository)(nil)

func scanLeaveRequest(row pgx.CollectableRow) (models.LeaveRequest, error) {
	var m models.LeaveRequest
	err := row.Scan(
		&m.ID,
		&m.StartDate,
		&m.EndDate,
		&m.LeaveType,
		&m.Reason,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
		&m.UserID,
	)
	return m, err
}

// ListLeaveRequests retrieves the leave requests matching q.
func (r *PgxLeaveRequestRepository) ListLeaveRequests(ctx context.Context, q domain.Query) ([]domain.LeaveRequest, error) {
	rows, err := listRows(ctx, r.Pool, "list leave requests", leaveRequestsTable, q, scanLeaveRequest)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainLeaveRequestSlice(rows), nil
}

// FindLeaveRequestByID retrieves a leave request by its id.
func (r *PgxLeaveRequestRepository) FindLeaveRequestByID(ctx context.Context, id string) (*domain.LeaveRequest, error) {
	m, err := findByID(ctx, r.Pool, "find leave request", leaveRequestsTable, id, scanLeaveRequest)
	if err != nil {
		return nil, err
	}
	d := mapping.ToDomainLeaveRequest(*m)
	return &d, nil
}

func (r *PgxLeaveRequestRepository) CountLeaveRequests(ctx context.Context, q domain.Query) (int64, error) {
	return r.count(ctx, "count leave requests", leaveRequestsTable, q)
}

// SaveLeaveRequest inserts a leave request and returns the stored row.
func (r *PgxLeaveRequestRepository) SaveLeaveRequest(ctx context.Context, req domain.LeaveRequest) (*domain.LeaveRequest, error) {
	m := mapping.ToModelLeaveRequest(req)

	query := fmt.Sprintf(`
		INSERT INTO sick_leave_requests (%[1]s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING %[1]s;
	`, leaveRequestsTable.columnList())

	rows, err := r.Pool.Query(ctx, query,
		m.ID,
		m.StartDate,
		m.EndDate,
		m.LeaveType,
		m.Reason,
		m.Status,
		m.CreatedAt,
		m.UpdatedAt,
		m.UserID,
	)
	if err != nil {
		return nil, apperrors.NewFetchError("save leave request", err)
	}
	defer rows.Close()

	stored, err := pgx.CollectExactlyOneRow(rows, scanLeaveRequest)
	if err != nil {
		return nil, apperrors.NewFetchError("save leave request", err)
	}
	d := mapping.ToDomainLeaveRequest(stored)
	return &d, nil
}

// UpdateLeaveRequest applies the non-nil fields of patch.
func (r *PgxLeaveRequestRepository) UpdateLeaveRequest(ctx context.Context, id string, patch domain.LeaveRequestPatch, now time.Time) error {
	var set []assignment
	if patch.StartDate != nil {
		set = append(set, assignment{domain.ColumnLeaveStartDate, *patch.StartDate})
	}
	if patch.EndDate != nil {
		set = append(set, assignment{domain.ColumnLeaveEndDate, *patch.EndDate})
	}
	if patch.LeaveType != nil {
		set = append(set, assignment{domain.ColumnLeaveType, string(*patch.LeaveType)})
	}
	if patch.Reason != nil {
		set = append(set, assignment{domain.ColumnLeaveReason, mapping.ToNullString(*patch.Reason)})
	}
	if patch.Status != nil {
		set = append(set, assignment{domain.ColumnStatus, string(*patch.Status)})
	}
	return r.updateByID(ctx, "update leave request", leaveRequestsTable, id, set, now)
}

func (r *PgxLeaveRequestRepository) DeleteLeaveRequest(ctx context.Context, id string) error {
	return r.deleteByID(ctx, "delete leave request", leaveRequestsTable, id)
}
