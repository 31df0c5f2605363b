package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// invalidTextRepresentation is raised when an id is not a well-formed uuid.
const invalidTextRepresentation = "22P02"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// assignment is one column = value pair of an UPDATE.
type assignment struct {
	column string
	value  any
}

// translateError maps driver errors onto the application taxonomy.
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation {
		return apperrors.ErrNotFound
	}
	return apperrors.NewFetchError(op, err)
}

// listRows runs a select built from q and scans every row with scan.
func listRows[M any](ctx context.Context, pool *pgxpool.Pool, op string, t table, q domain.Query, scan func(pgx.CollectableRow) (M, error)) ([]M, error) {
	sql, args, err := t.selectSQL(q)
	if err != nil {
		return nil, err
	}
	rows, err := pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, apperrors.NewFetchError(op, err)
	}
	defer rows.Close()

	out, err := pgx.CollectRows(rows, scan)
	if err != nil {
		return nil, apperrors.NewFetchError(op, err)
	}
	return out, nil
}

// findByID selects the row with id and scans it with scan.
func findByID[M any](ctx context.Context, pool *pgxpool.Pool, op string, t table, id string, scan func(pgx.CollectableRow) (M, error)) (*M, error) {
	sql := fmt.Sprintf("SELECT %s FROM %s WHERE %s = $1", t.columnList(), t.name, domain.ColumnID)
	rows, err := pool.Query(ctx, sql, id)
	if err != nil {
		return nil, translateError(op, err)
	}
	defer rows.Close()

	m, err := pgx.CollectExactlyOneRow(rows, scan)
	if err != nil {
		return nil, translateError(op, err)
	}
	return &m, nil
}

func (r *BaseRepository) count(ctx context.Context, op string, t table, q domain.Query) (int64, error) {
	where, args, err := t.whereSQL(q, 1)
	if err != nil {
		return 0, err
	}
	var n int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM "+t.name+where, args...).Scan(&n); err != nil {
		return 0, apperrors.NewFetchError(op, err)
	}
	return n, nil
}

// updateByID applies set to the row with id and stamps updated_at.
func (r *BaseRepository) updateByID(ctx context.Context, op string, t table, id string, set []assignment, now time.Time) error {
	set = append(set, assignment{column: domain.ColumnUpdatedAt, value: now})

	clauses := make([]string, 0, len(set))
	args := make([]any, 0, len(set)+1)
	for i, a := range set {
		if !t.allows(a.column) {
			return fmt.Errorf("%s: unknown column %q", t.name, a.column)
		}
		clauses = append(clauses, fmt.Sprintf("%s = $%d", a.column, i+1))
		args = append(args, a.value)
	}
	args = append(args, id)

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", t.name, strings.Join(clauses, ", "), domain.ColumnID, len(args))
	tag, err := r.Pool.Exec(ctx, sql, args...)
	if err != nil {
		return translateError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *BaseRepository) deleteByID(ctx context.Context, op string, t table, id string) error {
	tag, err := r.Pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s WHERE %s = $1", t.name, domain.ColumnID), id)
	if err != nil {
		return translateError(op, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
