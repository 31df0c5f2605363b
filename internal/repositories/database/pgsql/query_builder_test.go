package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectSQL_SearchAndPaging(t *testing.T) {
	q := domain.NewQuery().WithSearch("50%_off", domain.ColumnTripDestination, domain.ColumnTripPurpose)

	sql, args, err := travelExpensesTable.selectSQL(q)

	require.NoError(t, err)
	assert.Equal(t,
		"SELECT "+travelExpensesTable.columnList()+" FROM travel_expenses WHERE (trip_destination ILIKE $1 OR trip_purpose ILIKE $1) ORDER BY created_at DESC, id DESC",
		sql)
	assert.Equal(t, []any{`%50\%\_off%`}, args)
}

func TestSelectSQL_ConditionsOrderAndLimit(t *testing.T) {
	today := time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC)
	q := domain.NewQuery().
		Eq(domain.ColumnStatus, "pending").
		Gte(domain.ColumnDepartureDate, today).
		OrderedBy(domain.ColumnDepartureDate, true).
		WithLimit(3)

	sql, args, err := tripBookingsTable.selectSQL(q)

	require.NoError(t, err)
	assert.Contains(t, sql, " WHERE status = $1 AND departure_date >= $2 ORDER BY departure_date ASC, id ASC LIMIT 3")
	assert.Equal(t, []any{"pending", today}, args)
}

func TestWhereSQL_RejectsUnknownColumn(t *testing.T) {
	_, _, err := leaveRequestsTable.whereSQL(domain.NewQuery().Eq("amount; DROP TABLE x", 1), 1)
	assert.Error(t, err)
}

func TestWhereSQL_Empty(t *testing.T) {
	where, args, err := leaveRequestsTable.whereSQL(domain.NewQuery(), 1)
	require.NoError(t, err)
	assert.Empty(t, where)
	assert.Empty(t, args)
}
