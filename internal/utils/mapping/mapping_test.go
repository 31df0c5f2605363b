package mapping

import (
	"testing"
	"time"

	"github.com/SscSPs/workplace_services/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTripBookingMapping_NullableColumns(t *testing.T) {
	dep := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	oneWay := ToModelTripBooking(domain.TripBooking{ID: "b1", DepartureDate: dep})
	assert.False(t, oneWay.ReturnDate.Valid)
	assert.False(t, oneWay.UserID.Valid)
	assert.Nil(t, ToDomainTripBooking(oneWay).ReturnDate)

	ret := dep.AddDate(0, 0, 3)
	round := ToModelTripBooking(domain.TripBooking{ID: "b2", DepartureDate: dep, ReturnDate: &ret, AuditFields: domain.AuditFields{UserID: "u1"}})
	assert.True(t, round.ReturnDate.Valid)
	assert.Equal(t, "u1", round.UserID.String)
	back := ToDomainTripBooking(round)
	if assert.NotNil(t, back.ReturnDate) {
		assert.True(t, ret.Equal(*back.ReturnDate))
	}
}

func TestTravelExpenseMapping_EmptyDescriptionIsNull(t *testing.T) {
	m := ToModelTravelExpense(domain.TravelExpense{ID: "e1", Amount: decimal.NewFromInt(200)})
	assert.False(t, m.Description.Valid)
	assert.True(t, decimal.NewFromInt(200).Equal(m.Amount))
}
