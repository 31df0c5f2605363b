package validation_test

import (
	"testing"

	"github.com/SscSPs/workplace_services/internal/apperrors"
	"github.com/SscSPs/workplace_services/internal/dto"
	"github.com/SscSPs/workplace_services/internal/utils/validation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validExpense() dto.CreateTravelExpenseRequest {
	return dto.CreateTravelExpenseRequest{
		TripDestination: "Paris",
		TripPurpose:     "Conference",
		StartDate:       "2024-05-01",
		EndDate:         "2024-05-03",
		ExpenseType:     "accommodation",
		Amount:          decimal.NewFromInt(200),
		Currency:        "USD",
	}
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, validation.Struct(validExpense()))
}

func TestStruct_MissingDestination(t *testing.T) {
	req := validExpense()
	req.TripDestination = ""

	err := validation.Struct(req)

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	var fields apperrors.ValidationErrors
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "is required", fields["tripDestination"])
	assert.Len(t, fields, 1)
}

func TestStruct_DecimalAndFormatRules(t *testing.T) {
	req := validExpense()
	req.Amount = decimal.Zero
	req.Currency = "usd"
	req.StartDate = "01/05/2024"

	var fields apperrors.ValidationErrors
	require.ErrorAs(t, validation.Struct(req), &fields)
	assert.Contains(t, fields, "amount")
	assert.Equal(t, "must be upper-case", fields["currency"])
	assert.Equal(t, "must be a date in YYYY-MM-DD format", fields["startDate"])
}

func TestStruct_PatchSkipsNilFields(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.UpdateTravelExpenseRequest{}))

	empty := ""
	negative := decimal.NewFromInt(-5)
	var fields apperrors.ValidationErrors
	require.ErrorAs(t, validation.Struct(dto.UpdateTravelExpenseRequest{TripDestination: &empty, Amount: &negative}), &fields)
	assert.Equal(t, "must not be empty", fields["tripDestination"])
	assert.Equal(t, "must be greater than 0", fields["amount"])
}

func TestStruct_LeaveTypeOneOf(t *testing.T) {
	var fields apperrors.ValidationErrors
	err := validation.Struct(dto.CreateLeaveRequestRequest{StartDate: "2024-05-01", EndDate: "2024-05-02", LeaveType: "vacation"})
	require.ErrorAs(t, err, &fields)
	assert.Equal(t, "must be one of: sick, medical, emergency, personal", fields["leaveType"])
}
