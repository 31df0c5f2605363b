package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_IsErrValidation(t *testing.T) {
	err := ValidationErrors{"tripDestination": "is required", "amount": "must be greater than 0"}

	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, fmt.Errorf("create expense: %w", err), ErrValidation)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "validation error: amount: must be greater than 0; tripDestination: is required", err.Error())
}

func TestFetchError_UnwrapsBoth(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewFetchError("list travel expenses", cause)

	assert.ErrorIs(t, err, ErrFetch)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, "list travel expenses: connection refused", err.Error())

	var fe *FetchError
	assert.True(t, errors.As(err, &fe))
	assert.Equal(t, "list travel expenses", fe.Op)
}

func TestNewFetchError_Nil(t *testing.T) {
	assert.NoError(t, NewFetchError("noop", nil))
}
