package apperrors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrFetch indicates that the record store rejected a query or mutation
// (network, auth, schema or server error).
var ErrFetch = errors.New("record store request failed")

// ValidationErrors maps an input field to the reason it was rejected.
// It matches ErrValidation with errors.Is.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	fields := make([]string, 0, len(v))
	for field := range v {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	msgs := make([]string, 0, len(fields))
	for _, field := range fields {
		msgs = append(msgs, field+": "+v[field])
	}
	return "validation error: " + strings.Join(msgs, "; ")
}

// Is reports ErrValidation as a match so callers don't need the concrete type.
func (v ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError builds a single-field ValidationErrors.
func NewValidationError(field, message string) ValidationErrors {
	return ValidationErrors{field: message}
}

// FetchError wraps a record store failure for the named operation.
type FetchError struct {
	Op  string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap exposes both ErrFetch and the underlying driver error.
func (e *FetchError) Unwrap() []error {
	return []error{ErrFetch, e.Err}
}

// NewFetchError wraps err for op. A nil err stays nil.
func NewFetchError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &FetchError{Op: op, Err: err}
}
