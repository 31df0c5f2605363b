package services

import (
	"errors"

	"github.com/SscSPs/workplace_services/internal/apperrors"
)

type notice struct {
	title       string
	description string
}

// mutation holds the fixed notification texts of one write operation.
// Failure descriptions are derived from the error.
type mutation struct {
	success notice
	failure notice
}

var (
	leaveCreated = mutation{
		success: notice{"Leave request submitted", "Your sick leave request has been submitted for approval."},
		failure: notice{title: "Failed to submit leave request"},
	}
	leaveUpdated = mutation{
		success: notice{"Leave request updated", "Your leave request has been updated."},
		failure: notice{title: "Failed to update leave request"},
	}
	leaveDeleted = mutation{
		success: notice{"Leave request deleted", "Your leave request has been deleted."},
		failure: notice{title: "Failed to delete leave request"},
	}

	expenseCreated = mutation{
		success: notice{"Expense submitted", "Your travel expense has been submitted for approval."},
		failure: notice{title: "Failed to submit expense"},
	}
	expenseUpdated = mutation{
		success: notice{"Expense updated", "Your travel expense has been updated."},
		failure: notice{title: "Failed to update expense"},
	}
	expenseDeleted = mutation{
		success: notice{"Expense deleted", "Your travel expense has been deleted."},
		failure: notice{title: "Failed to delete expense"},
	}

	bookingCreated = mutation{
		success: notice{"Trip booking requested", "Your trip booking request has been submitted."},
		failure: notice{title: "Failed to request trip booking"},
	}
	bookingUpdated = mutation{
		success: notice{"Trip booking updated", "Your trip booking has been updated."},
		failure: notice{title: "Failed to update trip booking"},
	}
	bookingDeleted = mutation{
		success: notice{"Trip booking cancelled", "Your trip booking has been cancelled."},
		failure: notice{title: "Failed to cancel trip booking"},
	}
)

func failureDescription(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		return "The record no longer exists."
	case errors.Is(err, apperrors.ErrFetch):
		return "The record store could not be reached. Please try again."
	default:
		return "Something went wrong. Please try again."
	}
}
