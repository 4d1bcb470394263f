package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrPrecondition indicates that a record is not in a state that allows the
// requested operation (e.g. posting a demand that is no longer in draft).
// Callers should treat this as idempotency information, not a transient failure.
var ErrPrecondition = errors.New("precondition failed")

// ErrConfiguration indicates that required chart-of-accounts setup is missing.
// This is a fatal configuration problem, not a normal business-error path.
var ErrConfiguration = errors.New("configuration error")

// ErrPostedFollowUpFailed indicates that a journal was durably posted but a
// required follow-up write (status transition, allocation insert) failed.
// The journal is intentionally NOT rolled back; callers should retry only the
// follow-up step.
var ErrPostedFollowUpFailed = errors.New("journal posted but follow-up step failed")

// ErrInternal indicates an unexpected internal failure.
var ErrInternal = errors.New("internal error")

// AppError wraps a lower-level error with a status code and message, used by
// the repository layer to surface driver failures without leaking them raw.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// NewNotFoundError creates an AppError that matches errors.Is(_, ErrNotFound).
func NewNotFoundError(message string) *AppError {
	return &AppError{Code: 404, Message: message, Err: ErrNotFound}
}
