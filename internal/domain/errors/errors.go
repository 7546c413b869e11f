// Package errors defines the error kinds the domain layer returns.
// Services only classify failures; the delivery layer owns the mapping from
// Kind to transport status codes.
package errors

import (
	"fmt"

	"rating/internal/errors"
)

// Kind classifies an application error.
type Kind int

const (
	// KindInternal covers infrastructure and unexpected failures.
	KindInternal Kind = iota
	// KindValidation means client input violated a domain rule.
	KindValidation
	// KindNotFound means a referenced entity does not exist.
	KindNotFound
)

// String returns the kind name used in logs.
func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Error classification
	ErrorCode() string // Business error code
	Message() string   // User-facing message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// Kind returns the error classification
func (e *BaseError) Kind() Kind {
	return e.kind
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-facing message
func (e *BaseError) Message() string {
	return e.message
}

// Is matches any BaseError with the same kind and code, so callers can test
// against the predefined values regardless of message.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.kind == t.kind && e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(KindValidation, "VALIDATION_FAILED", "Validation failed")

	ErrBuildingNotFound = NewBaseError(KindNotFound, "BUILDING_NOT_FOUND", "Building not found")

	ErrSummaryNotFound = NewBaseError(KindNotFound, "SUMMARY_NOT_FOUND", "Summary not found")

	ErrInternalError = NewBaseError(KindInternal, "INTERNAL_ERROR", "Internal server error")
)

// NewValidationError returns a validation error with a message naming the
// offending field.
func NewValidationError(message string) *BaseError {
	return NewBaseError(KindValidation, ErrValidationFailed.errorCode, message)
}

// NewBuildingNotFoundError returns a not-found error carrying the building id.
func NewBuildingNotFoundError(id string) *BaseError {
	return NewBaseError(KindNotFound, ErrBuildingNotFound.errorCode, fmt.Sprintf("Building not found: %s", id))
}

// KindOf returns the kind of err, or KindInternal when err is not an AppError.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

// Unwrap exposes the driver error
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// Kind returns KindInternal
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-facing message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns the operation that failed
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
