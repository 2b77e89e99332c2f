/*
Package errors - Custom Error Types for the Shift Planning System

==============================================================================
FILE: internal/errors/errors.go
==============================================================================

DESCRIPTION:
    Provides typed error definitions for consistent error handling across the
    application. Replaces string-based error checking with type assertions,
    making error handling more robust and maintainable.

USAGE:
    // In service layer:
    return errors.ErrNoSolution

    // In handler layer:
    if errors.Is(err, errors.ErrNoSolution) {
        c.JSON(http.StatusBadRequest, ...)
    }

    // For wrapped errors:
    return errors.Wrap(err, errors.ErrDatabaseOperation)

DEVELOPER GUIDELINES:
    OK to modify: Add new error types as needed
    CAUTION: Changing error messages may affect frontend error display
    DO NOT modify: Error interface implementation

==============================================================================
*/
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Re-export standard library functions for convenience
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
)

// AppError represents an application-level error with HTTP status code
type AppError struct {
	Code       string // Machine-readable error code
	Message    string // Human-readable message
	HTTPStatus int    // HTTP status code for API responses
	Err        error  // Underlying error (optional)
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

// Is implements error matching for errors.Is()
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewAppError creates a new application error
func NewAppError(code string, message string, status int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: status,
	}
}

// Wrap wraps an underlying error with an AppError
func Wrap(err error, appErr *AppError) *AppError {
	return &AppError{
		Code:       appErr.Code,
		Message:    appErr.Message,
		HTTPStatus: appErr.HTTPStatus,
		Err:        err,
	}
}

// WithMessage creates a copy of the error with a custom message
func (e *AppError) WithMessage(msg string) *AppError {
	return &AppError{
		Code:       e.Code,
		Message:    msg,
		HTTPStatus: e.HTTPStatus,
		Err:        e.Err,
	}
}

// ============================================================================
// Validation Errors
// ============================================================================

var (
	ErrValidationFailed = NewAppError(
		"VALIDATION_FAILED",
		"Validation failed",
		http.StatusBadRequest,
	)

	ErrInvalidInput = NewAppError(
		"VALIDATION_INVALID_INPUT",
		"Invalid input provided",
		http.StatusBadRequest,
	)

	ErrMissingField = NewAppError(
		"VALIDATION_MISSING_FIELD",
		"Required field is missing",
		http.StatusBadRequest,
	)

	ErrInvalidDateRange = NewAppError(
		"VALIDATION_INVALID_DATE_RANGE",
		"Invalid date range",
		http.StatusBadRequest,
	)
)

// ============================================================================
// Resource Errors
// ============================================================================

var (
	ErrNotFound = NewAppError(
		"RESOURCE_NOT_FOUND",
		"Resource not found",
		http.StatusNotFound,
	)

	ErrAlreadyExists = NewAppError(
		"RESOURCE_ALREADY_EXISTS",
		"Resource already exists",
		http.StatusConflict,
	)
)

// ============================================================================
// Database Errors
// ============================================================================

var (
	ErrDatabaseOperation = NewAppError(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrRecordNotFound = NewAppError(
		"DATABASE_RECORD_NOT_FOUND",
		"Record not found",
		http.StatusNotFound,
	)

	ErrDuplicateKey = NewAppError(
		"DATABASE_DUPLICATE_KEY",
		"Duplicate key violation",
		http.StatusConflict,
	)
)

// ============================================================================
// Scheduling Engine Errors
// ============================================================================

var (
	// ErrNoSolution is returned when CP-SAT proves the model infeasible, or
	// returns UNKNOWN after the configured time limit without finding any
	// feasible assignment.
	ErrNoSolution = NewAppError(
		"SCHEDULE_NO_SOLUTION",
		"No feasible schedule satisfies the given constraints",
		http.StatusUnprocessableEntity,
	)

	// ErrInvalidScheduleRequest covers malformed generation requests that
	// never reach the solver: an empty roster or an empty task catalog.
	ErrInvalidScheduleRequest = NewAppError(
		"SCHEDULE_INVALID_REQUEST",
		"Schedule request is missing required data",
		http.StatusBadRequest,
	)

	// ErrExportFailed covers workbook generation/write failures once a
	// solution exists.
	ErrExportFailed = NewAppError(
		"SCHEDULE_EXPORT_FAILED",
		"Failed to export schedule workbook",
		http.StatusInternalServerError,
	)
)

// ============================================================================
// Internal Errors
// ============================================================================

var (
	ErrInternal = NewAppError(
		"INTERNAL_ERROR",
		"An internal error occurred",
		http.StatusInternalServerError,
	)

	ErrServiceUnavailable = NewAppError(
		"SERVICE_UNAVAILABLE",
		"Service temporarily unavailable",
		http.StatusServiceUnavailable,
	)
)

// ============================================================================
// Helper Functions
// ============================================================================

// GetHTTPStatus returns the HTTP status code for an error
func GetHTTPStatus(err error) int {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.HTTPStatus
	}
	return http.StatusInternalServerError
}

// GetErrorCode returns the error code for an error
func GetErrorCode(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// GetErrorMessage returns the user-friendly message for an error
func GetErrorMessage(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Message
	}
	return err.Error()
}
