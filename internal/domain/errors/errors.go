// Package errors defines the application error taxonomy for the catalog.
package errors

import (
	"net/http"

	"farha/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types.
//
// Not-found and empty-result conditions are domain outcomes, not faults: the
// orchestrator resolves them into soft-failure envelopes instead of letting
// them escape as raw errors.
var (
	ErrBeautyCenterNotFound = NewBaseError(
		http.StatusNotFound,
		"BEAUTY_CENTER_NOT_FOUND",
		"beauty center not found",
		"",
	)

	ErrServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SERVICE_NOT_FOUND",
		"service not found",
		"",
	)

	ErrSubServiceNotFound = NewBaseError(
		http.StatusNotFound,
		"SUB_SERVICE_NOT_FOUND",
		"requested sub-service not found",
		"",
	)

	ErrEmptyResult = NewBaseError(
		http.StatusOK,
		"EMPTY_RESULT",
		"no results matched the given criteria",
		"",
	)

	ErrOwnerNotFound = NewBaseError(
		http.StatusNotFound,
		"OWNER_NOT_FOUND",
		"owner account not found",
		"",
	)

	ErrOwnerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"OWNER_ALREADY_EXISTS",
		"an owner account with this email is already registered",
		"",
	)

	ErrOwnerDocumentsMissing = NewBaseError(
		http.StatusBadRequest,
		"OWNER_DOCUMENTS_MISSING",
		"identity document images are required",
		"",
	)

	ErrFavoriteExists = NewBaseError(
		http.StatusConflict,
		"FAVORITE_EXISTS",
		"service is already favorited by this customer",
		"",
	)

	ErrFavoriteNotFound = NewBaseError(
		http.StatusNotFound,
		"FAVORITE_NOT_FOUND",
		"favorite not found",
		"",
	)

	ErrInvalidKind = NewBaseError(
		http.StatusBadRequest,
		"INVALID_SERVICE_KIND",
		"unknown service kind",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrInvalidOwnerReference = NewBaseError(
		http.StatusBadRequest,
		"INVALID_OWNER_REFERENCE",
		"a service cannot exist without a valid owner",
		"",
	)

	ErrOwnerHasServices = NewBaseError(
		http.StatusConflict,
		"OWNER_HAS_SERVICES",
		"owner still has services and cannot be deleted",
		"",
	)

	ErrTransactionFailed = NewBaseError(
		http.StatusInternalServerError,
		"TRANSACTION_FAILED",
		"database transaction failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// PersistenceError represents a failure at the relational store boundary
// (constraint or connection class), implementing the AppError interface.
type PersistenceError struct {
	err     error
	details string
}

// NewPersistenceError creates a store-boundary error
func NewPersistenceError(err error, details string) AppError {
	return &PersistenceError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *PersistenceError) Error() string {
	return errors.Wrap(e.err, "persistence operation failed").Error()
}

// Unwrap exposes the underlying store error so the deepest cause can be
// surfaced in failure envelopes.
func (e *PersistenceError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *PersistenceError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PersistenceError) ErrorCode() string {
	return "PERSISTENCE_FAILED"
}

// Message returns the user-friendly error message
func (e *PersistenceError) Message() string {
	return "the operation could not be persisted"
}

// Details returns detailed error information
func (e *PersistenceError) Details() string {
	return e.details
}

// MediaStorageError represents a failure of the media placement collaborator.
type MediaStorageError struct {
	err     error
	details string
}

// NewMediaStorageError creates a media-placement error
func NewMediaStorageError(err error, details string) AppError {
	return &MediaStorageError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *MediaStorageError) Error() string {
	return errors.Wrap(e.err, "media storage failed").Error()
}

// Unwrap exposes the underlying storage error.
func (e *MediaStorageError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *MediaStorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *MediaStorageError) ErrorCode() string {
	return "MEDIA_STORAGE_FAILED"
}

// Message returns the user-friendly error message
func (e *MediaStorageError) Message() string {
	return "uploaded images could not be stored"
}

// Details returns detailed error information
func (e *MediaStorageError) Details() string {
	return e.details
}
