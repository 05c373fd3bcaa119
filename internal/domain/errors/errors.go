// Package errors defines the application error taxonomy shared by the
// usecase and delivery layers.
package errors

import (
	"net/http"

	"wayfinder/internal/errors"
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

// Predefined error types
var (
	// Geolocation errors
	ErrPositionUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"POSITION_UNAVAILABLE",
		"Current position could not be determined",
		"",
	)

	// Routing errors
	ErrRouteUnavailable = NewBaseError(
		http.StatusUnprocessableEntity,
		"ROUTE_UNAVAILABLE",
		"No itinerary could be computed for this destination",
		"",
	)

	ErrInvalidTransportMode = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TRANSPORT_MODE",
		"Unsupported transport mode",
		"",
	)

	// Navigation errors
	ErrNavigationNotReady = NewBaseError(
		http.StatusConflict,
		"NAVIGATION_NOT_READY",
		"No computed route to navigate; request a route first",
		"",
	)

	ErrNavigationActive = NewBaseError(
		http.StatusConflict,
		"NAVIGATION_ACTIVE",
		"A navigation session is already running",
		"",
	)

	// POI errors
	ErrPoiNotFound = NewBaseError(
		http.StatusNotFound,
		"POI_NOT_FOUND",
		"Point of interest not found",
		"",
	)

	ErrPoiFetchFailed = NewBaseError(
		http.StatusServiceUnavailable,
		"POI_FETCH_FAILED",
		"Points of interest are temporarily unavailable",
		"",
	)

	ErrPoiCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"POI_CREATION_FAILED",
		"Failed to submit point of interest",
		"",
	)

	// Geocoding errors
	ErrGeocodeUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"GEOCODE_UNAVAILABLE",
		"Reverse geocoding is temporarily unavailable",
		"",
	)

	// Session errors
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Authentication required",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Permission denied",
		"",
	)

	// Validation errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Coordinate is outside valid bounds",
		"",
	)

	// Generic errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// NewDatabaseExecuteError wraps a low-level database error as an internal AppError.
func NewDatabaseExecuteError(err error, message string) error {
	base := NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		message,
		err.Error(),
	)

	return errors.WithStack(base)
}
