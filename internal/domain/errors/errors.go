package errors

import (
	"net/http"

	"github.com/pkg/errors"
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

// Is matches any BaseError carrying the same error code, so copies made by
// WithDetails still compare equal to the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
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
	// Identity-related errors
	ErrIdentityAlreadyExists = NewBaseError(
		http.StatusConflict,
		"IDENTITY_ALREADY_EXISTS",
		"An account with this email already exists",
		"",
	)

	ErrSignUpFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGN_UP_FAILED",
		"We could not finish creating your account. Please try again or contact support.",
		"",
	)

	// Authentication-related errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid login credentials",
		"",
	)

	ErrSessionInvalid = NewBaseError(
		http.StatusUnauthorized,
		"SESSION_INVALID",
		"Your session has expired, please sign in again",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Password processing failed",
		"",
	)

	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"Password is too short",
		"",
	)

	ErrRoleNotAllowed = NewBaseError(
		http.StatusBadRequest,
		"ROLE_NOT_ALLOWED",
		"That role cannot be chosen at sign-up",
		"",
	)

	// Profile-related errors
	ErrProfileNotFound = NewBaseError(
		http.StatusNotFound,
		"PROFILE_NOT_FOUND",
		"Profile not found",
		"",
	)

	// Business-related errors
	ErrBusinessNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_NOT_FOUND",
		"Set up your business profile first",
		"",
	)

	// Deal-related errors
	ErrDealNotFound = NewBaseError(
		http.StatusNotFound,
		"DEAL_NOT_FOUND",
		"Deal not found",
		"",
	)

	ErrDealOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"DEAL_OWNERSHIP_VIOLATION",
		"You can only change your own deals",
		"",
	)

	ErrInvalidReviewDecision = NewBaseError(
		http.StatusBadRequest,
		"INVALID_REVIEW_DECISION",
		"A deal can only be approved or rejected",
		"",
	)

	// Campaign-related errors
	ErrCampaignNotFound = NewBaseError(
		http.StatusNotFound,
		"CAMPAIGN_NOT_FOUND",
		"Campaign not found",
		"",
	)

	ErrCampaignClosed = NewBaseError(
		http.StatusConflict,
		"CAMPAIGN_CLOSED",
		"This campaign is not accepting new members",
		"",
	)

	ErrCampaignOwnershipViolation = NewBaseError(
		http.StatusForbidden,
		"CAMPAIGN_OWNERSHIP_VIOLATION",
		"You can only change your own campaigns",
		"",
	)

	// Membership-related errors
	ErrMembershipNotFound = NewBaseError(
		http.StatusNotFound,
		"MEMBERSHIP_NOT_FOUND",
		"Membership not found",
		"",
	)

	ErrMembershipCardInvalid = NewBaseError(
		http.StatusBadRequest,
		"MEMBERSHIP_CARD_INVALID",
		"This is not a valid membership card",
		"",
	)

	// Upload-related errors
	ErrUploadTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"UPLOAD_TOO_LARGE",
		"The file is too large",
		"",
	)

	ErrUnsupportedFileType = NewBaseError(
		http.StatusUnsupportedMediaType,
		"UNSUPPORTED_FILE_TYPE",
		"Only PNG, JPEG, GIF or WebP images are accepted",
		"",
	)

	ErrUploadFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPLOAD_FAILED",
		"The file could not be stored",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Some fields are missing or invalid",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error, please try again later",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Page not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// MessageOf returns the user-facing message carried by err, or fallback when err
// does not wrap an AppError.
func MessageOf(err error, fallback string) string {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}

	return fallback
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
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "The database rejected the change"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
