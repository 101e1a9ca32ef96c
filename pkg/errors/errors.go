package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrConfigSave  ErrorCode = "CONFIG_SAVE"

	// Feed errors
	ErrFeedNotFound ErrorCode = "FEED_NOT_FOUND"
	ErrFeedFetch    ErrorCode = "FEED_FETCH"
	ErrFeedParse    ErrorCode = "FEED_PARSE"
	ErrFeedInvalid  ErrorCode = "FEED_INVALID"

	// OPML errors
	ErrOPMLParse ErrorCode = "OPML_PARSE"
	ErrOPMLWrite ErrorCode = "OPML_WRITE"

	// Search index errors
	ErrIndexOpen   ErrorCode = "INDEX_OPEN"
	ErrIndexWrite  ErrorCode = "INDEX_WRITE"
	ErrIndexSearch ErrorCode = "INDEX_SEARCH"

	// Output errors
	ErrOutputWrite ErrorCode = "OUTPUT_WRITE"
	ErrDirCreate   ErrorCode = "DIR_CREATE"
)

// SpacefeederError represents a structured error with code and details
type SpacefeederError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SpacefeederError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SpacefeederError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SpacefeederError) Is(target error) bool {
	var targetErr *SpacefeederError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SpacefeederError with the given code and message
func New(code ErrorCode, message string) *SpacefeederError {
	return &SpacefeederError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SpacefeederError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SpacefeederError {
	return &SpacefeederError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SpacefeederError
func Wrap(err error, code ErrorCode, message string) *SpacefeederError {
	if err == nil {
		return nil
	}
	return &SpacefeederError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SpacefeederError {
	if err == nil {
		return nil
	}
	return &SpacefeederError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SpacefeederError) WithDetail(key string, value interface{}) *SpacefeederError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var sfErr *SpacefeederError
	if errors.As(err, &sfErr) {
		return sfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SpacefeederError
func GetErrorCode(err error) ErrorCode {
	var sfErr *SpacefeederError
	if errors.As(err, &sfErr) {
		return sfErr.Code
	}
	return ErrUnknown
}
