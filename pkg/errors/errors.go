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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Key name errors
	ErrUnknownKey ErrorCode = "UNKNOWN_KEY"

	// Host runtime errors
	ErrHookUnavailable ErrorCode = "HOOK_UNAVAILABLE"
	ErrHookInstall     ErrorCode = "HOOK_INSTALL"
	ErrInject          ErrorCode = "INJECT"
	ErrAlreadyRunning  ErrorCode = "ALREADY_RUNNING"
)

// KeyremapError represents a structured error with code and details
type KeyremapError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *KeyremapError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *KeyremapError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *KeyremapError) Is(target error) bool {
	var targetErr *KeyremapError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new KeyremapError with the given code and message
func New(code ErrorCode, message string) *KeyremapError {
	return &KeyremapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new KeyremapError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *KeyremapError {
	return &KeyremapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a KeyremapError
func Wrap(err error, code ErrorCode, message string) *KeyremapError {
	if err == nil {
		return nil
	}
	return &KeyremapError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *KeyremapError {
	if err == nil {
		return nil
	}
	return &KeyremapError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *KeyremapError) WithDetail(key string, value interface{}) *KeyremapError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var kerr *KeyremapError
	if errors.As(err, &kerr) {
		return kerr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a KeyremapError
func GetErrorCode(err error) ErrorCode {
	var kerr *KeyremapError
	if errors.As(err, &kerr) {
		return kerr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a KeyremapError
func GetErrorDetails(err error) map[string]interface{} {
	var kerr *KeyremapError
	if errors.As(err, &kerr) {
		return kerr.Details
	}
	return nil
}

// Join collects several errors under one code. Nil errors are dropped and
// nil is returned when nothing remains. The individual errors stay reachable
// through the standard errors.Is/As traversal.
func Join(code ErrorCode, message string, errs ...error) error {
	var kept []error
	for _, err := range errs {
		if err != nil {
			kept = append(kept, err)
		}
	}
	if len(kept) == 0 {
		return nil
	}
	return Wrap(errors.Join(kept...), code, message).WithDetail("count", len(kept))
}

// As is errors.As from the standard library.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
