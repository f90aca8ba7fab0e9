package errors

import (
	"errors"
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HasCode reports whether err or any error in its chain carries code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}

// Predefined error codes
const (
	CodeFieldNotFound         = "FIELD_NOT_FOUND"
	CodeMalformedSource       = "MALFORMED_SOURCE"
	CodeMissingRequiredColumn = "MISSING_REQUIRED_COLUMN"
	CodeConfigInvalid         = "CONFIG_INVALID"
	CodeInternalError         = "INTERNAL_ERROR"
)

// Common error constructors

// FieldNotFound reports a requested column/key absent from the source schema.
func FieldNotFound(field, source string) *AppError {
	return New(CodeFieldNotFound, fmt.Sprintf("field '%s' not found in %s", field, source))
}

// MalformedSource reports a source that is not structured as a list of records.
func MalformedSource(source, detail string) *AppError {
	return New(CodeMalformedSource, fmt.Sprintf("malformed source %s: %s", source, detail))
}

// MissingRequiredColumn reports a summary table lacking a column the
// plotting step requires.
func MissingRequiredColumn(column, source string) *AppError {
	return New(CodeMissingRequiredColumn, fmt.Sprintf("column '%s' not found in %s", column, source))
}

func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
