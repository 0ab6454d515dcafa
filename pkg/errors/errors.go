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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrInvalidInput   ErrorCode = "INVALID_INPUT"
	ErrNotFound       ErrorCode = "NOT_FOUND"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Platform errors
	ErrUnsupportedOS  ErrorCode = "UNSUPPORTED_OS"
	ErrNoPackageMgr   ErrorCode = "NO_PACKAGE_MANAGER"
	ErrCommandMissing ErrorCode = "COMMAND_MISSING"
	ErrCommandFailed  ErrorCode = "COMMAND_FAILED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Catalog errors
	ErrCatalogParse   ErrorCode = "CATALOG_PARSE"
	ErrCatalogInvalid ErrorCode = "CATALOG_INVALID"

	// Step errors
	ErrStepNotFound ErrorCode = "STEP_NOT_FOUND"
	ErrStepFailed   ErrorCode = "STEP_FAILED"
	ErrToolInstall  ErrorCode = "TOOL_INSTALL"

	// State errors
	ErrStateLoad   ErrorCode = "STATE_LOAD"
	ErrStateSave   ErrorCode = "STATE_SAVE"
	ErrStateLocked ErrorCode = "STATE_LOCKED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
	ErrBackup       ErrorCode = "BACKUP"
)

// Severity classifies how the installer reacts to an error.
// Fatal errors abort the run; soft errors are recorded and skipped.
type Severity int

const (
	SeverityFatal Severity = iota
	SeveritySoft
)

// String returns the string representation of a Severity
func (s Severity) String() string {
	switch s {
	case SeverityFatal:
		return "fatal"
	case SeveritySoft:
		return "soft"
	default:
		return "unknown"
	}
}

// EteError represents a structured error with code, severity and details
type EteError struct {
	Code     ErrorCode
	Severity Severity
	Message  string
	Details  map[string]interface{}
	Wrapped  error
}

// Error implements the error interface
func (e *EteError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EteError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EteError) Is(target error) bool {
	var targetErr *EteError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EteError with the given code and message.
// Errors are fatal unless marked soft via AsSoft.
func New(code ErrorCode, message string) *EteError {
	return &EteError{
		Code:     code,
		Severity: SeverityFatal,
		Message:  message,
		Details:  make(map[string]interface{}),
	}
}

// Newf creates a new EteError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EteError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an EteError
func Wrap(err error, code ErrorCode, message string) *EteError {
	if err == nil {
		return nil
	}
	return &EteError{
		Code:     code,
		Severity: SeverityFatal,
		Message:  message,
		Details:  make(map[string]interface{}),
		Wrapped:  err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EteError {
	if err == nil {
		return nil
	}
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// AsSoft marks the error as soft: the installer logs it and continues
func (e *EteError) AsSoft() *EteError {
	e.Severity = SeveritySoft
	return e
}

// WithDetail adds a detail to the error
func (e *EteError) WithDetail(key string, value interface{}) *EteError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsSoft reports whether err is (or wraps) a soft EteError
func IsSoft(err error) bool {
	var eteErr *EteError
	if errors.As(err, &eteErr) {
		return eteErr.Severity == SeveritySoft
	}
	return false
}

// CodeOf returns the error code of err, or ErrUnknown for plain errors
func CodeOf(err error) ErrorCode {
	var eteErr *EteError
	if errors.As(err, &eteErr) {
		return eteErr.Code
	}
	return ErrUnknown
}
