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
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrLocked       ErrorCode = "LOCKED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Resolution errors
	ErrSegmentUnparsable  ErrorCode = "SEGMENT_UNPARSABLE"
	ErrIniRead            ErrorCode = "INI_READ"
	ErrDeclarationInvalid ErrorCode = "DECLARATION_INVALID"

	// Declaration file errors
	ErrLineInvalid      ErrorCode = "LINE_INVALID"
	ErrCloudPathInvalid ErrorCode = "CLOUD_PATH_INVALID"

	// Reconciliation errors
	ErrLinkConflict      ErrorCode = "LINK_CONFLICT"
	ErrSymlinkPermission ErrorCode = "SYMLINK_PERMISSION"
	ErrSymlinkCreate     ErrorCode = "SYMLINK_CREATE"
	ErrDirectoryCopy     ErrorCode = "DIRECTORY_COPY"
	ErrFileCopy          ErrorCode = "FILE_COPY"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCreate   ErrorCode = "FILE_CREATE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// fatalCodes end the whole run instead of the current line.
var fatalCodes = map[ErrorCode]bool{
	ErrSymlinkPermission: true,
	ErrLocked:            true,
	ErrConfigLoad:        true,
}

// PotbinError represents a structured error with code and details
type PotbinError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PotbinError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PotbinError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *PotbinError) Is(target error) bool {
	var targetErr *PotbinError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PotbinError with the given code and message
func New(code ErrorCode, message string) *PotbinError {
	return &PotbinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PotbinError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PotbinError {
	return &PotbinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PotbinError
func Wrap(err error, code ErrorCode, message string) *PotbinError {
	if err == nil {
		return nil
	}
	return &PotbinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PotbinError {
	if err == nil {
		return nil
	}
	return &PotbinError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PotbinError) WithDetail(key string, value interface{}) *PotbinError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var potbinErr *PotbinError
	if errors.As(err, &potbinErr) {
		return potbinErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PotbinError
func GetErrorCode(err error) ErrorCode {
	var potbinErr *PotbinError
	if errors.As(err, &potbinErr) {
		return potbinErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a PotbinError
func GetErrorDetails(err error) map[string]interface{} {
	var potbinErr *PotbinError
	if errors.As(err, &potbinErr) {
		return potbinErr.Details
	}
	return nil
}

// IsFatal reports whether err must abort the whole run rather than the
// current line.
func IsFatal(err error) bool {
	return fatalCodes[GetErrorCode(err)]
}
