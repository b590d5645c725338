package govlens

import (
	"errors"
	"fmt"
)

// Application error codes. They classify errors for callers (CLI exit
// messages, web UI rendering) without exposing internal details.
const (
	ECONFIG   = "config"    // missing or invalid configuration
	EFETCH    = "fetch"     // page could not be retrieved
	EEXTRACT  = "extract"   // no usable content in the page
	EPROVIDER = "provider"  // model API failure or unusable response
	EINVALID  = "invalid"   // validation failed
	ENOTFOUND = "not_found" // entity does not exist
	EINTERNAL = "internal"  // unexpected internal error
)

// Error is an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code classifies the error.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("govlens error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf constructs an Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
