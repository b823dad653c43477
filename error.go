package donorlist

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EEMPTY      = "empty"      // parsing produced zero records
	EEXTRACTION = "extraction" // the PDF text extractor failed
	EINVALID    = "invalid"    // caller input is not valid
	EINTERNAL   = "internal"   // anything else
)

// Error represents an application-specific error. Errors carry a
// machine-readable code and a human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is safe to show to the end user.
	Message string
}

// Error implements the error interface. Not user friendly; use
// ErrorMessage for user-facing output.
func (e *Error) Error() string {
	return fmt.Sprintf("donorlist error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
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
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper for constructing an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
