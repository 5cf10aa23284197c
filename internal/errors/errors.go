// Package errors carries coded application errors. Services return them and
// the chat layer decides from the code whether the message may be shown to
// the player who issued the command.
package errors

import (
	"errors"
	"fmt"
)

// Code represents an error code for categorizing errors
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates a malformed command or option
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates no battle, skill or participant matched
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates a battle or skill is already active
	CodeAlreadyExists Code = "already_exists"

	// CodePermissionDenied indicates the actor may not do this
	CodePermissionDenied Code = "permission_denied"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeUnavailable indicates a backing service is down
	CodeUnavailable Code = "unavailable"

	// CodeValidation indicates a state check failed, such as acting out of turn
	CodeValidation Code = "validation"
)

// Error is an application error carrying a code that callers translate
// into a short chat reply
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap adds context to err. The code of an application error is kept,
// anything else becomes CodeUnknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: GetCode(err), Message: message, Cause: err}
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExists(message string) *Error { return New(CodeAlreadyExists, message) }

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func PermissionDenied(message string) *Error { return New(CodePermissionDenied, message) }

func PermissionDeniedf(format string, args ...any) *Error {
	return Newf(CodePermissionDenied, format, args...)
}

func Unavailable(message string) *Error { return New(CodeUnavailable, message) }

func Internal(message string) *Error { return New(CodeInternal, message) }

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Validation(message string) *Error { return New(CodeValidation, message) }

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

func IsNotFound(err error) bool { return Is(err, CodeNotFound) }

func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }

func IsAlreadyExists(err error) bool { return Is(err, CodeAlreadyExists) }

func IsPermissionDenied(err error) bool { return Is(err, CodePermissionDenied) }

func IsUnavailable(err error) bool { return Is(err, CodeUnavailable) }

func IsValidation(err error) bool { return Is(err, CodeValidation) }

// GetCode returns the code of the outermost application error
func GetCode(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeUnknown
}

// IsPlayerFacing reports whether the error was caused by the player's own
// input or by game state they can see, rather than by the bot
func IsPlayerFacing(err error) bool {
	switch GetCode(err) {
	case CodeInvalidArgument, CodeValidation, CodeNotFound, CodeAlreadyExists, CodePermissionDenied:
		return true
	}
	return false
}

// PlayerMessage returns the innermost application message of a player
// facing error. Wrapping adds developer context on the way up, so the
// innermost message is the one written for the player.
func PlayerMessage(err error) (string, bool) {
	if !IsPlayerFacing(err) {
		return "", false
	}
	var appErr *Error
	message := ""
	for errors.As(err, &appErr) {
		message = appErr.Message
		err = appErr.Cause
	}
	return message, true
}
