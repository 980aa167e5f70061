package engine

import (
	"errors"
	"fmt"
)

// Code identifies the kind of a failed operation. The set is closed;
// callers can switch on it to render field-level messages.
type Code string

const (
	CodeInvalidInput        Code = "INVALID_INPUT"
	CodeInvalidRange        Code = "INVALID_RANGE"
	CodeInvalidDuration     Code = "INVALID_DURATION"
	CodeAlreadyCheckedIn    Code = "ALREADY_CHECKED_IN"
	CodeNotCheckedIn        Code = "NOT_CHECKED_IN"
	CodeInsufficientBalance Code = "INSUFFICIENT_BALANCE"
	CodeNotFound            Code = "NOT_FOUND"
	CodeInvalidTransition   Code = "INVALID_TRANSITION"
)

// Error is the structured failure every engine operation returns instead
// of mutating anything. Available is set only for CodeInsufficientBalance.
type Error struct {
	Code      Code    `json:"code"`
	Message   string  `json:"message"`
	Available float64 `json:"available,omitempty"`
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func errInvalid(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidInput, Message: fmt.Sprintf(format, args...)}
}

func errRange(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidRange, Message: fmt.Sprintf(format, args...)}
}

func errDuration(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidDuration, Message: fmt.Sprintf(format, args...)}
}

func errAlreadyCheckedIn(msg string) *Error {
	return &Error{Code: CodeAlreadyCheckedIn, Message: msg}
}

func errNotCheckedIn(msg string) *Error {
	return &Error{Code: CodeNotCheckedIn, Message: msg}
}

func errInsufficient(available float64) *Error {
	return &Error{
		Code:      CodeInsufficientBalance,
		Message:   fmt.Sprintf("insufficient balance: %.1f day(s) available", available),
		Available: available,
	}
}

func errNotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: fmt.Sprintf(format, args...)}
}

func errTransition(format string, args ...any) *Error {
	return &Error{Code: CodeInvalidTransition, Message: fmt.Sprintf(format, args...)}
}

// CodeOf extracts the error code, or "" for nil / non-engine errors.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
