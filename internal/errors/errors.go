// Package errors provides structured, coded errors for sdom.
//
// Slimmer than a full diagnostics system: each error carries a stable code,
// a category, and an optional wrapped cause, so callers can match on codes
// while logs stay grep-able.
package errors

import "fmt"

// Category represents the type of error.
type Category string

const (
	CategoryConfig   Category = "config"
	CategoryDocument Category = "document"
	CategoryTheme    Category = "theme"
	CategoryServer   Category = "server"
)

// Error is a structured error with a stable code.
type Error struct {
	// Code is a unique error identifier (e.g. "E101").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return e.Message
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *Error) Unwrap() error { return e.Wrapped }

// Wrap attaches an underlying cause.
func (e *Error) Wrap(err error) *Error {
	e.Wrapped = err
	return e
}

// Is matches errors by code so registered errors compare by identity of
// their template, not by pointer.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code != "" && t.Code == e.Code
}

// New creates an Error from a registered code.
func New(code string) *Error {
	template, ok := registry[code]
	if !ok {
		return &Error{Code: code, Message: "unknown error"}
	}
	return &Error{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
	}
}

// Newf creates an uncoded Error with a formatted message.
func Newf(category Category, format string, args ...any) *Error {
	return &Error{Category: category, Message: fmt.Sprintf(format, args...)}
}
