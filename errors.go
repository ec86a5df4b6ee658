package structerr

import (
	pkgerrors "github.com/pkg/errors"
)

// Structured is implemented by every error built through a Kind, including
// custom types that embed Base.
type Structured interface {
	error

	// Kind returns the name of the kind that built the error.
	Kind() string

	// Message returns the human-readable message.
	Message() string

	// Details returns the named details. Never nil.
	Details() map[string]any

	// Keywords returns the extra-keywords bag. Never nil.
	Keywords() map[string]any

	// Fields returns the values bound to the kind's fixed fields. Never nil.
	Fields() map[string]any

	// Objects returns the positional arguments beyond the fixed fields.
	Objects() []any

	// Trace renders the captured stack, or "" when none was captured.
	Trace() string

	// StackTrace returns the captured stack, innermost frame first.
	StackTrace() pkgerrors.StackTrace

	// Context returns the error being handled when this one was built.
	Context() error

	// Cause returns the explicitly chained root cause.
	Cause() error

	// Unwrap returns the cause for errors.Is and errors.As compatibility.
	Unwrap() error
}

// Coded is implemented by structured errors that carry an application
// error code.
type Coded interface {
	Structured

	// Code returns the error code and whether one was set.
	Code() (int, bool)
}
