package structerr

import "fmt"

// New creates a coded structured error.
//
// args may mix positional values and Options. Positional values become the
// error's extra objects, in order; Options set details, keywords, the cause
// and the context.
//
// Example:
//
//	err := structerr.New("quota exceeded", 429, tenant,
//	    structerr.Details(map[string]any{"limit": 100}))
func New(message string, code int, args ...any) *Error {
	return &Error{
		Base:    errorKind.build(1, message, args),
		code:    code,
		hasCode: true,
	}
}

// Newf creates a coded structured error with a formatted message.
//
// Example:
//
//	err := structerr.Newf(400, "field %s is required", name)
func Newf(code int, format string, args ...any) *Error {
	return &Error{
		Base:    errorKind.build(1, fmt.Sprintf(format, args...), nil),
		code:    code,
		hasCode: true,
	}
}

// NewException creates an uncoded structured error. args are classified as
// in New.
//
// Example:
//
//	err := structerr.NewException("unexpected state", state,
//	    structerr.Detail("phase", "commit"))
func NewException(message string, args ...any) *Exception {
	return &Exception{Base: exceptionKind.build(1, message, args)}
}

// NewExceptionf creates an uncoded structured error with a formatted message.
func NewExceptionf(format string, args ...any) *Exception {
	return &Exception{Base: exceptionKind.build(1, fmt.Sprintf(format, args...), nil)}
}
