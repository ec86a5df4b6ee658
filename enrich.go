package structerr

import (
	stderrors "errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrInvalidArgument is returned when an operation receives an argument it
// cannot work with, such as a nil error passed to Enrich.
var ErrInvalidArgument = stderrors.New("structerr: invalid argument")

// Enriched wraps an arbitrary error with diagnostics describing where it
// originated. Every read of the original error's state forwards to the
// original; Enriched adds only the diagnostic fields.
//
// Enriched deliberately does not implement Structured. errors.As therefore
// skips it and lands on the original structured error.
type Enriched struct {
	original error
	diag     Diagnostics
}

// Enrich attaches origin diagnostics to err.
//
// The diagnostics come from the deepest stack trace found in err's chain,
// whether it was captured by this package or by github.com/pkg/errors. If no
// stack is available the caller of Enrich is described instead.
//
// Enrich returns an error wrapping ErrInvalidArgument when err is nil.
//
// Example:
//
//	if err := job.Run(); err != nil {
//	    e, _ := structerr.Enrich(err)
//	    log.Printf("%v %s", e, e.Diagnostics())
//	}
func Enrich(err error) (*Enriched, error) {
	return enrich(err, 1)
}

// EnrichCaller is like Enrich, but when err carries no stack the frame skip
// levels above the caller of EnrichCaller is described. A skip of zero is
// equivalent to Enrich.
func EnrichCaller(err error, skip int) (*Enriched, error) {
	if skip < 0 {
		skip = 0
	}
	return enrich(err, skip+1)
}

// MustEnrich is like Enrich but panics if err is nil.
func MustEnrich(err error) *Enriched {
	e, eerr := enrich(err, 1)
	if eerr != nil {
		panic(eerr)
	}
	return e
}

func enrich(err error, skip int) (*Enriched, error) {
	if err == nil {
		return nil, fmt.Errorf("%w: cannot enrich a nil error", ErrInvalidArgument)
	}
	return &Enriched{
		original: err,
		diag:     locate(err, skip+1),
	}, nil
}

// locate resolves diagnostics for err. skip counts frames above locate's
// caller and is only used when err carries no stack.
func locate(err error, skip int) Diagnostics {
	if d, ok := origin(framesOf(stackOf(err))); ok {
		return d
	}
	frames := framesOf(toStackTrace(callers(skip + 1)))
	if len(frames) == 0 {
		return Diagnostics{}
	}
	return diagnose(frames[0])
}

// Original returns the wrapped error.
func (e *Enriched) Original() error {
	return e.original
}

// Unwrap returns the wrapped error.
func (e *Enriched) Unwrap() error {
	return e.original
}

// Error returns the wrapped error's text unchanged.
func (e *Enriched) Error() string {
	return e.original.Error()
}

// Diagnostics returns the resolved origin diagnostics.
func (e *Enriched) Diagnostics() Diagnostics {
	return e.diag
}

// Module returns the import path of the originating package.
func (e *Enriched) Module() string {
	return e.diag.Module
}

// Function returns the originating function or method name.
func (e *Enriched) Function() string {
	return e.diag.Function
}

// Line returns the originating source line.
func (e *Enriched) Line() int {
	return e.diag.Line
}

// DefiningType returns the receiver type of the originating method, or the
// empty string for plain functions.
func (e *Enriched) DefiningType() string {
	return e.diag.DefiningType
}

// Message returns the original's message, or its error text when it is not
// structured.
func (e *Enriched) Message() string {
	var s Structured
	if stderrors.As(e.original, &s) {
		return s.Message()
	}
	return e.original.Error()
}

// Code returns the original's error code.
func (e *Enriched) Code() (int, bool) {
	return CodeOf(e.original)
}

// Details returns the original's details. It is never nil.
func (e *Enriched) Details() map[string]any {
	return DetailsOf(e.original)
}

// Objects returns the original's extra objects. It is never nil.
func (e *Enriched) Objects() []any {
	return ObjectsOf(e.original)
}

// Keywords returns the original's extra-keywords bag. It is never nil.
func (e *Enriched) Keywords() map[string]any {
	var s Structured
	if stderrors.As(e.original, &s) {
		return s.Keywords()
	}
	return map[string]any{}
}

// Context returns the original's context error.
func (e *Enriched) Context() error {
	var s Structured
	if stderrors.As(e.original, &s) {
		return s.Context()
	}
	return nil
}

// Cause returns the original's explicit cause.
func (e *Enriched) Cause() error {
	var s Structured
	if stderrors.As(e.original, &s) {
		return s.Cause()
	}
	return nil
}

// StackTrace returns the stack the diagnostics were resolved from.
func (e *Enriched) StackTrace() pkgerrors.StackTrace {
	return stackOf(e.original)
}

// Trace renders StackTrace, or returns the empty string when the original
// carries no stack.
func (e *Enriched) Trace() string {
	return renderStack(e.StackTrace())
}

// Format implements fmt.Formatter. %+v includes the stack trace.
func (e *Enriched) Format(s fmt.State, verb rune) {
	formatVerb(s, verb, e.Error(), e.Trace())
}

// MarshalJSON encodes the original error's report with diagnostics attached.
func (e *Enriched) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	return marshalJSON(e)
}
