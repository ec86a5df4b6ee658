package structerr

import (
	pkgerrors "github.com/pkg/errors"
)

// Base is the state shared by every structured error and the home of the
// default accessors. Error and Exception embed it; custom error types embed
// it too and inherit the accessors unless they declare their own.
//
// Build a Base through Kind.Base so arguments are classified the same way as
// in New. Base is immutable after construction: accessors return copies.
type Base struct {
	kind     string
	message  string
	details  map[string]any
	keywords map[string]any
	fields   map[string]any
	objects  []any
	stack    []uintptr
	context  error
	cause    error
}

// Kind returns the name of the kind that built the error.
func (b *Base) Kind() string {
	return b.kind
}

// Message returns the human-readable message.
func (b *Base) Message() string {
	return b.message
}

// Details returns a copy of the details mapping. It is never nil.
func (b *Base) Details() map[string]any {
	return cloneMap(b.details)
}

// Keywords returns a copy of the extra-keywords bag. It is never nil.
func (b *Base) Keywords() map[string]any {
	return cloneMap(b.keywords)
}

// Fields returns a copy of the values bound to the kind's fixed fields.
// It is never nil.
func (b *Base) Fields() map[string]any {
	return cloneMap(b.fields)
}

// Field returns the value bound to a fixed field.
func (b *Base) Field(name string) (any, bool) {
	v, ok := b.fields[name]
	return v, ok
}

// Objects returns a copy of the positional arguments supplied beyond the
// kind's fixed fields. It is never nil.
func (b *Base) Objects() []any {
	out := make([]any, len(b.objects))
	copy(out, b.objects)
	return out
}

// Trace renders the stack captured when the error was built, or returns the
// empty string if none was captured. The text is rendered on every call.
func (b *Base) Trace() string {
	return renderStack(b.StackTrace())
}

// StackTrace returns the captured stack in the github.com/pkg/errors
// representation, innermost frame first.
func (b *Base) StackTrace() pkgerrors.StackTrace {
	return toStackTrace(b.stack)
}

// Context returns the error that was being handled when this one was built.
func (b *Base) Context() error {
	return b.context
}

// Cause returns the explicitly chained root cause.
func (b *Base) Cause() error {
	return b.cause
}

// Unwrap returns the cause for errors.Is and errors.As.
func (b *Base) Unwrap() error {
	return b.cause
}
