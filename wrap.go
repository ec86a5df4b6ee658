package structerr

import "fmt"

// Wrap wraps err in a coded structured error. err becomes the cause, so it is
// reachable through Unwrap and compatible with errors.Is and errors.As. args
// are classified as in New.
//
// Returns nil if err is nil. The result is typed as error so a nil return
// compares equal to nil.
//
// Example:
//
//	if err := store.Put(ctx, key, value); err != nil {
//	    return structerr.Wrap(err, "failed to persist record", 503, key)
//	}
func Wrap(err error, message string, code int, args ...any) error {
	if err == nil {
		return nil
	}
	args = append(args[:len(args):len(args)], CausedBy(err))
	return &Error{
		Base:    errorKind.build(1, message, args),
		code:    code,
		hasCode: true,
	}
}

// Wrapf wraps err with a formatted message.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err := validate(input); err != nil {
//	    return structerr.Wrapf(err, 400, "validation failed for field %s", name)
//	}
func Wrapf(err error, code int, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{
		Base:    errorKind.build(1, fmt.Sprintf(format, args...), []any{CausedBy(err)}),
		code:    code,
		hasCode: true,
	}
}

// WrapException wraps err in an uncoded structured error.
//
// Returns nil if err is nil.
func WrapException(err error, message string, args ...any) error {
	if err == nil {
		return nil
	}
	args = append(args[:len(args):len(args)], CausedBy(err))
	return &Exception{Base: exceptionKind.build(1, message, args)}
}
