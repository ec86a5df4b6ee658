package structerr

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var se structerr.Structured
//	if structerr.As(err, &se) {
//	    log.Println(se.Details())
//	}
func As(err error, target any) bool {
	return stderrors.As(err, target)
}

// CodeOf returns the code of the outermost coded error in err's chain.
// Returns false if err is nil or no error in the chain carries a code.
//
// Example:
//
//	if code, ok := structerr.CodeOf(err); ok && code == 404 {
//	    // Handle not found
//	}
func CodeOf(err error) (int, bool) {
	for _, e := range chain(err) {
		if c, ok := e.(interface{ Code() (int, bool) }); ok {
			if code, set := c.Code(); set {
				return code, true
			}
		}
	}
	return 0, false
}

// DetailsOf returns the details of the outermost structured error in err's
// chain. The result is never nil.
func DetailsOf(err error) map[string]any {
	var s Structured
	if stderrors.As(err, &s) {
		return s.Details()
	}
	return map[string]any{}
}

// ObjectsOf returns the extra objects of the outermost structured error in
// err's chain. The result is never nil.
func ObjectsOf(err error) []any {
	var s Structured
	if stderrors.As(err, &s) {
		return s.Objects()
	}
	return []any{}
}

// TraceOf renders the deepest stack trace in err's chain, or returns the
// empty string if none was captured.
func TraceOf(err error) string {
	return renderStack(stackOf(err))
}

// chain flattens err's tree breadth-first, following both Unwrap() error and
// Unwrap() []error. At most maxChain errors are returned.
func chain(err error) []error {
	if err == nil {
		return nil
	}
	var out []error
	queue := []error{err}
	for len(queue) > 0 && len(out) < maxChain {
		e := queue[0]
		queue = queue[1:]
		if e == nil {
			continue
		}
		out = append(out, e)
		switch u := e.(type) {
		case interface{ Unwrap() error }:
			queue = append(queue, u.Unwrap())
		case interface{ Unwrap() []error }:
			queue = append(queue, u.Unwrap()...)
		}
	}
	return out
}
