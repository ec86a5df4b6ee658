package structerr

import stderrors "errors"

// WithDetail adds a single detail to an error.
// Returns a copy of the error with the detail added; the original is left
// untouched. Existing details are preserved.
//
// *Error and *Exception values are copied. Any other error is wrapped in an
// *Exception whose cause is err. Returns nil if err is nil.
//
// Example:
//
//	err := structerr.New("build failed", 1)
//	err2 := structerr.WithDetail(err, "project", "my-app")
func WithDetail(err error, key string, value any) error {
	if err == nil {
		return nil
	}
	return withDetails(err, map[string]any{key: value})
}

// WithDetails merges multiple details into an error.
// New keys override existing ones with the same name.
//
// Returns nil if err is nil.
//
// Example:
//
//	err = structerr.WithDetails(err, map[string]any{
//	    "command": "make",
//	    "target":  "test",
//	})
func WithDetails(err error, details map[string]any) error {
	if err == nil {
		return nil
	}
	return withDetails(err, details)
}

func withDetails(err error, extra map[string]any) error {
	switch e := err.(type) {
	case *Error:
		cp := *e
		cp.details = mergeDetails(e.details, extra)
		return &cp
	case *Exception:
		cp := *e
		cp.details = mergeDetails(e.details, extra)
		return &cp
	}

	message := err.Error()
	var s Structured
	if stderrors.As(err, &s) {
		message = s.Message()
	}
	wrapped := &Exception{Base: exceptionKind.build(2, message, []any{CausedBy(err)})}
	wrapped.details = mergeDetails(nil, extra)
	return wrapped
}

func mergeDetails(base, extra map[string]any) map[string]any {
	merged := cloneMap(base)
	for k, v := range cloneMap(extra) {
		merged[k] = v
	}
	return merged
}
