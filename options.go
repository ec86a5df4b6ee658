package structerr

import "reflect"

// detailsValueKey holds a details argument that was not a mapping.
const detailsValueKey = "value"

// Option is a keyword argument to a structured error constructor. Options may
// be mixed freely with positional arguments; the constructor separates them.
type Option func(*options)

type options struct {
	details  map[string]any
	keywords map[string]any
	cause    error
	context  error
	noTrace  bool
	skip     int
}

// Details sets the error details. A map with string keys is copied into the
// details; any other value, including nil, is stored under the "value" key.
// A later Details replaces earlier Details and Detail options.
func Details(v any) Option {
	return func(o *options) { o.details = coerceDetails(v) }
}

// Detail sets a single details key, keeping keys set by earlier options.
func Detail(key string, value any) Option {
	return func(o *options) {
		if o.details == nil {
			o.details = make(map[string]any)
		}
		o.details[key] = value
	}
}

// Keyword stores a value in the extra-keywords bag.
func Keyword(key string, value any) Option {
	return func(o *options) {
		if o.keywords == nil {
			o.keywords = make(map[string]any)
		}
		o.keywords[key] = value
	}
}

// CausedBy records err as the explicit root cause. The cause is returned by
// Unwrap, so errors.Is and errors.As see it.
func CausedBy(err error) Option {
	return func(o *options) { o.cause = err }
}

// During records err as the error that was being handled when the new error
// was built. Unlike a cause it is not part of the Unwrap chain.
func During(err error) Option {
	return func(o *options) { o.context = err }
}

// NoTrace disables stack capture for the error being built.
func NoTrace() Option {
	return func(o *options) { o.noTrace = true }
}

// CallerSkip drops n additional frames from the captured stack. Helpers that
// build errors on behalf of their callers pass CallerSkip(1).
func CallerSkip(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.skip += n
		}
	}
}

// coerceDetails normalizes a details argument to a mapping.
func coerceDetails(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return cloneMap(m)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = iter.Value().Interface()
		}
		return out
	}

	return map[string]any{detailsValueKey: v}
}

// cloneMap copies in, deep-cloning nested maps with string keys so callers
// never share state with an error. The result is never nil.
func cloneMap(in map[string]any) map[string]any {
	out := make(map[string]any, len(in))
	for k, v := range in {
		if mv, ok := v.(map[string]any); ok {
			out[k] = cloneMap(mv)
			continue
		}
		out[k] = v
	}
	return out
}
