package errlog

import (
	"github.com/go-logr/logr"
)

// KeysAndValues converts err into logr key/value pairs. Detail keys are
// emitted in sorted order. Returns nil if err is nil.
func KeysAndValues(err error) []any {
	return std.keysAndValues(err, 1)
}

// KeysAndValues is like the package-level KeysAndValues but uses f's
// configuration.
func (f *Formatter) KeysAndValues(err error) []any {
	return f.keysAndValues(err, 1)
}

// Error logs err through logger with the structured key/value pairs of err
// followed by keysAndValues. Nothing is logged if err is nil.
//
// Example:
//
//	errlog.Error(log, err, "failed to reconcile", "name", req.Name)
func Error(logger logr.Logger, err error, msg string, keysAndValues ...any) {
	std.logError(logger, err, msg, keysAndValues, 1)
}

// Error is like the package-level Error but uses f's configuration.
func (f *Formatter) Error(logger logr.Logger, err error, msg string, keysAndValues ...any) {
	f.logError(logger, err, msg, keysAndValues, 1)
}

func (f *Formatter) logError(logger logr.Logger, err error, msg string, extra []any, skip int) {
	if err == nil {
		return
	}
	kv := f.keysAndValues(err, skip+1)
	logger.Error(err, msg, append(kv, extra...)...)
}

func (f *Formatter) keysAndValues(err error, skip int) []any {
	e := f.enrich(err, skip+1)
	if e == nil {
		return nil
	}

	kv := []any{f.key("message"), e.Message()}
	if code, ok := e.Code(); ok {
		kv = append(kv, f.key("code"), code)
	}

	details := e.Details()
	for _, k := range sortedKeys(details) {
		kv = append(kv, f.key("details."+k), details[k])
	}
	if objects := e.Objects(); len(objects) > 0 {
		kv = append(kv, f.key("objects"), objects)
	}

	d := e.Diagnostics()
	kv = append(kv,
		f.key("module"), orPlaceholder(d.Module, f.cfg.Placeholder),
		f.key("func"), orPlaceholder(d.Function, f.cfg.Placeholder),
	)
	if d.Line > 0 {
		kv = append(kv, f.key("line"), d.Line)
	}
	kv = append(kv, f.key("class"), orPlaceholder(d.DefiningType, f.cfg.Placeholder))

	if cause := e.Cause(); cause != nil {
		kv = append(kv, f.key("cause"), cause.Error())
	}
	if f.cfg.IncludeTrace {
		if trace := e.Trace(); trace != "" {
			kv = append(kv, f.key("trace"), trace)
		}
	}
	return kv
}
