package errlog

import (
	"sort"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Fields converts err into zap fields. Detail keys are emitted in sorted
// order. Returns nil if err is nil.
//
// Example:
//
//	logger.Error("failed to sync", errlog.Fields(err)...)
func Fields(err error) []zap.Field {
	return std.fields(err, 1)
}

// Fields is like the package-level Fields but uses f's configuration.
func (f *Formatter) Fields(err error) []zap.Field {
	return f.fields(err, 1)
}

func (f *Formatter) fields(err error, skip int) []zap.Field {
	e := f.enrich(err, skip+1)
	if e == nil {
		return nil
	}

	fields := []zap.Field{
		zap.String(f.key("message"), e.Message()),
	}
	if code, ok := e.Code(); ok {
		fields = append(fields, zap.Int(f.key("code"), code))
	}

	details := e.Details()
	for _, k := range sortedKeys(details) {
		fields = append(fields, zap.Any(f.key("details."+k), details[k]))
	}
	if objects := e.Objects(); len(objects) > 0 {
		fields = append(fields, zap.Any(f.key("objects"), objects))
	}

	d := e.Diagnostics()
	if d.Module != "" {
		fields = append(fields, zap.String(f.key("module"), d.Module))
	}
	if d.Function != "" {
		fields = append(fields, zap.String(f.key("func"), d.Function))
	}
	if d.Line > 0 {
		fields = append(fields, zap.Int(f.key("line"), d.Line))
	}
	if d.DefiningType != "" {
		fields = append(fields, zap.String(f.key("class"), d.DefiningType))
	}

	// Use a distinct key for the cause to avoid a duplicate "error" field.
	if cause := e.Cause(); cause != nil {
		fields = append(fields, zap.NamedError(f.key("cause"), cause))
	}

	// zap.Error adds an errorVerbose field with the %+v rendering, which
	// carries the stack trace.
	if f.cfg.IncludeTrace {
		fields = append(fields, zap.Error(e.Original()))
	} else {
		fields = append(fields, zap.String("error", e.Error()))
	}
	return fields
}

// Object returns a zapcore.ObjectMarshaler describing err, for use with
// zap.Object. Keys are not prefixed.
//
// Example:
//
//	logger.Warn("retrying", zap.Object("error", errlog.Object(err)))
func Object(err error) zapcore.ObjectMarshaler {
	return std.object(err, 1)
}

// Object is like the package-level Object but uses f's configuration.
func (f *Formatter) Object(err error) zapcore.ObjectMarshaler {
	return f.object(err, 1)
}

func (f *Formatter) object(err error, skip int) zapcore.ObjectMarshaler {
	e := f.enrich(err, skip+1)
	return zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		if e == nil {
			return nil
		}
		enc.AddString("message", e.Message())
		if code, ok := e.Code(); ok {
			enc.AddInt("code", code)
		}
		if details := e.Details(); len(details) > 0 {
			if err := enc.AddObject("details", detailsMarshaler(details)); err != nil {
				return err
			}
		}
		if objects := e.Objects(); len(objects) > 0 {
			if err := enc.AddReflected("objects", objects); err != nil {
				return err
			}
		}

		d := e.Diagnostics()
		enc.AddString("module", orPlaceholder(d.Module, f.cfg.Placeholder))
		enc.AddString("func", orPlaceholder(d.Function, f.cfg.Placeholder))
		if d.Line > 0 {
			enc.AddInt("line", d.Line)
		}
		enc.AddString("class", orPlaceholder(d.DefiningType, f.cfg.Placeholder))

		if cause := e.Cause(); cause != nil {
			enc.AddString("cause", cause.Error())
		}
		if f.cfg.IncludeTrace {
			if trace := e.Trace(); trace != "" {
				enc.AddString("trace", trace)
			}
		}
		return nil
	})
}

func detailsMarshaler(details map[string]any) zapcore.ObjectMarshaler {
	return zapcore.ObjectMarshalerFunc(func(enc zapcore.ObjectEncoder) error {
		for _, k := range sortedKeys(details) {
			if err := enc.AddReflected(k, details[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orPlaceholder(s, placeholder string) string {
	if s == "" {
		return placeholder
	}
	return s
}
