package structerr

import (
	"encoding/json"
	stderrors "errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Report is a flat, serializable representation of an error.
//
// The cause and context are reduced to their error text so error chains never
// leak into a report. The stack trace is only populated by ToReport; the JSON
// encoding of an error value omits it.
type Report struct {
	// Kind is the name of the kind that built the error. Empty for plain errors.
	Kind string `json:"kind,omitempty" yaml:"kind,omitempty"`

	// Message is the human-readable error message.
	Message string `json:"message" yaml:"message"`

	// Code is the error code, if one was set.
	Code *int `json:"code,omitempty" yaml:"code,omitempty"`

	// Details contains the error details. Omitted when empty.
	Details map[string]any `json:"details,omitempty" yaml:"details,omitempty"`

	// Fields contains values bound to the kind's fixed fields.
	Fields map[string]any `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Objects contains the extra positional arguments.
	Objects []any `json:"objects,omitempty" yaml:"objects,omitempty"`

	// Cause is the text of the explicit cause.
	Cause string `json:"cause,omitempty" yaml:"cause,omitempty"`

	// Context is the text of the error being handled when this one was built.
	Context string `json:"context,omitempty" yaml:"context,omitempty"`

	// Trace is the rendered stack trace.
	Trace string `json:"trace,omitempty" yaml:"trace,omitempty"`

	// Diagnostics describes where the error originated, for enriched errors.
	Diagnostics *Diagnostics `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// ToReport converts any error to a Report. Returns nil if err is nil.
//
// For structured errors the outermost structured error in the chain supplies
// the kind, message, details, fields, objects, cause and context. Plain errors
// contribute only their text. Enriched errors add their diagnostics.
//
// Example:
//
//	func handleError(w http.ResponseWriter, err error) {
//	    report := structerr.ToReport(err)
//	    if report == nil {
//	        return
//	    }
//	    w.Header().Set("Content-Type", "application/json")
//	    json.NewEncoder(w).Encode(report)
//	}
func ToReport(err error) *Report {
	if err == nil {
		return nil
	}

	r := &Report{
		Message: err.Error(),
		Trace:   TraceOf(err),
	}
	if code, ok := CodeOf(err); ok {
		r.Code = &code
	}

	var s Structured
	if stderrors.As(err, &s) {
		r.Kind = s.Kind()
		r.Message = s.Message()
		r.Details = nonEmptyMap(s.Details())
		r.Fields = nonEmptyMap(s.Fields())
		if objects := s.Objects(); len(objects) > 0 {
			r.Objects = objects
		}
		if cause := s.Cause(); cause != nil {
			r.Cause = cause.Error()
		}
		if ctx := s.Context(); ctx != nil {
			r.Context = ctx.Error()
		}
	}

	var enriched *Enriched
	if stderrors.As(err, &enriched) {
		d := enriched.Diagnostics()
		if !d.IsZero() {
			r.Diagnostics = &d
		}
	}
	return r
}

// JSON encodes the report.
func (r *Report) JSON() ([]byte, error) {
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode report as JSON: %w", err)
	}
	return data, nil
}

// YAML encodes the report.
func (r *Report) YAML() ([]byte, error) {
	data, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode report as YAML: %w", err)
	}
	return data, nil
}

// MarshalJSON implements json.Marshaler for Error.
//
// Example:
//
//	err := structerr.New("user not found", 404)
//	data, _ := json.Marshal(err)
//	// {"kind":"Error","message":"user not found","code":404}
func (e *Error) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	return marshalJSON(e)
}

// MarshalJSON implements json.Marshaler for Exception.
func (e *Exception) MarshalJSON() ([]byte, error) {
	if e == nil {
		return []byte("null"), nil
	}
	return marshalJSON(e)
}

func marshalJSON(err error) ([]byte, error) {
	data, merr := json.Marshal(marshalReport(err))
	if merr != nil {
		return nil, fmt.Errorf("marshal structured error: %w", merr)
	}
	return data, nil
}

// marshalReport is the report embedded in JSON encodings of error values.
// Stack traces are left out.
func marshalReport(err error) *Report {
	r := ToReport(err)
	r.Trace = ""
	return r
}

func nonEmptyMap(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return m
}
