// Package structerr provides structured errors with stack traces and origin
// diagnostics.
//
// Errors carry a message, an optional application code, a details mapping,
// extra positional objects and a stack snapshot captured at construction. An
// enricher resolves where an error originated (package, function, line and
// receiver type) so logs can point at the failing call site. The package is
// fully compatible with the standard library errors package (errors.Is,
// errors.As, errors.Unwrap) and with github.com/pkg/errors stack traces.
//
// # Quick Start
//
// Creating errors:
//
//	// Coded error
//	err := structerr.New("user not found", 404)
//
//	// Formatted message
//	err := structerr.Newf(400, "invalid age: %d", age)
//
//	// Uncoded error with details and extra objects
//	err := structerr.NewException("sync aborted", peer,
//	    structerr.Details(map[string]any{"attempt": 3}))
//
// Wrapping errors:
//
//	if err := repo.Query(ctx, id); err != nil {
//	    return structerr.Wrap(err, "failed to load user", 503)
//	}
//
// Enriching errors for logging:
//
//	e, _ := structerr.Enrich(err)
//	log.Printf("%v [%s:%d %s]", e, e.Module(), e.Line(), e.DefiningType())
//
// # Error Kinds
//
// Every structured error belongs to a Kind. A kind is registered once with the
// names of its fixed positional fields:
//
//	var quotaKind = structerr.Define("QuotaError", "tenant", "limit")
//
//	err := quotaKind.NewError("quota exceeded", 429, "acme", 100, request)
//	// Fields():  {"tenant": "acme", "limit": 100}
//	// Objects(): [request]
//
// Arguments are classified the same way for every kind: Options are keyword
// arguments, the leading positional values bind to the fixed fields, and the
// rest are kept as extra objects. The built-in kinds "Error" and "Exception"
// declare no fixed fields.
//
// Custom error types embed Base and build it through their kind:
//
//	type QuotaError struct{ structerr.Base }
//
//	func NewQuotaError(tenant string, limit int) *QuotaError {
//	    return &QuotaError{Base: quotaKind.Base("quota exceeded",
//	        tenant, limit, structerr.CallerSkip(1))}
//	}
//
// # Text Format
//
// Error renders as
//
//	Error: <message>\tError Code: <code>
//	Details: <details>
//	Additional Objects: <objects>
//
// and Exception as the same without the code. Empty sections are omitted.
// Formatting with %+v appends the stack trace.
//
// # Diagnostics
//
// Enrich selects the innermost frame of the deepest stack trace in the error
// chain. Frames that belong to package initialization are skipped in favor of
// the next outer frame. When no stack is available the caller of Enrich is
// described instead. Absent fields are left zero and rendered as "None" by
// Diagnostics.String.
//
// The errlog subpackage turns errors into log suffixes, zap fields and logr
// key/value pairs.
//
// # Serialization
//
// ToReport flattens any error into a Report that encodes to JSON or YAML.
// Causes and contexts are reduced to their text so error chains never leak.
// Error, Exception and Enriched values implement json.Marshaler directly.
package structerr
