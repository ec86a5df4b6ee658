// Package errlog renders structured errors for logs.
//
// It enriches errors with origin diagnostics and emits them as a text suffix,
// as go.uber.org/zap fields or as github.com/go-logr/logr key/value pairs:
//
//	logger.Error("sync failed", errlog.Fields(err)...)
//
//	errlog.Error(log, err, "reconcile failed", "name", req.Name)
//
// Keys are prefixed with "error." by default:
//
//	error.message   error.code      error.details.<key>
//	error.objects   error.module    error.func
//	error.line      error.class     error.cause
//
// Absent diagnostics render as "None" in text, objects and key/value pairs
// and are omitted from zap fields. Use New with options such as
// WithPlaceholder or WithoutTrace to change the defaults.
package errlog
