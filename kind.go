package structerr

import (
	"sort"
	"sync"
)

// Kind is a registered family of structured errors.
//
// A Kind declares the fixed positional fields its constructors consume. When
// an error of the kind is built, the leading positional arguments bind to
// those fields by name and every positional argument past them is kept, in
// order, as an extra object. Options mixed into the arguments are applied as
// keyword arguments. The classification is identical for every kind, so error
// types never re-implement it.
//
// Kinds are declared once, usually as package variables:
//
//	var quotaKind = structerr.Define("QuotaError", "tenant", "limit")
type Kind struct {
	name  string
	fixed []string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]*Kind)
)

// Base kinds backing the package-level constructors. Neither declares fixed
// fields: message and code are typed parameters, not positional arguments.
var (
	errorKind     = Define("Error")
	exceptionKind = Define("Exception")
)

// Define registers a new kind with the given fixed field names.
// Define panics if name is empty or already registered.
func Define(name string, fixed ...string) *Kind {
	if name == "" {
		panic("structerr: Define called with empty kind name")
	}

	registryMu.Lock()
	defer registryMu.Unlock()

	if _, dup := registry[name]; dup {
		panic("structerr: Define called twice for kind " + name)
	}

	k := &Kind{
		name:  name,
		fixed: append([]string(nil), fixed...),
	}
	registry[name] = k
	return k
}

// Lookup returns the kind registered under name.
func Lookup(name string) (*Kind, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	k, ok := registry[name]
	return k, ok
}

// Kinds returns the names of all registered kinds in sorted order.
func Kinds() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Name returns the kind's registered name.
func (k *Kind) Name() string {
	return k.name
}

// Fixed returns the declared fixed field names.
func (k *Kind) Fixed() []string {
	return append([]string(nil), k.fixed...)
}

// FixedCount returns the number of positional arguments consumed by fixed
// fields. It is never negative.
func (k *Kind) FixedCount() int {
	return len(k.fixed)
}

// NewError builds a coded error of this kind.
func (k *Kind) NewError(message string, code int, args ...any) *Error {
	return &Error{
		Base:    k.build(1, message, args),
		code:    code,
		hasCode: true,
	}
}

// NewException builds an uncoded error of this kind.
func (k *Kind) NewException(message string, args ...any) *Exception {
	return &Exception{Base: k.build(1, message, args)}
}

// Base builds the shared state for a custom error type embedding Base.
//
//	type QuotaError struct {
//	    structerr.Base
//	}
//
//	func NewQuotaError(tenant string, limit int, extra ...any) *QuotaError {
//	    args := append([]any{tenant, limit, structerr.CallerSkip(1)}, extra...)
//	    return &QuotaError{Base: quotaKind.Base("quota exceeded", args...)}
//	}
func (k *Kind) Base(message string, args ...any) Base {
	return k.build(1, message, args)
}

// build classifies args and captures the stack. skip is the number of frames
// between build and the caller whose call site should head the stack.
func (k *Kind) build(skip int, message string, args []any) Base {
	var o options
	positional := make([]any, 0, len(args))
	for _, arg := range args {
		if opt, ok := arg.(Option); ok {
			if opt != nil {
				opt(&o)
			}
			continue
		}
		positional = append(positional, arg)
	}

	b := Base{
		kind:     k.name,
		message:  message,
		details:  o.details,
		keywords: o.keywords,
		cause:    o.cause,
		context:  o.context,
	}
	if b.details == nil {
		b.details = make(map[string]any)
	}

	n := min(k.FixedCount(), len(positional))
	if n > 0 {
		b.fields = make(map[string]any, n)
		for i := 0; i < n; i++ {
			b.fields[k.fixed[i]] = positional[i]
		}
	}
	b.objects = append(make([]any, 0, len(positional)-n), positional[n:]...)

	if !o.noTrace {
		b.stack = callers(skip + 1 + o.skip)
	}
	return b
}
