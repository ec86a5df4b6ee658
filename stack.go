package structerr

import (
	stderrors "errors"
	"fmt"
	"runtime"

	pkgerrors "github.com/pkg/errors"
)

// maxDepth bounds the number of program counters captured per error.
const maxDepth = 32

// maxChain bounds how far an error chain is walked.
const maxChain = 64

// stackTracer is the contract github.com/pkg/errors uses to expose a stack
// trace. Every structured error satisfies it.
type stackTracer interface {
	StackTrace() pkgerrors.StackTrace
}

// callers captures the program counters of the current goroutine. A skip of
// zero starts the snapshot at the function that called callers.
func callers(skip int) []uintptr {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}
	return pcs[:n]
}

// toStackTrace converts raw program counters into pkg/errors frames.
func toStackTrace(pcs []uintptr) pkgerrors.StackTrace {
	if len(pcs) == 0 {
		return nil
	}
	st := make(pkgerrors.StackTrace, len(pcs))
	for i, pc := range pcs {
		st[i] = pkgerrors.Frame(pc)
	}
	return st
}

// renderStack renders a stack trace in the multi-frame format used by
// pkg/errors for %+v. An empty trace renders as the empty string.
func renderStack(st pkgerrors.StackTrace) string {
	if len(st) == 0 {
		return ""
	}
	return fmt.Sprintf("%+v", st)
}

// framesOf expands a stack trace into runtime frames, innermost first.
// Inlined calls are reported as their own frames.
func framesOf(st pkgerrors.StackTrace) []runtime.Frame {
	if len(st) == 0 {
		return nil
	}
	pcs := make([]uintptr, len(st))
	for i, f := range st {
		pcs[i] = uintptr(f)
	}

	var frames []runtime.Frame
	iter := runtime.CallersFrames(pcs)
	for {
		frame, more := iter.Next()
		frames = append(frames, frame)
		if !more {
			break
		}
	}
	return frames
}

// stackOf returns the deepest non-empty stack trace found in err's chain,
// which is the one closest to where the failure originated.
func stackOf(err error) pkgerrors.StackTrace {
	var found pkgerrors.StackTrace
	for i := 0; err != nil && i < maxChain; i++ {
		if st, ok := err.(stackTracer); ok {
			if trace := st.StackTrace(); len(trace) > 0 {
				found = trace
			}
		}
		err = stderrors.Unwrap(err)
	}
	return found
}
