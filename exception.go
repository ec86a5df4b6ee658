package structerr

import "fmt"

// Exception is a structured error without an error code.
type Exception struct {
	Base
}

var _ Structured = (*Exception)(nil)

// FormatException renders the error as
//
//	Exception: <message>
//	Details: <details>
//	Additional Objects: <objects>
//
// omitting the details and objects lines when they are empty.
func (e *Exception) FormatException() string {
	return render("Exception", e.message, 0, false, e.details, e.objects)
}

// Error implements the error interface and returns FormatException.
func (e *Exception) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.FormatException()
}

// Format implements fmt.Formatter. %+v includes the stack trace.
func (e *Exception) Format(s fmt.State, verb rune) {
	if e == nil {
		formatVerb(s, verb, e.Error(), "")
		return
	}
	formatVerb(s, verb, e.Error(), e.Trace())
}
