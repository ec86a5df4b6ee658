package structerr

import "fmt"

// Error is a structured error carrying an application error code.
type Error struct {
	Base
	code    int
	hasCode bool
}

// compile-time guarantee that *Error implements Coded
var _ Coded = (*Error)(nil)

// Code returns the error code and whether one was set.
func (e *Error) Code() (int, bool) {
	return e.code, e.hasCode
}

// FormatError renders the error as
//
//	Error: <message>\tError Code: <code>
//	Details: <details>
//	Additional Objects: <objects>
//
// The code is omitted when unset; the details and objects lines are omitted
// when empty.
func (e *Error) FormatError() string {
	return render("Error", e.message, e.code, e.hasCode, e.details, e.objects)
}

// Error implements the error interface and returns FormatError.
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.FormatError()
}

// Format implements fmt.Formatter. %+v includes the stack trace.
func (e *Error) Format(s fmt.State, verb rune) {
	if e == nil {
		formatVerb(s, verb, e.Error(), "")
		return
	}
	formatVerb(s, verb, e.Error(), e.Trace())
}
