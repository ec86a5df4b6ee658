package structerr

import (
	"fmt"
	"io"
	"strings"
)

// render builds the deterministic text form of a structured error. The code
// shares the first line; details and objects each get their own line and are
// omitted when empty.
func render(label, message string, code int, hasCode bool, details map[string]any, objects []any) string {
	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteString(": ")
	sb.WriteString(message)
	if hasCode {
		fmt.Fprintf(&sb, "\tError Code: %d", code)
	}
	if len(details) > 0 {
		fmt.Fprintf(&sb, "\nDetails: %v", details)
	}
	if len(objects) > 0 {
		fmt.Fprintf(&sb, "\nAdditional Objects: %v", objects)
	}
	return sb.String()
}

// formatVerb implements fmt.Formatter for structured errors: %s and %v print
// the text form, %+v appends the stack trace, %q quotes the text form.
// Other verbs print nothing, as with github.com/pkg/errors.
func formatVerb(s fmt.State, verb rune, text, trace string) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, text)
			_, _ = io.WriteString(s, trace)
			return
		}
		_, _ = io.WriteString(s, text)
	case 's':
		_, _ = io.WriteString(s, text)
	case 'q':
		fmt.Fprintf(s, "%q", text)
	}
}
