package structerr

import (
	"fmt"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
)

// Placeholder is rendered in place of absent diagnostic fields.
const Placeholder = "None"

// Diagnostics describes where an error originated.
// Zero values mean the field could not be resolved.
type Diagnostics struct {
	// Module is the import path of the package that owns the frame, or the
	// source file name without extension when no package can be resolved.
	Module string `json:"module,omitempty" yaml:"module,omitempty"`

	// Function is the function or method name. Closures keep their
	// ".funcN" suffix.
	Function string `json:"function,omitempty" yaml:"function,omitempty"`

	// Line is the source line number.
	Line int `json:"line,omitempty" yaml:"line,omitempty"`

	// DefiningType is the receiver type name when the frame belongs to a
	// method.
	DefiningType string `json:"defining_type,omitempty" yaml:"defining_type,omitempty"`
}

// IsZero reports whether no field could be resolved.
func (d Diagnostics) IsZero() bool {
	return d == Diagnostics{}
}

// String renders the diagnostics as a log suffix:
//
//	[Module: m] [Func: f] [Line: n] [Class: c]
//
// Absent fields render as Placeholder.
func (d Diagnostics) String() string {
	return d.Render(Placeholder)
}

// Render is like String but uses the given placeholder for absent fields.
func (d Diagnostics) Render(placeholder string) string {
	line := placeholder
	if d.Line > 0 {
		line = strconv.Itoa(d.Line)
	}
	return fmt.Sprintf("[Module: %s] [Func: %s] [Line: %s] [Class: %s]",
		orDefault(d.Module, placeholder),
		orDefault(d.Function, placeholder),
		line,
		orDefault(d.DefiningType, placeholder),
	)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// selectFrame picks the frame that best describes where an error was built.
// frames are innermost first. Package initialization frames are skipped in
// favor of the next outer frame outside the Go runtime. When only runtime
// frames remain the initialization frame itself is returned.
func selectFrame(frames []runtime.Frame) (runtime.Frame, bool) {
	if len(frames) == 0 {
		return runtime.Frame{}, false
	}
	if len(frames) > 1 && isPackageInit(frames[0].Function) {
		for _, f := range frames[1:] {
			if !isRuntime(f.Function) {
				return f, true
			}
		}
	}
	return frames[0], true
}

// origin resolves diagnostics for the innermost meaningful frame. An error
// built during package initialization keeps its package and line but reports
// no function, since no named function built it.
func origin(frames []runtime.Frame) (Diagnostics, bool) {
	frame, ok := selectFrame(frames)
	if !ok {
		return Diagnostics{}, false
	}
	d := diagnose(frame)
	if len(frames) > 1 && isPackageInit(frame.Function) {
		d.Function = ""
	}
	return d, true
}

// diagnose resolves diagnostics for a single frame.
func diagnose(frame runtime.Frame) Diagnostics {
	pkg, fn, recv := splitSymbol(frame.Function)
	d := Diagnostics{
		Module:       pkg,
		Function:     fn,
		Line:         frame.Line,
		DefiningType: recv,
	}
	if d.Module == "" && frame.File != "" {
		base := filepath.Base(frame.File)
		d.Module = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return d
}

// splitSymbol splits a fully qualified Go symbol such as
// "example.com/app.(*Server[...]).Serve.func1" into its package path
// ("example.com/app"), function ("Serve.func1") and receiver type ("Server").
func splitSymbol(name string) (pkg, fn, recv string) {
	if name == "" {
		return "", "", ""
	}

	// The package path ends at the first dot after the last slash. Dots in
	// the final path element are escaped by the linker as %2e.
	slash := strings.LastIndex(name, "/")
	dot := strings.Index(name[slash+1:], ".")
	if dot < 0 {
		return "", name, ""
	}
	pkg = strings.ReplaceAll(name[:slash+1+dot], "%2e", ".")

	sym := name[slash+1+dot+1:]
	sym = strings.ReplaceAll(sym, "[...]", "")
	sym = strings.TrimSuffix(sym, "-fm")

	// Pointer receivers: (*T).Method
	if strings.HasPrefix(sym, "(") {
		if end := strings.Index(sym, ")"); end > 0 {
			recv = strings.TrimPrefix(sym[1:end], "*")
			return pkg, strings.TrimPrefix(sym[end+1:], "."), recv
		}
	}

	// Value receivers: T.Method, as opposed to Func.func1 or init.0.
	if head, rest, ok := strings.Cut(sym, "."); ok {
		next, _, _ := strings.Cut(rest, ".")
		if !isGenerated(next) {
			return pkg, rest, head
		}
	}

	return pkg, sym, ""
}

// isGenerated reports whether a symbol element was synthesized by the
// compiler (closures, go/defer wrappers, numbered init functions).
func isGenerated(elem string) bool {
	if elem == "" || isDigits(elem) {
		return true
	}
	for _, prefix := range []string{"func", "gowrap", "deferwrap"} {
		if suffix, ok := strings.CutPrefix(elem, prefix); ok && isDigits(suffix) {
			return true
		}
	}
	return false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// isRuntime reports whether the symbol belongs to the Go runtime.
func isRuntime(name string) bool {
	pkg, _, _ := splitSymbol(name)
	return pkg == "runtime" || strings.HasPrefix(pkg, "runtime/")
}

// isPackageInit reports whether the symbol runs as part of package
// initialization rather than inside a named function.
func isPackageInit(name string) bool {
	_, fn, recv := splitSymbol(name)
	if recv != "" {
		return false
	}
	return fn == "init" || strings.HasPrefix(fn, "init.") || strings.HasPrefix(fn, "glob.")
}
