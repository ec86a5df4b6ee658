package errlog

import (
	"strings"

	"github.com/jmgilman/go/structerr"
)

// InfoHeader introduces the diagnostics suffix in Describe output.
const InfoHeader = "Additional Exception Info -> "

// Config controls how errors are rendered.
type Config struct {
	// Placeholder is rendered for absent diagnostic fields.
	Placeholder string

	// IncludeTrace adds the stack trace to text and key/value output.
	IncludeTrace bool

	// KeyPrefix is prepended to every field key.
	KeyPrefix string
}

// DefaultConfig returns the configuration used by the package-level functions.
func DefaultConfig() Config {
	return Config{
		Placeholder:  structerr.Placeholder,
		IncludeTrace: true,
		KeyPrefix:    "error.",
	}
}

// Option configures a Formatter.
type Option func(*Config)

// WithPlaceholder sets the text rendered for absent diagnostic fields.
func WithPlaceholder(p string) Option {
	return func(c *Config) { c.Placeholder = p }
}

// WithoutTrace leaves stack traces out of the output.
func WithoutTrace() Option {
	return func(c *Config) { c.IncludeTrace = false }
}

// WithKeyPrefix sets the prefix for field keys.
func WithKeyPrefix(prefix string) Option {
	return func(c *Config) { c.KeyPrefix = prefix }
}

// Formatter renders errors according to a Config.
type Formatter struct {
	cfg Config
}

var std = New()

// New creates a Formatter from DefaultConfig and the given options.
func New(opts ...Option) *Formatter {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Formatter{cfg: cfg}
}

// Config returns the formatter's configuration.
func (f *Formatter) Config() Config {
	return f.cfg
}

// Describe renders err for a log line: the error text, the stack trace when
// enabled, then the diagnostics suffix on its own line. Returns the empty
// string if err is nil.
func Describe(err error) string {
	return std.describe(err, 1)
}

// Suffix returns only the bracketed diagnostics for err.
func Suffix(err error) string {
	return std.suffix(err, 1)
}

// Describe is like the package-level Describe but uses f's configuration.
func (f *Formatter) Describe(err error) string {
	return f.describe(err, 1)
}

// Suffix is like the package-level Suffix but uses f's configuration.
func (f *Formatter) Suffix(err error) string {
	return f.suffix(err, 1)
}

func (f *Formatter) describe(err error, skip int) string {
	e := f.enrich(err, skip+1)
	if e == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(e.Error())
	if f.cfg.IncludeTrace {
		sb.WriteString(e.Trace())
	}
	sb.WriteString("\n")
	sb.WriteString(InfoHeader)
	sb.WriteString(e.Diagnostics().Render(f.cfg.Placeholder))
	return sb.String()
}

func (f *Formatter) suffix(err error, skip int) string {
	e := f.enrich(err, skip+1)
	if e == nil {
		return structerr.Diagnostics{}.Render(f.cfg.Placeholder)
	}
	return e.Diagnostics().Render(f.cfg.Placeholder)
}

// enrich reuses err when it is already enriched. Otherwise the error is
// enriched, falling back to the frame skip levels above enrich's caller.
func (f *Formatter) enrich(err error, skip int) *structerr.Enriched {
	if err == nil {
		return nil
	}
	if e, ok := err.(*structerr.Enriched); ok {
		return e
	}
	e, _ := structerr.EnrichCaller(err, skip+1)
	return e
}

func (f *Formatter) key(name string) string {
	return f.cfg.KeyPrefix + name
}
