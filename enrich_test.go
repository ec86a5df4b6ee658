package structerr

import (
	stderrors "errors"
	"fmt"
	"runtime"
	"strconv"
	"strings"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/jmgilman/go/structerr"

var initFailure, initLine = New("failed during init", 9), currentLine()

func currentLine() int {
	_, _, line, _ := runtime.Caller(1)
	return line
}

type worker struct{}

//go:noinline
func (w *worker) fail() error {
	return New("worker failed", 7, "job-1")
}

type probe struct{}

//go:noinline
func (p probe) fail() error {
	return NewException("probe failed")
}

type handler struct{}

//go:noinline
func (h *handler) inspect(err error) (*Enriched, int) {
	_, _, line, _ := runtime.Caller(0)
	e, _ := Enrich(err)
	return e, line + 1
}

//go:noinline
func innerFailure() error {
	return New("inner", 1)
}

//go:noinline
func pkgFailure() error {
	return pkgerrors.New("pkg failure")
}

func TestEnrich_PointerReceiver(t *testing.T) {
	w := &worker{}
	e, err := Enrich(w.fail())
	require.NoError(t, err)

	require.Equal(t, modulePath, e.Module())
	require.Equal(t, "fail", e.Function())
	require.Equal(t, "worker", e.DefiningType())
	require.Greater(t, e.Line(), 0)
}

func TestEnrich_ValueReceiver(t *testing.T) {
	e := MustEnrich(probe{}.fail())
	require.Equal(t, "fail", e.Function())
	require.Equal(t, "probe", e.DefiningType())
}

func TestEnrich_PlainFunction(t *testing.T) {
	e := MustEnrich(innerFailure())
	require.Equal(t, modulePath, e.Module())
	require.Equal(t, "innerFailure", e.Function())
	require.Equal(t, "", e.DefiningType())
}

func TestEnrich_Closure(t *testing.T) {
	build := func() error { return New("closure failed", 1) }
	e := MustEnrich(build())
	require.True(t, strings.HasPrefix(e.Function(), "TestEnrich_Closure.func"), e.Function())
	require.Equal(t, "", e.DefiningType())
}

func TestEnrich_PackageInit(t *testing.T) {
	e := MustEnrich(initFailure)

	require.Equal(t, Diagnostics{Module: modulePath, Line: initLine}, e.Diagnostics())
	require.Equal(t, "[Module: "+modulePath+"] [Func: None] [Line: "+strconv.Itoa(initLine)+"] [Class: None]",
		e.Diagnostics().String())
}

func TestEnrich_Line(t *testing.T) {
	_, _, line, _ := runtime.Caller(0)
	err := New("boom", 1)
	e := MustEnrich(err)
	require.Equal(t, line+1, e.Line())
}

func TestEnrich_FallbackToCaller(t *testing.T) {
	h := &handler{}
	e, line := h.inspect(stderrors.New("plain"))

	require.Equal(t, modulePath, e.Module())
	require.Equal(t, "inspect", e.Function())
	require.Equal(t, "handler", e.DefiningType())
	require.Equal(t, line, e.Line())
}

func TestEnrich_FallbackWithoutTrace(t *testing.T) {
	e := MustEnrich(New("boom", 1, NoTrace()))
	require.Equal(t, "TestEnrich_FallbackWithoutTrace", e.Function())
	require.Empty(t, e.Trace())
}

func TestEnrichCaller(t *testing.T) {
	var e *Enriched
	func() {
		e, _ = EnrichCaller(stderrors.New("plain"), 1)
	}()
	require.Equal(t, "TestEnrichCaller", e.Function())
}

func TestEnrich_PkgErrors(t *testing.T) {
	e := MustEnrich(pkgFailure())
	require.Equal(t, modulePath, e.Module())
	require.Equal(t, "pkgFailure", e.Function())
	require.NotEmpty(t, e.Trace())
}

func TestEnrich_DeepestStack(t *testing.T) {
	inner := innerFailure()
	outer := fmt.Errorf("load: %w", Wrap(inner, "outer", 2))

	e := MustEnrich(outer)
	require.Equal(t, "innerFailure", e.Function())
}

func TestEnrich_Nil(t *testing.T) {
	e, err := Enrich(nil)
	require.Nil(t, e)
	require.ErrorIs(t, err, ErrInvalidArgument)

	require.Panics(t, func() { MustEnrich(nil) })
}

func TestEnrich_Forwarding(t *testing.T) {
	cause := stderrors.New("disk full")
	handling := stderrors.New("rollback")
	orig := New("write failed", 507, "segment-4",
		Details(map[string]any{"path": "/var/data"}),
		Keyword("attempt", 2),
		CausedBy(cause),
		During(handling),
	)
	e := MustEnrich(orig)

	require.Equal(t, orig.Error(), e.Error())
	require.Equal(t, orig.Message(), e.Message())
	code, ok := e.Code()
	require.True(t, ok)
	require.Equal(t, 507, code)
	require.Equal(t, orig.Details(), e.Details())
	require.Equal(t, orig.Objects(), e.Objects())
	require.Equal(t, orig.Keywords(), e.Keywords())
	require.Equal(t, orig.Context(), e.Context())
	require.Equal(t, orig.Cause(), e.Cause())
	require.Equal(t, orig.Trace(), e.Trace())
	require.Equal(t, orig.StackTrace(), e.StackTrace())
	require.True(t, e.Original() == error(orig))
	require.True(t, e.Unwrap() == error(orig))
}

func TestEnrich_ErrorsCompatibility(t *testing.T) {
	cause := stderrors.New("disk full")
	orig := New("write failed", 507, CausedBy(cause))
	e := MustEnrich(orig)

	require.ErrorIs(t, e, orig)
	require.ErrorIs(t, e, cause)

	var target *Error
	require.ErrorAs(t, e, &target)
	require.Same(t, orig, target)

	// Enriched is not itself structured, so As lands on the original.
	var s Structured
	require.ErrorAs(t, e, &s)
	require.Same(t, orig, s.(*Error))
}

func TestEnrich_PlainError(t *testing.T) {
	e := MustEnrich(stderrors.New("plain"))

	require.Equal(t, "plain", e.Error())
	require.Equal(t, "plain", e.Message())
	_, ok := e.Code()
	require.False(t, ok)
	require.NotNil(t, e.Details())
	require.Empty(t, e.Details())
	require.NotNil(t, e.Objects())
	require.NotNil(t, e.Keywords())
	require.Nil(t, e.Context())
	require.Nil(t, e.Cause())
	require.Empty(t, e.StackTrace())
}

func TestEnrich_Reenrich(t *testing.T) {
	first := MustEnrich(innerFailure())
	second := MustEnrich(first)
	require.Equal(t, first.Diagnostics(), second.Diagnostics())
}

func TestEnrich_DoesNotMutateOriginal(t *testing.T) {
	orig := New("boom", 1, Detail("k", "v"))
	before := orig.Error()
	_ = MustEnrich(orig)
	require.Equal(t, before, orig.Error())
	require.Equal(t, map[string]any{"k": "v"}, orig.Details())
}

func TestEnriched_Format(t *testing.T) {
	e := MustEnrich(New("boom", 1))
	require.Equal(t, "Error: boom\tError Code: 1", fmt.Sprintf("%v", e))
	require.Equal(t, e.Error()+e.Trace(), fmt.Sprintf("%+v", e))
}
