package structerr_test

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmgilman/go/structerr"
)

func TestErrorWorkflow_CreateWrapEnrich(t *testing.T) {
	// Layer 1: database error
	dbErr := structerr.New("connection failed", 503, structerr.Detail("host", "db-1"))

	// Layer 2: repository wraps with details
	repoErr := structerr.Wrap(dbErr, "failed to query users", 500)
	repoErr = structerr.WithDetail(repoErr, "table", "users")

	// Layer 3: service wraps with business context
	svcErr := structerr.Wrap(repoErr, "user not found", 404, "12345")

	// Layer 4: handler enriches for logging
	e := structerr.MustEnrich(svcErr)

	code, _ := e.Code()
	require.Equal(t, 404, code)
	require.Equal(t, "user not found", e.Message())
	require.Equal(t, []any{"12345"}, e.Objects())

	// Diagnostics point at the innermost construction site.
	require.Equal(t, "TestErrorWorkflow_CreateWrapEnrich", e.Function())
	require.Equal(t, dbErr.Trace(), e.Trace())

	// The report only carries text for the cause.
	data, err := json.Marshal(e)
	require.NoError(t, err)
	var r structerr.Report
	require.NoError(t, json.Unmarshal(data, &r))
	require.Equal(t, "user not found", r.Message)
	require.Contains(t, r.Cause, "failed to query users")
	require.NotContains(t, string(data), "connection failed")
}

func TestErrorChain_StandardLibraryCompatibility(t *testing.T) {
	ErrNotFound := stderrors.New("not found")

	err1 := fmt.Errorf("database: %w", ErrNotFound)
	err2 := structerr.Wrap(err1, "repository error", 500)
	err3 := structerr.Wrap(err2, "service error", 500)

	require.True(t, stderrors.Is(err3, ErrNotFound))

	var target *structerr.Error
	require.True(t, stderrors.As(err3, &target))
	require.Equal(t, "service error", target.Message())

	unwrapped := stderrors.Unwrap(err3)
	require.Equal(t, err2, unwrapped)
}

func TestErrorChain_TraversalDepth(t *testing.T) {
	err := stderrors.New("root cause")
	for i := 0; i < 10; i++ {
		err = structerr.Wrapf(err, 500, "layer %d", i)
	}

	depth := 0
	for e := err; e != nil; e = stderrors.Unwrap(e) {
		depth++
	}
	require.Equal(t, 11, depth) // 1 root + 10 wraps
}

func TestConcurrentErrorCreation(t *testing.T) {
	const goroutines = 100
	var wg sync.WaitGroup
	errs := make([]error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			err := structerr.Newf(500, "build %d failed", idx)
			errs[idx] = structerr.WithDetail(err, "index", idx)
		}(i)
	}

	wg.Wait()

	for i, err := range errs {
		require.NotNil(t, err)
		code, _ := structerr.CodeOf(err)
		require.Equal(t, 500, code)
		require.Equal(t, i, structerr.DetailsOf(err)["index"])
	}
}

func TestConcurrentDetailEnhancement(t *testing.T) {
	baseErr := structerr.New("base error", 500)
	const goroutines = 50
	var wg sync.WaitGroup

	enhanced := make([]error, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			enhanced[idx] = structerr.WithDetail(baseErr, fmt.Sprintf("key_%d", idx), idx)
		}(i)
	}

	wg.Wait()

	for i, err := range enhanced {
		details := structerr.DetailsOf(err)
		require.Len(t, details, 1)
		require.Equal(t, i, details[fmt.Sprintf("key_%d", i)])
	}

	// Base error unchanged
	require.Empty(t, baseErr.Details())
}

func TestConcurrentEnrich(t *testing.T) {
	shared := structerr.New("shared", 1)
	const goroutines = 50
	var wg sync.WaitGroup

	results := make([]*structerr.Enriched, goroutines)
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = structerr.MustEnrich(shared)
		}(i)
	}

	wg.Wait()

	for _, e := range results {
		require.Equal(t, results[0].Diagnostics(), e.Diagnostics())
	}
}

func TestDetailAccumulation(t *testing.T) {
	var err1 error = structerr.New("build failed", 1)
	err1 = structerr.WithDetail(err1, "layer1", "value1")

	err2 := structerr.Wrap(err1, "execution failed", 2)
	err2 = structerr.WithDetail(err2, "layer2", "value2")

	err3 := structerr.Wrap(err2, "internal error", 3)
	err3 = structerr.WithDetail(err3, "layer3", "value3")

	// Outermost error has its own details
	require.Equal(t, map[string]any{"layer3": "value3"}, structerr.DetailsOf(err3))

	// Inner errors keep their own details (not merged)
	var inner structerr.Structured
	require.True(t, stderrors.As(stderrors.Unwrap(err3), &inner))
	require.Equal(t, map[string]any{"layer2": "value2"}, inner.Details())
}
