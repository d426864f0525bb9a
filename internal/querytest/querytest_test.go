package querytest_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/katalvlaran/rangefold/internal/querytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counterFactory models a counter against itself; the "bad" command is
// wired to diverge once the counter exceeds limit.
func counterFactory(limit int) querytest.Factory {
	return func(env querytest.Env) ([]querytest.Command, error) {
		model, impl := 0, 0

		return []querytest.Command{
			{Name: "inc", Weight: 3, Run: func(rng *rand.Rand) error {
				d := rng.Intn(env.ValueLimit)
				model += d
				impl += d

				return nil
			}},
			{Name: "check", Weight: 1, Run: func(*rand.Rand) error {
				got := impl
				if limit > 0 && impl > limit {
					got++
				}

				return querytest.Expect("value", got, model)
			}},
		}, nil
	}
}

// TestRun_Passes checks a consistent pair finishes with a full report.
func TestRun_Passes(t *testing.T) {
	rep, err := querytest.Run(t.Context(), counterFactory(0), querytest.WithInstances(3), querytest.WithQueries(50))
	require.NoError(t, err)
	assert.Equal(t, 3, rep.Instances)
	assert.Equal(t, 150, rep.Total())
	assert.Positive(t, rep.Commands["inc"])
	assert.Positive(t, rep.Commands["check"])
}

// TestRun_ReportsFailure checks the mismatch surfaces as a *Failure wrapping ErrMismatch.
func TestRun_ReportsFailure(t *testing.T) {
	_, err := querytest.Run(t.Context(), counterFactory(5), querytest.WithQueries(500))
	require.Error(t, err)
	assert.True(t, errors.Is(err, querytest.ErrMismatch))

	var f *querytest.Failure
	require.True(t, errors.As(err, &f))
	assert.Equal(t, "check", f.Command)
	assert.Equal(t, 0, f.Instance)
}

// TestRun_Deterministic verifies identical seeds give identical reports.
func TestRun_Deterministic(t *testing.T) {
	a, err := querytest.Run(t.Context(), counterFactory(0), querytest.WithSeed(7))
	require.NoError(t, err)
	b, err := querytest.Run(t.Context(), counterFactory(0), querytest.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestRun_NoCommands rejects factories without weighted commands.
func TestRun_NoCommands(t *testing.T) {
	_, err := querytest.Run(t.Context(), func(querytest.Env) ([]querytest.Command, error) {
		return []querytest.Command{{Name: "idle", Weight: 0}}, nil
	})
	assert.ErrorIs(t, err, querytest.ErrNoCommands)
}

// TestRun_Cancelled stops inside an instance as soon as the context is done.
func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()
	calls := 0
	rep, err := querytest.Run(ctx, func(querytest.Env) ([]querytest.Command, error) {
		return []querytest.Command{{Name: "tick", Weight: 1, Run: func(*rand.Rand) error {
			calls++
			if calls == 3 {
				cancel()
			}

			return nil
		}}}, nil
	}, querytest.WithInstances(5), querytest.WithQueries(1000))
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, calls)
	assert.Equal(t, 3, rep.Total())
	assert.Equal(t, 0, rep.Instances)
}

// TestRange_Bounds checks generated ranges stay ordered and in bounds.
func TestRange_Bounds(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sawEmpty := false
	for i := 0; i < 1000; i++ {
		s, e := querytest.Range(rng, 7)
		require.True(t, 0 <= s && s <= e && e <= 7)
		sawEmpty = sawEmpty || s == e
		l := querytest.Len(rng, 3, 6)
		require.True(t, l >= 3 && l < 6)
	}
	assert.True(t, sawEmpty, "empty ranges must be generated")
}

// TestOptions_Panics guards the option validators.
func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { querytest.WithInstances(0) })
	assert.Panics(t, func() { querytest.WithQueries(-1) })
	assert.Panics(t, func() { querytest.WithMaxLen(1) })
	assert.Panics(t, func() { querytest.WithValueLimit(0) })
	assert.Panics(t, func() { querytest.WithFirstInstance(-1) })
}
