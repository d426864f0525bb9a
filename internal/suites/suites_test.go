package suites_test

import (
	"testing"

	"github.com/katalvlaran/rangefold/internal/querytest"
	"github.com/katalvlaran/rangefold/internal/suites"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry checks naming and lookup.
func TestRegistry(t *testing.T) {
	names := suites.Names()
	require.Len(t, names, 7)
	assert.IsIncreasing(t, names)

	s, ok := suites.Lookup("fenwick2d")
	require.True(t, ok)
	assert.Equal(t, "fenwick2d", s.Name)

	_, ok = suites.Lookup("nope")
	assert.False(t, ok)
}

// TestAll_SmallSessions runs every suite briefly with tiny and unit limits.
func TestAll_SmallSessions(t *testing.T) {
	for _, s := range suites.All() {
		t.Run(s.Name, func(t *testing.T) {
			_, err := querytest.Run(t.Context(), s.Factory, querytest.WithInstances(5), querytest.WithQueries(50))
			require.NoError(t, err)
			_, err = querytest.Run(t.Context(), s.Factory, querytest.WithInstances(3), querytest.WithMaxLen(2), querytest.WithValueLimit(1))
			require.NoError(t, err)
		})
	}
}
