package main

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/rangefold/internal/querytest"
	"github.com/katalvlaran/rangefold/internal/suites"
)

// TestRun_List prints the registry.
func TestRun_List(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--list"}, &out, &errOut))
	assert.Equal(t, strings.Join(suites.Names(), "\n")+"\n", out.String())
	assert.Empty(t, errOut.String())
}

// TestRun_AllSuitesPass runs a short session and inspects the JSON log.
func TestRun_AllSuitesPass(t *testing.T) {
	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"--instances", "2", "--queries", "30", "--parallel", "3"}, &out, &errOut)
	require.NoError(t, err)

	passed := 0
	for _, line := range strings.Split(strings.TrimSpace(errOut.String()), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Equal(t, "rangestress", entry["app"])
		if entry["msg"] == "passed" {
			passed++
			assert.EqualValues(t, 2, entry["instances"])
		}
	}
	assert.Equal(t, len(suites.Names()), passed)
}

// TestRunSuites_ReportsMismatch feeds a failing suite through the runner.
func TestRunSuites_ReportsMismatch(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	logger := zap.New(core)

	broken := suites.Suite{Name: "broken", Factory: func(querytest.Env) ([]querytest.Command, error) {
		return []querytest.Command{{Name: "lie", Weight: 1, Run: func(*rand.Rand) error {
			return querytest.Expect("answer", 41, 42)
		}}}, nil
	}}
	cfg, err := loadConfig([]string{"--instances", "1", "--queries", "5"})
	require.NoError(t, err)

	err = runSuite(t.Context(), broken, cfg, logger)
	assert.ErrorIs(t, err, ErrSuiteFailed)
	assert.ErrorIs(t, err, querytest.ErrMismatch)

	entries := logs.FilterMessage("mismatch").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "lie", fields["command"])
	assert.EqualValues(t, 0, fields["step"])
	assert.Contains(t, fields["replay"], "--first-instance 0")
}

// TestRunSuite_InterruptedMidway cancels from inside a running suite.
func TestRunSuite_InterruptedMidway(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx, cancel := context.WithCancel(t.Context())
	defer cancel()

	steps := 0
	endless := suites.Suite{Name: "endless", Factory: func(querytest.Env) ([]querytest.Command, error) {
		return []querytest.Command{{Name: "spin", Weight: 1, Run: func(*rand.Rand) error {
			steps++
			if steps == 10 {
				cancel()
			}

			return nil
		}}}, nil
	}}
	cfg, err := loadConfig([]string{"--instances", "1000", "--queries", "1000000"})
	require.NoError(t, err)

	err = runSuite(ctx, endless, cfg, zap.New(core))
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrSuiteFailed)
	assert.Equal(t, 10, steps)

	entries := logs.FilterMessage("interrupted").All()
	require.Len(t, entries, 1)
	assert.EqualValues(t, 10, entries[0].ContextMap()["commands"])
}

// TestRunSuites_Cancelled stops before starting suites.
func TestRunSuites_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg, err := loadConfig([]string{"--suite", "fenwick"})
	require.NoError(t, err)
	err = runSuites(ctx, cfg, zap.NewNop())
	assert.ErrorIs(t, err, context.Canceled)
}
