package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rangefold/internal/querytest"
	"github.com/katalvlaran/rangefold/internal/suites"
)

// ErrSuiteFailed is wrapped when at least one suite reports a mismatch.
var ErrSuiteFailed = errors.New("rangestress: suite failed")

// run is main without the process exit, so tests can drive it.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	if cfg.List {
		for _, name := range suites.Names() {
			fmt.Fprintln(stdout, name)
		}

		return nil
	}
	logger, err := newLogger(cfg.Log, stderr)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	return runSuites(ctx, cfg, logger)
}

// runSuites runs the selected suites on an errgroup bounded by cfg.Parallel.
// Suites run until they finish or ctx is done; the first failure is returned.
func runSuites(ctx context.Context, cfg Config, logger *zap.Logger) error {
	selected := cfg.selected()
	logger.Info("starting",
		zap.Int("suites", len(selected)),
		zap.Int64("seed", cfg.Seed),
		zap.Int("instances", cfg.Instances),
		zap.Int("queries", cfg.Queries),
		zap.Int("parallel", cfg.Parallel),
	)

	var g errgroup.Group
	g.SetLimit(cfg.Parallel)
	for _, s := range selected {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			return runSuite(ctx, s, cfg, logger.With(zap.String("suite", s.Name)))
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("all suites passed", zap.Int("suites", len(selected)))

	return nil
}

// runSuite runs one suite and logs its outcome. Cancellation stops it at
// the next command and is returned unwrapped.
func runSuite(ctx context.Context, s suites.Suite, cfg Config, logger *zap.Logger) error {
	start := time.Now()
	rep, err := querytest.Run(ctx, s.Factory, cfg.options()...)
	if err != nil {
		var f *querytest.Failure
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			logger.Warn("interrupted",
				zap.Int("instances", rep.Instances),
				zap.Int("commands", rep.Total()),
				zap.Duration("elapsed", time.Since(start)),
			)

			return err
		}
		if errors.As(err, &f) {
			logger.Error("mismatch",
				zap.Int("instance", f.Instance),
				zap.Int("step", f.Step),
				zap.String("command", f.Command),
				zap.Error(f.Err),
				zap.String("replay", fmt.Sprintf("--suite %s --seed %d --first-instance %d --instances 1", s.Name, cfg.Seed, f.Instance)),
			)
		} else {
			logger.Error("setup failed", zap.Error(err))
		}

		return fmt.Errorf("%w: %s: %w", ErrSuiteFailed, s.Name, err)
	}
	logger.Info("passed",
		zap.Int("instances", rep.Instances),
		zap.Int("commands", rep.Total()),
		zap.Any("mix", rep.Commands),
		zap.Duration("elapsed", time.Since(start)),
	)

	return nil
}
