// Command rangestress runs the randomized differential suites of the
// rangefold structures at scale: every structure is driven side by side
// with a brute-force model under a seeded command mix, and any divergence
// is logged with enough context to replay it.
//
// Usage:
//
//	rangestress [--config file] [--suite name ...] [--seed N] [--instances N] [--first-instance N]
//	            [--queries N] [--max-len N] [--value-limit N] [--parallel N]
//	            [--log-level info] [--log-format json|console] [--list]
//
// Every flag can also be set through the environment (RANGESTRESS_SEED,
// RANGESTRESS_MAX_LEN, RANGESTRESS_LOG_LEVEL, …) or a config file.
// An interrupt stops every running suite at its next command.
// The exit status is 1 when a suite fails, the run is interrupted or the
// configuration is invalid.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/pflag"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, pflag.ErrHelp):
	default:
		if !errors.Is(err, ErrSuiteFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}
