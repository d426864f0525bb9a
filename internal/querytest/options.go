// Package querytest drives randomized differential sessions: a structure
// under test and a brute-force model receive the same random mutations, and
// every random query must produce the same answer on both.
//
// A session is a sequence of instances. Each instance is set up by a
// caller-supplied factory that returns weighted Commands closing over the
// freshly built structure and model; the runner then draws Queries commands
// by weight and stops at the first mismatch.
//
// Determinism: every instance gets its own *rand.Rand derived from the
// session seed and the instance number, so a failing instance can be
// replayed alone with WithSeed/WithFirstInstance.
package querytest

import "fmt"

// Defaults.
const (
	// DefaultSeed is used when the caller passes seed 0.
	DefaultSeed int64 = 42

	// DefaultInstances is the number of freshly built instances per session.
	DefaultInstances = 20

	// DefaultQueries is the number of commands drawn per instance.
	DefaultQueries = 200

	// DefaultMaxLen bounds the random input length (exclusive upper bound for generators).
	DefaultMaxLen = 20

	// DefaultValueLimit bounds random element values (exclusive).
	DefaultValueLimit = 10
)

// Options configures a session. Use DefaultOptions and Option setters.
type Options struct {
	Seed          int64
	Instances     int
	Queries       int
	MaxLen        int
	ValueLimit    int
	FirstInstance int
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Seed:       DefaultSeed,
		Instances:  DefaultInstances,
		Queries:    DefaultQueries,
		MaxLen:     DefaultMaxLen,
		ValueLimit: DefaultValueLimit,
	}
}

// WithSeed sets the session seed. Zero selects DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithInstances sets the number of instances. Panics if n < 1.
func WithInstances(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("querytest: WithInstances(%d): must be >= 1", n))
	}

	return func(o *Options) { o.Instances = n }
}

// WithQueries sets the commands per instance. Panics if n < 0.
func WithQueries(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("querytest: WithQueries(%d): must be >= 0", n))
	}

	return func(o *Options) { o.Queries = n }
}

// WithMaxLen sets the exclusive bound on generated lengths. Panics if n < 2.
func WithMaxLen(n int) Option {
	if n < 2 {
		panic(fmt.Sprintf("querytest: WithMaxLen(%d): must be >= 2", n))
	}

	return func(o *Options) { o.MaxLen = n }
}

// WithValueLimit sets the exclusive bound on generated values. Panics if n < 1.
func WithValueLimit(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("querytest: WithValueLimit(%d): must be >= 1", n))
	}

	return func(o *Options) { o.ValueLimit = n }
}

// WithFirstInstance skips the first k instances, which replays a failure
// reported for instance k without re-running the ones before it.
func WithFirstInstance(k int) Option {
	if k < 0 {
		panic(fmt.Sprintf("querytest: WithFirstInstance(%d): must be >= 0", k))
	}

	return func(o *Options) { o.FirstInstance = k }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}

	return o
}
