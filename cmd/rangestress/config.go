package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/rangefold/internal/querytest"
	"github.com/katalvlaran/rangefold/internal/suites"
)

// envPrefix namespaces environment overrides, e.g. RANGESTRESS_MAX_LEN.
const envPrefix = "RANGESTRESS"

var (
	// ErrInvalidConfig is wrapped by every configuration validation failure.
	ErrInvalidConfig = errors.New("rangestress: invalid configuration")

	// ErrUnknownSuite indicates a requested suite name is not registered.
	ErrUnknownSuite = errors.New("rangestress: unknown suite")
)

// Config is the resolved run configuration.
// Precedence: flags, then RANGESTRESS_* environment, then the config file,
// then defaults.
type Config struct {
	Seed       int64     `mapstructure:"seed"`
	Instances  int       `mapstructure:"instances"`
	First      int       `mapstructure:"first_instance"`
	Queries    int       `mapstructure:"queries"`
	MaxLen     int       `mapstructure:"max_len"`
	ValueLimit int       `mapstructure:"value_limit"`
	Parallel   int       `mapstructure:"parallel"`
	Suites     []string  `mapstructure:"suites"`
	List       bool      `mapstructure:"list"`
	Log        LogConfig `mapstructure:"log"`
}

// LogConfig selects the zap logger flavour.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// newFlagSet declares the command-line flags.
func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("rangestress", pflag.ContinueOnError)
	fs.String("config", "", "optional YAML/TOML/JSON config file")
	fs.Int64("seed", querytest.DefaultSeed, "session seed")
	fs.Int("instances", querytest.DefaultInstances, "fresh instances per suite")
	fs.Int("first-instance", 0, "skip to this instance number (replays a reported failure)")
	fs.Int("queries", querytest.DefaultQueries, "commands per instance")
	fs.Int("max-len", querytest.DefaultMaxLen, "exclusive bound on generated lengths")
	fs.Int("value-limit", querytest.DefaultValueLimit, "exclusive bound on generated values")
	fs.Int("parallel", 4, "suites run concurrently")
	fs.StringSlice("suite", nil, "suites to run (default all); repeat or comma-separate")
	fs.Bool("list", false, "print the suite names and exit")
	fs.String("log-level", "info", "debug, info, warn or error")
	fs.String("log-format", "json", "json or console")

	return fs
}

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"seed":           "seed",
	"instances":      "instances",
	"first-instance": "first_instance",
	"queries":        "queries",
	"max-len":        "max_len",
	"value-limit":    "value_limit",
	"parallel":       "parallel",
	"suite":          "suites",
	"list":           "list",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// loadConfig parses args and resolves the configuration through viper.
func loadConfig(args []string) (Config, error) {
	var cfg Config
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	v := viper.New()
	v.SetDefault("seed", querytest.DefaultSeed)
	v.SetDefault("instances", querytest.DefaultInstances)
	v.SetDefault("first_instance", 0)
	v.SetDefault("queries", querytest.DefaultQueries)
	v.SetDefault("max_len", querytest.DefaultMaxLen)
	v.SetDefault("value_limit", querytest.DefaultValueLimit)
	v.SetDefault("parallel", 4)
	v.SetDefault("suites", []string{})
	v.SetDefault("list", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return cfg, fmt.Errorf("bind flag %q: %w", name, err)
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}

	return cfg, cfg.validate()
}

// validate rejects values querytest would refuse and unknown suites.
func (c Config) validate() error {
	switch {
	case c.Instances < 1:
		return fmt.Errorf("%w: instances = %d, want >= 1", ErrInvalidConfig, c.Instances)
	case c.First < 0:
		return fmt.Errorf("%w: first_instance = %d, want >= 0", ErrInvalidConfig, c.First)
	case c.Queries < 0:
		return fmt.Errorf("%w: queries = %d, want >= 0", ErrInvalidConfig, c.Queries)
	case c.MaxLen < 2:
		return fmt.Errorf("%w: max_len = %d, want >= 2", ErrInvalidConfig, c.MaxLen)
	case c.ValueLimit < 1:
		return fmt.Errorf("%w: value_limit = %d, want >= 1", ErrInvalidConfig, c.ValueLimit)
	case c.Parallel < 1:
		return fmt.Errorf("%w: parallel = %d, want >= 1", ErrInvalidConfig, c.Parallel)
	case c.Log.Format != "json" && c.Log.Format != "console":
		return fmt.Errorf("%w: log.format = %q, want json or console", ErrInvalidConfig, c.Log.Format)
	}
	for _, name := range c.Suites {
		if _, ok := suites.Lookup(name); !ok {
			return fmt.Errorf("%w: %q (known: %s)", ErrUnknownSuite, name, strings.Join(suites.Names(), ", "))
		}
	}

	return nil
}

// selected returns the suites to run.
func (c Config) selected() []suites.Suite {
	if len(c.Suites) == 0 {
		return suites.All()
	}
	out := make([]suites.Suite, 0, len(c.Suites))
	for _, name := range c.Suites {
		s, _ := suites.Lookup(name)
		out = append(out, s)
	}

	return out
}

// options converts the configuration into querytest options.
func (c Config) options() []querytest.Option {
	return []querytest.Option{
		querytest.WithSeed(c.Seed),
		querytest.WithInstances(c.Instances),
		querytest.WithFirstInstance(c.First),
		querytest.WithQueries(c.Queries),
		querytest.WithMaxLen(c.MaxLen),
		querytest.WithValueLimit(c.ValueLimit),
	}
}
