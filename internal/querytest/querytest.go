package querytest

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"reflect"
)

// ErrMismatch is wrapped by every error describing a divergence between the
// structure under test and its model.
var ErrMismatch = errors.New("querytest: structure and model disagree")

// ErrNoCommands indicates a factory returned no runnable command.
var ErrNoCommands = errors.New("querytest: factory returned no commands with positive weight")

// Command is one weighted operation. Run applies it to both sides and
// returns a non-nil error (usually from Expect) on divergence.
type Command struct {
	Name   string
	Weight int
	Run    func(rng *rand.Rand) error
}

// Env is what a Factory receives for each instance.
type Env struct {
	Rng        *rand.Rand
	Instance   int
	MaxLen     int
	ValueLimit int
}

// Factory builds a fresh structure/model pair and returns the commands that drive it.
type Factory func(env Env) ([]Command, error)

// Report summarizes a finished session.
type Report struct {
	Instances int
	Commands  map[string]int
}

// Total returns the number of commands executed.
func (r Report) Total() int {
	total := 0
	for _, c := range r.Commands {
		total += c
	}

	return total
}

// Failure locates a mismatch inside a session.
type Failure struct {
	Instance int
	Step     int
	Command  string
	Err      error
}

// Error implements error.
func (f *Failure) Error() string {
	return fmt.Sprintf("instance %d, step %d, %s: %v", f.Instance, f.Step, f.Command, f.Err)
}

// Unwrap exposes the command error, so errors.Is(err, ErrMismatch) works.
func (f *Failure) Unwrap() error { return f.Err }

// Run executes a session and returns its report. The first failing command
// aborts the session with a *Failure. ctx is checked before every instance
// and every command; once it is done Run returns the partial report and
// ctx.Err().
func Run(ctx context.Context, factory Factory, opts ...Option) (Report, error) {
	o := gatherOptions(opts...)
	rep := Report{Commands: make(map[string]int)}
	for k := o.FirstInstance; k < o.FirstInstance+o.Instances; k++ {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		rng := instanceRNG(o.Seed, k)
		cmds, err := factory(Env{Rng: rng, Instance: k, MaxLen: o.MaxLen, ValueLimit: o.ValueLimit})
		if err != nil {
			return rep, fmt.Errorf("querytest: instance %d setup: %w", k, err)
		}
		total := 0
		for _, c := range cmds {
			if c.Weight > 0 {
				total += c.Weight
			}
		}
		if total == 0 {
			return rep, ErrNoCommands
		}
		for step := 0; step < o.Queries; step++ {
			if err := ctx.Err(); err != nil {
				return rep, err
			}
			c := pick(rng, cmds, total)
			if err := c.Run(rng); err != nil {
				return rep, &Failure{Instance: k, Step: step, Command: c.Name, Err: err}
			}
			rep.Commands[c.Name]++
		}
		rep.Instances++
	}

	return rep, nil
}

// pick draws a command proportionally to its weight.
func pick(rng *rand.Rand, cmds []Command, total int) Command {
	r := rng.Intn(total)
	for _, c := range cmds {
		if c.Weight <= 0 {
			continue
		}
		if r < c.Weight {
			return c
		}
		r -= c.Weight
	}

	return cmds[len(cmds)-1] // unreachable with a consistent total
}

// Expect compares got and want with reflect.DeepEqual and returns a
// mismatch error describing the query when they differ.
func Expect(query string, got, want any) error {
	if reflect.DeepEqual(got, want) {
		return nil
	}

	return fmt.Errorf("%w: %s: got %v, want %v", ErrMismatch, query, got, want)
}
