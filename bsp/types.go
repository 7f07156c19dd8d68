// Package bsp defines the core types and configuration options for the
// bulk-synchronous vertex engine: sentinel errors, the ComputeError wrapper,
// the Options container with its functional setters, and the statistics hook
// sampled once per superstep.
package bsp

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
)

// Sentinel errors returned by engine construction and execution.
var (
	// ErrWorkerCount indicates that WithWorkers was given a zero or negative count.
	ErrWorkerCount = errors.New("bsp: worker count must be positive")

	// ErrBadStepLimit indicates that WithMaxSupersteps was given a negative limit.
	ErrBadStepLimit = errors.New("bsp: superstep limit must be non-negative")

	// ErrNilVertex indicates that the collection passed to New contains a nil entry.
	ErrNilVertex = errors.New("bsp: vertex collection contains a nil entry")

	// ErrEmptyVertexID indicates that a vertex was registered with an empty ID.
	ErrEmptyVertexID = errors.New("bsp: vertex ID must be non-empty")

	// ErrDuplicateVertex indicates that the same vertex appears more than once
	// in the collection passed to New.
	ErrDuplicateVertex = errors.New("bsp: vertex registered twice")

	// ErrNilTarget indicates that an edge or an outgoing message addresses a
	// nil vertex.
	ErrNilTarget = errors.New("bsp: target vertex is nil")

	// ErrUnknownTarget indicates that an edge points at a vertex that was not
	// part of the collection passed to New. Such a vertex would receive mail
	// but never compute, so New rejects the topology outright.
	ErrUnknownTarget = errors.New("bsp: edge target not in collection")

	// ErrStepLimitReached reports that the run was cut off by WithMaxSupersteps
	// before every vertex went quiescent. Statistics gathered up to the cut-off
	// are still returned alongside it.
	ErrStepLimitReached = errors.New("bsp: superstep limit reached before quiescence")
)

// ComputeError reports a failed Update call. The engine aborts the run on the
// first one and returns it with the superstep index and vertex ID attached.
type ComputeError struct {
	Superstep int    // round in which the update failed
	VertexID  string // vertex whose Update returned the error
	Err       error  // cause returned by Update
}

// Error implements the error interface.
func (e ComputeError) Error() string {
	return fmt.Sprintf("bsp: superstep %d: vertex %q: %v", e.Superstep, e.VertexID, e.Err)
}

// Unwrap exposes the underlying cause to errors.Is and errors.As.
func (e ComputeError) Unwrap() error { return e.Err }

// StatValue is one opaque per-superstep statistics sample. The engine stores
// whatever the StatsFunc returns and never inspects it.
type StatValue any

// StatsFunc samples the vertex collection once per superstep, between the
// compute barrier and message routing. No Update call runs concurrently with
// the hook, so implementations may read vertex state freely.
type StatsFunc func(vertices []Vertex) StatValue

// defaultStats mirrors the engine clock: every vertex agrees on its superstep
// counter at the barrier, so the first one speaks for the whole collection.
func defaultStats(vertices []Vertex) StatValue {
	if len(vertices) == 0 {
		return 0
	}
	return vertices[0].Superstep()
}

// Options holds configurable parameters for an engine run.
type Options struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// Cancellation is honored between supersteps and inside worker loops.
	Ctx context.Context

	// Workers is the number of buckets vertices are hashed into, and the upper
	// bound on compute goroutines per superstep. Defaults to runtime.NumCPU().
	// Must be positive.
	Workers int

	// Stats is invoked once per superstep on the full collection; its samples
	// form the log returned by Run. Defaults to defaultStats.
	Stats StatsFunc

	// MaxSupersteps, if positive, aborts the run with ErrStepLimitReached once
	// that many supersteps have completed without quiescence. Zero means no
	// limit.
	MaxSupersteps int

	// Logger receives engine progress at debug and info levels.
	// Defaults to a no-op logger.
	Logger zerolog.Logger

	// err records the first invalid option; surfaced by New.
	err error
}

// Option configures optional engine behavior. Use with New(vertices, opts...).
// Invalid values are recorded internally and surfaced as an error by New.
type Option func(*Options)

// DefaultOptions returns an Options with sane defaults:
// background context, one bucket per CPU, superstep-mirror stats, no step
// limit, and logging disabled.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Workers:       runtime.NumCPU(),
		Stats:         defaultStats,
		MaxSupersteps: 0,
		Logger:        zerolog.Nop(),
	}
}

// WithContext sets the context used for cancellation and deadlines.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets how many buckets the collection is partitioned into.
// n must be positive; otherwise New fails with ErrWorkerCount.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrWorkerCount, n)
			return
		}
		o.Workers = n
	}
}

// WithStats replaces the per-superstep statistics hook. A nil fn is ignored.
func WithStats(fn StatsFunc) Option {
	return func(o *Options) {
		if fn != nil {
			o.Stats = fn
		}
	}
}

// WithMaxSupersteps bounds the run to at most n supersteps. Zero removes the
// bound; negative values cause New to fail with ErrBadStepLimit.
func WithMaxSupersteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadStepLimit, n)
			return
		}
		o.MaxSupersteps = n
	}
}

// WithLogger routes engine progress through the given logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}
