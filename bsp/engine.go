package bsp

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// Engine drives a vertex collection through bulk-synchronous supersteps until
// every vertex halts, a failure aborts the run, or a configured bound cuts it
// short. Construct with New, then call Run at most once; a finished engine is
// not reusable because the vertices keep their final state.
type Engine struct {
	vertices []Vertex
	buckets  [][]Vertex
	opts     Options
}

// New validates the collection and configuration and returns an engine ready
// to Run. The collection may be empty. Vertices must be distinct and carry
// non-empty IDs; every edge must point at a non-nil vertex that is itself part
// of the collection.
func New(vertices []Vertex, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	members := make(map[*State]struct{}, len(vertices))
	for i, v := range vertices {
		if v == nil {
			return nil, fmt.Errorf("%w: index %d", ErrNilVertex, i)
		}
		st := v.state()
		if st.id == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyVertexID, i)
		}
		if _, dup := members[st]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, st.id)
		}
		members[st] = struct{}{}
	}
	for _, v := range vertices {
		for _, edge := range v.state().edges {
			if edge.Target == nil {
				return nil, fmt.Errorf("%w: edge from %q", ErrNilTarget, v.ID())
			}
			if _, ok := members[edge.Target.state()]; !ok {
				return nil, fmt.Errorf("%w: edge %q -> %q", ErrUnknownTarget, v.ID(), edge.Target.ID())
			}
		}
	}

	return &Engine{vertices: vertices, opts: o}, nil
}

// Run executes supersteps until no vertex is active, returning one statistics
// sample per completed superstep. At least one superstep always runs, so even
// an already quiescent collection yields a single opening sample.
//
// On a failed update Run stops at once with a ComputeError; on cancellation it
// returns the context's error; with WithMaxSupersteps exceeded it returns
// ErrStepLimitReached. In every failure case the samples gathered so far come
// back alongside the error.
func (e *Engine) Run() ([]StatValue, error) {
	e.buckets = partition(e.vertices, e.opts.Workers)
	e.opts.Logger.Info().
		Int("vertices", len(e.vertices)).
		Int("workers", e.opts.Workers).
		Msg("bsp run starting")

	start := time.Now()
	var stats []StatValue
	for round := 0; ; round++ {
		if err := e.opts.Ctx.Err(); err != nil {
			return stats, err
		}
		if e.opts.MaxSupersteps > 0 && round >= e.opts.MaxSupersteps {
			e.opts.Logger.Warn().
				Int("limit", e.opts.MaxSupersteps).
				Msg("bsp run cut off before quiescence")
			return stats, fmt.Errorf("%w: limit %d", ErrStepLimitReached, e.opts.MaxSupersteps)
		}

		phase := time.Now()
		updates, err := e.compute(round)
		if err != nil {
			e.opts.Logger.Error().Err(err).Int("superstep", round).Msg("superstep failed")
			return stats, err
		}
		stats = append(stats, e.opts.Stats(e.vertices))

		routed, err := e.route()
		if err != nil {
			e.opts.Logger.Error().Err(err).Int("superstep", round).Msg("routing failed")
			return stats, err
		}
		active := e.countActive()
		e.opts.Logger.Debug().
			Int("superstep", round).
			Int("updates", updates).
			Int("routed", routed).
			Int("active", active).
			Dur("took", time.Since(phase)).
			Msg("superstep complete")

		if active == 0 {
			break
		}
	}

	e.opts.Logger.Info().
		Int("supersteps", len(stats)).
		Dur("took", time.Since(start)).
		Msg("bsp run quiescent")
	return stats, nil
}

// compute fans the buckets out to one goroutine each and waits at the
// barrier. The first failure cancels the group's context, which sibling
// workers poll, so the phase collapses quickly instead of finishing the
// round. Returns the total number of updates that ran.
func (e *Engine) compute(round int) (int, error) {
	g, ctx := errgroup.WithContext(e.opts.Ctx)
	counts := make([]int, len(e.buckets))
	for i, bucket := range e.buckets {
		if len(bucket) == 0 {
			continue
		}
		g.Go(func() error {
			n, err := worker{bucket: bucket}.run(ctx, round)
			counts[i] = n
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}
	var total int
	for _, n := range counts {
		total += n
	}
	return total, nil
}

// route is the single-threaded exchange phase. It first advances every
// vertex's superstep mirror and retires the old inboxes, then moves each
// outbox entry into its target's inbox and reactivates the target. Outboxes
// drain in collection order and fan out in Send order, so delivery order is
// deterministic. Returns the number of messages moved.
func (e *Engine) route() (int, error) {
	for _, v := range e.vertices {
		st := v.state()
		st.superstep++
		st.inbox = nil
	}
	var routed int
	for _, v := range e.vertices {
		src := v.state()
		for _, env := range src.outbox {
			if env.to == nil {
				return routed, fmt.Errorf("%w: message from %q", ErrNilTarget, src.id)
			}
			dst := env.to.state()
			dst.inbox = append(dst.inbox, Message{From: v, Weight: env.weight, Value: env.value})
			dst.active = true
		}
		routed += len(src.outbox)
		src.outbox = nil
	}
	return routed, nil
}

// countActive reports how many vertices will enter the next compute phase.
func (e *Engine) countActive() int {
	var n int
	for _, v := range e.vertices {
		if v.state().active {
			n++
		}
	}
	return n
}
