// Package pagerank runs the classic power-iteration PageRank as a vertex
// program for the bsp engine.
package pagerank

import (
	"errors"
	"fmt"

	"github.com/RuyueJ/Pregel/bsp"
)

// Damping is the probability that a random surfer follows an out-edge rather
// than teleporting; the classic choice from the original PageRank paper.
const Damping = 0.85

// Sentinel errors returned by the PageRank runner.
var (
	// ErrBadIterations indicates that Run was given a negative iteration count.
	ErrBadIterations = errors.New("pagerank: iterations must be non-negative")

	// ErrUnbounded indicates that Run was asked for open-ended iteration
	// (iterations == 0) without a bsp.WithMaxSupersteps bound. PageRank never
	// goes quiescent on its own, so such a run would spin forever.
	ErrUnbounded = errors.New("pagerank: open-ended run needs a superstep bound")

	// ErrNotPrepared indicates that a RankVertex was driven by an engine
	// without going through Run, which wires the collection size into every
	// vertex.
	ErrNotPrepared = errors.New("pagerank: vertex was not prepared by Run")

	// ErrPayload indicates that a message carried something other than a
	// float64 rank share. It reaches callers wrapped in a bsp.ComputeError.
	ErrPayload = errors.New("pagerank: message payload is not a rank share")
)

// RankVertex carries its current rank as the value. Each superstep it sums
// the shares in its inbox, recomputes
//
//	rank = (1-Damping)/N + Damping * sum
//
// and offers rank/outdegree to every out-neighbor. Vertices without
// out-edges keep their rank to themselves; that mass simply leaks, as in the
// plain power-iteration formulation.
type RankVertex struct {
	bsp.State
	n      int // collection size, wired by Run
	rounds int // supersteps before halting; 0 means never halt
}

// NewRankVertex returns a vertex with rank zero. Run wires the collection
// size and the iteration bound before the engine starts.
func NewRankVertex(id string) *RankVertex {
	return &RankVertex{State: bsp.NewState(id, 0.0)}
}

// Update implements bsp.Vertex.
func (v *RankVertex) Update() error {
	if v.n == 0 {
		return fmt.Errorf("%w: %q", ErrNotPrepared, v.ID())
	}
	if v.rounds > 0 && v.Superstep() >= v.rounds {
		v.Halt()
		return nil
	}

	var sum float64
	for _, m := range v.Inbox() {
		share, ok := m.Value.(float64)
		if !ok {
			return fmt.Errorf("%w: got %T from %q", ErrPayload, m.Value, m.From.ID())
		}
		sum += share
	}
	rank := (1-Damping)/float64(v.n) + Damping*sum
	v.SetValue(rank)
	if deg := len(v.Edges()); deg > 0 {
		v.Broadcast(rank / float64(deg))
	}

	return nil
}

// Run executes PageRank over the collection and returns the ranks keyed by
// vertex ID alongside the engine's per-superstep samples.
//
// With iterations > 0 every vertex computes that many supersteps and then
// halts, so the run converges cleanly. With iterations == 0 the vertices
// iterate forever and the caller must pass bsp.WithMaxSupersteps; such a run
// ends with bsp.ErrStepLimitReached, and the returned ranks reflect the last
// completed superstep.
func Run(vertices []*RankVertex, iterations int, opts ...bsp.Option) (map[string]float64, []bsp.StatValue, error) {
	if iterations < 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrBadIterations, iterations)
	}

	n := len(vertices)
	collection := make([]bsp.Vertex, n)
	for i, v := range vertices {
		if v == nil {
			return nil, nil, fmt.Errorf("%w: index %d", bsp.ErrNilVertex, i)
		}
		v.n = n
		v.rounds = iterations
		collection[i] = v
	}

	engine, err := bsp.New(collection, opts...)
	if err != nil {
		return nil, nil, err
	}
	if iterations == 0 {
		// New vouched for the options, so replaying them tells us whether the
		// caller actually asked for a superstep bound.
		probe := bsp.DefaultOptions()
		for _, opt := range opts {
			opt(&probe)
		}
		if probe.MaxSupersteps == 0 {
			return nil, nil, ErrUnbounded
		}
	}
	stats, err := engine.Run()

	return Ranks(vertices), stats, err
}

// Ranks reports the current rank of every vertex, keyed by ID.
func Ranks(vertices []*RankVertex) map[string]float64 {
	out := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		out[v.ID()] = v.Value().(float64)
	}
	return out
}
