// Package sssp computes single-source shortest path distances on top of the
// bsp engine, using the textbook vertex program: improve on the best inbox
// candidate and push candidate + edge weight downstream, otherwise halt.
package sssp

import (
	"errors"
	"fmt"
	"math"

	"github.com/RuyueJ/Pregel/bsp"
)

// Sentinel errors returned by the shortest-path runner.
var (
	// ErrNoSource indicates that no vertex in the collection was marked as the
	// source, so every distance would stay infinite.
	ErrNoSource = errors.New("sssp: no source vertex in collection")

	// ErrNegativeWeight indicates that a negative edge weight was detected in
	// the collection. Distances only tighten monotonically, so negative
	// weights would silently produce wrong results.
	ErrNegativeWeight = errors.New("sssp: negative edge weight encountered")

	// ErrPayload indicates that a message carried something other than a
	// float64 distance. It reaches callers wrapped in a bsp.ComputeError.
	ErrPayload = errors.New("sssp: message payload is not a distance")
)

// PathVertex carries the tentative distance from the source as its value,
// starting at +Inf. Marking a vertex as the source pins its own candidate
// distance to zero.
type PathVertex struct {
	bsp.State
	source bool
}

// NewPathVertex returns a vertex with an infinite tentative distance.
// Mark at least one vertex per collection as the source; marking several
// computes distance to the nearest of them.
func NewPathVertex(id string, source bool) *PathVertex {
	return &PathVertex{State: bsp.NewState(id, math.Inf(1)), source: source}
}

// Update implements bsp.Vertex. On improvement it adopts the new distance and
// offers distance + weight along every out-edge; without improvement the
// vertex halts and waits for a better candidate to wake it up.
func (v *PathVertex) Update() error {
	mindist := math.Inf(1)
	if v.source {
		mindist = 0
	}
	for _, m := range v.Inbox() {
		d, ok := m.Value.(float64)
		if !ok {
			return fmt.Errorf("%w: got %T from %q", ErrPayload, m.Value, m.From.ID())
		}
		if d < mindist {
			mindist = d
		}
	}
	if mindist < v.Value().(float64) {
		v.SetValue(mindist)
		for _, e := range v.Edges() {
			v.Send(e.Target, e.Weight, mindist+e.Weight)
		}
		return nil
	}
	v.Halt()
	return nil
}

// Run drives the collection to quiescence and returns the finite distances
// from the source alongside the engine's per-superstep samples. Engine
// options pass through untouched, so callers can bound or cancel the run.
func Run(vertices []*PathVertex, opts ...bsp.Option) (map[string]float64, []bsp.StatValue, error) {
	sources := 0
	for i, v := range vertices {
		if v == nil {
			return nil, nil, fmt.Errorf("%w: index %d", bsp.ErrNilVertex, i)
		}
		if v.source {
			sources++
		}
		for _, e := range v.Edges() {
			if e.Weight < 0 {
				return nil, nil, fmt.Errorf("%w: edge from %q", ErrNegativeWeight, v.ID())
			}
		}
	}
	if sources == 0 {
		return nil, nil, ErrNoSource
	}

	collection := make([]bsp.Vertex, len(vertices))
	for i, v := range vertices {
		collection[i] = v
	}
	engine, err := bsp.New(collection, opts...)
	if err != nil {
		return nil, nil, err
	}
	stats, err := engine.Run()
	if err != nil {
		return nil, stats, err
	}

	return Distances(vertices), stats, nil
}

// Distances reports the finite tentative distances keyed by vertex ID.
// Unreachable vertices still hold +Inf and are left out of the map.
func Distances(vertices []*PathVertex) map[string]float64 {
	out := make(map[string]float64, len(vertices))
	for _, v := range vertices {
		if d := v.Value().(float64); !math.IsInf(d, 1) {
			out[v.ID()] = d
		}
	}
	return out
}
