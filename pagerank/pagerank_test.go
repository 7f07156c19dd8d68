// Package pagerank_test verifies the rank recurrence against closed-form
// stationary distributions on small graphs, the two run-bounding modes, and
// the runner's validation surface.
package pagerank_test

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RuyueJ/Pregel/bsp"
	"github.com/RuyueJ/Pregel/pagerank"
)

// buildRing wires n rank vertices into a directed cycle.
func buildRing(n int) []*pagerank.RankVertex {
	vertices := make([]*pagerank.RankVertex, n)
	for i := range vertices {
		vertices[i] = pagerank.NewRankVertex(strconv.Itoa(i))
	}
	for i, v := range vertices {
		v.AddEdge(vertices[(i+1)%n], 1)
	}
	return vertices
}

// ------------------------------------------------------------------------
// 1. Convergence against closed forms.
// ------------------------------------------------------------------------

func TestRun_SymmetricPairConvergesToHalf(t *testing.T) {
	a := pagerank.NewRankVertex("a")
	b := pagerank.NewRankVertex("b")
	a.AddEdge(b, 1)
	b.AddEdge(a, 1)

	ranks, stats, err := pagerank.Run([]*pagerank.RankVertex{a, b}, 100)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, ranks["a"], 1e-6)
	assert.InDelta(t, 0.5, ranks["b"], 1e-6)
	assert.Len(t, stats, 101, "100 compute supersteps plus the halting one")
}

func TestRun_RingIsUniform(t *testing.T) {
	vertices := buildRing(4)

	ranks, _, err := pagerank.Run(vertices, 100)
	require.NoError(t, err)

	var sum float64
	for id, r := range ranks {
		assert.InDelta(t, 0.25, r, 1e-6, "vertex %s", id)
		sum += r
	}
	assert.InDelta(t, 1.0, sum, 1e-6, "a regular graph conserves all rank mass")
}

func TestRun_StarStationaryDistribution(t *testing.T) {
	// hub -> {leafX, leafY}, both leaves -> hub. Solving the stationary
	// equations with damping 0.85 gives hub = 18/37 and each leaf = 19/74.
	hub := pagerank.NewRankVertex("hub")
	leafX := pagerank.NewRankVertex("leafX")
	leafY := pagerank.NewRankVertex("leafY")
	hub.AddEdge(leafX, 1)
	hub.AddEdge(leafY, 1)
	leafX.AddEdge(hub, 1)
	leafY.AddEdge(hub, 1)

	ranks, _, err := pagerank.Run([]*pagerank.RankVertex{hub, leafX, leafY}, 200)
	require.NoError(t, err)
	assert.InDelta(t, 18.0/37.0, ranks["hub"], 1e-6)
	assert.InDelta(t, 19.0/74.0, ranks["leafX"], 1e-6)
	assert.InDelta(t, 19.0/74.0, ranks["leafY"], 1e-6)
}

func TestRun_DanglingVertexLeaksMass(t *testing.T) {
	a := pagerank.NewRankVertex("a")
	b := pagerank.NewRankVertex("b")
	a.AddEdge(b, 1)

	ranks, _, err := pagerank.Run([]*pagerank.RankVertex{a, b}, 10)
	require.NoError(t, err)

	base := (1 - pagerank.Damping) / 2
	assert.InDelta(t, base, ranks["a"], 1e-15)
	assert.InDelta(t, base+pagerank.Damping*base, ranks["b"], 1e-15)
	assert.Less(t, ranks["a"]+ranks["b"], 1.0, "b has no out-edges, so mass leaks")
}

// ------------------------------------------------------------------------
// 2. Bounding modes.
// ------------------------------------------------------------------------

func TestRun_InternalBoundHaltsCleanly(t *testing.T) {
	vertices := buildRing(3)

	_, stats, err := pagerank.Run(vertices, 3)
	require.NoError(t, err)
	assert.Len(t, stats, 4)
}

func TestRun_OpenEndedRequiresBound(t *testing.T) {
	vertices := buildRing(3)

	_, _, err := pagerank.Run(vertices, 0)
	require.ErrorIs(t, err, pagerank.ErrUnbounded)
}

func TestRun_OpenEndedCutOffByEngine(t *testing.T) {
	vertices := buildRing(3)

	ranks, stats, err := pagerank.Run(vertices, 0, bsp.WithMaxSupersteps(8))
	require.ErrorIs(t, err, bsp.ErrStepLimitReached)
	assert.Len(t, stats, 8)
	assert.Len(t, ranks, 3, "ranks of the last completed superstep still come back")
	for _, r := range ranks {
		assert.Positive(t, r)
	}
}

// ------------------------------------------------------------------------
// 3. Validation surface.
// ------------------------------------------------------------------------

func TestRun_NegativeIterations(t *testing.T) {
	_, _, err := pagerank.Run(buildRing(2), -1)
	require.ErrorIs(t, err, pagerank.ErrBadIterations)
}

func TestRun_NilVertexRejected(t *testing.T) {
	_, _, err := pagerank.Run([]*pagerank.RankVertex{pagerank.NewRankVertex("a"), nil}, 5)
	require.ErrorIs(t, err, bsp.ErrNilVertex)
}

func TestRun_EngineConfigErrorSurfaces(t *testing.T) {
	_, _, err := pagerank.Run(buildRing(2), 5, bsp.WithWorkers(-1))
	require.ErrorIs(t, err, bsp.ErrWorkerCount)
}

func TestRun_EmptyCollection(t *testing.T) {
	ranks, stats, err := pagerank.Run(nil, 5)
	require.NoError(t, err)
	assert.Empty(t, ranks)
	assert.Equal(t, []bsp.StatValue{0}, stats)
}

func TestUpdate_UnpreparedVertexFails(t *testing.T) {
	v := pagerank.NewRankVertex("lone")
	engine, err := bsp.New([]bsp.Vertex{v})
	require.NoError(t, err)

	_, err = engine.Run()
	require.ErrorIs(t, err, pagerank.ErrNotPrepared)

	var ce bsp.ComputeError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "lone", ce.VertexID)
	assert.Equal(t, 0, ce.Superstep)
}
