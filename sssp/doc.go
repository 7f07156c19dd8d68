// Package sssp provides single-source shortest paths as a vertex program for
// the bsp engine.
//
// Overview:
//
//   - Every vertex starts with a tentative distance of +Inf; the source pins
//     its own candidate to zero.
//   - Each superstep a vertex takes the smallest distance offered in its
//     inbox. On improvement it adopts the value and offers distance + weight
//     along every out-edge; otherwise it halts.
//   - The run is quiescent once no distance can improve, which takes one
//     superstep per hop on the longest improving path, plus one closing
//     superstep in which the frontier finds nothing left to relax.
//
// When to use:
//
//   - Shortest paths on graphs already expressed as bsp vertices, or when the
//     run should share the engine's bounding, cancellation, and statistics
//     machinery.
//   - With several marked sources the result is the distance to the nearest
//     one, which covers multi-seed reachability out of the box.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource:       no vertex was marked as the source.
//   - ErrNegativeWeight: a negative edge weight was found by the pre-scan.
//   - ErrPayload:        a message carried a non-distance payload; surfaces
//     wrapped in a bsp.ComputeError.
//
// API sketch:
//
//	a := sssp.NewPathVertex("a", true)
//	b := sssp.NewPathVertex("b", false)
//	a.AddEdge(b, 2)
//	dist, stats, err := sssp.Run([]*sssp.PathVertex{a, b})
//	// dist["b"] == 2, len(stats) == supersteps executed
//
// Unreachable vertices keep their infinite value and are omitted from the
// returned map, so the result reads like a reachability-aware distance table.
package sssp
