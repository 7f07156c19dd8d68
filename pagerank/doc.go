// Package pagerank provides power-iteration PageRank as a vertex program for
// the bsp engine.
//
// Overview:
//
//   - Every vertex holds its current rank. Each superstep it sums the shares
//     delivered to its inbox and recomputes
//     rank = (1-Damping)/N + Damping * sum,
//     then offers rank/outdegree along every out-edge.
//   - The recurrence is the random-surfer model: with probability Damping the
//     surfer follows a uniformly chosen out-link, otherwise it teleports to a
//     uniformly chosen vertex.
//   - PageRank has no natural quiescence: ranks keep circulating forever, so
//     every run is bounded, either per vertex or by the engine.
//
// Two ways to bound a run:
//
//   - Run(vertices, k) with k > 0: every vertex computes k supersteps and then
//     halts. The run converges cleanly with a nil error after k+1 supersteps,
//     the last one spent halting.
//   - Run(vertices, 0, bsp.WithMaxSupersteps(k)): the vertices iterate
//     open-endedly and the engine cuts the run off. The call returns the ranks
//     of the last completed superstep together with bsp.ErrStepLimitReached.
//
// Error handling (sentinel errors):
//
//   - ErrBadIterations: negative iteration count.
//   - ErrUnbounded:     iterations == 0 without a bsp.WithMaxSupersteps bound.
//   - ErrNotPrepared:   a RankVertex was scheduled without going through Run.
//   - ErrPayload:       a message carried a non-share payload; surfaces
//     wrapped in a bsp.ComputeError.
//
// Numerical notes:
//
//   - Convergence is geometric with ratio Damping, so ~100 iterations give
//     roughly single-float precision on small graphs.
//   - Vertices without out-edges keep their mass to themselves and the total
//     rank drops below one, as in the plain power-iteration formulation;
//     renormalize afterwards if the application needs a distribution.
package pagerank
