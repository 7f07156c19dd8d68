// Package bsp implements a single-process, vertex-centric, bulk-synchronous
// graph computation engine in the Pregel style.
//
// Overview:
//
//   - A computation is a collection of vertices, each carrying a value, directed
//     weighted out-edges, and an Update method with the algorithm's per-vertex
//     logic.
//   - The engine drives the collection through supersteps. In each superstep
//     every active vertex runs Update exactly once, concurrently across hashed
//     partition buckets, then all of them wait at a barrier.
//   - Vertices never touch each other's state directly; they communicate by
//     message. A message sent in superstep k is visible in the target's inbox
//     in superstep k+1, never earlier and never later.
//   - A vertex that has nothing left to do calls Halt. The run ends when every
//     vertex is halted; delivery of a new message wakes a halted vertex up.
//
// Anatomy of one superstep:
//
//  1. Compute: one worker goroutine per non-empty bucket calls Update on its
//     active vertices. Workers own their vertices exclusively, so updates run
//     without locks.
//  2. Barrier: the engine waits for every worker; a failed Update aborts the
//     run here with a ComputeError.
//  3. Statistics: the StatsFunc samples the whole collection while nothing
//     else moves; one sample per superstep is returned by Run.
//  4. Routing: single-threaded, the engine advances every vertex's superstep
//     mirror, retires old inboxes, moves each outbox entry into its target's
//     inbox, and reactivates the targets.
//  5. Termination check: if no vertex is active the run is quiescent.
//
// When to use:
//
//   - Iterative graph algorithms that are naturally expressed per vertex:
//     shortest paths, PageRank, connected components, label propagation.
//   - Workloads that want deterministic, race-free parallelism on one machine
//     without distributed-systems machinery.
//
// Key features:
//
//   - Sealed Vertex interface: embed State, implement Update, and the engine
//     handles identity, mailboxes, activity, and the superstep clock.
//   - Deterministic runs: stable FNV-1a partitioning, exclusive vertex
//     ownership during compute, and single-threaded routing in collection
//     order make repeated runs bit-for-bit repeatable.
//   - Functional options: worker count, statistics hook, context cancellation,
//     superstep bound, and structured logging via zerolog.
//
// Error handling (sentinel errors):
//
//   - ErrWorkerCount:      WithWorkers given a non-positive count (from New).
//   - ErrBadStepLimit:     WithMaxSupersteps given a negative bound (from New).
//   - ErrNilVertex:        nil entry in the collection (from New).
//   - ErrEmptyVertexID:    vertex registered with an empty ID (from New).
//   - ErrDuplicateVertex:  the same vertex passed to New twice.
//   - ErrNilTarget:        an edge or message addressed to a nil vertex.
//   - ErrUnknownTarget:    an edge pointing outside the collection (from New).
//   - ErrStepLimitReached: the bound expired before quiescence (from Run).
//   - ComputeError:        wraps the first Update failure with its superstep
//     and vertex ID; retrieve with errors.As.
//
// A non-terminating algorithm is not an error: if the vertices never all halt,
// Run simply keeps going. Use WithMaxSupersteps or WithContext to bound such
// runs.
//
// API sketch:
//
//	engine, err := bsp.New(vertices,
//	    bsp.WithWorkers(8),
//	    bsp.WithStats(countActive),
//	)
//	if err != nil { ... }
//	stats, err := engine.Run()
//
// Determinism and thread safety:
//
//   - A single Run is internally concurrent but externally deterministic as
//     long as Update itself is deterministic.
//   - Vertex state must only be touched from Update or between New and Run;
//     the engine gives no guarantees for outside mutation during a run.
//
// See also:
//
//   - sssp: single-source shortest paths built on this engine.
//   - pagerank: bounded-iteration PageRank built on this engine.
package bsp
