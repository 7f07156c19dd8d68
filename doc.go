// Package pregel is a single-process playground for vertex-centric graph
// computation — write per-vertex logic, let the engine drive supersteps,
// messages and termination.
//
// 🚀 What is Pregel?
//
//	A compact, bulk-synchronous graph computation toolkit that brings together:
//		• A BSP engine: hashed partitions, worker goroutines, barriers,
//		  one-round message delivery, vote-to-halt termination
//		• Vertex programs as plain Go types: embed bsp.State, implement Update
//		• Per-superstep statistics, structured zerolog progress, context
//		  cancellation and bounded runs
//		• Shortest paths: the textbook Pregel SSSP vertex program
//		• Ranking: power-iteration PageRank with two bounding modes
//
// ✨ Why choose it?
//
//   - Deterministic – stable partitioning and ordered routing make runs
//     repeatable bit for bit
//   - Race-free by construction – vertices talk through mailboxes, never
//     through shared state
//   - Honest errors – sentinel errors for misconfiguration, a typed
//     ComputeError for failing vertex programs
//   - Small API – one engine, one interface, functional options
//
// Under the hood, everything is organized under three subpackages:
//
//	bsp/      — the engine: State, Vertex, Engine, options, partitioning
//	sssp/     — single-source shortest paths built on bsp
//	pagerank/ — PageRank built on bsp
//
// Quick ASCII example:
//
//	    0──▶1
//	    ▲   │
//	    │   ▼
//	    3◀──2
//
//	a directed ring; sssp from "0" settles in five supersteps with
//	distances 0,1,2,3.
//
// Dive into the per-package docs for the superstep anatomy, the halting
// rules, and worked examples.
//
//	go get github.com/RuyueJ/Pregel
package pregel
