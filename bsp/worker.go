package bsp

import "context"

// worker runs the compute phase for one partition bucket. Each superstep the
// engine spawns one worker per non-empty bucket; a worker owns its vertices
// exclusively until the barrier, so the hot path takes no locks.
type worker struct {
	bucket []Vertex
}

// run calls Update on every active vertex in the bucket and reports how many
// updates ran. It stops at the first failed update, wrapping the cause in a
// ComputeError, and polls ctx between vertices so a cancelled run or a failure
// in a sibling bucket cuts the phase short.
func (w worker) run(ctx context.Context, superstep int) (int, error) {
	var updates int
	for _, v := range w.bucket {
		select {
		case <-ctx.Done():
			return updates, ctx.Err()
		default:
		}
		if !v.state().active {
			continue
		}
		if err := v.Update(); err != nil {
			return updates, ComputeError{Superstep: superstep, VertexID: v.ID(), Err: err}
		}
		updates++
	}
	return updates, nil
}
