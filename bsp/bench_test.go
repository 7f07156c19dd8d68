package bsp_test

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/RuyueJ/Pregel/bsp"
)

// buildStar wires one hub broadcasting to n silent spokes; a run costs the
// engine two supersteps and n routed messages.
func buildStar(n int) []bsp.Vertex {
	hub := newScript("hub", func(v *scriptVertex) error {
		if v.Superstep() == 0 {
			v.Broadcast(nil)
		}
		v.Halt()
		return nil
	})
	vertices := make([]bsp.Vertex, 0, n+1)
	vertices = append(vertices, hub)
	for i := 0; i < n; i++ {
		spoke := newScript("s"+strconv.Itoa(i), nil)
		hub.AddEdge(spoke, 1)
		vertices = append(vertices, spoke)
	}
	return vertices
}

// BenchmarkEngine_Run measures whole runs of the min-gossip ring. Convergence
// takes one superstep per hop, so cost grows quadratically with ring size and
// is dominated by inbox churn and routing.
func BenchmarkEngine_Run(b *testing.B) {
	for _, size := range []int{32, 256, 2048} {
		b.Run(fmt.Sprintf("ring_%d", size), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				engine, err := bsp.New(buildMinRing(size), bsp.WithWorkers(4))
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()
				if _, err = engine.Run(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEngine_RunWorkers fixes the graph and varies the bucket count.
func BenchmarkEngine_RunWorkers(b *testing.B) {
	for _, w := range []int{1, 2, 4, 8} {
		b.Run(fmt.Sprintf("workers_%d", w), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				engine, err := bsp.New(buildMinRing(256), bsp.WithWorkers(w))
				if err != nil {
					b.Fatal(err)
				}
				b.StartTimer()
				if _, err = engine.Run(); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

// BenchmarkEngine_Fanout stresses the routing phase with a wide star.
func BenchmarkEngine_Fanout(b *testing.B) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		engine, err := bsp.New(buildStar(1024), bsp.WithWorkers(4))
		if err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		if _, err = engine.Run(); err != nil {
			b.Fatal(err)
		}
	}
}
