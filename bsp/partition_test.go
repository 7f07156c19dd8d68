package bsp

import (
	"runtime"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketOf_StableAndInRange(t *testing.T) {
	for w := 1; w <= 16; w++ {
		for i := 0; i < 100; i++ {
			id := strconv.Itoa(i)
			b := bucketOf(id, w)
			assert.GreaterOrEqual(t, b, 0)
			assert.Less(t, b, w)
			assert.Equal(t, b, bucketOf(id, w), "assignment must be stable")
		}
	}
}

func TestPartition_DisjointAndComplete(t *testing.T) {
	const n, w = 50, 7
	vertices := make([]Vertex, n)
	for i := range vertices {
		vertices[i] = newProbe(strconv.Itoa(i))
	}

	buckets := partition(vertices, w)
	require.Len(t, buckets, w)

	seen := make(map[string]int, n)
	total := 0
	for _, bucket := range buckets {
		for _, v := range bucket {
			seen[v.ID()]++
			total++
		}
	}
	assert.Equal(t, n, total)
	for id, count := range seen {
		assert.Equal(t, 1, count, "vertex %s assigned to %d buckets", id, count)
	}
}

func TestPartition_SingleBucketKeepsCollectionOrder(t *testing.T) {
	vertices := []Vertex{newProbe("x"), newProbe("y"), newProbe("z")}
	buckets := partition(vertices, 1)
	require.Len(t, buckets, 1)
	assert.Equal(t, vertices, buckets[0])
}

func TestDefaultOptions_WorkerCountMatchesCPUs(t *testing.T) {
	assert.Equal(t, runtime.NumCPU(), DefaultOptions().Workers)
}
