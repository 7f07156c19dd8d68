package bsp

import "hash/fnv"

// partition splits the collection into w buckets keyed by FNV-1a hash of the
// vertex ID. Assignment depends only on the ID and w, so repeated runs over
// the same collection land every vertex in the same bucket. Buckets may be
// empty or uneven; the hash promises only a roughly uniform spread.
func partition(vertices []Vertex, w int) [][]Vertex {
	buckets := make([][]Vertex, w)
	for _, v := range vertices {
		b := bucketOf(v.ID(), w)
		buckets[b] = append(buckets[b], v)
	}
	return buckets
}

// bucketOf maps a vertex ID onto [0, w) via the 64-bit FNV-1a hash.
func bucketOf(id string, w int) int {
	h := fnv.New64a()
	_, _ = h.Write([]byte(id))
	return int(h.Sum64() % uint64(w))
}
