// Package concurrentmap provides a sharded, mutex-striped accumulator for
// integer keys. It is used by the parallel scorer to accumulate
// per-document relevance from multiple goroutines, one per query term,
// without a single global lock.
package concurrentmap

import (
	"sort"
	"sync"
)

// Map partitions a mapping from int to V across N shards, each guarded
// by its own mutex. The shard for key k is k mod N. Per-key updates are
// linearizable; there is no ordering guarantee across keys in different
// shards.
type Map struct {
	shards []shard
}

type shard struct {
	mu sync.Mutex
	m  map[int]float64
}

// New returns a Map with n shards. n must be ≥ 1.
func New(n int) *Map {
	if n < 1 {
		n = 1
	}
	m := &Map{shards: make([]shard, n)}
	for i := range m.shards {
		m.shards[i].m = make(map[int]float64)
	}
	return m
}

func (m *Map) shardFor(key int) *shard {
	id := key % len(m.shards)
	if id < 0 {
		id += len(m.shards)
	}
	return &m.shards[id]
}

// Add accumulates delta into the value stored at key, locking only the
// shard that owns key for the duration of the update.
func (m *Map) Add(key int, delta float64) {
	s := m.shardFor(key)
	s.mu.Lock()
	s.m[key] += delta
	s.mu.Unlock()
}

// Snapshot locks each shard in turn and merges its entries into a single
// ordinary map. It is a point-in-time view per shard, not a single
// globally atomic snapshot across all shards.
func (m *Map) Snapshot() map[int]float64 {
	result := make(map[int]float64)
	for i := range m.shards {
		s := &m.shards[i]
		s.mu.Lock()
		for k, v := range s.m {
			result[k] = v
		}
		s.mu.Unlock()
	}
	return result
}

// SortedKeys returns the keys present in the map, sorted ascending. It is
// a convenience built on top of Snapshot for callers that need
// deterministic iteration order.
func SortedKeys(snapshot map[int]float64) []int {
	keys := make([]int, 0, len(snapshot))
	for k := range snapshot {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
