package engine

import "sync"

// ═══════════════════════════════════════════════════════════════════════════════
// SHARDED CONCURRENT ACCUMULATOR
// ═══════════════════════════════════════════════════════════════════════════════
// Ported from original_source/search-server/concurrent_map.h's
// ConcurrentMap<Key, Value>. The C++ original partitions its backing map
// into a fixed number of buckets, each independently mutex-guarded, and
// returns a lock_guard-scoped Access{ref_to_value} from operator[] so the
// caller can mutate the value in place while holding the bucket's lock.
// Go values aren't addressable the same way across a map, and Go has no
// destructors to release a lock_guard automatically, so the accumulate
// step (read-modify-write under the bucket lock) is folded into a single
// Add method instead of exposing a separate locked handle — the same
// "lock, mutate, unlock" shape InvertedIndex.Index uses for its own single
// mutex ("defer idx.mu.Unlock()"), just pushed down to per-bucket
// granularity here.
//
// Used only by the parallel ranker: plus-word accumulation calls Add with
// tf*idf; minus-word exclusion calls Erase. Different buckets may be
// operated on concurrently; within one bucket, operations serialize on
// that bucket's mutex.
// ═══════════════════════════════════════════════════════════════════════════════

const shardedMapBuckets = 1000

type relevanceBucket struct {
	mu sync.Mutex
	m  map[int]float64
}

// shardedRelevanceMap is the sharded accumulator used by the parallel
// ranker to coalesce per-word contributions into a per-document relevance
// total without a single global lock.
type shardedRelevanceMap struct {
	buckets [shardedMapBuckets]*relevanceBucket
}

func newShardedRelevanceMap() *shardedRelevanceMap {
	m := &shardedRelevanceMap{}
	for i := range m.buckets {
		m.buckets[i] = &relevanceBucket{m: make(map[int]float64)}
	}
	return m
}

func (m *shardedRelevanceMap) bucketFor(key int) *relevanceBucket {
	idx := key % shardedMapBuckets
	if idx < 0 {
		idx += shardedMapBuckets
	}
	return m.buckets[idx]
}

// Add locks key's bucket and adds delta to its accumulated value,
// creating the entry (at 0.0) first if absent.
func (m *shardedRelevanceMap) Add(key int, delta float64) {
	b := m.bucketFor(key)
	b.mu.Lock()
	b.m[key] += delta
	b.mu.Unlock()
}

// Erase locks key's bucket and removes the entry if present.
func (m *shardedRelevanceMap) Erase(key int) {
	b := m.bucketFor(key)
	b.mu.Lock()
	delete(b.m, key)
	b.mu.Unlock()
}

// BuildOrdinaryMap locks each bucket in turn and merges its contents into
// a single map. Called from a single thread after the parallel phase
// completes — concurrent calls to Add/Erase while this runs would race.
func (m *shardedRelevanceMap) BuildOrdinaryMap() map[int]float64 {
	result := make(map[int]float64)
	for _, b := range m.buckets {
		b.mu.Lock()
		for k, v := range b.m {
			result[k] = v
		}
		b.mu.Unlock()
	}
	return result
}
