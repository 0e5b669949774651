package engine

import (
	"sync"
	"testing"
)

func TestShardedRelevanceMapAddAccumulates(t *testing.T) {
	m := newShardedRelevanceMap()
	m.Add(7, 0.5)
	m.Add(7, 0.25)

	built := m.BuildOrdinaryMap()
	if built[7] != 0.75 {
		t.Errorf("got %v, want 0.75", built[7])
	}
}

func TestShardedRelevanceMapErase(t *testing.T) {
	m := newShardedRelevanceMap()
	m.Add(7, 1.0)
	m.Erase(7)

	built := m.BuildOrdinaryMap()
	if _, ok := built[7]; ok {
		t.Errorf("expected key 7 to be absent after Erase")
	}
}

func TestShardedRelevanceMapNegativeKeys(t *testing.T) {
	m := newShardedRelevanceMap()
	m.Add(-3, 2.0)

	built := m.BuildOrdinaryMap()
	if built[-3] != 2.0 {
		t.Errorf("got %v, want 2.0", built[-3])
	}
}

func TestShardedRelevanceMapConcurrentAdds(t *testing.T) {
	m := newShardedRelevanceMap()
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Add(1, 1.0)
		}()
	}
	wg.Wait()

	built := m.BuildOrdinaryMap()
	if built[1] != 100.0 {
		t.Errorf("got %v, want 100.0", built[1])
	}
}

func BenchmarkShardedRelevanceMap_Add(b *testing.B) {
	m := newShardedRelevanceMap()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Add(i%1000, 1.0)
	}
}

func BenchmarkShardedRelevanceMap_AddParallel(b *testing.B) {
	m := newShardedRelevanceMap()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			m.Add(i%1000, 1.0)
			i++
		}
	})
}

func BenchmarkShardedRelevanceMap_BuildOrdinaryMap(b *testing.B) {
	m := newShardedRelevanceMap()
	for i := 0; i < 1000; i++ {
		m.Add(i, 1.0)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.BuildOrdinaryMap()
	}
}
