// internal/cache/lru_test.go
//
// Unit-tests for the LRU cache.

package cache

import (
	"sync"
	"testing"
)

func TestLRU_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	var evicted []string
	c.OnEvict = func(k string, _ int) { evicted = append(evicted, k) }

	c.Add("a", 1)
	c.Add("b", 2)
	if _, ok := c.Get("a"); !ok { // a becomes MRU
		t.Fatalf("a missing")
	}
	c.Add("c", 3)

	if _, ok := c.Get("b"); ok {
		t.Fatalf("b should have been evicted")
	}
	if len(evicted) != 1 || evicted[0] != "b" {
		t.Fatalf("evicted = %v", evicted)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d", c.Len())
	}
}

func TestLRU_GetOrAdd(t *testing.T) {
	c := New[string, *int](4)
	calls := 0
	mk := func() *int { calls++; v := calls; return &v }

	v1, added := c.GetOrAdd("k", mk)
	if !added || *v1 != 1 {
		t.Fatalf("first GetOrAdd: added=%v v=%d", added, *v1)
	}
	v2, added := c.GetOrAdd("k", mk)
	if added || v2 != v1 || calls != 1 {
		t.Fatalf("second GetOrAdd should hit the cache")
	}
}

func TestLRU_Concurrent(t *testing.T) {
	c := New[int, int](64)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				c.Add(n*1000+j, j)
				c.Get(n*1000 + j)
			}
		}(i)
	}
	wg.Wait()
	if c.Len() != 64 {
		t.Fatalf("Len = %d, want 64", c.Len())
	}
}

func TestNew_PanicsOnZeroCapacity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	New[string, int](0)
}
