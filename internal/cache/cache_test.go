package cache

import (
	"strconv"
	"sync"
	"testing"
)

func value(v int) func() int { return func() int { return v } }

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](2)
	c.GetOrCreate("a", value(1))
	c.GetOrCreate("b", value(2))
	c.GetOrCreate("a", value(-1))
	c.GetOrCreate("c", value(3))

	if got := c.GetOrCreate("b", value(20)); got != 20 {
		t.Errorf("b = %d, want it evicted and recreated as 20", got)
	}
	if got := c.GetOrCreate("c", value(-1)); got != 3 {
		t.Errorf("c = %d, want cached 3", got)
	}
	s := c.Stats()
	if s.Evictions != 2 || s.Len != 2 || s.Capacity != 2 {
		t.Errorf("Stats() = %+v, want 2 evictions, len 2, capacity 2", s)
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[int, string](0)
	calls := 0
	create := func() string { calls++; return "v" }

	for range 3 {
		if got := c.GetOrCreate(7, create); got != "v" {
			t.Fatalf("GetOrCreate() = %q", got)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
	s := c.Stats()
	if s.Hits != 2 || s.Misses != 1 {
		t.Errorf("Stats() = %+v, want 2 hits 1 miss", s)
	}
}

func TestCacheUnlimited(t *testing.T) {
	c := New[int, int](0)
	for i := range 100 {
		c.GetOrCreate(i, value(i))
	}
	if s := c.Stats(); s.Len != 100 || s.Evictions != 0 {
		t.Errorf("Stats() = %+v, want 100 entries and no evictions", s)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := strconv.Itoa((g + i) % 32)
				c.GetOrCreate(k, value(i))
			}
		}()
	}
	wg.Wait()
	if s := c.Stats(); s.Len > 16 || s.Hits+s.Misses != 1600 {
		t.Errorf("Stats() = %+v, want at most 16 entries and 1600 lookups", s)
	}
}

func BenchmarkCacheHit(b *testing.B) {
	c := New[string, int](1000)
	for i := range 100 {
		c.GetOrCreate(strconv.Itoa(i), value(i))
	}
	b.ResetTimer()
	for range b.N {
		c.GetOrCreate("50", value(0))
	}
}
