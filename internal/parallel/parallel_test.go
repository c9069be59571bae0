package parallel

import (
	"sync/atomic"
	"testing"
)

func TestFor(t *testing.T) {
	cfg := Default()

	var counter int64
	n := 1000

	For(n, cfg, func(_ int) {
		atomic.AddInt64(&counter, 1)
	})

	if counter != int64(n) {
		t.Errorf("Expected %d calls, got %d", n, counter)
	}
}

func TestFor_CoversEveryIndex(t *testing.T) {
	cfg := Config{Workers: 4, MinChunk: 1}

	n := 137 // not a multiple of the worker count
	seen := make([]int32, n)

	For(n, cfg, func(i int) {
		atomic.AddInt32(&seen[i], 1)
	})

	for i, c := range seen {
		if c != 1 {
			t.Errorf("index %d visited %d times, want 1", i, c)
		}
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Workers: 1}

	// Sequential mode must preserve iteration order.
	var order []int
	For(10, cfg, func(i int) {
		order = append(order, i)
	})

	for i, got := range order {
		if got != i {
			t.Fatalf("order[%d] = %d, want %d", i, got, i)
		}
	}
}

func TestForChunks_Disjoint(t *testing.T) {
	cfg := Config{Workers: 8, MinChunk: 2}

	n := 100
	covered := make([]int32, n)

	ForChunks(n, cfg, func(lo, hi int) {
		if lo >= hi {
			t.Errorf("empty chunk [%d, %d)", lo, hi)
		}
		for i := lo; i < hi; i++ {
			atomic.AddInt32(&covered[i], 1)
		}
	})

	for i, c := range covered {
		if c != 1 {
			t.Errorf("index %d covered %d times, want 1", i, c)
		}
	}
}

func TestForChunks_Empty(t *testing.T) {
	called := false
	ForChunks(0, Default(), func(_, _ int) {
		called = true
	})
	if called {
		t.Error("ForChunks(0) invoked the body")
	}
}
