// Package parallel fans independent grid work out across worker goroutines.
//
// Per-component distance transforms and per-row envelope passes touch
// disjoint data, so they split cleanly into index ranges with no shared
// state until the caller recombines results.
package parallel

import (
	"runtime"
	"sync"
)

// Config controls how work is split across goroutines.
type Config struct {
	Workers  int // goroutines to fan out to; <= 1 forces sequential execution
	MinChunk int // smallest index range worth its own goroutine
}

// Default returns a config sized to the current GOMAXPROCS.
func Default() Config {
	return Config{
		Workers:  runtime.GOMAXPROCS(0),
		MinChunk: 4,
	}
}

// ForChunks splits [0, n) into contiguous bands and calls f(lo, hi) for each
// band, one band per goroutine. Runs sequentially as a single band when the
// config disables parallelism or n is below MinChunk.
func ForChunks(n int, cfg Config, f func(lo, hi int)) {
	if n <= 0 {
		return
	}
	if cfg.Workers <= 1 || n < cfg.MinChunk {
		f(0, n)
		return
	}

	chunk := (n + cfg.Workers - 1) / cfg.Workers
	if chunk < cfg.MinChunk {
		chunk = cfg.MinChunk
	}

	var wg sync.WaitGroup
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			f(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// For calls f(i) for every i in [0, n), splitting the range per ForChunks.
// f must be safe to call concurrently for distinct i.
func For(n int, cfg Config, f func(i int)) {
	ForChunks(n, cfg, func(lo, hi int) {
		for i := lo; i < hi; i++ {
			f(i)
		}
	})
}
