// Package parallel provides parallel execution utilities for filling
// and processing large buffers.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Number of worker goroutines to use.
	ChunkSize  int  // Items per chunk; boundaries depend only on this and n.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		ChunkSize:  4096,
	}
}

// ForChunks invokes f(chunk, start, end) for every fixed-size chunk of
// [0, n), possibly concurrently. Chunk boundaries depend only on n and
// cfg.ChunkSize, never on the worker count, so callers can derive
// deterministic per-chunk state such as a seeded RNG stream per chunk.
func ForChunks(n int, f func(chunk, start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	chunkSize := cfg.ChunkSize
	if chunkSize <= 0 {
		chunkSize = n
	}
	numChunks := (n + chunkSize - 1) / chunkSize

	runChunk := func(c int) {
		start := c * chunkSize
		end := min(start+chunkSize, n)
		f(c, start, end)
	}

	if !cfg.Enabled || numChunks == 1 || cfg.NumWorkers <= 1 {
		// Sequential fallback.
		for c := 0; c < numChunks; c++ {
			runChunk(c)
		}
		return
	}

	workers := min(cfg.NumWorkers, numChunks)
	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				c := int(next.Add(1)) - 1
				if c >= numChunks {
					return
				}
				runChunk(c)
			}
		}()
	}
	wg.Wait()
}

// For executes f(i) for i in [0, n) with optional parallelism.
// Falls back to sequential execution if parallelism is disabled or n is
// too small to split.
func For(n int, f func(i int), cfg Config) {
	ForChunks(n, func(_, start, end int) {
		for i := start; i < end; i++ {
			f(i)
		}
	}, cfg)
}
