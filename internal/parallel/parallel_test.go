package parallel

import (
	"sync/atomic"
	"testing"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestFor(t *testing.T) {
	cfg := DefaultConfig()

	var counter int64
	n := 10000

	For(n, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != int64(n) {
		t.Errorf("Expected %d, got %d", n, counter)
	}
}

func TestFor_Sequential(t *testing.T) {
	cfg := Config{Enabled: false, ChunkSize: 16}

	var counter int64
	For(100, func(_ int) {
		atomic.AddInt64(&counter, 1)
	}, cfg)

	if counter != 100 {
		t.Errorf("Expected 100, got %d", counter)
	}
}

func TestForChunks_CoversRange(t *testing.T) {
	cfg := Config{Enabled: true, NumWorkers: 4, ChunkSize: 7}

	n := 100
	seen := make([]atomic.Int32, n)
	ForChunks(n, func(_, start, end int) {
		for i := start; i < end; i++ {
			seen[i].Add(1)
		}
	}, cfg)

	for i := range seen {
		if got := seen[i].Load(); got != 1 {
			t.Errorf("index %d visited %d times, want 1", i, got)
		}
	}
}

func TestForChunks_BoundariesIndependentOfWorkers(t *testing.T) {
	collect := func(workers int) [][2]int {
		cfg := Config{Enabled: workers > 1, NumWorkers: workers, ChunkSize: 10}
		out := make([][2]int, 4)
		// Each chunk index is visited exactly once, so the writes are disjoint.
		ForChunks(35, func(chunk, start, end int) {
			out[chunk] = [2]int{start, end}
		}, cfg)
		return out
	}

	sequential := collect(1)
	concurrent := collect(8)

	for c := range sequential {
		if sequential[c] != concurrent[c] {
			t.Errorf("chunk %d bounds differ: sequential %v, concurrent %v", c, sequential[c], concurrent[c])
		}
	}

	want := [][2]int{{0, 10}, {10, 20}, {20, 30}, {30, 35}}
	for c := range want {
		if sequential[c] != want[c] {
			t.Errorf("chunk %d = %v, want %v", c, sequential[c], want[c])
		}
	}
}

func TestForChunks_Empty(t *testing.T) {
	called := false
	ForChunks(0, func(_, _, _ int) { called = true }, DefaultConfig())
	if called {
		t.Error("ForChunks(0) should not invoke the callback")
	}
}

func TestForChunks_ZeroChunkSize(t *testing.T) {
	// A zero chunk size degrades to a single chunk.
	var calls int64
	ForChunks(50, func(chunk, start, end int) {
		atomic.AddInt64(&calls, 1)
		if chunk != 0 || start != 0 || end != 50 {
			t.Errorf("got chunk %d [%d, %d), want chunk 0 [0, 50)", chunk, start, end)
		}
	}, Config{Enabled: true, NumWorkers: 4})

	if calls != 1 {
		t.Errorf("callback invoked %d times, want 1", calls)
	}
}
