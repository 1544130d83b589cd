// Package parallel distributes row-range work across worker
// goroutines.
//
// Raster conversion and compositing have no cross-row dependency, so
// tall operations can split their destination rows into contiguous
// ranges and process them concurrently. Each destination row belongs
// to exactly one range, so no two workers ever write the same row.
package parallel

import (
	"runtime"
	"sync"
)

// MinRows is the height below which splitting is not worth the
// goroutine overhead; Rows runs such work inline.
const MinRows = 128

// Rows runs fn over [0, n) split into contiguous half-open row ranges,
// one per worker. workers <= 0 means GOMAXPROCS. fn must be safe to
// call concurrently for disjoint ranges; Rows returns after every
// range has completed.
func Rows(n, workers int, fn func(y0, y1 int)) {
	if n <= 0 {
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}
	if n < MinRows || workers == 1 {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for y0 := 0; y0 < n; y0 += chunk {
		y1 := y0 + chunk
		if y1 > n {
			y1 = n
		}
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			fn(y0, y1)
		}(y0, y1)
	}
	wg.Wait()
}
