package parallel

import (
	"sync"
	"testing"
)

func TestRowsCoversEveryRowOnce(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		workers int
	}{
		{"inline small", 10, 0},
		{"single worker", 500, 1},
		{"even split", 512, 4},
		{"uneven split", 1000, 7},
		{"more workers than rows", 200, 999},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var mu sync.Mutex
			seen := make([]int, tt.n)

			Rows(tt.n, tt.workers, func(y0, y1 int) {
				if y0 < 0 || y1 > tt.n || y0 >= y1 {
					t.Errorf("bad range [%d, %d)", y0, y1)
					return
				}
				mu.Lock()
				for y := y0; y < y1; y++ {
					seen[y]++
				}
				mu.Unlock()
			})

			for y, count := range seen {
				if count != 1 {
					t.Fatalf("row %d visited %d times, want 1", y, count)
				}
			}
		})
	}
}

func TestRowsZeroRows(t *testing.T) {
	called := false
	Rows(0, 4, func(y0, y1 int) { called = true })
	if called {
		t.Error("fn called for zero rows")
	}
	Rows(-5, 4, func(y0, y1 int) { called = true })
	if called {
		t.Error("fn called for negative rows")
	}
}

func TestRowsSmallRunsInline(t *testing.T) {
	// Below the threshold the work runs on the calling goroutine, so
	// an unsynchronized counter is safe.
	count := 0
	Rows(MinRows-1, 8, func(y0, y1 int) {
		count += y1 - y0
	})
	if count != MinRows-1 {
		t.Errorf("covered %d rows, want %d", count, MinRows-1)
	}
}
