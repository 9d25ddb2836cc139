package parallel

import (
	"errors"
	"sort"
	"sync"
	"testing"
)

func TestWorkerCount(t *testing.T) {
	c := New(100, 1000, 4)
	cases := map[int]int{
		50:   1,
		100:  2,
		999:  2,
		1000: 4,
		5000: 4,
	}
	for n, want := range cases {
		if got := c.WorkerCount(n); got != want {
			t.Errorf("WorkerCount(%d) = %d, want %d", n, got, want)
		}
	}
}

func TestWorkerCountRespectsMaxWorkers(t *testing.T) {
	c := New(100, 1000, 1)
	if got := c.WorkerCount(5000); got != 1 {
		t.Errorf("WorkerCount(5000) = %d, want 1 with maxWorkers=1", got)
	}

	c2 := New(100, 1000, 2)
	if got := c2.WorkerCount(5000); got != 2 {
		t.Errorf("WorkerCount(5000) = %d, want 2 with maxWorkers=2", got)
	}
}

func TestRunCoversEveryIndexExactlyOnce(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100, 1000, 12345} {
		for _, workers := range []int{1, 2, 4} {
			c := New(0, 0, workers)
			seen := make([]int, n)
			var mu sync.Mutex
			err := c.Run(n, func(lo, hi int) {
				mu.Lock()
				for i := lo; i < hi; i++ {
					seen[i]++
				}
				mu.Unlock()
			})
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			for i, count := range seen {
				if count != 1 {
					t.Fatalf("n=%d workers=%d: index %d visited %d times", n, workers, i, count)
				}
			}
		}
	}
}

func TestRunSerialWhenBelowThresholds(t *testing.T) {
	c := New(1000, 10000, 4)
	var calls int
	err := c.Run(10, func(lo, hi int) {
		calls++
		if lo != 0 || hi != 10 {
			t.Errorf("single-worker Run got range [%d,%d), want [0,10)", lo, hi)
		}
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if calls != 1 {
		t.Errorf("fn called %d times, want exactly 1 for a serial run", calls)
	}
}

func TestRunPropagatesPanic(t *testing.T) {
	c := New(0, 0, 4)
	err := c.Run(100, func(lo, hi int) {
		if lo == 0 {
			panic("boom")
		}
	})
	if err == nil {
		t.Fatal("Run returned nil error after a panicking chunk")
	}
}

func TestRunAllChunksRunDespiteOnePanic(t *testing.T) {
	c := New(0, 0, 4)
	var mu sync.Mutex
	var ran []int
	err := c.Run(4, func(lo, hi int) {
		if lo == 0 {
			panic(errors.New("boom"))
		}
		mu.Lock()
		ran = append(ran, lo)
		mu.Unlock()
	})
	if err == nil {
		t.Fatal("expected error")
	}
	sort.Ints(ran)
	if len(ran) != 3 {
		t.Errorf("expected the other 3 chunks to still run, got %v", ran)
	}
}
