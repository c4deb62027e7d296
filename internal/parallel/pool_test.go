package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"
)

func TestWorkerPool_Create(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	if p.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", p.Workers())
	}
}

func TestWorkerPool_CreateZeroWorkers(t *testing.T) {
	p := NewWorkerPool(0)
	defer p.Close()

	if want := runtime.GOMAXPROCS(0); p.Workers() != want {
		t.Errorf("Workers() = %d, want GOMAXPROCS %d", p.Workers(), want)
	}
}

func TestWorkerPool_ExecuteAll(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var count atomic.Int32
	work := make([]func(), 100)
	for i := range work {
		work[i] = func() { count.Add(1) }
	}
	p.ExecuteAll(work)

	if got := count.Load(); got != 100 {
		t.Errorf("executed %d items, want 100", got)
	}
}

func TestWorkerPool_ExecuteAllAfterClose(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()
	p.Close()

	ran := false
	p.ExecuteAll([]func(){func() { ran = true }})
	if !ran {
		t.Error("ExecuteAll after Close did not run the work")
	}
}

func TestWorkerPool_Range(t *testing.T) {
	tests := []struct {
		name     string
		n, grain int
	}{
		{"empty", 0, 1},
		{"single chunk", 5, 16},
		{"many chunks", 1000, 7},
		{"zero grain", 33, 0},
	}

	p := NewWorkerPool(3)
	defer p.Close()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hits := make([]atomic.Int32, tt.n)
			p.Range(tt.n, tt.grain, func(lo, hi int) {
				for i := lo; i < hi; i++ {
					hits[i].Add(1)
				}
			})
			for i := range hits {
				if got := hits[i].Load(); got != 1 {
					t.Fatalf("index %d visited %d times, want 1", i, got)
				}
			}
		})
	}
}

func TestDefaultShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() returned different pools")
	}
}
