package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/golang/glog"
)

// report is the timing and allocation summary of one measured loop.
type report struct {
	name    string
	reps    int
	elapsed time.Duration
	allocs  uint64
	bytes   uint64
}

func (r *report) perOp() time.Duration {
	return r.elapsed / time.Duration(r.reps)
}

func (r *report) String() string {
	return fmt.Sprintf("%s: %d ops in %v (%v/op), %d allocs, %d bytes allocated",
		r.name, r.reps, r.elapsed, r.perOp(), r.allocs, r.bytes)
}

// measure runs fn reps times and records wall time and heap allocations.
// The loop stops at the first error.
func measure(name string, reps int, fn func() error) (*report, error) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	start := time.Now()
	for i := 0; i < reps; i++ {
		if err := fn(); err != nil {
			return nil, fmt.Errorf("%s: rep %d: %w", name, i, err)
		}
	}
	elapsed := time.Since(start)

	runtime.ReadMemStats(&after)
	r := &report{
		name:    name,
		reps:    reps,
		elapsed: elapsed,
		allocs:  after.Mallocs - before.Mallocs,
		bytes:   after.TotalAlloc - before.TotalAlloc,
	}
	glog.Info(r)
	return r, nil
}
