package bench

import (
	"time"
)

// Result is the timing of one combination.
type Result struct {
	Name       string
	Iterations int
	Total      time.Duration
}

// PerOp is the mean duration of one run.
func (r Result) PerOp() time.Duration {
	if r.Iterations == 0 {
		return 0
	}
	return r.Total / time.Duration(r.Iterations)
}

// Measure calls fn repeatedly until minTime has elapsed, growing the batch
// of calls between clock reads, and at least once.
func Measure(name string, fn func(), minTime time.Duration) Result {
	res := Result{Name: name}
	n := 1
	for {
		start := time.Now()
		for range n {
			fn()
		}
		res.Total += time.Since(start)
		res.Iterations += n
		if res.Total >= minTime {
			return res
		}
		n = min(n*2, 1<<20)
	}
}
