package parallel

import "sync"

// Range is the half-open interval [Start, End).
type Range struct {
	Start, End int
}

func (r Range) Len() int {
	return r.End - r.Start
}

// Split divides [0, n) into at most parts contiguous, disjoint, non-empty
// ranges whose lengths differ by at most one.
func Split(n, parts int) []Range {
	if n <= 0 {
		return nil
	}
	parts = max(1, min(parts, n))
	ranges := make([]Range, parts)
	size, rem := n/parts, n%parts
	start := 0
	for i := range ranges {
		end := start + size
		if i < rem {
			end++
		}
		ranges[i] = Range{Start: start, End: end}
		start = end
	}
	return ranges
}

// ForRanges calls body once per range on the pool's workers and returns
// when every call has returned. Calls run concurrently, in no particular
// order.
func (p *Pool) ForRanges(ranges []Range, body func(start, end int)) {
	var wg sync.WaitGroup
	wg.Add(len(ranges))
	for _, r := range ranges {
		p.Do(func() {
			defer wg.Done()
			body(r.Start, r.End)
		})
	}
	wg.Wait()
}

// ForRows splits [0, n) into one range per worker and runs body over them.
func (p *Pool) ForRows(n int, body func(start, end int)) {
	p.ForRanges(Split(n, p.Size()), body)
}
