package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

// Pool runs queued functions on a fixed set of workers. A pool of one
// worker runs them inline, on the caller's goroutine.
type Pool struct {
	workers sync.WaitGroup
	tasks   sync.WaitGroup
	size    int
	Do      WorkerFunc
	Wait    WaitFunc
	Cancel  CancelFunc
}

// Start starts numWorkers workers, or GOMAXPROCS workers if numWorkers < 1.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	pool := &Pool{
		size: numWorkers,
		Do: func(f func()) {
			f()
		},
		Wait:   func(bool) {},
		Cancel: func() {},
	}

	if numWorkers > 1 {
		workChan := make(chan func(), numWorkers)

		for range numWorkers {
			pool.workers.Go(func() {
				for {
					f, ok := <-workChan
					if !ok {
						return
					}
					pool.run(f)
				}
			})
		}

		pool.Do = func(f func()) {
			pool.tasks.Add(1)
			workChan <- f
		}

		// Wait blocks until every queued function has returned. With done
		// set it also stops the workers; the pool cannot be used after.
		pool.Wait = func(done bool) {
			pool.tasks.Wait()
			if done {
				pool.Cancel()
				pool.workers.Wait()
			}
		}
		pool.Cancel = sync.OnceFunc(func() { close(workChan) })
	}

	return pool
}

func (p *Pool) run(f func()) {
	defer p.tasks.Done()
	f()
}

// Size is the number of workers.
func (p *Pool) Size() int {
	return p.size
}
