package runner

import "sync"

// Pool admits at most max tasks at a time. Submit blocks the caller while
// the pool is saturated; Drain blocks until everything submitted has
// finished. Tasks are never cancelled once started.
type Pool struct {
	sem chan struct{}
	wg  sync.WaitGroup
}

// NewPool builds a pool of the given width. Anything below 1 is clamped.
func NewPool(max int) *Pool {
	if max < 1 {
		max = 1
	}
	return &Pool{sem: make(chan struct{}, max)}
}

// Submit schedules fn, blocking until a slot is free. Every submitted fn
// runs exactly once; admission order among blocked submitters is whatever
// the runtime gives us.
func (p *Pool) Submit(fn func()) {
	p.sem <- struct{}{}
	p.wg.Add(1)
	go func() {
		defer func() {
			<-p.sem
			p.wg.Done()
		}()
		fn()
	}()
}

// Drain waits for all submitted tasks to finish.
func (p *Pool) Drain() {
	p.wg.Wait()
}
