// Package workerpool provides a simple fork-join worker pool: a fixed number
// of goroutines consuming submitted functions.
package workerpool

import (
	"sync"
)

// Pool runs submitted functions on a fixed number of worker goroutines. It
// may not be reused; once Wait has been called, further calls to Go or Wait
// panic.
type Pool struct {
	work chan func()
	wg   sync.WaitGroup
}

// New returns a Pool with the given number of worker goroutines already
// running.
func New(numWorkers int) *Pool {
	p := &Pool{
		work: make(chan func()),
	}
	p.wg.Add(numWorkers)
	for i := 0; i < numWorkers; i++ {
		go func() {
			defer p.wg.Done()
			for fn := range p.work {
				fn()
			}
		}()
	}
	return p
}

// Go submits a function to the pool. It blocks until a worker is available to
// pick the function up.
func (p *Pool) Go(fn func()) {
	p.work <- fn
}

// Wait shuts the pool down and blocks until all submitted functions have
// finished.
func (p *Pool) Wait() {
	close(p.work)
	p.wg.Wait()
}
