package workers

import (
	"context"
	"errors"
	"runtime"
	"sync"
)

// ErrStopped is returned for work offered to a stopped pool.
var ErrStopped = errors.New("workers: pool stopped")

// Pool runs submitted jobs on a fixed set of goroutines.
type Pool struct {
	size int
	jobs chan func()
	wg   sync.WaitGroup
	quit chan struct{}
	once sync.Once
}

// NewPool creates a pool with size workers; size <= 0 uses the CPU count.
// Call Start before submitting.
func NewPool(size int) *Pool {
	if size <= 0 {
		size = runtime.NumCPU()
	}
	return &Pool{
		size: size,
		jobs: make(chan func(), size*2),
		quit: make(chan struct{}),
	}
}

func (p *Pool) Start() {
	for i := 0; i < p.size; i++ {
		go p.worker()
	}
}

func (p *Pool) worker() {
	for {
		select {
		case job := <-p.jobs:
			job()
			p.wg.Done()
		case <-p.quit:
			return
		}
	}
}

// Submit queues job. It reports false, without running job, once the pool
// has been stopped.
func (p *Pool) Submit(job func()) bool {
	select {
	case <-p.quit:
		return false
	default:
	}

	p.wg.Add(1)
	select {
	case p.jobs <- job:
		return true
	case <-p.quit:
		p.wg.Done()
		return false
	}
}

// Wait blocks until every submitted job has finished.
func (p *Pool) Wait() {
	p.wg.Wait()
}

func (p *Pool) Stop() {
	p.once.Do(func() { close(p.quit) })
}

func (p *Pool) Size() int {
	return p.size
}

// ParallelFor calls fn for every index in [start, end), split into chunks
// across the workers. Indices not yet reached when ctx is cancelled are
// skipped. On a stopped pool it returns ErrStopped after the chunks already
// queued have finished.
func (p *Pool) ParallelFor(ctx context.Context, start, end int, fn func(int)) error {
	if start >= end {
		return ctx.Err()
	}

	chunk := max(1, (end-start)/p.size)
	stopped := false
	for i := start; i < end && !stopped; i += chunk {
		lo, hi := i, min(i+chunk, end)
		stopped = !p.Submit(func() {
			for j := lo; j < hi; j++ {
				if ctx.Err() != nil {
					return
				}
				fn(j)
			}
		})
	}
	p.Wait()
	if stopped {
		return ErrStopped
	}
	return ctx.Err()
}
