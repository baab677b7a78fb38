// Package worker runs deferred jobs, such as replay writes, off the
// session's tick path.
package worker

import (
	"runtime"
	"sync"

	"github.com/SanoKhan22/CricketAR-sub000/cerror"
	"github.com/getsentry/sentry-go"
)

// Pool is a fixed set of goroutines draining a shared job queue. A
// single-worker pool runs its jobs in submission order.
type Pool struct {
	queue chan func()
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool of the given size. A size below one falls back to one
// worker per CPU.
func NewPool(size int) *Pool {
	if size < 1 {
		size = runtime.NumCPU()
	}
	p := &Pool{queue: make(chan func(), size*8)}
	p.wg.Add(size)
	for i := 0; i < size; i++ {
		go p.work()
	}
	return p
}

func (p *Pool) work() {
	defer p.wg.Done()
	defer sentry.Recover()

	for f := range p.queue {
		f()
	}
}

// Submit queues a job. It fails once the pool is closed.
func (p *Pool) Submit(f func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return cerror.New("submit on a closed worker pool")
	}
	p.queue <- f
	return nil
}

// Close stops the pool once the queued jobs have finished. Further submits
// fail.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	p.wg.Wait()
}
