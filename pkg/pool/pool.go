package pool

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
)

// ErrStopped is returned by Submit once shutdown has begun.
var ErrStopped = errors.New("pool: stopped")

const (
	defaultWorkers   = 8
	defaultQueueSize = 64
)

// Pool is a bounded worker pool. Workers pull tasks from a buffered queue;
// Submit blocks when the queue is full and fails once Stop has been called.
// Pools are long-lived, process-wide resources: built once at startup,
// injected where needed, and stopped together at shutdown.
type Pool struct {
	name    string
	tasks   chan func()
	workers int

	wg      sync.WaitGroup // running workers
	pending sync.WaitGroup // submitted, not yet finished tasks

	mu      sync.Mutex
	stopped bool
}

// New creates a pool with the given worker count and queue capacity and
// starts its workers. Non-positive sizes fall back to defaults.
func New(name string, workers, queueSize int) *Pool {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	p := &Pool{
		name:    name,
		tasks:   make(chan func(), queueSize),
		workers: workers,
	}

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()
	for task := range p.tasks {
		p.run(id, task)
	}
}

// run executes one task, containing panics so a broken task cannot take
// down the worker. Callers that care about panics (the batch executor)
// install their own recovery before the task reaches the pool.
func (p *Pool) run(id int, task func()) {
	defer p.pending.Done()
	defer func() {
		if r := recover(); r != nil {
			logrus.WithFields(logrus.Fields{
				"pool":   p.name,
				"worker": id,
				"panic":  fmt.Sprintf("%v", r),
			}).Error("task panicked")
		}
	}()
	task()
}

// Submit enqueues a task for execution. It blocks while the queue is full
// and returns ErrStopped if shutdown has begun.
func (p *Pool) Submit(task func()) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return ErrStopped
	}
	p.pending.Add(1)
	p.mu.Unlock()

	p.tasks <- task
	return nil
}

// Stop rejects further submissions, waits for queued and in-flight tasks
// to finish, then releases the workers. The context bounds the drain; on
// expiry remaining results are abandoned but workers keep draining in the
// background so the queue channel is eventually closed exactly once.
func (p *Pool) Stop(ctx context.Context) error {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return nil
	}
	p.stopped = true
	p.mu.Unlock()

	done := make(chan struct{})
	go func() {
		p.pending.Wait()
		close(p.tasks)
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("pool %s: drain aborted: %w", p.name, ctx.Err())
	}
}

// Name returns the pool's identifier, used for logs and metrics.
func (p *Pool) Name() string { return p.name }

// Workers returns the configured worker count.
func (p *Pool) Workers() int { return p.workers }

// QueueDepth returns the number of tasks waiting in the queue.
func (p *Pool) QueueDepth() int { return len(p.tasks) }

// StopAll stops the given pools in order, reporting the first failure.
// The dispatcher and service pools are drained together at shutdown.
func StopAll(ctx context.Context, pools ...*Pool) error {
	var firstErr error
	for _, p := range pools {
		if err := p.Stop(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
