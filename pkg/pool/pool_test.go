package pool

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPool_RunsSubmittedTasks(t *testing.T) {
	p := New("test", 4, 16)
	defer p.Stop(context.Background())

	var counter int64
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		err := p.Submit(func() {
			defer wg.Done()
			atomic.AddInt64(&counter, 1)
		})
		require.NoError(t, err)
	}
	wg.Wait()

	assert.Equal(t, int64(100), atomic.LoadInt64(&counter))
}

func TestPool_StopDrainsQueuedTasks(t *testing.T) {
	// One worker so tasks queue up behind a slow first task.
	p := New("test", 1, 16)

	var counter int64
	release := make(chan struct{})
	require.NoError(t, p.Submit(func() {
		<-release
		atomic.AddInt64(&counter, 1)
	}))
	for i := 0; i < 5; i++ {
		require.NoError(t, p.Submit(func() {
			atomic.AddInt64(&counter, 1)
		}))
	}

	close(release)
	require.NoError(t, p.Stop(context.Background()))

	assert.Equal(t, int64(6), atomic.LoadInt64(&counter))
}

func TestPool_SubmitAfterStop(t *testing.T) {
	p := New("test", 2, 8)
	require.NoError(t, p.Stop(context.Background()))

	err := p.Submit(func() {})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestPool_StopIsIdempotent(t *testing.T) {
	p := New("test", 2, 8)
	require.NoError(t, p.Stop(context.Background()))
	require.NoError(t, p.Stop(context.Background()))
}

func TestPool_StopHonorsContext(t *testing.T) {
	p := New("test", 1, 8)

	release := make(chan struct{})
	require.NoError(t, p.Submit(func() { <-release }))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := p.Stop(ctx)
	assert.Error(t, err)

	// The worker is still draining in the background; release it so the
	// goroutine does not leak past the test.
	close(release)
}

func TestPool_TaskPanicDoesNotKillWorker(t *testing.T) {
	p := New("test", 1, 8)
	defer p.Stop(context.Background())

	require.NoError(t, p.Submit(func() { panic("boom") }))

	done := make(chan struct{})
	require.NoError(t, p.Submit(func() { close(done) }))

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not survive the panic")
	}
}

func TestPool_DefaultsApplied(t *testing.T) {
	p := New("test", 0, 0)
	defer p.Stop(context.Background())

	assert.Equal(t, defaultWorkers, p.Workers())
	assert.Equal(t, 0, p.QueueDepth())
}

func TestStopAll(t *testing.T) {
	a := New("a", 2, 8)
	b := New("b", 2, 8)

	require.NoError(t, StopAll(context.Background(), a, b))
	assert.ErrorIs(t, a.Submit(func() {}), ErrStopped)
	assert.ErrorIs(t, b.Submit(func() {}), ErrStopped)
}
