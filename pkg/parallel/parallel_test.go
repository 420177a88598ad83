package parallel

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loudent/library/pkg/pool"
)

func newTestPool(t *testing.T) *pool.Pool {
	t.Helper()
	p := pool.New("test", 8, 64)
	t.Cleanup(func() { _ = p.Stop(context.Background()) })
	return p
}

func TestMap_PreservesInputOrder(t *testing.T) {
	p := newTestPool(t)

	items := make([]int, 50)
	for i := range items {
		items[i] = i
	}

	// Random delays so completion order differs from input order.
	results, err := Map(p, items, func(n int) string {
		time.Sleep(time.Duration(rand.Intn(10)) * time.Millisecond)
		return fmt.Sprintf("item-%d", n)
	})

	require.NoError(t, err)
	require.Len(t, results, 50)
	for i, got := range results {
		assert.Equal(t, fmt.Sprintf("item-%d", i), got)
	}
}

func TestMap_EmptyInput(t *testing.T) {
	p := newTestPool(t)

	results, err := Map(p, nil, func(n int) int { return n })
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMap_PanicAbortsCall(t *testing.T) {
	p := newTestPool(t)

	_, err := Map(p, []int{1, 2, 3}, func(n int) int {
		if n == 2 {
			panic("bad item")
		}
		return n
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "panicked")
}

func TestMap_StoppedPool(t *testing.T) {
	p := pool.New("stopped", 2, 8)
	require.NoError(t, p.Stop(context.Background()))

	_, err := Map(p, []int{1, 2, 3}, func(n int) int { return n })
	assert.ErrorIs(t, err, pool.ErrStopped)
}
