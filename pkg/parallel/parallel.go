// Package parallel provides order-preserving fan-out over a shared worker
// pool. It backs the batch checkout/checkin operations: every item runs
// concurrently, results come back in input order, and the call blocks until
// the last item finishes.
package parallel

import (
	"fmt"
	"sync"

	"github.com/loudent/library/pkg/pool"
)

// Map applies fn to every item concurrently on p and returns the results
// in input order, regardless of completion order. Items are expected to
// fold their own failures into the result value (the per-item bulkhead);
// a panicking fn is a programming error and aborts the whole call with
// the first panic converted to an error. Empty input returns an empty
// result without touching the pool.
func Map[T, R any](p *pool.Pool, items []T, fn func(T) R) ([]R, error) {
	results := make([]R, len(items))
	if len(items) == 0 {
		return results, nil
	}

	var (
		wg       sync.WaitGroup
		once     sync.Once
		firstErr error
	)
	fail := func(err error) {
		once.Do(func() { firstErr = err })
	}

	for i := range items {
		i := i
		wg.Add(1)
		err := p.Submit(func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					fail(fmt.Errorf("parallel: item %d panicked: %v", i, r))
				}
			}()
			results[i] = fn(items[i])
		})
		if err != nil {
			wg.Done()
			fail(err)
			break
		}
	}

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
