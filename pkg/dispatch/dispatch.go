// Package dispatch wraps each logical API operation in the asynchronous
// request-execution pipeline: submission to a bounded worker pool, a race
// against the configured deadline, and normalization of whatever failure
// occurred into the application error taxonomy. Per request the flow is
// Submitted -> Running -> {Completed | TimedOut | Failed} -> Normalized ->
// Responded; timed-out and failed operations go through the same
// normalization step.
package dispatch

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	apperrors "github.com/loudent/library/pkg/errors"
	"github.com/loudent/library/pkg/metrics"
	"github.com/loudent/library/pkg/pool"
)

// Dispatcher runs operations on its pool under a shared deadline. It is
// built once from configuration and shared by every use case.
type Dispatcher struct {
	pool    *pool.Pool
	timeout time.Duration
}

// New creates a dispatcher over p with the given per-request deadline.
func New(p *pool.Pool, timeout time.Duration) *Dispatcher {
	return &Dispatcher{pool: p, timeout: timeout}
}

// Timeout returns the configured per-request deadline.
func (d *Dispatcher) Timeout() time.Duration { return d.timeout }

type outcome[T any] struct {
	value T
	err   error
}

// Do submits fn to the dispatcher pool and waits for it or the deadline,
// whichever elapses first. The operation runs with a cancel-free context:
// deadline expiry abandons the caller's wait only, it does not cancel
// in-flight store calls, and a late result is discarded. Failures are
// unwrapped to their root cause and classified before being returned, so
// internal representations never reach the caller.
func Do[T any](d *Dispatcher, ctx context.Context, operation string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	start := time.Now()

	// Detached from the caller's cancellation: batch items and store
	// calls are never cooperatively cancelled once dispatched.
	opCtx := context.WithoutCancel(ctx)

	results := make(chan outcome[T], 1)
	err := d.pool.Submit(func() {
		value, opErr := fn(opCtx)
		results <- outcome[T]{value: value, err: opErr}
	})
	if err != nil {
		metrics.ObserveOperation(operation, metrics.ResultError, time.Since(start))
		return zero, apperrors.Wrap(err, "Service is shutting down.")
	}

	timer := time.NewTimer(d.timeout)
	defer timer.Stop()

	select {
	case res := <-results:
		if res.err != nil {
			classified := apperrors.Classify(res.err)
			logErr(operation, classified)
			metrics.ObserveOperation(operation, resultLabel(classified), time.Since(start))
			return zero, classified
		}
		metrics.ObserveOperation(operation, metrics.ResultSuccess, time.Since(start))
		return res.value, nil

	case <-timer.C:
		logrus.WithFields(logrus.Fields{
			"operation": operation,
			"timeout":   d.timeout,
		}).Warn("operation abandoned after deadline")
		metrics.ObserveOperation(operation, metrics.ResultTimeout, time.Since(start))
		return zero, apperrors.NewTimeout()

	case <-ctx.Done():
		classified := apperrors.Classify(ctx.Err())
		logErr(operation, classified)
		metrics.ObserveOperation(operation, resultLabel(classified), time.Since(start))
		return zero, classified
	}
}

// Lookup is Do for single-item gets: an absent result (nil) maps to
// NotFound carrying the caller-supplied message. Batch operations must use
// Do; for them absence is a per-item note, never a dispatcher failure.
func Lookup[T any](d *Dispatcher, ctx context.Context, operation, notFoundMsg string, fn func(ctx context.Context) (*T, error)) (*T, error) {
	value, err := Do(d, ctx, operation, fn)
	if err != nil {
		return nil, err
	}
	if value == nil {
		return nil, apperrors.New(apperrors.ErrCodeNotFound, notFoundMsg)
	}
	return value, nil
}

func resultLabel(err *apperrors.AppError) string {
	if err != nil && err.Code == apperrors.ErrCodeTimeout {
		return metrics.ResultTimeout
	}
	return metrics.ResultError
}

func logErr(operation string, err *apperrors.AppError) {
	entry := logrus.WithFields(logrus.Fields{
		"operation": operation,
		"code":      err.Code,
	})
	if err.Err != nil {
		entry = entry.WithError(err.Err)
	}
	entry.Error(err.Message)
}
