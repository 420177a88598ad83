package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// loopErr is a hand-built error whose cause chain can form a cycle.
type loopErr struct {
	name  string
	cause error
}

func (e *loopErr) Error() string { return e.name }
func (e *loopErr) Unwrap() error { return e.cause }

func TestRootCause(t *testing.T) {
	base := errors.New("disk full")

	t.Run("plain error is its own root", func(t *testing.T) {
		assert.Equal(t, base, RootCause(base))
	})

	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, RootCause(nil))
	})

	t.Run("walks fmt wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("layer two: %w", fmt.Errorf("layer one: %w", base))
		assert.Equal(t, base, RootCause(wrapped))
	})

	t.Run("walks AppError causes", func(t *testing.T) {
		wrapped := Wrap(Wrap(base, "store call failed"), "operation failed")
		assert.Equal(t, base, RootCause(wrapped))
	})

	t.Run("two-element cycle ends at the last new link", func(t *testing.T) {
		a := &loopErr{name: "a"}
		b := &loopErr{name: "b", cause: a}
		a.cause = b

		// a -> b -> a: a is already visited, so the walk stops at b.
		assert.Equal(t, b, RootCause(a))
	})

	t.Run("self cycle returns itself", func(t *testing.T) {
		a := &loopErr{name: "a"}
		a.cause = a
		assert.Equal(t, a, RootCause(a))
	})
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantMsg  string
	}{
		{
			name:     "not found marker survives wrapping",
			err:      fmt.Errorf("completion: %w", NewNotFound("Book not found for ISBN: %s", "42")),
			wantCode: ErrCodeNotFound,
			wantMsg:  "Book not found for ISBN: 42",
		},
		{
			name:     "timeout marker",
			err:      NewTimeout(),
			wantCode: ErrCodeTimeout,
			wantMsg:  ErrTimeout.Message,
		},
		{
			name:     "deadline exceeded maps to timeout",
			err:      fmt.Errorf("await: %w", context.DeadlineExceeded),
			wantCode: ErrCodeTimeout,
			wantMsg:  ErrTimeout.Message,
		},
		{
			name:     "invalid argument",
			err:      NewInvalidArgument("Account not found: %s", "999"),
			wantCode: ErrCodeInvalidParams,
			wantMsg:  "Account not found: 999",
		},
		{
			name:     "unknown error folds to internal",
			err:      errors.New("socket reset"),
			wantCode: ErrCodeInternal,
			wantMsg:  ErrInternal.Message,
		},
		{
			name:     "wrapped store error keeps its category",
			err:      fmt.Errorf("dispatch: %w", Newf(ErrCodeStoreError, "catalog get failed")),
			wantCode: ErrCodeStoreError,
			wantMsg:  "catalog get failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)
			require.NotNil(t, got)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMsg, got.Message)
		})
	}

	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, Classify(nil))
	})

	t.Run("never nil for non-nil input, even cyclic", func(t *testing.T) {
		a := &loopErr{name: "a"}
		a.cause = a
		got := Classify(a)
		require.NotNil(t, got)
		assert.Equal(t, ErrCodeInternal, got.Code)
	})
}

func TestWithCause(t *testing.T) {
	base := errors.New("conn refused")
	err := Newf(ErrCodeStoreError, "account get %s failed", "123").WithCause(base)

	assert.ErrorIs(t, err, base)
	assert.Equal(t, base, RootCause(err))
	assert.Contains(t, err.Error(), "account get 123 failed")
}

func TestIsCode(t *testing.T) {
	assert.True(t, IsCode(NewNotFound("gone"), ErrCodeNotFound))
	assert.True(t, IsCode(fmt.Errorf("x: %w", NewTimeout()), ErrCodeTimeout))
	assert.False(t, IsCode(errors.New("plain"), ErrCodeNotFound))
	assert.False(t, IsCode(nil, ErrCodeNotFound))
}
