package errors

import (
	"context"
	"errors"
	"fmt"
	"reflect"
)

// maxCauseDepth bounds the RootCause walk for chains whose links are not
// comparable and therefore cannot be tracked in the visited set.
const maxCauseDepth = 64

// AppError is the application-level error carried across layer boundaries.
// Code identifies the error category for clients, Message is safe to return
// to callers, and Err holds the internal cause (logged, never serialized).
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap supports errors.Is and errors.As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// WithCause attaches the internal cause and returns e. Only for freshly
// constructed errors, never for the shared sentinels.
func (e *AppError) WithCause(err error) *AppError {
	e.Err = err
	return e
}

// New creates an AppError with an explicit category code.
func New(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Newf creates an AppError with a formatted message.
func Newf(code int, format string, args ...interface{}) *AppError {
	return &AppError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap converts an internal failure (store, network) into an Internal
// AppError, hiding the underlying detail from the caller.
func Wrap(err error, message string) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: message, Err: err}
}

// Wrapf is Wrap with a formatted message.
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{Code: ErrCodeInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// Category codes. 4xxxx are caller errors, 5xxxx are service errors.
const (
	// ErrCodeInternal covers anything unanticipated, including store
	// failures that bubble out of a single-item operation.
	ErrCodeInternal = 50000
	// ErrCodeStoreError marks a failure talking to the backing store.
	ErrCodeStoreError = 50001

	// ErrCodeNotFound marks an entity absent on a single-item lookup.
	ErrCodeNotFound = 40400

	// ErrCodeTimeout marks a request deadline elapsing before completion.
	ErrCodeTimeout = 40800

	// ErrCodeInvalidParams marks missing or malformed request input,
	// including the checkout account precondition.
	ErrCodeInvalidParams = 40900
	// ErrCodeBindError marks a request body that failed to bind.
	ErrCodeBindError = 40901
)

var (
	ErrInternal      = New(ErrCodeInternal, "An unexpected error occurred.")
	ErrTimeout       = New(ErrCodeTimeout, "The request timed out. Please try again later.")
	ErrInvalidParams = New(ErrCodeInvalidParams, "Invalid request")
)

// NewNotFound creates the not-found marker carrying the caller-supplied
// lookup key in the message.
func NewNotFound(format string, args ...interface{}) *AppError {
	return Newf(ErrCodeNotFound, format, args...)
}

// NewInvalidArgument creates a validation failure.
func NewInvalidArgument(format string, args ...interface{}) *AppError {
	return Newf(ErrCodeInvalidParams, format, args...)
}

// NewTimeout creates the timeout marker produced when a request deadline
// elapses before the dispatched operation completes.
func NewTimeout() *AppError {
	return New(ErrCodeTimeout, ErrTimeout.Message)
}

// RootCause follows the cause chain of err until a link with no further
// cause. Already-visited links are skipped so a cyclic chain terminates at
// the last new cause seen instead of looping forever. Cycles cannot be
// produced through fmt.Errorf wrapping, but hand-built error types can
// form them, so the walk is bounded by an identity set.
func RootCause(err error) error {
	if err == nil {
		return nil
	}
	visited := make(map[error]struct{})
	for depth := 0; depth < maxCauseDepth; depth++ {
		cause := errors.Unwrap(err)
		if cause == nil {
			return err
		}
		if isComparable(cause) {
			if _, seen := visited[cause]; seen {
				return err
			}
		}
		if isComparable(err) {
			visited[err] = struct{}{}
		}
		err = cause
	}
	return err
}

// isComparable guards the visited set: error values of non-comparable
// types cannot be map keys.
func isComparable(err error) bool {
	return reflect.TypeOf(err).Comparable()
}

// Classify maps an arbitrary failure to its AppError category. It is pure
// and total: it never returns nil for a non-nil error, and it unwraps the
// chain first so nested completion errors do not leak their internal
// representation to callers.
func Classify(err error) *AppError {
	if err == nil {
		return nil
	}

	root := RootCause(err)

	// The root has no further cause by construction, so a type assertion
	// is enough and avoids re-walking a possibly cyclic chain.
	if appErr, ok := root.(*AppError); ok {
		return appErr
	}
	if root == context.DeadlineExceeded { //nolint:errorlint // root is fully unwrapped
		return &AppError{Code: ErrCodeTimeout, Message: ErrTimeout.Message, Err: root}
	}
	return Wrap(root, ErrInternal.Message)
}

// IsAppError reports whether err carries an AppError anywhere in its chain.
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// IsCode reports whether err classifies to the given category code.
func IsCode(err error, code int) bool {
	if err == nil {
		return false
	}
	return Classify(err).Code == code
}
