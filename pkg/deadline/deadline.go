package deadline

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout matches every *TimeoutError via errors.Is.
var ErrTimeout = errors.New("operation timed out")

// TimeoutError reports that an operation was abandoned at its deadline.
type TimeoutError struct {
	After time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("operation exceeded %d seconds", int(e.After.Seconds()))
}

func (e *TimeoutError) Is(target error) bool {
	return target == ErrTimeout
}

// Run executes fn on its own goroutine with a context that is cancelled after d.
// If fn has not returned by then, Run returns a *TimeoutError immediately and
// fn's eventual result is discarded. Cancellation of the parent context is
// reported as the parent's error.
func Run[T any](ctx context.Context, d time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if d <= 0 {
		return fn(ctx)
	}

	runCtx, cancel := context.WithTimeout(ctx, d)
	defer cancel()

	type outcome struct {
		val T
		err error
	}
	done := make(chan outcome, 1)

	go func() {
		v, err := fn(runCtx)
		done <- outcome{val: v, err: err}
	}()

	select {
	case out := <-done:
		if out.err != nil && errors.Is(out.err, context.DeadlineExceeded) && ctx.Err() == nil {
			return zero, &TimeoutError{After: d}
		}
		return out.val, out.err
	case <-runCtx.Done():
		if err := ctx.Err(); err != nil {
			return zero, err
		}
		return zero, &TimeoutError{After: d}
	}
}
