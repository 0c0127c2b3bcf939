package parallel

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrTaskPanic wraps a panic raised by a mapped function.
var ErrTaskPanic = errors.New("task panicked")

// Map applies fn to every item on the pool and returns the results in input
// order. errs[i] is non-nil when item i failed, panicked, or was never
// started because ctx was cancelled. The pool stays open.
func Map[T, R any](ctx context.Context, pool *WorkerPool, items []T, fn func(context.Context, T) (R, error)) ([]R, []error) {
	results := make([]R, len(items))
	errs := make([]error, len(items))

	var wg sync.WaitGroup
	for i := range items {
		i := i
		wg.Add(1)
		task := func() {
			defer wg.Done()
			defer func() {
				if r := recover(); r != nil {
					errs[i] = fmt.Errorf("%w: %v", ErrTaskPanic, r)
				}
			}()
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = fn(ctx, items[i])
		}
		if !pool.SubmitContext(ctx, task) {
			wg.Done()
			if err := ctx.Err(); err != nil {
				errs[i] = err
			} else {
				errs[i] = ErrPoolClosed
			}
		}
	}
	wg.Wait()

	return results, errs
}

// ErrPoolClosed is reported for items submitted to a closed pool.
var ErrPoolClosed = errors.New("worker pool closed")
