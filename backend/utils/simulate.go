package utils

import (
	"context"
	"time"
)

// Simulate waits for delay and then runs fn, standing in for a slow backend call.
// A cancelled context aborts the wait and fn never runs.
func Simulate[T any](ctx context.Context, delay time.Duration, fn func() (T, error)) (T, error) {
	var zero T
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-timer.C:
		}
	} else if err := ctx.Err(); err != nil {
		return zero, err
	}
	return fn()
}
