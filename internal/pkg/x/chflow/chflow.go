// Package chflow holds the channel helpers shared by the audit scheduler and
// its consumers. Every helper gives up as soon as the context is done, so a
// stalled peer never pins a goroutine.
package chflow

import "context"

// Receive returns the next value of ch. ok is false when ch was closed or
// ctx finished first.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send delivers data on ch and reports whether it was accepted before ctx
// finished.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// ForEach calls fn with every value received on ch until ch is closed or ctx
// finishes, in which case it returns nil. The first error returned by fn
// stops the loop and is returned as is.
func ForEach[T any](ctx context.Context, ch <-chan T, fn func(T) error) error {
	for {
		data, ok := Receive(ctx, ch)
		if !ok {
			return nil
		}

		if err := fn(data); err != nil {
			return err
		}
	}
}
