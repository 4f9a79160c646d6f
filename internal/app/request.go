package app

import (
	"context"
	"fmt"
)

// Await runs one API call on behalf of a view. If ctx is done by the time
// the call returns, the result is dropped and ErrDiscarded is returned, so a
// view that has gone away never applies a stale result to shared state.
// Every page service goes through Await.
func Await[T any](ctx context.Context, call func(context.Context) (T, error)) (T, error) {
	v, err := call(ctx)
	if ctxErr := ctx.Err(); ctxErr != nil {
		var zero T
		return zero, fmt.Errorf("%w: %w", ErrDiscarded, ctxErr)
	}
	return v, err
}

// AwaitErr is Await for calls that only return an error.
func AwaitErr(ctx context.Context, call func(context.Context) error) error {
	_, err := Await(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, call(ctx)
	})
	return err
}
