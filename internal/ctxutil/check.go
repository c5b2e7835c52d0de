// Package ctxutil provides context utility functions.
package ctxutil

import (
	"context"
	"fmt"
)

// Canceled checks if the context has been canceled or exceeded its deadline.
// Returns the context error if done (Canceled or DeadlineExceeded), nil otherwise.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}

// Entry is Canceled with the operation name attached, for use as the first
// statement of an operation that must not start on a dead context:
//
//	if err := ctxutil.Entry(ctx, "sign"); err != nil {
//	    return nil, err
//	}
//
// Once an operation has passed Entry it runs to completion.
func Entry(ctx context.Context, op string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
