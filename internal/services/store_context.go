package services

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrStoreUnavailable marks a persistence call that timed out or was
// cancelled before the store answered. Handlers surface it as a generic
// server error without leaking the underlying detail.
var ErrStoreUnavailable = errors.New("store unavailable")

const defaultStoreTimeout = 5 * time.Second

func storeContext(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout <= 0 {
		timeout = defaultStoreTimeout
	}
	return context.WithTimeout(ctx, timeout)
}

func classifyStoreError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}
	return err
}
