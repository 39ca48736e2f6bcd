// Package memory holds the in-memory storage adapters. Each repository
// owns a private, mutex-guarded copy of its seed records; nothing is
// persisted and nothing is shared between repository instances.
package memory

import (
	"context"
	"time"
)

// Sleep emulates backend latency before a store operation. It returns
// early with the context error if the caller gives up. A non-positive
// duration only checks the context.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
