package inbound

import (
	"context"
	"time"
)

// RateLimitService throttles sensitive endpoints. Allow reports whether the
// caller identified by key may proceed under limit hits per window.
type RateLimitService interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
