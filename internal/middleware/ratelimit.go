package middleware

import (
	"context"
	"fmt"

	"github.com/hive-community/backend/pkg/ratelimit"
	"github.com/hive-community/backend/pkg/router"
	"github.com/hive-community/backend/pkg/xcontext"
)

// RateLimit checks the given limiter and exposes the window state through
// the X-RateLimit headers.
func RateLimit(limiter *ratelimit.Limiter) router.MiddlewareFunc {
	return func(ctx context.Context) (context.Context, error) {
		result := limiter.Check(ctx)

		if w := xcontext.HTTPWriter(ctx); w != nil {
			w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
			w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
			w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))
		}

		if !result.Allowed {
			return nil, ratelimit.Error{RetryAfter: result.RetryAfter}
		}

		return ctx, nil
	}
}
