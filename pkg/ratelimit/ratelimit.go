// Package ratelimit implements a sliding-window request limiter backed by a
// shared redis instance. Each limiter keeps, per key, the list of request
// timestamps seen inside the current window. The read-prune-append-write
// sequence is deliberately not atomic: concurrent requests from the same key
// can slightly under- or over-count, which is acceptable for best-effort
// throttling. When redis is unreachable the limiter fails open and allows the
// request.
package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/hive-community/backend/pkg/xredis"
)

// KeyFunc derives the logical throttling key (an IP, a user id, a route) from
// the request context.
type KeyFunc func(ctx context.Context) string

type Limiter struct {
	redisClient xredis.Client
	name        string
	window      time.Duration
	max         int
	keyOf       KeyFunc
}

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time

	// RetryAfter is the number of seconds after which a rejected caller may
	// try again. Zero when Allowed.
	RetryAfter int
}

// Error is returned by the rate-limit middleware on rejection. The router
// renders it as a 429 response carrying retryAfter.
type Error struct {
	RetryAfter int
}

func (e Error) Error() string {
	return "Too many requests, please try again later"
}

func New(redisClient xredis.Client, name string, window time.Duration, max int, keyOf KeyFunc) *Limiter {
	return &Limiter{
		redisClient: redisClient,
		name:        name,
		window:      window,
		max:         max,
		keyOf:       keyOf,
	}
}

func (l *Limiter) Check(ctx context.Context) Result {
	now := time.Now()
	key := fmt.Sprintf("rate_limit:%s:%s", l.name, l.keyOf(ctx))

	var timestamps []int64
	err := l.redisClient.GetObj(ctx, key, &timestamps)
	if err != nil && !errors.Is(err, xredis.ErrNotFound) {
		xcontext.Logger(ctx).Warnf("Rate limiter cannot read %s, failing open: %v", key, err)
		return l.allowAll(now)
	}

	windowStart := now.Add(-l.window).UnixMilli()
	recent := timestamps[:0]
	for _, ts := range timestamps {
		if ts > windowStart {
			recent = append(recent, ts)
		}
	}

	if len(recent) >= l.max {
		resetAt := time.UnixMilli(recent[0]).Add(l.window)
		retryAfter := int(time.Until(resetAt).Seconds()) + 1
		if retryAfter < 1 {
			retryAfter = 1
		}

		return Result{
			Allowed:    false,
			Limit:      l.max,
			Remaining:  0,
			ResetAt:    resetAt,
			RetryAfter: retryAfter,
		}
	}

	recent = append(recent, now.UnixMilli())
	if err := l.redisClient.SetObj(ctx, key, recent, l.window); err != nil {
		xcontext.Logger(ctx).Warnf("Rate limiter cannot write %s, failing open: %v", key, err)
		return l.allowAll(now)
	}

	return Result{
		Allowed:   true,
		Limit:     l.max,
		Remaining: l.max - len(recent),
		ResetAt:   time.UnixMilli(recent[0]).Add(l.window),
	}
}

func (l *Limiter) allowAll(now time.Time) Result {
	return Result{
		Allowed:   true,
		Limit:     l.max,
		Remaining: l.max,
		ResetAt:   now.Add(l.window),
	}
}
