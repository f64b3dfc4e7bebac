package ratelimit_test

import (
	"context"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/hive-community/backend/pkg/ratelimit"
	"github.com/hive-community/backend/pkg/testutil"
	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

func fixedKey(key string) ratelimit.KeyFunc {
	return func(ctx context.Context) string { return key }
}

func Test_Limiter_BurstAdmitsUpToMax(t *testing.T) {
	ctx := testutil.MockContext()
	limiter := ratelimit.New(
		xcontext.RedisClient(ctx), "test", time.Minute, 5, fixedKey("client"))

	allowed := 0
	for i := 0; i < 20; i++ {
		if result := limiter.Check(ctx); result.Allowed {
			allowed++
		}
	}

	require.Equal(t, 5, allowed)
}

func Test_Limiter_SmallBurstFullyAdmitted(t *testing.T) {
	ctx := testutil.MockContext()
	limiter := ratelimit.New(
		xcontext.RedisClient(ctx), "test", time.Minute, 10, fixedKey("client"))

	for i := 0; i < 3; i++ {
		result := limiter.Check(ctx)
		require.True(t, result.Allowed)
		require.Equal(t, 10-i-1, result.Remaining)
	}
}

func Test_Limiter_RejectionCarriesRetryAfter(t *testing.T) {
	ctx := testutil.MockContext()
	limiter := ratelimit.New(
		xcontext.RedisClient(ctx), "test", time.Minute, 1, fixedKey("client"))

	require.True(t, limiter.Check(ctx).Allowed)

	result := limiter.Check(ctx)
	require.False(t, result.Allowed)
	require.Positive(t, result.RetryAfter)
	require.Equal(t, 0, result.Remaining)
}

func Test_Limiter_KeysAreIndependent(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := xcontext.RedisClient(ctx)

	limiterA := ratelimit.New(redisClient, "test", time.Minute, 1, fixedKey("a"))
	limiterB := ratelimit.New(redisClient, "test", time.Minute, 1, fixedKey("b"))

	require.True(t, limiterA.Check(ctx).Allowed)
	require.False(t, limiterA.Check(ctx).Allowed)
	require.True(t, limiterB.Check(ctx).Allowed)
}

func Test_Limiter_FailsOpenOnRedisError(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := testutil.NewInMemoryRedisClient()
	redisClient.Err = errors.New("connection refused")

	limiter := ratelimit.New(redisClient, "test", time.Minute, 1, fixedKey("client"))

	for i := 0; i < 5; i++ {
		require.True(t, limiter.Check(ctx).Allowed)
	}
}

func Test_ByUserOrIP(t *testing.T) {
	ctx := testutil.MockContext()
	req := httptest.NewRequest("POST", "/api/createPost", nil)
	req.RemoteAddr = "192.0.2.7:1234"
	ctx = xcontext.WithHTTPRequest(ctx, req)

	keyOf := ratelimit.ByUserOrIP()
	require.Equal(t, "192.0.2.7", keyOf(ctx))

	ctx = xcontext.WithRequestUserID(ctx, "user1")
	require.Equal(t, "user1", keyOf(ctx))
}

func Test_ByIP_PrefersForwardedFor(t *testing.T) {
	ctx := testutil.MockContext()
	req := httptest.NewRequest("GET", "/api/getThreads", nil)
	req.RemoteAddr = "192.0.2.7:1234"
	req.Header.Set("X-Forwarded-For", "198.51.100.9, 192.0.2.7")
	ctx = xcontext.WithHTTPRequest(ctx, req)

	require.Equal(t, "198.51.100.9", ratelimit.ByIP()(ctx))
}
