package common_test

import (
	"errors"
	"testing"
	"time"

	"github.com/hive-community/backend/internal/common"
	"github.com/hive-community/backend/pkg/testutil"
	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/stretchr/testify/require"
)

var errTimeout = errors.New("i/o timeout")

func Test_TokenBlacklist_RevokeUntilExpiry(t *testing.T) {
	ctx := testutil.MockContext()
	blacklist := common.NewTokenBlacklist(xcontext.RedisClient(ctx))

	require.False(t, blacklist.IsRevoked(ctx, "some-token"))

	err := blacklist.Revoke(ctx, "some-token", time.Now().Add(time.Hour))
	require.NoError(t, err)
	require.True(t, blacklist.IsRevoked(ctx, "some-token"))
	require.False(t, blacklist.IsRevoked(ctx, "another-token"))

	size, err := blacklist.Size(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(1), size)
}

func Test_TokenBlacklist_ExpiredEntriesArePruned(t *testing.T) {
	ctx := testutil.MockContext()
	blacklist := common.NewTokenBlacklist(xcontext.RedisClient(ctx))

	err := blacklist.Revoke(ctx, "stale-token", time.Now().Add(-time.Minute))
	require.NoError(t, err)
	require.False(t, blacklist.IsRevoked(ctx, "stale-token"))

	size, err := blacklist.Size(ctx)
	require.NoError(t, err)
	require.Equal(t, uint64(0), size)
}

func Test_TokenBlacklist_ZeroExpiryFallback(t *testing.T) {
	ctx := testutil.MockContext()
	blacklist := common.NewTokenBlacklist(xcontext.RedisClient(ctx))

	err := blacklist.Revoke(ctx, "opaque-token", time.Time{})
	require.NoError(t, err)
	require.True(t, blacklist.IsRevoked(ctx, "opaque-token"))
}

func Test_TokenBlacklist_FailOpenOnRedisError(t *testing.T) {
	ctx := testutil.MockContext()
	redisClient := testutil.NewInMemoryRedisClient()
	blacklist := common.NewTokenBlacklist(redisClient)

	require.NoError(t, blacklist.Revoke(ctx, "some-token", time.Now().Add(time.Hour)))

	redisClient.Err = errTimeout
	require.False(t, blacklist.IsRevoked(ctx, "some-token"))
}

func Test_TokenBlacklist_Unrevoke(t *testing.T) {
	ctx := testutil.MockContext()
	blacklist := common.NewTokenBlacklist(xcontext.RedisClient(ctx))

	require.NoError(t, blacklist.Revoke(ctx, "some-token", time.Now().Add(time.Hour)))
	require.NoError(t, blacklist.Unrevoke(ctx, "some-token"))
	require.False(t, blacklist.IsRevoked(ctx, "some-token"))
}
