package common

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hive-community/backend/pkg/xcontext"
	"github.com/hive-community/backend/pkg/xredis"
)

const fallbackRevocationTTL = 24 * time.Hour

// TokenBlacklist records revoked access tokens in a redis sorted set. The
// member is the raw token, the score is the token expiry in unix seconds, so
// entries can be dropped once no live token can carry them anymore.
type TokenBlacklist struct {
	redisClient xredis.Client
}

func NewTokenBlacklist(redisClient xredis.Client) *TokenBlacklist {
	return &TokenBlacklist{redisClient: redisClient}
}

// Revoke adds token to the blacklist until expiresAt. A zero expiresAt is
// replaced with a conservative fallback covering any token lifetime we issue.
func (b *TokenBlacklist) Revoke(ctx context.Context, token string, expiresAt time.Time) error {
	if token == "" {
		return errors.New("empty token")
	}

	if expiresAt.IsZero() {
		expiresAt = time.Now().Add(fallbackRevocationTTL)
	}

	return b.redisClient.ZAdd(
		ctx, RedisKeyTokenBlacklist, float64(expiresAt.Unix()), token)
}

// IsRevoked reports whether token is currently blacklisted. Redis failures
// degrade open so an outage cannot lock every user out.
func (b *TokenBlacklist) IsRevoked(ctx context.Context, token string) bool {
	b.prune(ctx)

	_, err := b.redisClient.ZScore(ctx, RedisKeyTokenBlacklist, token)
	if err == nil {
		return true
	}

	if !errors.Is(err, xredis.ErrNotFound) {
		xcontext.Logger(ctx).Warnf("Cannot check token blacklist: %v", err)
	}

	return false
}

func (b *TokenBlacklist) Unrevoke(ctx context.Context, token string) error {
	return b.redisClient.ZRem(ctx, RedisKeyTokenBlacklist, token)
}

func (b *TokenBlacklist) All(ctx context.Context) ([]string, error) {
	b.prune(ctx)
	return b.redisClient.ZRange(ctx, RedisKeyTokenBlacklist, 0, -1)
}

func (b *TokenBlacklist) Size(ctx context.Context) (uint64, error) {
	b.prune(ctx)
	return b.redisClient.ZCard(ctx, RedisKeyTokenBlacklist)
}

func (b *TokenBlacklist) Clear(ctx context.Context) error {
	return b.redisClient.Del(ctx, RedisKeyTokenBlacklist)
}

func (b *TokenBlacklist) prune(ctx context.Context) {
	max := fmt.Sprintf("%d", time.Now().Unix())
	err := b.redisClient.ZRemRangeByScore(ctx, RedisKeyTokenBlacklist, "-inf", max)
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot prune token blacklist: %v", err)
	}
}
