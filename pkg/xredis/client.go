package xredis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/hive-community/backend/config"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = redis.Nil

type Client interface {
	Del(ctx context.Context, key ...string) error

	// Single object
	SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error
	GetObj(ctx context.Context, key string, v any) error

	// Sorted set
	ZAdd(ctx context.Context, key string, score float64, member string) error
	ZRem(ctx context.Context, key string, members ...string) error
	ZRemRangeByScore(ctx context.Context, key, min, max string) error
	ZScore(ctx context.Context, key, member string) (float64, error)
	ZRange(ctx context.Context, key string, start, stop int64) ([]string, error)
	ZCard(ctx context.Context, key string) (uint64, error)
}

type client struct {
	redisClient *redis.Client
}

func NewClient(ctx context.Context, cfg config.RedisConfigs) (*client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:            cfg.Addr,
		Password:        cfg.Password,
		MaxRetries:      5,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    5 * time.Second,
		PoolFIFO:        false,
		PoolSize:        5,
	})

	if err := redisClient.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &client{redisClient: redisClient}, nil
}

///// COMMON FEATURE
func (c *client) Del(ctx context.Context, key ...string) error {
	err := c.redisClient.Del(ctx, key...).Err()
	if err == nil || err == redis.Nil {
		return nil
	}

	return err
}

///// SINGLE OBJECT
func (c *client) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	return c.redisClient.Set(ctx, key, string(b), ttl).Err()
}

func (c *client) GetObj(ctx context.Context, key string, v any) error {
	s, err := c.redisClient.Get(ctx, key).Result()
	if err != nil {
		return err
	}

	return json.Unmarshal([]byte(s), v)
}

///// SORTED SET
func (c *client) ZAdd(ctx context.Context, key string, score float64, member string) error {
	return c.redisClient.ZAdd(ctx, key, redis.Z{Score: score, Member: member}).Err()
}

func (c *client) ZRem(ctx context.Context, key string, members ...string) error {
	args := make([]any, len(members))
	for i := range members {
		args[i] = members[i]
	}

	return c.redisClient.ZRem(ctx, key, args...).Err()
}

func (c *client) ZRemRangeByScore(ctx context.Context, key, min, max string) error {
	return c.redisClient.ZRemRangeByScore(ctx, key, min, max).Err()
}

func (c *client) ZScore(ctx context.Context, key, member string) (float64, error) {
	return c.redisClient.ZScore(ctx, key, member).Result()
}

func (c *client) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	return c.redisClient.ZRange(ctx, key, start, stop).Result()
}

func (c *client) ZCard(ctx context.Context, key string) (uint64, error) {
	n, err := c.redisClient.ZCard(ctx, key).Result()
	if err != nil {
		return 0, err
	}

	return uint64(n), nil
}
