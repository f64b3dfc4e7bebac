package testutil

import (
	"context"
	"encoding/json"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/hive-community/backend/pkg/xredis"
)

// InMemoryRedisClient is a functional stand-in for xredis.Client backed by
// maps, enough for the blacklist and rate limiter to behave like production.
type InMemoryRedisClient struct {
	mutex    sync.Mutex
	values   map[string]string
	zsets    map[string]map[string]float64
	expireAt map[string]time.Time

	// Err makes every call fail, for testing degraded paths.
	Err error
}

func NewInMemoryRedisClient() *InMemoryRedisClient {
	return &InMemoryRedisClient{
		values:   map[string]string{},
		zsets:    map[string]map[string]float64{},
		expireAt: map[string]time.Time{},
	}
}

func (c *InMemoryRedisClient) expire(key string) {
	if deadline, ok := c.expireAt[key]; ok && time.Now().After(deadline) {
		delete(c.values, key)
		delete(c.zsets, key)
		delete(c.expireAt, key)
	}
}

func (c *InMemoryRedisClient) Del(ctx context.Context, keys ...string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Err != nil {
		return c.Err
	}

	for _, key := range keys {
		delete(c.values, key)
		delete(c.zsets, key)
		delete(c.expireAt, key)
	}
	return nil
}

func (c *InMemoryRedisClient) SetObj(ctx context.Context, key string, obj any, ttl time.Duration) error {
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Err != nil {
		return c.Err
	}

	c.values[key] = string(b)
	if ttl > 0 {
		c.expireAt[key] = time.Now().Add(ttl)
	} else {
		delete(c.expireAt, key)
	}
	return nil
}

func (c *InMemoryRedisClient) GetObj(ctx context.Context, key string, v any) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Err != nil {
		return c.Err
	}

	c.expire(key)
	s, ok := c.values[key]
	if !ok {
		return xredis.ErrNotFound
	}

	return json.Unmarshal([]byte(s), v)
}

func (c *InMemoryRedisClient) ZAdd(ctx context.Context, key string, score float64, member string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Err != nil {
		return c.Err
	}

	c.expire(key)
	if c.zsets[key] == nil {
		c.zsets[key] = map[string]float64{}
	}
	c.zsets[key][member] = score
	return nil
}

func (c *InMemoryRedisClient) ZRem(ctx context.Context, key string, members ...string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Err != nil {
		return c.Err
	}

	for _, m := range members {
		delete(c.zsets[key], m)
	}
	return nil
}

func (c *InMemoryRedisClient) ZRemRangeByScore(ctx context.Context, key, min, max string) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Err != nil {
		return c.Err
	}

	c.expire(key)
	lower := parseScore(min, true)
	upper := parseScore(max, false)
	for m, score := range c.zsets[key] {
		if score >= lower && score <= upper {
			delete(c.zsets[key], m)
		}
	}
	return nil
}

func (c *InMemoryRedisClient) ZScore(ctx context.Context, key, member string) (float64, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Err != nil {
		return 0, c.Err
	}

	c.expire(key)
	score, ok := c.zsets[key][member]
	if !ok {
		return 0, xredis.ErrNotFound
	}
	return score, nil
}

func (c *InMemoryRedisClient) ZRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Err != nil {
		return nil, c.Err
	}

	c.expire(key)
	type pair struct {
		member string
		score  float64
	}
	pairs := make([]pair, 0, len(c.zsets[key]))
	for m, score := range c.zsets[key] {
		pairs = append(pairs, pair{member: m, score: score})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].score == pairs[j].score {
			return pairs[i].member < pairs[j].member
		}
		return pairs[i].score < pairs[j].score
	})

	n := int64(len(pairs))
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	if start < 0 {
		start = 0
	}
	if stop >= n {
		stop = n - 1
	}

	members := []string{}
	for i := start; i <= stop && i < n; i++ {
		members = append(members, pairs[i].member)
	}
	return members, nil
}

func (c *InMemoryRedisClient) ZCard(ctx context.Context, key string) (uint64, error) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if c.Err != nil {
		return 0, c.Err
	}

	c.expire(key)
	return uint64(len(c.zsets[key])), nil
}

func parseScore(s string, isMin bool) float64 {
	switch s {
	case "-inf":
		return -1 << 62
	case "+inf":
		return 1 << 62
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if isMin {
			return -1 << 62
		}
		return 1 << 62
	}
	return f
}
