package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/unclebandit/creatorhub-backend/internal/model"
)

const draftKeyPrefix = "draft:"

// RedisDraftCache stores drafts as JSON under draft:<owner>.
type RedisDraftCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisClient connects and pings the server.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

func NewRedisDraftCache(rdb *redis.Client, ttl time.Duration) *RedisDraftCache {
	return &RedisDraftCache{rdb: rdb, ttl: ttl}
}

func (c *RedisDraftCache) Get(ctx context.Context, ownerID string) (*model.Draft, bool, error) {
	raw, err := c.rdb.Get(ctx, draftKeyPrefix+ownerID).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var d model.Draft
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, false, fmt.Errorf("decode cached draft: %w", err)
	}
	return &d, true, nil
}

func (c *RedisDraftCache) Set(ctx context.Context, draft *model.Draft) error {
	raw, err := json.Marshal(draft)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, draftKeyPrefix+draft.BrandID, raw, c.ttl).Err()
}

func (c *RedisDraftCache) Invalidate(ctx context.Context, ownerID string) error {
	return c.rdb.Del(ctx, draftKeyPrefix+ownerID).Err()
}

var _ DraftCache = (*RedisDraftCache)(nil)
