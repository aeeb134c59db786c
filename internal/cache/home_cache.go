package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"goblog/internal/model"
)

const homeKey = "blog:posts:home"

// HomeCache keeps the newest-first post list behind the home page in redis.
// It is invalidated on every user or post mutation, so entries only ever age
// out or get replaced by a fresh read.
type HomeCache struct {
	client *redisv9.Client
	ttl    time.Duration
}

func NewHomeCache(client *redisv9.Client, ttl time.Duration) *HomeCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &HomeCache{client: client, ttl: ttl}
}

func (c *HomeCache) GetHome(ctx context.Context) ([]model.Post, bool, error) {
	raw, err := c.client.Get(ctx, homeKey).Result()
	if err == redisv9.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get home posts failed: %w", err)
	}

	var posts []model.Post
	if err := json.Unmarshal([]byte(raw), &posts); err != nil {
		return nil, false, fmt.Errorf("unmarshal cached home posts failed: %w", err)
	}
	return posts, true, nil
}

func (c *HomeCache) SetHome(ctx context.Context, posts []model.Post) error {
	payload, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("marshal home posts failed: %w", err)
	}
	if err := c.client.Set(ctx, homeKey, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set home posts failed: %w", err)
	}
	return nil
}

func (c *HomeCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, homeKey).Err(); err != nil {
		return fmt.Errorf("redis invalidate home posts failed: %w", err)
	}
	return nil
}
