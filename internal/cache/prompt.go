package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/promptjournal/promptjournal/internal/model"
)

const (
	recentPromptsKey = "prompts:recent"

	// DefaultListTTL bounds how stale the cached list can get.
	DefaultListTTL = 30 * time.Second
)

// ErrCacheMiss indicates the requested entry is not cached.
var ErrCacheMiss = errors.New("cache miss")

// GetRecentPrompts retrieves the cached recent-prompts list.
// Returns ErrCacheMiss if not cached; a corrupt entry is evicted and
// reported as a miss.
func (c *Cache) GetRecentPrompts(ctx context.Context) ([]*model.Prompt, error) {
	data, err := c.client.Get(ctx, recentPromptsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var prompts []*model.Prompt
	if err := json.Unmarshal(data, &prompts); err != nil {
		c.client.Del(ctx, recentPromptsKey)
		return nil, ErrCacheMiss
	}

	return prompts, nil
}

// SetRecentPrompts stores the recent-prompts list with the given TTL.
func (c *Cache) SetRecentPrompts(ctx context.Context, prompts []*model.Prompt, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultListTTL
	}

	data, err := json.Marshal(prompts)
	if err != nil {
		return fmt.Errorf("failed to marshal prompts: %w", err)
	}

	if err := c.client.Set(ctx, recentPromptsKey, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache prompts: %w", err)
	}

	return nil
}

// InvalidateRecentPrompts evicts the cached list. Called after every create
// so the next list read sees the new prompt.
func (c *Cache) InvalidateRecentPrompts(ctx context.Context) error {
	if err := c.client.Del(ctx, recentPromptsKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate prompts cache: %w", err)
	}
	return nil
}
