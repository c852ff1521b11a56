package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/truongn999/ShortLink/internal/domain"
)

// LinkCache keeps servable links hot for the redirect path. Only active
// links are cached; deactivation takes effect within one TTL at worst.
type LinkCache struct {
	client *redis.Client
}

func NewLinkCache(client *redis.Client) *LinkCache {
	return &LinkCache{client: client}
}

func (c *LinkCache) Get(ctx context.Context, shortCode string) (*domain.Link, error) {
	data, err := c.client.Get(ctx, cacheKey(shortCode)).Result()
	if err != nil {
		return nil, err
	}

	var link domain.Link
	if err := json.Unmarshal([]byte(data), &link); err != nil {
		return nil, err
	}

	return &link, nil
}

func (c *LinkCache) Set(ctx context.Context, link *domain.Link, ttl time.Duration) error {
	data, err := json.Marshal(link)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, cacheKey(link.ShortCode), data, ttl).Err()
}

func (c *LinkCache) Invalidate(ctx context.Context, shortCode string) error {
	return c.client.Del(ctx, cacheKey(shortCode)).Err()
}

func cacheKey(shortCode string) string {
	return fmt.Sprintf("link:%s", shortCode)
}
