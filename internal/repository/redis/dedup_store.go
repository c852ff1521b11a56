package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// DedupStore holds the per-session click flags. Each flag is keyed by
// (session id, short code), so revisits within one session are attributed
// once while a new session counts again. SETNX makes the mark atomic:
// concurrent requests for the same pair see exactly one first-marker.
type DedupStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewDedupStore(client *redis.Client, ttl time.Duration) *DedupStore {
	return &DedupStore{client: client, ttl: ttl}
}

// Mark sets the flag for the session/code pair and reports whether this
// call was the first to do so.
func (s *DedupStore) Mark(ctx context.Context, sessionID, shortCode string) (bool, error) {
	return s.client.SetNX(ctx, dedupKey(sessionID, shortCode), "1", s.ttl).Result()
}

// Seen reports whether the pair was already marked, without marking it.
func (s *DedupStore) Seen(ctx context.Context, sessionID, shortCode string) (bool, error) {
	n, err := s.client.Exists(ctx, dedupKey(sessionID, shortCode)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func dedupKey(sessionID, shortCode string) string {
	return fmt.Sprintf("clicked:%s:%s", sessionID, shortCode)
}
