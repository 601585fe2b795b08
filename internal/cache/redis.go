package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/kwabo/benintour/internal/core"
)

// Connect parses redisURL, creates a client, and verifies connectivity
// with a ping.
func Connect(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}

	return client, nil
}

// SearchCache stores ranked search results in Redis for the HTTP API.
// Results are deterministic, so a stale entry can never be wrong; the TTL
// only bounds memory.
type SearchCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSearchCache(client *redis.Client, ttl time.Duration) *SearchCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &SearchCache{client: client, ttl: ttl}
}

func searchKey(locationID, checkIn, checkOut string, guests int) string {
	return "offers:" + CacheKey(locationID, checkIn, checkOut, fmt.Sprint(guests))
}

// Get retrieves a cached search result. Returns nil, nil on a miss.
func (c *SearchCache) Get(ctx context.Context, locationID, checkIn, checkOut string, guests int) (*core.SearchResult, error) {
	val, err := c.client.Get(ctx, searchKey(locationID, checkIn, checkOut, guests)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("cache get for location %s: %w", locationID, err)
	}

	var result core.SearchResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("unmarshaling cached result for location %s: %w", locationID, err)
	}

	return &result, nil
}

// Set stores a search result under its query key with the configured TTL.
func (c *SearchCache) Set(ctx context.Context, result *core.SearchResult) error {
	if result == nil {
		return nil
	}

	b, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling search result: %w", err)
	}

	key := searchKey(result.Query.Location.ID, result.Query.CheckIn, result.Query.CheckOut, result.Query.Guests)
	if err := c.client.Set(ctx, key, b, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set for location %s: %w", result.Query.Location.ID, err)
	}

	return nil
}
