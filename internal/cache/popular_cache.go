package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const popularKey = "tests:popular"

// PopularCache handles the Redis ZSET holding completed-session counts per
// test type.
type PopularCache interface {
	Increment(ctx context.Context, testType string) error
	GetTop(ctx context.Context, limit int) ([]PopularEntry, error)
	Rebuild(ctx context.Context, counts map[string]int64) error
}

// PopularEntry is one ranked test type.
type PopularEntry struct {
	TestType     string `json:"testType"`
	SessionCount int64  `json:"sessionCount"`
}

type popularCache struct {
	client *redis.Client
}

// NewPopularCache creates a new popularity cache.
func NewPopularCache(client *redis.Client) PopularCache {
	return &popularCache{
		client: client,
	}
}

func (c *popularCache) Increment(ctx context.Context, testType string) error {
	return c.client.ZIncrBy(ctx, popularKey, 1, testType).Err()
}

func (c *popularCache) GetTop(ctx context.Context, limit int) ([]PopularEntry, error) {
	results, err := c.client.ZRevRangeWithScores(ctx, popularKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}

	entries := make([]PopularEntry, len(results))
	for i, z := range results {
		entries[i] = PopularEntry{
			TestType:     z.Member.(string),
			SessionCount: int64(z.Score),
		}
	}
	return entries, nil
}

// Rebuild replaces the ranking with counts aggregated from storage. Used
// when Redis comes up cold.
func (c *popularCache) Rebuild(ctx context.Context, counts map[string]int64) error {
	members := make([]redis.Z, 0, len(counts))
	for testType, count := range counts {
		members = append(members, redis.Z{Score: float64(count), Member: testType})
	}
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, popularKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, popularKey, members...)
	}
	_, err := pipe.Exec(ctx)
	return err
}
