package projcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"lineup-advisor-mcp/internal/model"
)

// RedisCache shares projection sets across server instances. Entries are
// stored as JSON with the TTL enforced by Redis itself.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects and verifies the server is reachable before returning.
func NewRedis(redisURL string, ttl time.Duration) (*RedisCache, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisCache{client: client, ttl: ttl}, nil
}

// Close closes the underlying connection pool.
func (rc *RedisCache) Close() error {
	return rc.client.Close()
}

// Get returns the cached projections, or false on a miss or undecodable
// payload. Decode failures read as misses so a bad write heals itself.
func (rc *RedisCache) Get(ctx context.Context, key string) ([]model.Projection, bool) {
	raw, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	var out []model.Projection
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	return out, true
}

// Put stores a projection set with the cache TTL.
func (rc *RedisCache) Put(ctx context.Context, key string, projections []model.Projection) error {
	raw, err := json.Marshal(projections)
	if err != nil {
		return err
	}
	return rc.client.Set(ctx, key, raw, rc.ttl).Err()
}
