package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"jobboard-backend/internal/shared/telemetry"
)

// Cache is an optional read-through cache for job lookups. A nil *Cache is
// safe to use and disables caching. Cache errors are logged and treated as
// misses; the repo stays authoritative.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCache constructs a Cache with the given TTL.
func NewCache(client *redis.Client, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &Cache{client: client, ttl: ttl}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("job:%d", id)
}

// Get returns a cached job and whether it was present.
func (c *Cache) Get(ctx context.Context, id int64) (Job, bool) {
	if c == nil || c.client == nil {
		return Job{}, false
	}
	raw, err := c.client.Get(ctx, cacheKey(id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			telemetry.Warn("jobs.cache.get_failed", map[string]any{"job_id": id, "err": err.Error()})
		}
		return Job{}, false
	}
	var job Job
	if err := json.Unmarshal(raw, &job); err != nil {
		telemetry.Warn("jobs.cache.decode_failed", map[string]any{"job_id": id, "err": err.Error()})
		return Job{}, false
	}
	return job, true
}

// Set stores a job under its ID for the cache TTL.
func (c *Cache) Set(ctx context.Context, job Job) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(job)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, cacheKey(job.ID), raw, c.ttl).Err(); err != nil {
		telemetry.Warn("jobs.cache.set_failed", map[string]any{"job_id": job.ID, "err": err.Error()})
	}
}

// Invalidate drops a job from the cache after a write.
func (c *Cache) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		telemetry.Warn("jobs.cache.invalidate_failed", map[string]any{"job_id": id, "err": err.Error()})
	}
}
