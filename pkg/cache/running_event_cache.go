package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// RunningEventCacheTTL is the time-to-live for cached running events.
	RunningEventCacheTTL = 24 * time.Hour

	runningEventCacheKeyPrefix = "running_event"
)

// CachedRunningEvent is the read model stored in Redis as a hash.
type CachedRunningEvent struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	DateTime int64  `json:"date_time"`
	Location string `json:"location"`
}

// RunningEventCache provides structured read/write operations for running event entries.
// Key format: "running_event:{id}"
type RunningEventCache struct {
	client *RedisClient
}

// NewRunningEventCache creates a new RunningEventCache backed by the given RedisClient.
func NewRunningEventCache(r *RedisClient) *RunningEventCache {
	return &RunningEventCache{client: r}
}

// Get retrieves a cached running event by ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *RunningEventCache) Get(ctx context.Context, id int64) (*CachedRunningEvent, error) {
	vals, err := c.client.Client().HGetAll(ctx, RunningEventKey(id)).Result()
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}
	if len(vals) == 0 {
		return nil, redis.Nil
	}
	return parseCachedRunningEvent(vals)
}

// Set writes a cached running event as a Redis hash with a 24-hour TTL.
// Uses a pipeline to set all fields and the TTL atomically.
func (c *RunningEventCache) Set(ctx context.Context, event *CachedRunningEvent) error {
	key := RunningEventKey(event.ID)
	pipe := c.client.Client().Pipeline()
	pipe.HSet(ctx, key,
		"id", strconv.FormatInt(event.ID, 10),
		"name", event.Name,
		"date_time", strconv.FormatInt(event.DateTime, 10),
		"location", event.Location,
	)
	pipe.Expire(ctx, key, RunningEventCacheTTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached running event.
func (c *RunningEventCache) Delete(ctx context.Context, id int64) error {
	if err := c.client.Client().Del(ctx, RunningEventKey(id)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// RunningEventKey builds the Redis key: "running_event:{id}"
func RunningEventKey(id int64) string {
	return fmt.Sprintf("%s:%d", runningEventCacheKeyPrefix, id)
}

func parseCachedRunningEvent(vals map[string]string) (*CachedRunningEvent, error) {
	id, err := strconv.ParseInt(vals["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse id: %w", err)
	}
	dt, err := strconv.ParseInt(vals["date_time"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("cache parse date_time: %w", err)
	}
	return &CachedRunningEvent{
		ID:       id,
		Name:     vals["name"],
		DateTime: dt,
		Location: vals["location"],
	}, nil
}
