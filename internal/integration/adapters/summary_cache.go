// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-planner/backend/internal/application/adapter"
)

// summaryCacheKeyPrefix namespaces summary entries in Redis.
const summaryCacheKeyPrefix = "budget_summary:"

// summaryCache implements the adapter.SummaryCache interface on Redis.
type summaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewSummaryCache creates a Redis-backed budget summary cache.
func NewSummaryCache(client *redis.Client, ttl time.Duration) adapter.SummaryCache {
	return &summaryCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached summary for a user, or nil on a miss.
func (c *summaryCache) Get(ctx context.Context, userID uuid.UUID) (*adapter.BudgetSummary, error) {
	raw, err := c.client.Get(ctx, summaryCacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached summary: %w", err)
	}

	var summary adapter.BudgetSummary
	if err := json.Unmarshal(raw, &summary); err != nil {
		// A corrupt entry is treated as a miss; it gets overwritten on Set.
		return nil, nil
	}
	return &summary, nil
}

// Set stores a summary for a user with the cache's TTL.
func (c *summaryCache) Set(ctx context.Context, userID uuid.UUID, summary *adapter.BudgetSummary) error {
	raw, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal summary: %w", err)
	}
	if err := c.client.Set(ctx, summaryCacheKey(userID), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache summary: %w", err)
	}
	return nil
}

// Invalidate drops the cached summary for a user.
func (c *summaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, summaryCacheKey(userID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate cached summary: %w", err)
	}
	return nil
}

func summaryCacheKey(userID uuid.UUID) string {
	return summaryCacheKeyPrefix + userID.String()
}

// noopSummaryCache is used when Redis is unavailable. Reads always miss,
// so summaries are recomputed from the database on every request.
type noopSummaryCache struct{}

// NewNoopSummaryCache creates a summary cache that stores nothing.
func NewNoopSummaryCache() adapter.SummaryCache {
	return noopSummaryCache{}
}

func (noopSummaryCache) Get(ctx context.Context, userID uuid.UUID) (*adapter.BudgetSummary, error) {
	return nil, nil
}

func (noopSummaryCache) Set(ctx context.Context, userID uuid.UUID, summary *adapter.BudgetSummary) error {
	return nil
}

func (noopSummaryCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return nil
}

var _ adapter.SummaryCache = noopSummaryCache{}
