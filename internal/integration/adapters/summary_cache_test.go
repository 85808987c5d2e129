package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/finance-planner/backend/internal/application/adapter"
)

func newTestCache(t *testing.T) adapter.SummaryCache {
	t.Helper()

	mini, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}
	t.Cleanup(mini.Close)

	client := redis.NewClient(&redis.Options{Addr: mini.Addr()})
	return NewSummaryCache(client, 5*time.Minute)
}

func TestSummaryCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss returns nil without error", func(t *testing.T) {
		cache := newTestCache(t)

		got, err := cache.Get(ctx, uuid.New())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil on miss, got %+v", got)
		}
	})

	t.Run("set then get round-trips the summary", func(t *testing.T) {
		cache := newTestCache(t)
		userID := uuid.New()

		summary := &adapter.BudgetSummary{
			TotalBudgeted:   "500",
			TotalSpent:      "350",
			OverallUsage:    70,
			ActiveBudgets:   2,
			ExceededBudgets: 1,
			ByCategory: map[string]adapter.CategoryTotals{
				"groceries": {Budgeted: "400", Spent: "200", Usage: 50},
			},
		}
		if err := cache.Set(ctx, userID, summary); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got == nil {
			t.Fatal("expected a cache hit")
		}
		if got.TotalSpent != "350" || got.OverallUsage != 70 {
			t.Errorf("unexpected summary: %+v", got)
		}
		if got.ByCategory["groceries"].Usage != 50 {
			t.Errorf("expected groceries usage 50, got %d", got.ByCategory["groceries"].Usage)
		}
	})

	t.Run("invalidate drops the entry", func(t *testing.T) {
		cache := newTestCache(t)
		userID := uuid.New()

		if err := cache.Set(ctx, userID, &adapter.BudgetSummary{TotalBudgeted: "100"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := cache.Invalidate(ctx, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := cache.Get(ctx, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != nil {
			t.Errorf("expected nil after invalidation, got %+v", got)
		}
	})
}
