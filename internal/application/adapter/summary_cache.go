// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"
)

// BudgetSummary holds aggregated per-user budget figures.
type BudgetSummary struct {
	TotalBudgeted   string                    `json:"total_budgeted"`
	TotalSpent      string                    `json:"total_spent"`
	OverallUsage    int64                     `json:"overall_usage"`
	ActiveBudgets   int                       `json:"active_budgets"`
	ExceededBudgets int                       `json:"exceeded_budgets"`
	ByCategory      map[string]CategoryTotals `json:"by_category"`
}

// CategoryTotals holds per-category aggregates within a summary.
type CategoryTotals struct {
	Budgeted string `json:"budgeted"`
	Spent    string `json:"spent"`
	Usage    int64  `json:"usage"`
}

// SummaryCache defines the interface for caching computed budget summaries.
type SummaryCache interface {
	// Get returns the cached summary for a user, or nil on a miss.
	Get(ctx context.Context, userID uuid.UUID) (*BudgetSummary, error)

	// Set stores a summary for a user with the cache's TTL.
	Set(ctx context.Context, userID uuid.UUID, summary *BudgetSummary) error

	// Invalidate drops the cached summary for a user.
	Invalidate(ctx context.Context, userID uuid.UUID) error
}
