// Package budget contains budget use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/derivation"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// GetSummaryInput represents the input for the budget summary.
type GetSummaryInput struct {
	UserID uuid.UUID
}

// GetSummaryOutput represents the output of the budget summary.
type GetSummaryOutput struct {
	Summary *adapter.BudgetSummary
	Cached  bool
}

// GetSummaryUseCase computes per-user budget aggregates, serving from the
// cache when a fresh entry exists. Mutating use cases invalidate the entry.
type GetSummaryUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.SummaryCache
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(budgetRepo adapter.BudgetRepository, cache adapter.SummaryCache) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
	}
}

// Execute returns the cached summary when available, otherwise recomputes
// and stores it.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	if cached, err := uc.cache.Get(ctx, input.UserID); err == nil && cached != nil {
		return &GetSummaryOutput{Summary: cached, Cached: true}, nil
	}

	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load budgets for summary: %w", err)
	}

	summary := buildSummary(budgets)

	_ = uc.cache.Set(ctx, input.UserID, summary)

	return &GetSummaryOutput{Summary: summary, Cached: false}, nil
}

func buildSummary(budgets []*entity.Budget) *adapter.BudgetSummary {
	totalBudgeted := decimal.Zero
	totalSpent := decimal.Zero
	byCategoryBudgeted := map[string]decimal.Decimal{}
	byCategorySpent := map[string]decimal.Decimal{}
	active := 0
	exceeded := 0

	for _, b := range budgets {
		totalBudgeted = totalBudgeted.Add(b.BudgetedAmount)
		totalSpent = totalSpent.Add(b.ActualAmount)

		key := string(b.Category)
		byCategoryBudgeted[key] = byCategoryBudgeted[key].Add(b.BudgetedAmount)
		byCategorySpent[key] = byCategorySpent[key].Add(b.ActualAmount)

		switch b.Status {
		case entity.BudgetStatusActive:
			active++
		case entity.BudgetStatusExceeded:
			exceeded++
		}
	}

	byCategory := make(map[string]adapter.CategoryTotals, len(byCategoryBudgeted))
	for key, budgeted := range byCategoryBudgeted {
		spent := byCategorySpent[key]
		byCategory[key] = adapter.CategoryTotals{
			Budgeted: budgeted.String(),
			Spent:    spent.String(),
			Usage:    derivation.PercentageUsed(spent, budgeted),
		}
	}

	return &adapter.BudgetSummary{
		TotalBudgeted:   totalBudgeted.String(),
		TotalSpent:      totalSpent.String(),
		OverallUsage:    derivation.PercentageUsed(totalSpent, totalBudgeted),
		ActiveBudgets:   active,
		ExceededBudgets: exceeded,
		ByCategory:      byCategory,
	}
}
