// Package budget contains budget use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListBudgetsInput represents the input for listing budgets. Optional
// filters narrow the result; zero values mean no filter.
type ListBudgetsInput struct {
	UserID   uuid.UUID
	Category entity.BudgetCategory
	Period   entity.BudgetPeriod
	Status   entity.BudgetStatus
	Year     int
}

// ListBudgetsOutput represents the output of listing budgets.
type ListBudgetsOutput struct {
	Budgets []*entity.Budget
}

// ListBudgetsUseCase handles budget listing logic.
type ListBudgetsUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewListBudgetsUseCase creates a new ListBudgetsUseCase instance.
func NewListBudgetsUseCase(budgetRepo adapter.BudgetRepository) *ListBudgetsUseCase {
	return &ListBudgetsUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget listing with in-memory filtering.
func (uc *ListBudgetsUseCase) Execute(ctx context.Context, input ListBudgetsInput) (*ListBudgetsOutput, error) {
	budgets, err := uc.budgetRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list budgets: %w", err)
	}

	filtered := make([]*entity.Budget, 0, len(budgets))
	for _, b := range budgets {
		if input.Category != "" && b.Category != input.Category {
			continue
		}
		if input.Period != "" && b.Period != input.Period {
			continue
		}
		if input.Status != "" && b.Status != input.Status {
			continue
		}
		if input.Year != 0 && b.Year != input.Year {
			continue
		}
		filtered = append(filtered, b)
	}

	return &ListBudgetsOutput{Budgets: filtered}, nil
}
