// Package budget contains budget use cases.
package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListOverdueRecurringInput represents the input for listing overdue
// recurring budgets.
type ListOverdueRecurringInput struct {
	UserID uuid.UUID
}

// ListOverdueRecurringOutput represents the output of listing overdue
// recurring budgets.
type ListOverdueRecurringOutput struct {
	Budgets []*entity.Budget
}

// ListOverdueRecurringUseCase lists recurring budgets whose next due date
// has passed, scoped to the requesting user.
type ListOverdueRecurringUseCase struct {
	budgetRepo adapter.BudgetRepository
	clock      adapter.Clock
}

// NewListOverdueRecurringUseCase creates a new ListOverdueRecurringUseCase instance.
func NewListOverdueRecurringUseCase(budgetRepo adapter.BudgetRepository, clock adapter.Clock) *ListOverdueRecurringUseCase {
	return &ListOverdueRecurringUseCase{
		budgetRepo: budgetRepo,
		clock:      clock,
	}
}

// Execute lists the user's overdue recurring budgets.
func (uc *ListOverdueRecurringUseCase) Execute(ctx context.Context, input ListOverdueRecurringInput) (*ListOverdueRecurringOutput, error) {
	overdue, err := uc.budgetRepo.FindOverdueRecurring(ctx, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue recurring budgets: %w", err)
	}

	owned := make([]*entity.Budget, 0, len(overdue))
	for _, b := range overdue {
		if b.UserID == input.UserID {
			owned = append(owned, b)
		}
	}

	return &ListOverdueRecurringOutput{Budgets: owned}, nil
}
