// Package budget contains budget use cases.
package budget

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// GetBudgetInput represents the input for retrieving a budget.
type GetBudgetInput struct {
	BudgetID uuid.UUID
	UserID   uuid.UUID
}

// GetBudgetOutput represents the output of retrieving a budget.
type GetBudgetOutput struct {
	Budget *entity.Budget
}

// GetBudgetUseCase handles budget retrieval logic.
type GetBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
}

// NewGetBudgetUseCase creates a new GetBudgetUseCase instance.
func NewGetBudgetUseCase(budgetRepo adapter.BudgetRepository) *GetBudgetUseCase {
	return &GetBudgetUseCase{
		budgetRepo: budgetRepo,
	}
}

// Execute performs the budget retrieval.
func (uc *GetBudgetUseCase) Execute(ctx context.Context, input GetBudgetInput) (*GetBudgetOutput, error) {
	budget, err := findOwnedBudget(ctx, uc.budgetRepo, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetBudgetOutput{Budget: budget}, nil
}

// findOwnedBudget loads a budget and enforces ownership. Shared by the
// read and mutation use cases.
func findOwnedBudget(ctx context.Context, repo adapter.BudgetRepository, budgetID, userID uuid.UUID) (*entity.Budget, error) {
	budget, err := repo.FindByID(ctx, budgetID)
	if err != nil {
		if errors.Is(err, domainerror.ErrBudgetNotFound) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeBudgetNotFound,
				"budget not found",
				domainerror.ErrBudgetNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find budget: %w", err)
	}

	if budget.UserID != userID {
		return nil, domainerror.NewBudgetError(
			domainerror.ErrCodeUnauthorizedBudget,
			"not authorized to access this budget",
			domainerror.ErrUnauthorizedBudgetAccess,
		)
	}

	return budget, nil
}
