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
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// UpdateBudgetInput represents the input for budget update. Nil fields are
// left unchanged. The transaction list and actual amount cannot be patched
// here; transactions go through AddTransactionUseCase.
type UpdateBudgetInput struct {
	BudgetID       uuid.UUID
	UserID         uuid.UUID
	Name           *string
	Category       *entity.BudgetCategory
	BudgetedAmount *decimal.Decimal
	Period         *entity.BudgetPeriod
	Status         *entity.BudgetStatus
	Tags           *[]string
	Alerts         *entity.AlertConfig
	Recurring      *entity.RecurringConfig
}

// UpdateBudgetOutput represents the output of budget update.
type UpdateBudgetOutput struct {
	Budget *entity.Budget
}

// UpdateBudgetUseCase handles budget update logic.
type UpdateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.SummaryCache
	clock      adapter.Clock
}

// NewUpdateBudgetUseCase creates a new UpdateBudgetUseCase instance.
func NewUpdateBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.SummaryCache, clock adapter.Clock) *UpdateBudgetUseCase {
	return &UpdateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		clock:      clock,
	}
}

// Execute performs the budget update: load, merge, validate, derive, persist.
func (uc *UpdateBudgetUseCase) Execute(ctx context.Context, input UpdateBudgetInput) (*UpdateBudgetOutput, error) {
	budget, err := findOwnedBudget(ctx, uc.budgetRepo, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if err := validateBudgetName(*input.Name); err != nil {
			return nil, err
		}
		budget.Name = *input.Name
	}
	if input.Category != nil {
		if err := validateCategory(*input.Category); err != nil {
			return nil, err
		}
		budget.Category = *input.Category
	}
	if input.BudgetedAmount != nil {
		if err := validateBudgetedAmount(*input.BudgetedAmount); err != nil {
			return nil, err
		}
		budget.BudgetedAmount = *input.BudgetedAmount
	}
	if input.Period != nil {
		if err := validatePeriod(*input.Period); err != nil {
			return nil, err
		}
		budget.Period = *input.Period
	}
	if input.Status != nil {
		if !entity.IsValidBudgetStatus(*input.Status) {
			return nil, domainerror.NewBudgetError(
				domainerror.ErrCodeInvalidBudgetStatus,
				"status is not a known variant",
				domainerror.ErrInvalidBudgetStatus,
			)
		}
		budget.Status = *input.Status
	}
	if input.Tags != nil {
		budget.Tags = *input.Tags
	}
	if input.Alerts != nil {
		if err := validateAlertConfig(*input.Alerts); err != nil {
			return nil, err
		}
		// Preserve the suppression stamp unless the caller sets one.
		if input.Alerts.LastAlertSent == nil {
			input.Alerts.LastAlertSent = budget.Alerts.LastAlertSent
		}
		budget.Alerts = *input.Alerts
	}
	if input.Recurring != nil {
		if input.Recurring.IsRecurring {
			if err := validatePeriod(input.Recurring.Frequency); err != nil {
				return nil, err
			}
		}
		budget.Recurring = *input.Recurring
	}

	now := uc.clock.Now()
	derivation.DeriveBudget(budget, now)
	budget.UpdatedAt = now

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to update budget: %w", err)
	}

	_ = uc.cache.Invalidate(ctx, input.UserID)

	return &UpdateBudgetOutput{Budget: budget}, nil
}
