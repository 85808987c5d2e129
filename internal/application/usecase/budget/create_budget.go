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

// CreateBudgetInput represents the input for budget creation. Zero period
// fields (year, month, quarter, week) are defaulted from the clock.
type CreateBudgetInput struct {
	UserID         uuid.UUID
	Name           string
	Category       entity.BudgetCategory
	BudgetedAmount decimal.Decimal
	Period         entity.BudgetPeriod
	Year           int
	Month          int
	Quarter        int
	Week           int
	Tags           []string
	Alerts         *entity.AlertConfig
	Recurring      *entity.RecurringConfig
}

// CreateBudgetOutput represents the output of budget creation.
type CreateBudgetOutput struct {
	Budget *entity.Budget
}

// CreateBudgetUseCase handles budget creation logic.
type CreateBudgetUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.SummaryCache
	clock      adapter.Clock
}

// NewCreateBudgetUseCase creates a new CreateBudgetUseCase instance.
func NewCreateBudgetUseCase(budgetRepo adapter.BudgetRepository, cache adapter.SummaryCache, clock adapter.Clock) *CreateBudgetUseCase {
	return &CreateBudgetUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		clock:      clock,
	}
}

// Execute performs the budget creation: validate, derive, persist.
func (uc *CreateBudgetUseCase) Execute(ctx context.Context, input CreateBudgetInput) (*CreateBudgetOutput, error) {
	if err := validateBudgetName(input.Name); err != nil {
		return nil, err
	}
	if err := validateCategory(input.Category); err != nil {
		return nil, err
	}
	if err := validatePeriod(input.Period); err != nil {
		return nil, err
	}
	if err := validateBudgetedAmount(input.BudgetedAmount); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	budget := entity.NewBudget(input.UserID, input.Name, input.Category, input.BudgetedAmount, input.Period, now)
	budget.Year = input.Year
	budget.Month = input.Month
	budget.Quarter = input.Quarter
	budget.Week = input.Week
	budget.Tags = input.Tags

	if input.Alerts != nil {
		if err := validateAlertConfig(*input.Alerts); err != nil {
			return nil, err
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

	derivation.DeriveBudget(budget, now)

	if err := uc.budgetRepo.Create(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to create budget: %w", err)
	}

	// Cache failures never fail the write; the entry just goes stale.
	_ = uc.cache.Invalidate(ctx, input.UserID)

	return &CreateBudgetOutput{Budget: budget}, nil
}
