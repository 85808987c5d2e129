// Package budget contains budget use cases.
package budget

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/derivation"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// AddTransactionInput represents the input for recording a transaction
// against a budget.
type AddTransactionInput struct {
	BudgetID    uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Kind        entity.TransactionKind
	Category    entity.BudgetCategory
	Notes       string
}

// AddTransactionOutput represents the output of recording a transaction.
type AddTransactionOutput struct {
	Budget      *entity.Budget
	Transaction entity.BudgetTransaction
}

// AddTransactionUseCase handles appending transactions to a budget.
// Transactions are append-only; the budget's actual amount and status are
// rederived from the full list on every append.
type AddTransactionUseCase struct {
	budgetRepo adapter.BudgetRepository
	cache      adapter.SummaryCache
	clock      adapter.Clock
}

// NewAddTransactionUseCase creates a new AddTransactionUseCase instance.
func NewAddTransactionUseCase(budgetRepo adapter.BudgetRepository, cache adapter.SummaryCache, clock adapter.Clock) *AddTransactionUseCase {
	return &AddTransactionUseCase{
		budgetRepo: budgetRepo,
		cache:      cache,
		clock:      clock,
	}
}

// Execute validates the transaction, appends it and rederives the budget.
func (uc *AddTransactionUseCase) Execute(ctx context.Context, input AddTransactionInput) (*AddTransactionOutput, error) {
	budget, err := findOwnedBudget(ctx, uc.budgetRepo, input.BudgetID, input.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	category := input.Category
	if category == "" {
		category = budget.Category
	}
	date := input.Date
	if date.IsZero() {
		date = now
	}

	tx := entity.NewBudgetTransaction(input.Description, input.Amount, date, input.Kind, category, input.Notes, now)
	if err := validateTransaction(tx); err != nil {
		return nil, err
	}

	budget.Transactions = append(budget.Transactions, tx)
	derivation.DeriveBudget(budget, now)
	budget.UpdatedAt = now

	if err := uc.budgetRepo.Update(ctx, budget); err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}

	_ = uc.cache.Invalidate(ctx, input.UserID)

	return &AddTransactionOutput{Budget: budget, Transaction: tx}, nil
}
