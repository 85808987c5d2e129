// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// BudgetRepository defines the interface for budget persistence operations.
type BudgetRepository interface {
	// Create creates a new budget in the database.
	Create(ctx context.Context, budget *entity.Budget) error

	// FindByID retrieves a budget with its transactions by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error)

	// FindByUserID retrieves all budgets for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error)

	// Update persists a budget and its transactions as one atomic write.
	Update(ctx context.Context, budget *entity.Budget) error

	// AppendTransaction appends a transaction to a budget's list.
	AppendTransaction(ctx context.Context, budgetID uuid.UUID, tx entity.BudgetTransaction) error

	// FindNeedingAlerts retrieves budgets whose alert scan should run:
	// alerts enabled, active status, non-negative actual amount. The last
	// clause cannot exclude anything given the derived-total invariant and
	// is kept for compatibility.
	FindNeedingAlerts(ctx context.Context) ([]*entity.Budget, error)

	// FindOverdueRecurring retrieves recurring budgets whose next due date
	// has arrived.
	FindOverdueRecurring(ctx context.Context, now time.Time) ([]*entity.Budget, error)
}
