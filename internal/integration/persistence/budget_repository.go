// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// budgetRepository implements the adapter.BudgetRepository interface.
type budgetRepository struct {
	db *gorm.DB
}

// NewBudgetRepository creates a new budget repository instance.
func NewBudgetRepository(db *gorm.DB) adapter.BudgetRepository {
	return &budgetRepository{
		db: db,
	}
}

// Create creates a new budget in the database.
func (r *budgetRepository) Create(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	result := r.db.WithContext(ctx).Create(budgetModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a budget with its transactions by ID.
func (r *budgetRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Budget, error) {
	var budgetModel model.BudgetModel
	result := r.db.WithContext(ctx).
		Preload("Transactions", func(db *gorm.DB) *gorm.DB {
			return db.Order("budget_transactions.date ASC")
		}).
		Where("id = ?", id).
		First(&budgetModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrBudgetNotFound
		}
		return nil, result.Error
	}
	return budgetModel.ToEntity(), nil
}

// FindByUserID retrieves all budgets for a given user.
func (r *budgetRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Preload("Transactions").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}

// Update persists a budget and its transactions as one atomic write.
func (r *budgetRepository) Update(ctx context.Context, budget *entity.Budget) error {
	budgetModel := model.BudgetFromEntity(budget)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Transactions").Save(budgetModel).Error; err != nil {
			return err
		}
		// Transactions are append-only, so upserting by primary key is safe.
		for i := range budgetModel.Transactions {
			if err := tx.Where("id = ?", budgetModel.Transactions[i].ID).
				FirstOrCreate(&budgetModel.Transactions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// AppendTransaction appends a transaction to a budget's list.
func (r *budgetRepository) AppendTransaction(ctx context.Context, budgetID uuid.UUID, txEntry entity.BudgetTransaction) error {
	txModel := model.BudgetTransactionFromEntity(budgetID, txEntry)
	result := r.db.WithContext(ctx).Create(txModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindNeedingAlerts retrieves budgets whose alert scan should run. The
// actual_amount clause cannot exclude anything given the derived-total
// invariant and is kept for compatibility.
func (r *budgetRepository) FindNeedingAlerts(ctx context.Context) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("alerts_enabled = ?", true).
		Where("status = ?", entity.BudgetStatusActive).
		Where("actual_amount >= 0").
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}

// FindOverdueRecurring retrieves recurring budgets whose next due date has arrived.
func (r *budgetRepository) FindOverdueRecurring(ctx context.Context, now time.Time) ([]*entity.Budget, error) {
	var budgetModels []model.BudgetModel
	result := r.db.WithContext(ctx).
		Where("is_recurring = ?", true).
		Where("next_due_date IS NOT NULL AND next_due_date <= ?", now).
		Find(&budgetModels)
	if result.Error != nil {
		return nil, result.Error
	}

	budgets := make([]*entity.Budget, len(budgetModels))
	for i := range budgetModels {
		budgets[i] = budgetModels[i].ToEntity()
	}
	return budgets, nil
}
