// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// BudgetModel represents the budgets table in the database.
type BudgetModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name           string          `gorm:"type:varchar(255);not null"`
	Category       string          `gorm:"type:varchar(30);not null;index"`
	BudgetedAmount decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ActualAmount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Period         string          `gorm:"type:varchar(20);not null"`
	Year           int             `gorm:"not null;index"`
	Month          int             `gorm:"default:0"`
	Quarter        int             `gorm:"default:0"`
	Week           int             `gorm:"default:0"`
	Status         string          `gorm:"type:varchar(20);not null;default:'active';index"`
	Tags           pq.StringArray  `gorm:"type:text[]"`

	AlertsEnabled     bool       `gorm:"default:true"`
	WarningThreshold  int        `gorm:"not null;default:80"`
	CriticalThreshold int        `gorm:"not null;default:95"`
	LastAlertSent     *time.Time `gorm:"type:timestamptz"`

	IsRecurring        bool       `gorm:"default:false"`
	RecurringFrequency string     `gorm:"type:varchar(20)"`
	RecurringEndDate   *time.Time `gorm:"type:date"`
	NextDueDate        *time.Time `gorm:"type:date;index"`

	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Transactions []BudgetTransactionModel `gorm:"foreignKey:BudgetID;references:ID"`
}

// TableName returns the table name for the BudgetModel.
func (BudgetModel) TableName() string {
	return "budgets"
}

// BudgetTransactionModel represents the budget_transactions table in the database.
type BudgetTransactionModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BudgetID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Description string          `gorm:"type:varchar(255);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Date        time.Time       `gorm:"type:date;not null;index"`
	Kind        string          `gorm:"type:varchar(10);not null"`
	Category    string          `gorm:"type:varchar(30);not null"`
	Notes       string          `gorm:"type:text"`
	CreatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for the BudgetTransactionModel.
func (BudgetTransactionModel) TableName() string {
	return "budget_transactions"
}

// ToEntity converts a BudgetTransactionModel to a domain BudgetTransaction.
func (m *BudgetTransactionModel) ToEntity() entity.BudgetTransaction {
	return entity.BudgetTransaction{
		ID:          m.ID,
		Description: m.Description,
		Amount:      m.Amount,
		Date:        m.Date,
		Kind:        entity.TransactionKind(m.Kind),
		Category:    entity.BudgetCategory(m.Category),
		Notes:       m.Notes,
		CreatedAt:   m.CreatedAt,
	}
}

// BudgetTransactionFromEntity creates a BudgetTransactionModel from a domain
// BudgetTransaction.
func BudgetTransactionFromEntity(budgetID uuid.UUID, tx entity.BudgetTransaction) *BudgetTransactionModel {
	return &BudgetTransactionModel{
		ID:          tx.ID,
		BudgetID:    budgetID,
		Description: tx.Description,
		Amount:      tx.Amount,
		Date:        tx.Date,
		Kind:        string(tx.Kind),
		Category:    string(tx.Category),
		Notes:       tx.Notes,
		CreatedAt:   tx.CreatedAt,
	}
}

// ToEntity converts a BudgetModel to a domain Budget entity.
func (m *BudgetModel) ToEntity() *entity.Budget {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	transactions := make([]entity.BudgetTransaction, 0, len(m.Transactions))
	for i := range m.Transactions {
		transactions = append(transactions, m.Transactions[i].ToEntity())
	}

	return &entity.Budget{
		ID:             m.ID,
		UserID:         m.UserID,
		Name:           m.Name,
		Category:       entity.BudgetCategory(m.Category),
		BudgetedAmount: m.BudgetedAmount,
		ActualAmount:   m.ActualAmount,
		Period:         entity.BudgetPeriod(m.Period),
		Year:           m.Year,
		Month:          m.Month,
		Quarter:        m.Quarter,
		Week:           m.Week,
		Status:         entity.BudgetStatus(m.Status),
		Tags:           m.Tags,
		Transactions:   transactions,
		Alerts: entity.AlertConfig{
			Enabled:           m.AlertsEnabled,
			WarningThreshold:  m.WarningThreshold,
			CriticalThreshold: m.CriticalThreshold,
			LastAlertSent:     m.LastAlertSent,
		},
		Recurring: entity.RecurringConfig{
			IsRecurring: m.IsRecurring,
			Frequency:   entity.BudgetPeriod(m.RecurringFrequency),
			EndDate:     m.RecurringEndDate,
			NextDueDate: m.NextDueDate,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// BudgetFromEntity creates a BudgetModel from a domain Budget entity.
func BudgetFromEntity(budget *entity.Budget) *BudgetModel {
	var deletedAt gorm.DeletedAt
	if budget.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *budget.DeletedAt, Valid: true}
	}

	transactions := make([]BudgetTransactionModel, 0, len(budget.Transactions))
	for _, tx := range budget.Transactions {
		transactions = append(transactions, *BudgetTransactionFromEntity(budget.ID, tx))
	}

	return &BudgetModel{
		ID:                 budget.ID,
		UserID:             budget.UserID,
		Name:               budget.Name,
		Category:           string(budget.Category),
		BudgetedAmount:     budget.BudgetedAmount,
		ActualAmount:       budget.ActualAmount,
		Period:             string(budget.Period),
		Year:               budget.Year,
		Month:              budget.Month,
		Quarter:            budget.Quarter,
		Week:               budget.Week,
		Status:             string(budget.Status),
		Tags:               budget.Tags,
		AlertsEnabled:      budget.Alerts.Enabled,
		WarningThreshold:   budget.Alerts.WarningThreshold,
		CriticalThreshold:  budget.Alerts.CriticalThreshold,
		LastAlertSent:      budget.Alerts.LastAlertSent,
		IsRecurring:        budget.Recurring.IsRecurring,
		RecurringFrequency: string(budget.Recurring.Frequency),
		RecurringEndDate:   budget.Recurring.EndDate,
		NextDueDate:        budget.Recurring.NextDueDate,
		CreatedAt:          budget.CreatedAt,
		UpdatedAt:          budget.UpdatedAt,
		DeletedAt:          deletedAt,
		Transactions:       transactions,
	}
}
