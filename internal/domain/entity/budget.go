// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetCategory represents the spending category of a budget envelope.
type BudgetCategory string

const (
	BudgetCategoryGroceries      BudgetCategory = "groceries"
	BudgetCategoryDining         BudgetCategory = "dining"
	BudgetCategoryTransportation BudgetCategory = "transportation"
	BudgetCategoryHousing        BudgetCategory = "housing"
	BudgetCategoryUtilities      BudgetCategory = "utilities"
	BudgetCategoryHealthcare     BudgetCategory = "healthcare"
	BudgetCategoryEntertainment  BudgetCategory = "entertainment"
	BudgetCategoryShopping       BudgetCategory = "shopping"
	BudgetCategoryEducation      BudgetCategory = "education"
	BudgetCategoryTravel         BudgetCategory = "travel"
	BudgetCategoryInsurance      BudgetCategory = "insurance"
	BudgetCategorySavings        BudgetCategory = "savings"
	BudgetCategoryDebtPayment    BudgetCategory = "debt_payment"
	BudgetCategoryPersonalCare   BudgetCategory = "personal_care"
	BudgetCategoryGifts          BudgetCategory = "gifts"
	BudgetCategoryOther          BudgetCategory = "other"
)

// ValidBudgetCategories lists every accepted budget category.
var ValidBudgetCategories = []BudgetCategory{
	BudgetCategoryGroceries,
	BudgetCategoryDining,
	BudgetCategoryTransportation,
	BudgetCategoryHousing,
	BudgetCategoryUtilities,
	BudgetCategoryHealthcare,
	BudgetCategoryEntertainment,
	BudgetCategoryShopping,
	BudgetCategoryEducation,
	BudgetCategoryTravel,
	BudgetCategoryInsurance,
	BudgetCategorySavings,
	BudgetCategoryDebtPayment,
	BudgetCategoryPersonalCare,
	BudgetCategoryGifts,
	BudgetCategoryOther,
}

// BudgetPeriod represents the period granularity of a budget.
type BudgetPeriod string

const (
	BudgetPeriodWeekly    BudgetPeriod = "weekly"
	BudgetPeriodMonthly   BudgetPeriod = "monthly"
	BudgetPeriodQuarterly BudgetPeriod = "quarterly"
	BudgetPeriodYearly    BudgetPeriod = "yearly"
)

// ValidBudgetPeriods lists every accepted budget period.
var ValidBudgetPeriods = []BudgetPeriod{
	BudgetPeriodWeekly,
	BudgetPeriodMonthly,
	BudgetPeriodQuarterly,
	BudgetPeriodYearly,
}

// BudgetStatus represents the lifecycle state of a budget.
type BudgetStatus string

const (
	BudgetStatusActive    BudgetStatus = "active"
	BudgetStatusCompleted BudgetStatus = "completed"
	BudgetStatusPaused    BudgetStatus = "paused"
	BudgetStatusExceeded  BudgetStatus = "exceeded"
)

// ValidBudgetStatuses lists every accepted budget status.
var ValidBudgetStatuses = []BudgetStatus{
	BudgetStatusActive,
	BudgetStatusCompleted,
	BudgetStatusPaused,
	BudgetStatusExceeded,
}

// TransactionKind represents the direction of a budget transaction.
type TransactionKind string

const (
	TransactionKindExpense TransactionKind = "expense"
	TransactionKindIncome  TransactionKind = "income"
)

// BudgetTransaction is a single entry recorded against a budget.
// Transactions are append-only: they are never edited or removed.
type BudgetTransaction struct {
	ID          uuid.UUID
	Description string
	Amount      decimal.Decimal
	Date        time.Time
	Kind        TransactionKind
	Category    BudgetCategory
	Notes       string
	CreatedAt   time.Time
}

// AlertConfig holds the alerting configuration of a budget.
type AlertConfig struct {
	Enabled           bool
	WarningThreshold  int // percentage, 0-100
	CriticalThreshold int // percentage, 0-100
	LastAlertSent     *time.Time
}

// RecurringConfig holds the recurrence configuration of a budget.
type RecurringConfig struct {
	IsRecurring bool
	Frequency   BudgetPeriod
	EndDate     *time.Time
	NextDueDate *time.Time
}

// Budget represents a spending envelope for a category over a period.
// ActualAmount is derived from the transaction list; it is recomputed
// before every save and never trusted from input.
type Budget struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Name           string
	Category       BudgetCategory
	BudgetedAmount decimal.Decimal
	ActualAmount   decimal.Decimal
	Period         BudgetPeriod
	Year           int
	Month          int // 1-12, set for monthly budgets
	Quarter        int // 1-4, set for quarterly budgets
	Week           int // 1-53, set for weekly budgets
	Status         BudgetStatus
	Tags           []string
	Transactions   []BudgetTransaction
	Alerts         AlertConfig
	Recurring      RecurringConfig
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      *time.Time // Soft-delete support
}

// NewBudget creates a new active Budget.
func NewBudget(userID uuid.UUID, name string, category BudgetCategory, budgetedAmount decimal.Decimal, period BudgetPeriod, now time.Time) *Budget {
	return &Budget{
		ID:             uuid.New(),
		UserID:         userID,
		Name:           name,
		Category:       category,
		BudgetedAmount: budgetedAmount,
		ActualAmount:   decimal.Zero,
		Period:         period,
		Status:         BudgetStatusActive,
		Alerts: AlertConfig{
			Enabled:           true,
			WarningThreshold:  80,
			CriticalThreshold: 95,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NewBudgetTransaction creates a new transaction entry.
func NewBudgetTransaction(description string, amount decimal.Decimal, date time.Time, kind TransactionKind, category BudgetCategory, notes string, now time.Time) BudgetTransaction {
	return BudgetTransaction{
		ID:          uuid.New(),
		Description: description,
		Amount:      amount,
		Date:        date,
		Kind:        kind,
		Category:    category,
		Notes:       notes,
		CreatedAt:   now,
	}
}

// IsValidBudgetCategory reports whether c is an accepted budget category.
func IsValidBudgetCategory(c BudgetCategory) bool {
	for _, valid := range ValidBudgetCategories {
		if c == valid {
			return true
		}
	}
	return false
}

// IsValidBudgetPeriod reports whether p is an accepted budget period.
func IsValidBudgetPeriod(p BudgetPeriod) bool {
	for _, valid := range ValidBudgetPeriods {
		if p == valid {
			return true
		}
	}
	return false
}

// IsValidBudgetStatus reports whether s is an accepted budget status.
func IsValidBudgetStatus(s BudgetStatus) bool {
	for _, valid := range ValidBudgetStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsValidTransactionKind reports whether k is an accepted transaction kind.
func IsValidTransactionKind(k TransactionKind) bool {
	return k == TransactionKindExpense || k == TransactionKindIncome
}
