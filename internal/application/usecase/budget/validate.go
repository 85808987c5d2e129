// Package budget contains budget use cases.
package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/derivation"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

func validateBudgetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyBudgetName,
			"budget name cannot be empty",
			domainerror.ErrEmptyBudgetName,
		)
	}
	return nil
}

func validateCategory(category entity.BudgetCategory) error {
	if !entity.IsValidBudgetCategory(category) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetCategory,
			"category is not a known variant",
			domainerror.ErrInvalidBudgetCategory,
		)
	}
	return nil
}

func validatePeriod(period entity.BudgetPeriod) error {
	if !entity.IsValidBudgetPeriod(period) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetPeriod,
			"period is not a known variant",
			domainerror.ErrInvalidBudgetPeriod,
		)
	}
	return nil
}

func validateBudgetedAmount(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidBudgetedAmount,
			"budgeted amount must be non-negative",
			domainerror.ErrInvalidBudgetedAmount,
		)
	}
	return nil
}

func validateAlertConfig(alerts entity.AlertConfig) error {
	if !derivation.IsValidThreshold(alerts.WarningThreshold) || !derivation.IsValidThreshold(alerts.CriticalThreshold) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidThreshold,
			"alert thresholds must be between 0 and 100",
			domainerror.ErrInvalidThreshold,
		)
	}
	return nil
}

func validateTransaction(tx entity.BudgetTransaction) error {
	if strings.TrimSpace(tx.Description) == "" {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeEmptyTransactionDescription,
			"transaction description cannot be empty",
			domainerror.ErrEmptyTransactionDescription,
		)
	}
	if tx.Amount.IsNegative() {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidTransactionAmount,
			"transaction amount must be non-negative",
			domainerror.ErrInvalidTransactionAmount,
		)
	}
	if !entity.IsValidTransactionKind(tx.Kind) {
		return domainerror.NewBudgetError(
			domainerror.ErrCodeInvalidTransactionKind,
			"transaction kind must be expense or income",
			domainerror.ErrInvalidTransactionKind,
		)
	}
	return nil
}
