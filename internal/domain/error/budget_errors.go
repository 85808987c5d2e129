// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Budget domain errors.
var (
	// ErrBudgetNotFound is returned when a budget is not found in the system.
	ErrBudgetNotFound = errors.New("budget not found")

	// ErrUnauthorizedBudgetAccess is returned when user is not authorized to access a budget.
	ErrUnauthorizedBudgetAccess = errors.New("unauthorized access to budget")

	// ErrInvalidBudgetCategory is returned when the category is not a known variant.
	ErrInvalidBudgetCategory = errors.New("invalid budget category")

	// ErrInvalidBudgetPeriod is returned when the period is not a known variant.
	ErrInvalidBudgetPeriod = errors.New("invalid budget period")

	// ErrInvalidBudgetStatus is returned when the status is not a known variant.
	ErrInvalidBudgetStatus = errors.New("invalid budget status")

	// ErrInvalidBudgetedAmount is returned when the budgeted amount is negative.
	ErrInvalidBudgetedAmount = errors.New("budgeted amount must be non-negative")

	// ErrInvalidThreshold is returned when an alert threshold is outside [0, 100].
	ErrInvalidThreshold = errors.New("alert threshold must be between 0 and 100")

	// ErrInvalidTransactionAmount is returned when a transaction amount is negative.
	ErrInvalidTransactionAmount = errors.New("transaction amount must be non-negative")

	// ErrEmptyTransactionDescription is returned when a transaction has no description.
	ErrEmptyTransactionDescription = errors.New("transaction description cannot be empty")

	// ErrInvalidTransactionKind is returned when a transaction kind is not expense or income.
	ErrInvalidTransactionKind = errors.New("transaction kind must be expense or income")

	// ErrEmptyBudgetName is returned when the budget name is empty.
	ErrEmptyBudgetName = errors.New("budget name cannot be empty")
)

// BudgetErrorCode defines error codes for budget errors.
// Format: BGT-XXYYYY where XX is category and YYYY is specific error.
type BudgetErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidBudgetCategory       BudgetErrorCode = "BGT-010001"
	ErrCodeInvalidBudgetPeriod         BudgetErrorCode = "BGT-010002"
	ErrCodeInvalidBudgetStatus         BudgetErrorCode = "BGT-010003"
	ErrCodeInvalidBudgetedAmount       BudgetErrorCode = "BGT-010004"
	ErrCodeInvalidThreshold            BudgetErrorCode = "BGT-010005"
	ErrCodeInvalidTransactionAmount    BudgetErrorCode = "BGT-010006"
	ErrCodeEmptyTransactionDescription BudgetErrorCode = "BGT-010007"
	ErrCodeInvalidTransactionKind      BudgetErrorCode = "BGT-010008"
	ErrCodeEmptyBudgetName             BudgetErrorCode = "BGT-010009"
	ErrCodeMissingBudgetFields         BudgetErrorCode = "BGT-010010"

	// Access errors (02XXXX)
	ErrCodeBudgetNotFound     BudgetErrorCode = "BGT-020001"
	ErrCodeUnauthorizedBudget BudgetErrorCode = "BGT-020002"
)

// BudgetError represents a budget error with code and message.
type BudgetError struct {
	Code    BudgetErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *BudgetError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *BudgetError) Unwrap() error {
	return e.Err
}

// NewBudgetError creates a new BudgetError with the given code and message.
func NewBudgetError(code BudgetErrorCode, message string, err error) *BudgetError {
	return &BudgetError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
