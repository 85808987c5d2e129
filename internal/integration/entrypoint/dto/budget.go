// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// AlertConfigRequest carries the alert configuration of a budget.
type AlertConfigRequest struct {
	Enabled           bool `json:"enabled"`
	WarningThreshold  int  `json:"warning_threshold"`
	CriticalThreshold int  `json:"critical_threshold"`
}

// RecurringConfigRequest carries the recurrence configuration of a budget.
type RecurringConfigRequest struct {
	IsRecurring bool       `json:"is_recurring"`
	Frequency   string     `json:"frequency"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	NextDueDate *time.Time `json:"next_due_date,omitempty"`
}

// CreateBudgetRequest represents the request body for budget creation.
type CreateBudgetRequest struct {
	Name           string                  `json:"name" binding:"required"`
	Category       string                  `json:"category" binding:"required"`
	BudgetedAmount float64                 `json:"budgeted_amount"`
	Period         string                  `json:"period"`
	Year           int                     `json:"year"`
	Month          int                     `json:"month"`
	Quarter        int                     `json:"quarter"`
	Week           int                     `json:"week"`
	Tags           []string                `json:"tags"`
	Alerts         *AlertConfigRequest     `json:"alerts,omitempty"`
	Recurring      *RecurringConfigRequest `json:"recurring,omitempty"`
}

// UpdateBudgetRequest represents the request body for budget update.
// Absent fields leave the stored values untouched.
type UpdateBudgetRequest struct {
	Name           *string                 `json:"name,omitempty"`
	Category       *string                 `json:"category,omitempty"`
	BudgetedAmount *float64                `json:"budgeted_amount,omitempty"`
	Period         *string                 `json:"period,omitempty"`
	Status         *string                 `json:"status,omitempty"`
	Tags           *[]string               `json:"tags,omitempty"`
	Alerts         *AlertConfigRequest     `json:"alerts,omitempty"`
	Recurring      *RecurringConfigRequest `json:"recurring,omitempty"`
}

// AddTransactionRequest represents the request body for recording a
// transaction against a budget.
type AddTransactionRequest struct {
	Description string     `json:"description" binding:"required"`
	Amount      float64    `json:"amount"`
	Date        *time.Time `json:"date,omitempty"`
	Kind        string     `json:"kind"`
	Category    string     `json:"category"`
	Notes       string     `json:"notes"`
}

// AlertConfigResponse represents a budget's alert configuration in responses.
type AlertConfigResponse struct {
	Enabled           bool       `json:"enabled"`
	WarningThreshold  int        `json:"warning_threshold"`
	CriticalThreshold int        `json:"critical_threshold"`
	LastAlertSent     *time.Time `json:"last_alert_sent,omitempty"`
}

// RecurringConfigResponse represents a budget's recurrence configuration in responses.
type RecurringConfigResponse struct {
	IsRecurring bool       `json:"is_recurring"`
	Frequency   string     `json:"frequency,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	NextDueDate *time.Time `json:"next_due_date,omitempty"`
}

// TransactionResponse represents a budget transaction in API responses.
type TransactionResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Date        time.Time `json:"date"`
	Kind        string    `json:"kind"`
	Category    string    `json:"category"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// BudgetResponse represents a budget in API responses.
type BudgetResponse struct {
	ID             string                  `json:"id"`
	Name           string                  `json:"name"`
	Category       string                  `json:"category"`
	BudgetedAmount string                  `json:"budgeted_amount"`
	ActualAmount   string                  `json:"actual_amount"`
	Period         string                  `json:"period"`
	Year           int                     `json:"year"`
	Month          int                     `json:"month,omitempty"`
	Quarter        int                     `json:"quarter,omitempty"`
	Week           int                     `json:"week,omitempty"`
	Status         string                  `json:"status"`
	Tags           []string                `json:"tags"`
	Transactions   []TransactionResponse   `json:"transactions"`
	Alerts         AlertConfigResponse     `json:"alerts"`
	Recurring      RecurringConfigResponse `json:"recurring"`
	CreatedAt      time.Time               `json:"created_at"`
	UpdatedAt      time.Time               `json:"updated_at"`
}

// BudgetListResponse represents a list of budgets.
type BudgetListResponse struct {
	Budgets []BudgetResponse `json:"budgets"`
	Total   int              `json:"total"`
}

// BudgetSummaryResponse represents the per-user budget summary.
type BudgetSummaryResponse struct {
	Summary *adapter.BudgetSummary `json:"summary"`
	Cached  bool                   `json:"cached"`
}

// ToAlertConfig converts an alert config request to the domain value.
func (r AlertConfigRequest) ToAlertConfig() entity.AlertConfig {
	return entity.AlertConfig{
		Enabled:           r.Enabled,
		WarningThreshold:  r.WarningThreshold,
		CriticalThreshold: r.CriticalThreshold,
	}
}

// ToRecurringConfig converts a recurrence request to the domain value.
func (r RecurringConfigRequest) ToRecurringConfig() entity.RecurringConfig {
	return entity.RecurringConfig{
		IsRecurring: r.IsRecurring,
		Frequency:   entity.BudgetPeriod(r.Frequency),
		EndDate:     r.EndDate,
		NextDueDate: r.NextDueDate,
	}
}

// ToTransactionResponse converts a domain transaction to a response DTO.
func ToTransactionResponse(tx entity.BudgetTransaction) TransactionResponse {
	return TransactionResponse{
		ID:          tx.ID.String(),
		Description: tx.Description,
		Amount:      tx.Amount.String(),
		Date:        tx.Date,
		Kind:        string(tx.Kind),
		Category:    string(tx.Category),
		Notes:       tx.Notes,
		CreatedAt:   tx.CreatedAt,
	}
}

// ToBudgetResponse converts a domain Budget entity to a response DTO.
func ToBudgetResponse(budget *entity.Budget) BudgetResponse {
	transactions := make([]TransactionResponse, 0, len(budget.Transactions))
	for _, tx := range budget.Transactions {
		transactions = append(transactions, ToTransactionResponse(tx))
	}

	tags := budget.Tags
	if tags == nil {
		tags = []string{}
	}

	return BudgetResponse{
		ID:             budget.ID.String(),
		Name:           budget.Name,
		Category:       string(budget.Category),
		BudgetedAmount: budget.BudgetedAmount.String(),
		ActualAmount:   budget.ActualAmount.String(),
		Period:         string(budget.Period),
		Year:           budget.Year,
		Month:          budget.Month,
		Quarter:        budget.Quarter,
		Week:           budget.Week,
		Status:         string(budget.Status),
		Tags:           tags,
		Transactions:   transactions,
		Alerts: AlertConfigResponse{
			Enabled:           budget.Alerts.Enabled,
			WarningThreshold:  budget.Alerts.WarningThreshold,
			CriticalThreshold: budget.Alerts.CriticalThreshold,
			LastAlertSent:     budget.Alerts.LastAlertSent,
		},
		Recurring: RecurringConfigResponse{
			IsRecurring: budget.Recurring.IsRecurring,
			Frequency:   string(budget.Recurring.Frequency),
			EndDate:     budget.Recurring.EndDate,
			NextDueDate: budget.Recurring.NextDueDate,
		},
		CreatedAt: budget.CreatedAt,
		UpdatedAt: budget.UpdatedAt,
	}
}

// ToBudgetListResponse converts a list of budgets to a response DTO.
func ToBudgetListResponse(budgets []*entity.Budget) BudgetListResponse {
	out := make([]BudgetResponse, 0, len(budgets))
	for _, budget := range budgets {
		out = append(out, ToBudgetResponse(budget))
	}
	return BudgetListResponse{
		Budgets: out,
		Total:   len(out),
	}
}
