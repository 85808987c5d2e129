// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/usecase/budget"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// BudgetController handles budget endpoints.
type BudgetController struct {
	createUseCase         *budget.CreateBudgetUseCase
	getUseCase            *budget.GetBudgetUseCase
	listUseCase           *budget.ListBudgetsUseCase
	updateUseCase         *budget.UpdateBudgetUseCase
	addTransactionUseCase *budget.AddTransactionUseCase
	summaryUseCase        *budget.GetSummaryUseCase
	overdueUseCase        *budget.ListOverdueRecurringUseCase
}

// NewBudgetController creates a new budget controller instance.
func NewBudgetController(
	createUseCase *budget.CreateBudgetUseCase,
	getUseCase *budget.GetBudgetUseCase,
	listUseCase *budget.ListBudgetsUseCase,
	updateUseCase *budget.UpdateBudgetUseCase,
	addTransactionUseCase *budget.AddTransactionUseCase,
	summaryUseCase *budget.GetSummaryUseCase,
	overdueUseCase *budget.ListOverdueRecurringUseCase,
) *BudgetController {
	return &BudgetController{
		createUseCase:         createUseCase,
		getUseCase:            getUseCase,
		listUseCase:           listUseCase,
		updateUseCase:         updateUseCase,
		addTransactionUseCase: addTransactionUseCase,
		summaryUseCase:        summaryUseCase,
		overdueUseCase:        overdueUseCase,
	}
}

// Create handles POST /budgets requests.
func (c *BudgetController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	input := budget.CreateBudgetInput{
		UserID:         userID,
		Name:           req.Name,
		Category:       entity.BudgetCategory(req.Category),
		BudgetedAmount: decimal.NewFromFloat(req.BudgetedAmount),
		Period:         entity.BudgetPeriod(req.Period),
		Year:           req.Year,
		Month:          req.Month,
		Quarter:        req.Quarter,
		Week:           req.Week,
		Tags:           req.Tags,
	}

	if req.Alerts != nil {
		alerts := req.Alerts.ToAlertConfig()
		input.Alerts = &alerts
	}
	if req.Recurring != nil {
		recurring := req.Recurring.ToRecurringConfig()
		input.Recurring = &recurring
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToBudgetResponse(output.Budget))
}

// Get handles GET /budgets/:id requests.
func (c *BudgetController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	input := budget.GetBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// List handles GET /budgets requests. Category, period, status and year
// query parameters narrow the result.
func (c *BudgetController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budget.ListBudgetsInput{
		UserID:   userID,
		Category: entity.BudgetCategory(ctx.Query("category")),
		Period:   entity.BudgetPeriod(ctx.Query("period")),
		Status:   entity.BudgetStatus(ctx.Query("status")),
	}

	if yearStr := ctx.Query("year"); yearStr != "" {
		year, err := strconv.Atoi(yearStr)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid year filter",
			})
			return
		}
		input.Year = year
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve budgets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// Update handles PATCH /budgets/:id requests.
func (c *BudgetController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.UpdateBudgetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	input := budget.UpdateBudgetInput{
		BudgetID: budgetID,
		UserID:   userID,
		Name:     req.Name,
		Tags:     req.Tags,
	}

	if req.Category != nil {
		category := entity.BudgetCategory(*req.Category)
		input.Category = &category
	}
	if req.BudgetedAmount != nil {
		amount := decimal.NewFromFloat(*req.BudgetedAmount)
		input.BudgetedAmount = &amount
	}
	if req.Period != nil {
		period := entity.BudgetPeriod(*req.Period)
		input.Period = &period
	}
	if req.Status != nil {
		status := entity.BudgetStatus(*req.Status)
		input.Status = &status
	}
	if req.Alerts != nil {
		alerts := req.Alerts.ToAlertConfig()
		input.Alerts = &alerts
	}
	if req.Recurring != nil {
		recurring := req.Recurring.ToRecurringConfig()
		input.Recurring = &recurring
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetResponse(output.Budget))
}

// AddTransaction handles POST /budgets/:id/transactions requests.
func (c *BudgetController) AddTransaction(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	budgetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid budget ID format",
		})
		return
	}

	var req dto.AddTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingBudgetFields),
		})
		return
	}

	input := budget.AddTransactionInput{
		BudgetID:    budgetID,
		UserID:      userID,
		Description: req.Description,
		Amount:      decimal.NewFromFloat(req.Amount),
		Kind:        entity.TransactionKind(req.Kind),
		Category:    entity.BudgetCategory(req.Category),
		Notes:       req.Notes,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	output, err := c.addTransactionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBudgetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"budget":      dto.ToBudgetResponse(output.Budget),
		"transaction": dto.ToTransactionResponse(output.Transaction),
	})
}

// Summary handles GET /budgets/summary requests.
func (c *BudgetController) Summary(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budget.GetSummaryInput{
		UserID: userID,
	}

	output, err := c.summaryUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute budget summary",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.BudgetSummaryResponse{
		Summary: output.Summary,
		Cached:  output.Cached,
	})
}

// ListOverdueRecurring handles GET /budgets/recurring/overdue requests.
func (c *BudgetController) ListOverdueRecurring(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := budget.ListOverdueRecurringInput{
		UserID: userID,
	}

	output, err := c.overdueUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve overdue recurring budgets",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBudgetListResponse(output.Budgets))
}

// handleBudgetError handles budget errors and returns appropriate HTTP responses.
func (c *BudgetController) handleBudgetError(ctx *gin.Context, err error) {
	var budgetErr *domainerror.BudgetError
	if errors.As(err, &budgetErr) {
		statusCode := c.getStatusCodeForBudgetError(budgetErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: budgetErr.Message,
			Code:  string(budgetErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForBudgetError maps budget error codes to HTTP status codes.
func (c *BudgetController) getStatusCodeForBudgetError(code domainerror.BudgetErrorCode) int {
	switch code {
	case domainerror.ErrCodeBudgetNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedBudget:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidBudgetCategory,
		domainerror.ErrCodeInvalidBudgetPeriod,
		domainerror.ErrCodeInvalidBudgetStatus,
		domainerror.ErrCodeInvalidBudgetedAmount,
		domainerror.ErrCodeInvalidThreshold,
		domainerror.ErrCodeInvalidTransactionAmount,
		domainerror.ErrCodeEmptyTransactionDescription,
		domainerror.ErrCodeInvalidTransactionKind,
		domainerror.ErrCodeEmptyBudgetName,
		domainerror.ErrCodeMissingBudgetFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
