// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/usecase/tax"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// TaxRecordController handles tax record endpoints.
type TaxRecordController struct {
	createUseCase *tax.CreateTaxRecordUseCase
	getUseCase    *tax.GetTaxRecordUseCase
	listUseCase   *tax.ListTaxRecordsUseCase
	updateUseCase *tax.UpdateTaxRecordUseCase
}

// NewTaxRecordController creates a new tax record controller instance.
func NewTaxRecordController(
	createUseCase *tax.CreateTaxRecordUseCase,
	getUseCase *tax.GetTaxRecordUseCase,
	listUseCase *tax.ListTaxRecordsUseCase,
	updateUseCase *tax.UpdateTaxRecordUseCase,
) *TaxRecordController {
	return &TaxRecordController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
	}
}

// Create handles POST /tax-records requests.
func (c *TaxRecordController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTaxRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTaxFields),
		})
		return
	}

	input := tax.CreateTaxRecordInput{
		UserID:       userID,
		TaxYear:      req.TaxYear,
		FilingStatus: entity.FilingStatus(req.FilingStatus),
		Income:       req.Income.ToIncomeSources(),
		Deductions:   req.Deductions.ToDeductions(),
		TaxOwed:      decimal.NewFromFloat(req.TaxOwed),
		TaxPaid:      decimal.NewFromFloat(req.TaxPaid),
		Notes:        req.Notes,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaxRecordResponse(output.Record))
}

// Get handles GET /tax-records/:id requests.
func (c *TaxRecordController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tax record ID format",
		})
		return
	}

	input := tax.GetTaxRecordInput{
		RecordID: recordID,
		UserID:   userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaxRecordResponse(output.Record))
}

// List handles GET /tax-records requests.
func (c *TaxRecordController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := tax.ListTaxRecordsInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve tax records",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaxRecordListResponse(output.Records))
}

// Update handles PATCH /tax-records/:id requests.
func (c *TaxRecordController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	recordID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid tax record ID format",
		})
		return
	}

	var req dto.UpdateTaxRecordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTaxFields),
		})
		return
	}

	input := tax.UpdateTaxRecordInput{
		RecordID: recordID,
		UserID:   userID,
		Notes:    req.Notes,
	}

	if req.FilingStatus != nil {
		status := entity.FilingStatus(*req.FilingStatus)
		input.FilingStatus = &status
	}
	if req.Income != nil {
		income := req.Income.ToIncomeSources()
		input.Income = &income
	}
	if req.Deductions != nil {
		deductions := req.Deductions.ToDeductions()
		input.Deductions = &deductions
	}
	if req.TaxOwed != nil {
		owed := decimal.NewFromFloat(*req.TaxOwed)
		input.TaxOwed = &owed
	}
	if req.TaxPaid != nil {
		paid := decimal.NewFromFloat(*req.TaxPaid)
		input.TaxPaid = &paid
	}
	if req.Status != nil {
		status := entity.TaxRecordStatus(*req.Status)
		input.Status = &status
	}
	if req.AddDocument != nil {
		input.AddDocument = &entity.TaxDocument{
			Name:     req.AddDocument.Name,
			Kind:     req.AddDocument.Kind,
			Location: req.AddDocument.Location,
		}
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaxError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaxRecordResponse(output.Record))
}

// handleTaxError handles tax errors and returns appropriate HTTP responses.
func (c *TaxRecordController) handleTaxError(ctx *gin.Context, err error) {
	var taxErr *domainerror.TaxError
	if errors.As(err, &taxErr) {
		statusCode := c.getStatusCodeForTaxError(taxErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: taxErr.Message,
			Code:  string(taxErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTaxError maps tax error codes to HTTP status codes.
func (c *TaxRecordController) getStatusCodeForTaxError(code domainerror.TaxErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaxRecordNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedTaxRecord:
		return http.StatusForbidden
	case domainerror.ErrCodeTaxRecordAlreadyExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTaxYear,
		domainerror.ErrCodeInvalidFilingStatus,
		domainerror.ErrCodeInvalidTaxRecordStatus,
		domainerror.ErrCodeNegativeIncomeComponent,
		domainerror.ErrCodeTaxNotesTooLong,
		domainerror.ErrCodeMissingTaxFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
