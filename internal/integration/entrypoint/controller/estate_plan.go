// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/usecase/estate"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/entrypoint/dto"
	"github.com/finance-planner/backend/internal/integration/entrypoint/middleware"
)

// EstatePlanController handles estate plan endpoints.
type EstatePlanController struct {
	createUseCase *estate.CreateEstatePlanUseCase
	getUseCase    *estate.GetEstatePlanUseCase
	listUseCase   *estate.ListEstatePlansUseCase
	updateUseCase *estate.UpdateEstatePlanUseCase
	reviewUseCase *estate.ListNeedingReviewUseCase
}

// NewEstatePlanController creates a new estate plan controller instance.
func NewEstatePlanController(
	createUseCase *estate.CreateEstatePlanUseCase,
	getUseCase *estate.GetEstatePlanUseCase,
	listUseCase *estate.ListEstatePlansUseCase,
	updateUseCase *estate.UpdateEstatePlanUseCase,
	reviewUseCase *estate.ListNeedingReviewUseCase,
) *EstatePlanController {
	return &EstatePlanController{
		createUseCase: createUseCase,
		getUseCase:    getUseCase,
		listUseCase:   listUseCase,
		updateUseCase: updateUseCase,
		reviewUseCase: reviewUseCase,
	}
}

// Create handles POST /estate-plans requests.
func (c *EstatePlanController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateEstatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEstateFields),
		})
		return
	}

	input := estate.CreateEstatePlanInput{
		UserID:        userID,
		Name:          req.Name,
		Type:          entity.EstatePlanType(req.Type),
		Assets:        dto.ToAssets(req.Assets),
		Beneficiaries: dto.ToBeneficiaries(req.Beneficiaries),
		Guardians:     dto.ToGuardians(req.Guardians),
		Documents:     dto.ToEstateDocuments(req.Documents),
		Notes:         req.Notes,
	}

	if req.Executor != nil {
		input.Executor = req.Executor.ToContactInfo()
	}
	if req.AlternateExecutor != nil {
		input.AlternateExecutor = req.AlternateExecutor.ToContactInfo()
	}
	if req.Attorney != nil {
		input.Attorney = req.Attorney.ToContactInfo()
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEstateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToEstatePlanResponse(output.Plan))
}

// Get handles GET /estate-plans/:id requests.
func (c *EstatePlanController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid estate plan ID format",
		})
		return
	}

	input := estate.GetEstatePlanInput{
		PlanID: planID,
		UserID: userID,
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEstateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstatePlanResponse(output.Plan))
}

// List handles GET /estate-plans requests.
func (c *EstatePlanController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := estate.ListEstatePlansInput{
		UserID: userID,
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve estate plans",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstatePlanListResponse(output.Plans))
}

// Update handles PATCH /estate-plans/:id requests.
func (c *EstatePlanController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	planID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid estate plan ID format",
		})
		return
	}

	var req dto.UpdateEstatePlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingEstateFields),
		})
		return
	}

	input := estate.UpdateEstatePlanInput{
		PlanID:       planID,
		UserID:       userID,
		Name:         req.Name,
		Notes:        req.Notes,
		MarkReviewed: req.MarkReviewed,
	}

	if req.Type != nil {
		planType := entity.EstatePlanType(*req.Type)
		input.Type = &planType
	}
	if req.Assets != nil {
		assets := dto.ToAssets(*req.Assets)
		input.Assets = &assets
	}
	if req.Beneficiaries != nil {
		beneficiaries := dto.ToBeneficiaries(*req.Beneficiaries)
		input.Beneficiaries = &beneficiaries
	}
	if req.Executor != nil {
		executor := req.Executor.ToContactInfo()
		input.Executor = &executor
	}
	if req.AlternateExecutor != nil {
		alternate := req.AlternateExecutor.ToContactInfo()
		input.AlternateExecutor = &alternate
	}
	if req.Guardians != nil {
		guardians := dto.ToGuardians(*req.Guardians)
		input.Guardians = &guardians
	}
	if req.Documents != nil {
		documents := dto.ToEstateDocuments(*req.Documents)
		input.Documents = &documents
	}
	if req.Status != nil {
		status := entity.EstatePlanStatus(*req.Status)
		input.Status = &status
	}
	if req.Attorney != nil {
		attorney := req.Attorney.ToContactInfo()
		input.Attorney = &attorney
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleEstateError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstatePlanResponse(output.Plan))
}

// ListNeedingReview handles GET /estate-plans/reviews/due requests.
func (c *EstatePlanController) ListNeedingReview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := estate.ListNeedingReviewInput{
		UserID: userID,
	}

	output, err := c.reviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve plans due for review",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToEstatePlanListResponse(output.Plans))
}

// handleEstateError handles estate errors and returns appropriate HTTP responses.
func (c *EstatePlanController) handleEstateError(ctx *gin.Context, err error) {
	var estateErr *domainerror.EstateError
	if errors.As(err, &estateErr) {
		statusCode := c.getStatusCodeForEstateError(estateErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: estateErr.Message,
			Code:  string(estateErr.Code),
		})
		return
	}

	// Generic server error
	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForEstateError maps estate error codes to HTTP status codes.
func (c *EstatePlanController) getStatusCodeForEstateError(code domainerror.EstateErrorCode) int {
	switch code {
	case domainerror.ErrCodeEstatePlanNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedEstate:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidEstatePlanType,
		domainerror.ErrCodeInvalidEstatePlanStatus,
		domainerror.ErrCodeInvalidAssetType,
		domainerror.ErrCodeInvalidAssetValue,
		domainerror.ErrCodeInvalidRelationship,
		domainerror.ErrCodeInvalidBeneficiaryPercentage,
		domainerror.ErrCodeInvalidEstateDocumentType,
		domainerror.ErrCodeInvalidEstateDocumentStatus,
		domainerror.ErrCodeEstateNotesTooLong,
		domainerror.ErrCodeEmptyEstatePlanName,
		domainerror.ErrCodeMissingEstateFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
