// Package estate contains estate plan use cases.
package estate

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// GetEstatePlanInput represents the input for retrieving an estate plan.
type GetEstatePlanInput struct {
	PlanID uuid.UUID
	UserID uuid.UUID
}

// GetEstatePlanOutput represents the output of retrieving an estate plan.
type GetEstatePlanOutput struct {
	Plan *entity.EstatePlan
}

// GetEstatePlanUseCase handles estate plan retrieval logic.
type GetEstatePlanUseCase struct {
	estateRepo adapter.EstatePlanRepository
}

// NewGetEstatePlanUseCase creates a new GetEstatePlanUseCase instance.
func NewGetEstatePlanUseCase(estateRepo adapter.EstatePlanRepository) *GetEstatePlanUseCase {
	return &GetEstatePlanUseCase{
		estateRepo: estateRepo,
	}
}

// Execute performs the estate plan retrieval.
func (uc *GetEstatePlanUseCase) Execute(ctx context.Context, input GetEstatePlanInput) (*GetEstatePlanOutput, error) {
	plan, err := findOwnedPlan(ctx, uc.estateRepo, input.PlanID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetEstatePlanOutput{Plan: plan}, nil
}

// findOwnedPlan loads an estate plan and enforces ownership. Shared by the
// read and mutation use cases.
func findOwnedPlan(ctx context.Context, repo adapter.EstatePlanRepository, planID, userID uuid.UUID) (*entity.EstatePlan, error) {
	plan, err := repo.FindByID(ctx, planID)
	if err != nil {
		if errors.Is(err, domainerror.ErrEstatePlanNotFound) {
			return nil, domainerror.NewEstateError(
				domainerror.ErrCodeEstatePlanNotFound,
				"estate plan not found",
				domainerror.ErrEstatePlanNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find estate plan: %w", err)
	}

	if plan.UserID != userID {
		return nil, domainerror.NewEstateError(
			domainerror.ErrCodeUnauthorizedEstate,
			"not authorized to access this estate plan",
			domainerror.ErrUnauthorizedEstateAccess,
		)
	}

	return plan, nil
}
