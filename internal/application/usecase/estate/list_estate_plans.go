// Package estate contains estate plan use cases.
package estate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListEstatePlansInput represents the input for listing estate plans.
type ListEstatePlansInput struct {
	UserID uuid.UUID
}

// ListEstatePlansOutput represents the output of listing estate plans.
type ListEstatePlansOutput struct {
	Plans []*entity.EstatePlan
}

// ListEstatePlansUseCase handles estate plan listing logic.
type ListEstatePlansUseCase struct {
	estateRepo adapter.EstatePlanRepository
}

// NewListEstatePlansUseCase creates a new ListEstatePlansUseCase instance.
func NewListEstatePlansUseCase(estateRepo adapter.EstatePlanRepository) *ListEstatePlansUseCase {
	return &ListEstatePlansUseCase{
		estateRepo: estateRepo,
	}
}

// Execute performs the estate plan listing.
func (uc *ListEstatePlansUseCase) Execute(ctx context.Context, input ListEstatePlansInput) (*ListEstatePlansOutput, error) {
	plans, err := uc.estateRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list estate plans: %w", err)
	}

	return &ListEstatePlansOutput{Plans: plans}, nil
}
