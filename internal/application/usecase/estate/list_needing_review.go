// Package estate contains estate plan use cases.
package estate

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListNeedingReviewInput represents the input for listing plans due for review.
type ListNeedingReviewInput struct {
	UserID uuid.UUID
}

// ListNeedingReviewOutput represents the output of listing plans due for review.
type ListNeedingReviewOutput struct {
	Plans []*entity.EstatePlan
}

// ListNeedingReviewUseCase lists estate plans whose next review date has
// arrived, scoped to the requesting user.
type ListNeedingReviewUseCase struct {
	estateRepo adapter.EstatePlanRepository
	clock      adapter.Clock
}

// NewListNeedingReviewUseCase creates a new ListNeedingReviewUseCase instance.
func NewListNeedingReviewUseCase(estateRepo adapter.EstatePlanRepository, clock adapter.Clock) *ListNeedingReviewUseCase {
	return &ListNeedingReviewUseCase{
		estateRepo: estateRepo,
		clock:      clock,
	}
}

// Execute lists the user's estate plans that are due for review.
func (uc *ListNeedingReviewUseCase) Execute(ctx context.Context, input ListNeedingReviewInput) (*ListNeedingReviewOutput, error) {
	plans, err := uc.estateRepo.FindNeedingReview(ctx, uc.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to list plans needing review: %w", err)
	}

	owned := make([]*entity.EstatePlan, 0, len(plans))
	for _, p := range plans {
		if p.UserID == input.UserID {
			owned = append(owned, p)
		}
	}

	return &ListNeedingReviewOutput{Plans: owned}, nil
}
