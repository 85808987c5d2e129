// Package estate contains estate plan use cases.
package estate

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/derivation"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// UpdateEstatePlanInput represents the input for estate plan update. Nil
// fields are left unchanged. The total estate value cannot be patched; it is
// rederived from the asset list on every save.
type UpdateEstatePlanInput struct {
	PlanID            uuid.UUID
	UserID            uuid.UUID
	Name              *string
	Type              *entity.EstatePlanType
	Assets            *[]entity.Asset
	Beneficiaries     *[]entity.Beneficiary
	Executor          *entity.ContactInfo
	AlternateExecutor *entity.ContactInfo
	Guardians         *[]entity.GuardianDesignation
	Documents         *[]entity.EstateDocument
	Status            *entity.EstatePlanStatus
	Attorney          *entity.ContactInfo
	Notes             *string
	MarkReviewed      bool
}

// UpdateEstatePlanOutput represents the output of estate plan update.
type UpdateEstatePlanOutput struct {
	Plan *entity.EstatePlan
}

// UpdateEstatePlanUseCase handles estate plan update logic.
type UpdateEstatePlanUseCase struct {
	estateRepo adapter.EstatePlanRepository
	clock      adapter.Clock
}

// NewUpdateEstatePlanUseCase creates a new UpdateEstatePlanUseCase instance.
func NewUpdateEstatePlanUseCase(estateRepo adapter.EstatePlanRepository, clock adapter.Clock) *UpdateEstatePlanUseCase {
	return &UpdateEstatePlanUseCase{
		estateRepo: estateRepo,
		clock:      clock,
	}
}

// Execute performs the estate plan update: load, merge, validate, derive, persist.
func (uc *UpdateEstatePlanUseCase) Execute(ctx context.Context, input UpdateEstatePlanInput) (*UpdateEstatePlanOutput, error) {
	plan, err := findOwnedPlan(ctx, uc.estateRepo, input.PlanID, input.UserID)
	if err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	if input.Name != nil {
		if err := validatePlanName(*input.Name); err != nil {
			return nil, err
		}
		plan.Name = *input.Name
	}
	if input.Type != nil {
		if err := validatePlanType(*input.Type); err != nil {
			return nil, err
		}
		plan.Type = *input.Type
	}
	if input.Assets != nil {
		if err := validateAssets(*input.Assets); err != nil {
			return nil, err
		}
		plan.Assets = assignAssetIDs(*input.Assets)
	}
	if input.Beneficiaries != nil {
		if err := validateBeneficiaries(*input.Beneficiaries); err != nil {
			return nil, err
		}
		plan.Beneficiaries = assignBeneficiaryIDs(*input.Beneficiaries)
	}
	if input.Executor != nil {
		plan.Executor = *input.Executor
	}
	if input.AlternateExecutor != nil {
		plan.AlternateExecutor = *input.AlternateExecutor
	}
	if input.Guardians != nil {
		plan.Guardians = assignGuardianIDs(*input.Guardians)
	}
	if input.Documents != nil {
		if err := validateDocuments(*input.Documents); err != nil {
			return nil, err
		}
		plan.Documents = assignDocumentIDs(*input.Documents, now)
	}
	if input.Status != nil {
		if !entity.IsValidEstatePlanStatus(*input.Status) {
			return nil, domainerror.NewEstateError(
				domainerror.ErrCodeInvalidEstatePlanStatus,
				"plan status is not a known variant",
				domainerror.ErrInvalidEstatePlanStatus,
			)
		}
		plan.Status = *input.Status
	}
	if input.Attorney != nil {
		plan.Attorney = *input.Attorney
	}
	if input.Notes != nil {
		if err := validateNotes(*input.Notes); err != nil {
			return nil, err
		}
		plan.Notes = *input.Notes
	}

	if input.MarkReviewed {
		markReviewed(plan, now)
	}

	derivation.DeriveEstate(plan, now)
	plan.UpdatedAt = now

	if err := uc.estateRepo.Update(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to update estate plan: %w", err)
	}

	return &UpdateEstatePlanOutput{Plan: plan}, nil
}

// markReviewed stamps the review dates and schedules the next annual review.
func markReviewed(plan *entity.EstatePlan, now time.Time) {
	reviewed := now
	next := now.AddDate(1, 0, 0)
	plan.LastReviewDate = &reviewed
	plan.NextReviewDate = &next
	if plan.Status == entity.EstatePlanStatusNeedsUpdate {
		plan.Status = entity.EstatePlanStatusCompleted
	}
}
