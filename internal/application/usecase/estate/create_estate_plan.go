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
)

// CreateEstatePlanInput represents the input for estate plan creation.
type CreateEstatePlanInput struct {
	UserID            uuid.UUID
	Name              string
	Type              entity.EstatePlanType
	Assets            []entity.Asset
	Beneficiaries     []entity.Beneficiary
	Executor          entity.ContactInfo
	AlternateExecutor entity.ContactInfo
	Guardians         []entity.GuardianDesignation
	Documents         []entity.EstateDocument
	Attorney          entity.ContactInfo
	Notes             string
}

// CreateEstatePlanOutput represents the output of estate plan creation.
type CreateEstatePlanOutput struct {
	Plan *entity.EstatePlan
}

// CreateEstatePlanUseCase handles estate plan creation logic.
type CreateEstatePlanUseCase struct {
	estateRepo adapter.EstatePlanRepository
	clock      adapter.Clock
}

// NewCreateEstatePlanUseCase creates a new CreateEstatePlanUseCase instance.
func NewCreateEstatePlanUseCase(estateRepo adapter.EstatePlanRepository, clock adapter.Clock) *CreateEstatePlanUseCase {
	return &CreateEstatePlanUseCase{
		estateRepo: estateRepo,
		clock:      clock,
	}
}

// Execute performs the estate plan creation: validate, derive, persist.
func (uc *CreateEstatePlanUseCase) Execute(ctx context.Context, input CreateEstatePlanInput) (*CreateEstatePlanOutput, error) {
	if err := validatePlanName(input.Name); err != nil {
		return nil, err
	}
	if err := validatePlanType(input.Type); err != nil {
		return nil, err
	}
	if err := validateAssets(input.Assets); err != nil {
		return nil, err
	}
	if err := validateBeneficiaries(input.Beneficiaries); err != nil {
		return nil, err
	}
	if err := validateDocuments(input.Documents); err != nil {
		return nil, err
	}
	if err := validateNotes(input.Notes); err != nil {
		return nil, err
	}

	now := uc.clock.Now()

	plan := entity.NewEstatePlan(input.UserID, input.Name, input.Type, now)
	plan.Assets = assignAssetIDs(input.Assets)
	plan.Beneficiaries = assignBeneficiaryIDs(input.Beneficiaries)
	plan.Executor = input.Executor
	plan.AlternateExecutor = input.AlternateExecutor
	plan.Guardians = assignGuardianIDs(input.Guardians)
	plan.Documents = assignDocumentIDs(input.Documents, now)
	plan.Attorney = input.Attorney
	plan.Notes = input.Notes

	derivation.DeriveEstate(plan, now)

	if err := uc.estateRepo.Create(ctx, plan); err != nil {
		return nil, fmt.Errorf("failed to create estate plan: %w", err)
	}

	return &CreateEstatePlanOutput{Plan: plan}, nil
}

func assignAssetIDs(assets []entity.Asset) []entity.Asset {
	for i := range assets {
		if assets[i].ID == uuid.Nil {
			assets[i].ID = uuid.New()
		}
	}
	return assets
}

func assignBeneficiaryIDs(beneficiaries []entity.Beneficiary) []entity.Beneficiary {
	for i := range beneficiaries {
		if beneficiaries[i].ID == uuid.Nil {
			beneficiaries[i].ID = uuid.New()
		}
	}
	return beneficiaries
}

func assignGuardianIDs(guardians []entity.GuardianDesignation) []entity.GuardianDesignation {
	for i := range guardians {
		if guardians[i].ID == uuid.Nil {
			guardians[i].ID = uuid.New()
		}
	}
	return guardians
}

func assignDocumentIDs(documents []entity.EstateDocument, now time.Time) []entity.EstateDocument {
	for i := range documents {
		if documents[i].ID == uuid.Nil {
			documents[i].ID = uuid.New()
		}
		if documents[i].CreatedAt.IsZero() {
			documents[i].CreatedAt = now
		}
		documents[i].UpdatedAt = now
	}
	return documents
}
