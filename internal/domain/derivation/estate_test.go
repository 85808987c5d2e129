package derivation

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

func TestDeriveEstate_TotalValue(t *testing.T) {
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	plan := entity.NewEstatePlan(uuid.New(), "Family will", entity.EstatePlanTypeWill, now)
	plan.Assets = []entity.Asset{
		{ID: uuid.New(), Type: entity.AssetTypeRealEstate, EstimatedValue: decimal.NewFromInt(100000)},
		{ID: uuid.New(), Type: entity.AssetTypeInvestment, EstimatedValue: decimal.NewFromInt(50000)},
		{ID: uuid.New(), Type: entity.AssetTypeBankAccount, EstimatedValue: decimal.NewFromInt(25000)},
	}

	DeriveEstate(plan, now)

	if !plan.TotalEstateValue.Equal(decimal.NewFromInt(175000)) {
		t.Errorf("expected total 175000, got %s", plan.TotalEstateValue)
	}
}

func TestDeriveEstate_EmptyAssets(t *testing.T) {
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	plan := entity.NewEstatePlan(uuid.New(), "Empty", entity.EstatePlanTypeTrust, now)

	DeriveEstate(plan, now)

	if !plan.TotalEstateValue.Equal(decimal.Zero) {
		t.Errorf("expected zero total, got %s", plan.TotalEstateValue)
	}
}

func TestDeriveEstate_ReviewDateDefaulting(t *testing.T) {
	now := time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)
	plan := entity.NewEstatePlan(uuid.New(), "Family will", entity.EstatePlanTypeWill, now)

	DeriveEstate(plan, now)

	want := time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)
	if plan.NextReviewDate == nil || !plan.NextReviewDate.Equal(want) {
		t.Fatalf("expected next review %s, got %v", want, plan.NextReviewDate)
	}

	// Defaulting happens exactly once; a later derivation keeps the date.
	later := now.AddDate(0, 8, 0)
	DeriveEstate(plan, later)
	if !plan.NextReviewDate.Equal(want) {
		t.Errorf("next review date changed on re-derivation: %s", plan.NextReviewDate)
	}
}

func TestDeriveEstate_Idempotent(t *testing.T) {
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	plan := entity.NewEstatePlan(uuid.New(), "Family will", entity.EstatePlanTypeWill, now)
	plan.Assets = []entity.Asset{
		{ID: uuid.New(), Type: entity.AssetTypeBusiness, EstimatedValue: decimal.NewFromInt(40000)},
	}

	DeriveEstate(plan, now)
	first := *plan
	DeriveEstate(plan, now)

	if !plan.TotalEstateValue.Equal(first.TotalEstateValue) {
		t.Error("total estate value changed on second derivation")
	}
	if !plan.NextReviewDate.Equal(*first.NextReviewDate) {
		t.Error("next review date changed on second derivation")
	}
}

func TestNeedsReview(t *testing.T) {
	now := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	plan := entity.NewEstatePlan(uuid.New(), "Family will", entity.EstatePlanTypeWill, now)

	if NeedsReview(plan, now) {
		t.Error("plan without a review date never needs review")
	}

	past := now.AddDate(0, -1, 0)
	plan.NextReviewDate = &past
	if !NeedsReview(plan, now) {
		t.Error("expected review needed for past date")
	}

	plan.NextReviewDate = &now
	if !NeedsReview(plan, now) {
		t.Error("expected review needed when date equals now")
	}

	future := now.AddDate(0, 1, 0)
	plan.NextReviewDate = &future
	if NeedsReview(plan, now) {
		t.Error("future review date does not need review")
	}
}
