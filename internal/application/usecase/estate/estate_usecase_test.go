package estate

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type fakeEstateRepo struct {
	plans map[uuid.UUID]*entity.EstatePlan
}

func newFakeEstateRepo() *fakeEstateRepo {
	return &fakeEstateRepo{plans: make(map[uuid.UUID]*entity.EstatePlan)}
}

func (r *fakeEstateRepo) Create(_ context.Context, p *entity.EstatePlan) error {
	r.plans[p.ID] = p
	return nil
}

func (r *fakeEstateRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.EstatePlan, error) {
	p, ok := r.plans[id]
	if !ok {
		return nil, domainerror.ErrEstatePlanNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeEstateRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.EstatePlan, error) {
	var out []*entity.EstatePlan
	for _, p := range r.plans {
		if p.UserID == userID {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeEstateRepo) Update(_ context.Context, p *entity.EstatePlan) error {
	if _, ok := r.plans[p.ID]; !ok {
		return domainerror.ErrEstatePlanNotFound
	}
	copied := *p
	r.plans[p.ID] = &copied
	return nil
}

func (r *fakeEstateRepo) FindNeedingReview(_ context.Context, now time.Time) ([]*entity.EstatePlan, error) {
	var out []*entity.EstatePlan
	for _, p := range r.plans {
		if p.Status != entity.EstatePlanStatusDraft && p.NextReviewDate != nil && !p.NextReviewDate.After(now) {
			copied := *p
			out = append(out, &copied)
		}
	}
	return out, nil
}

var testNow = time.Date(2024, time.April, 1, 10, 0, 0, 0, time.UTC)

func TestCreateEstatePlan(t *testing.T) {
	t.Run("creates a draft plan with derived totals and review date", func(t *testing.T) {
		repo := newFakeEstateRepo()
		uc := NewCreateEstatePlanUseCase(repo, fixedClock{testNow})

		out, err := uc.Execute(context.Background(), CreateEstatePlanInput{
			UserID: uuid.New(),
			Name:   "Family will",
			Type:   entity.EstatePlanTypeWill,
			Assets: []entity.Asset{
				{Type: entity.AssetTypeRealEstate, Description: "House", EstimatedValue: decimal.NewFromInt(350000)},
				{Type: entity.AssetTypeBankAccount, Description: "Savings", EstimatedValue: decimal.NewFromInt(50000)},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		p := out.Plan
		if p.Status != entity.EstatePlanStatusDraft {
			t.Errorf("expected status draft, got %s", p.Status)
		}
		if !p.TotalEstateValue.Equal(decimal.NewFromInt(400000)) {
			t.Errorf("expected total estate value 400000, got %s", p.TotalEstateValue)
		}
		wantReview := testNow.AddDate(1, 0, 0)
		if p.NextReviewDate == nil || !p.NextReviewDate.Equal(wantReview) {
			t.Errorf("expected next review date %v, got %v", wantReview, p.NextReviewDate)
		}
		for _, a := range p.Assets {
			if a.ID == uuid.Nil {
				t.Error("expected asset IDs to be assigned")
			}
		}
	})

	t.Run("rejects empty name", func(t *testing.T) {
		uc := NewCreateEstatePlanUseCase(newFakeEstateRepo(), fixedClock{testNow})
		_, err := uc.Execute(context.Background(), CreateEstatePlanInput{
			UserID: uuid.New(),
			Name:   " ",
			Type:   entity.EstatePlanTypeWill,
		})
		if !errors.Is(err, domainerror.ErrEmptyEstatePlanName) {
			t.Errorf("expected ErrEmptyEstatePlanName, got %v", err)
		}
	})

	t.Run("rejects unknown plan type", func(t *testing.T) {
		uc := NewCreateEstatePlanUseCase(newFakeEstateRepo(), fixedClock{testNow})
		_, err := uc.Execute(context.Background(), CreateEstatePlanInput{
			UserID: uuid.New(),
			Name:   "Plan",
			Type:   entity.EstatePlanType("codicil"),
		})
		if !errors.Is(err, domainerror.ErrInvalidEstatePlanType) {
			t.Errorf("expected ErrInvalidEstatePlanType, got %v", err)
		}
	})

	t.Run("rejects negative asset value", func(t *testing.T) {
		uc := NewCreateEstatePlanUseCase(newFakeEstateRepo(), fixedClock{testNow})
		_, err := uc.Execute(context.Background(), CreateEstatePlanInput{
			UserID: uuid.New(),
			Name:   "Plan",
			Type:   entity.EstatePlanTypeWill,
			Assets: []entity.Asset{
				{Type: entity.AssetTypeInvestment, EstimatedValue: decimal.NewFromInt(-1)},
			},
		})
		if !errors.Is(err, domainerror.ErrInvalidAssetValue) {
			t.Errorf("expected ErrInvalidAssetValue, got %v", err)
		}
	})

	t.Run("rejects out-of-range beneficiary percentage", func(t *testing.T) {
		uc := NewCreateEstatePlanUseCase(newFakeEstateRepo(), fixedClock{testNow})
		_, err := uc.Execute(context.Background(), CreateEstatePlanInput{
			UserID: uuid.New(),
			Name:   "Plan",
			Type:   entity.EstatePlanTypeWill,
			Beneficiaries: []entity.Beneficiary{
				{Name: "Alex", Relationship: entity.RelationshipChild, Percentage: 120},
			},
		})
		if !errors.Is(err, domainerror.ErrInvalidBeneficiaryPercentage) {
			t.Errorf("expected ErrInvalidBeneficiaryPercentage, got %v", err)
		}
	})
}

func TestGetEstatePlan(t *testing.T) {
	t.Run("returns not found for unknown id", func(t *testing.T) {
		uc := NewGetEstatePlanUseCase(newFakeEstateRepo())
		_, err := uc.Execute(context.Background(), GetEstatePlanInput{PlanID: uuid.New(), UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrEstatePlanNotFound) {
			t.Errorf("expected ErrEstatePlanNotFound, got %v", err)
		}
	})

	t.Run("rejects access by another user", func(t *testing.T) {
		repo := newFakeEstateRepo()
		p := entity.NewEstatePlan(uuid.New(), "Plan", entity.EstatePlanTypeTrust, testNow)
		repo.plans[p.ID] = p

		uc := NewGetEstatePlanUseCase(repo)
		_, err := uc.Execute(context.Background(), GetEstatePlanInput{PlanID: p.ID, UserID: uuid.New()})
		if !errors.Is(err, domainerror.ErrUnauthorizedEstateAccess) {
			t.Errorf("expected ErrUnauthorizedEstateAccess, got %v", err)
		}
	})
}

func TestUpdateEstatePlan(t *testing.T) {
	t.Run("replacing assets rederives the total value", func(t *testing.T) {
		repo := newFakeEstateRepo()
		userID := uuid.New()
		p := entity.NewEstatePlan(userID, "Plan", entity.EstatePlanTypeWill, testNow)
		p.Assets = []entity.Asset{{ID: uuid.New(), Type: entity.AssetTypeBankAccount, EstimatedValue: decimal.NewFromInt(10000)}}
		p.TotalEstateValue = decimal.NewFromInt(10000)
		repo.plans[p.ID] = p

		uc := NewUpdateEstatePlanUseCase(repo, fixedClock{testNow})
		assets := []entity.Asset{
			{Type: entity.AssetTypeBankAccount, EstimatedValue: decimal.NewFromInt(10000)},
			{Type: entity.AssetTypeInvestment, EstimatedValue: decimal.NewFromInt(25000)},
		}
		out, err := uc.Execute(context.Background(), UpdateEstatePlanInput{
			PlanID: p.ID,
			UserID: userID,
			Assets: &assets,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Plan.TotalEstateValue.Equal(decimal.NewFromInt(35000)) {
			t.Errorf("expected total estate value 35000, got %s", out.Plan.TotalEstateValue)
		}
	})

	t.Run("mark reviewed stamps dates and clears needs_update", func(t *testing.T) {
		repo := newFakeEstateRepo()
		userID := uuid.New()
		p := entity.NewEstatePlan(userID, "Plan", entity.EstatePlanTypeWill, testNow.AddDate(-2, 0, 0))
		p.Status = entity.EstatePlanStatusNeedsUpdate
		overdue := testNow.AddDate(-1, 0, 0)
		p.NextReviewDate = &overdue
		repo.plans[p.ID] = p

		uc := NewUpdateEstatePlanUseCase(repo, fixedClock{testNow})
		out, err := uc.Execute(context.Background(), UpdateEstatePlanInput{
			PlanID:       p.ID,
			UserID:       userID,
			MarkReviewed: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Plan.LastReviewDate == nil || !out.Plan.LastReviewDate.Equal(testNow) {
			t.Errorf("expected last review date %v, got %v", testNow, out.Plan.LastReviewDate)
		}
		wantNext := testNow.AddDate(1, 0, 0)
		if out.Plan.NextReviewDate == nil || !out.Plan.NextReviewDate.Equal(wantNext) {
			t.Errorf("expected next review date %v, got %v", wantNext, out.Plan.NextReviewDate)
		}
		if out.Plan.Status != entity.EstatePlanStatusCompleted {
			t.Errorf("expected status completed after review, got %s", out.Plan.Status)
		}
	})

	t.Run("rejects notes over the length limit", func(t *testing.T) {
		repo := newFakeEstateRepo()
		userID := uuid.New()
		p := entity.NewEstatePlan(userID, "Plan", entity.EstatePlanTypeWill, testNow)
		repo.plans[p.ID] = p

		uc := NewUpdateEstatePlanUseCase(repo, fixedClock{testNow})
		long := string(make([]byte, entity.MaxEstateNotesLength+1))
		_, err := uc.Execute(context.Background(), UpdateEstatePlanInput{
			PlanID: p.ID,
			UserID: userID,
			Notes:  &long,
		})
		if !errors.Is(err, domainerror.ErrEstateNotesTooLong) {
			t.Errorf("expected ErrEstateNotesTooLong, got %v", err)
		}
	})
}

func TestListNeedingReview(t *testing.T) {
	repo := newFakeEstateRepo()
	userID := uuid.New()

	overdue := testNow.AddDate(0, -1, 0)
	due := entity.NewEstatePlan(userID, "Due", entity.EstatePlanTypeWill, testNow.AddDate(-2, 0, 0))
	due.Status = entity.EstatePlanStatusCompleted
	due.NextReviewDate = &overdue

	future := testNow.AddDate(0, 6, 0)
	notDue := entity.NewEstatePlan(userID, "Not due", entity.EstatePlanTypeTrust, testNow)
	notDue.Status = entity.EstatePlanStatusCompleted
	notDue.NextReviewDate = &future

	draft := entity.NewEstatePlan(userID, "Draft", entity.EstatePlanTypeWill, testNow.AddDate(-2, 0, 0))
	draft.NextReviewDate = &overdue

	repo.plans[due.ID] = due
	repo.plans[notDue.ID] = notDue
	repo.plans[draft.ID] = draft

	uc := NewListNeedingReviewUseCase(repo, fixedClock{testNow})
	out, err := uc.Execute(context.Background(), ListNeedingReviewInput{UserID: userID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.Plans) != 1 || out.Plans[0].Name != "Due" {
		t.Errorf("expected only the overdue completed plan, got %d results", len(out.Plans))
	}
}
