// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// estatePlanRepository implements the adapter.EstatePlanRepository interface.
type estatePlanRepository struct {
	db *gorm.DB
}

// NewEstatePlanRepository creates a new estate plan repository instance.
func NewEstatePlanRepository(db *gorm.DB) adapter.EstatePlanRepository {
	return &estatePlanRepository{
		db: db,
	}
}

// Create creates a new estate plan in the database.
func (r *estatePlanRepository) Create(ctx context.Context, plan *entity.EstatePlan) error {
	planModel := model.EstatePlanFromEntity(plan)
	result := r.db.WithContext(ctx).Create(planModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an estate plan with its sub-records by ID.
func (r *estatePlanRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EstatePlan, error) {
	var planModel model.EstatePlanModel
	result := r.db.WithContext(ctx).
		Preload("Assets").
		Preload("Beneficiaries").
		Preload("Guardians").
		Preload("Documents").
		Where("id = ?", id).
		First(&planModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrEstatePlanNotFound
		}
		return nil, result.Error
	}
	return planModel.ToEntity(), nil
}

// FindByUserID retrieves all estate plans for a given user.
func (r *estatePlanRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.EstatePlan, error) {
	var planModels []model.EstatePlanModel
	result := r.db.WithContext(ctx).
		Preload("Assets").
		Preload("Beneficiaries").
		Preload("Guardians").
		Preload("Documents").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.EstatePlan, len(planModels))
	for i := range planModels {
		plans[i] = planModels[i].ToEntity()
	}
	return plans, nil
}

// Update persists an estate plan and its sub-records as one atomic write.
// Sub-record lists are replaced wholesale; the API treats them as documents
// of the plan rather than independently addressable rows.
func (r *estatePlanRepository) Update(ctx context.Context, plan *entity.EstatePlan) error {
	planModel := model.EstatePlanFromEntity(plan)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Assets", "Beneficiaries", "Guardians", "Documents").
			Save(planModel).Error; err != nil {
			return err
		}

		for _, del := range []interface{}{
			&model.AssetModel{},
			&model.BeneficiaryModel{},
			&model.GuardianModel{},
			&model.EstateDocumentModel{},
		} {
			if err := tx.Where("estate_plan_id = ?", plan.ID).Delete(del).Error; err != nil {
				return err
			}
		}

		if len(planModel.Assets) > 0 {
			if err := tx.Create(&planModel.Assets).Error; err != nil {
				return err
			}
		}
		if len(planModel.Beneficiaries) > 0 {
			if err := tx.Create(&planModel.Beneficiaries).Error; err != nil {
				return err
			}
		}
		if len(planModel.Guardians) > 0 {
			if err := tx.Create(&planModel.Guardians).Error; err != nil {
				return err
			}
		}
		if len(planModel.Documents) > 0 {
			if err := tx.Create(&planModel.Documents).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindNeedingReview retrieves non-draft plans whose next review date has arrived.
func (r *estatePlanRepository) FindNeedingReview(ctx context.Context, now time.Time) ([]*entity.EstatePlan, error) {
	var planModels []model.EstatePlanModel
	result := r.db.WithContext(ctx).
		Where("status <> ?", entity.EstatePlanStatusDraft).
		Where("next_review_date IS NOT NULL AND next_review_date <= ?", now).
		Find(&planModels)
	if result.Error != nil {
		return nil, result.Error
	}

	plans := make([]*entity.EstatePlan, len(planModels))
	for i := range planModels {
		plans[i] = planModels[i].ToEntity()
	}
	return plans, nil
}
