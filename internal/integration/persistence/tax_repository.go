// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
	"github.com/finance-planner/backend/internal/integration/persistence/model"
)

// taxRecordRepository implements the adapter.TaxRecordRepository interface.
type taxRecordRepository struct {
	db *gorm.DB
}

// NewTaxRecordRepository creates a new tax record repository instance.
func NewTaxRecordRepository(db *gorm.DB) adapter.TaxRecordRepository {
	return &taxRecordRepository{
		db: db,
	}
}

// Create creates a new tax record in the database.
func (r *taxRecordRepository) Create(ctx context.Context, record *entity.TaxRecord) error {
	recordModel := model.TaxRecordFromEntity(record)
	result := r.db.WithContext(ctx).Create(recordModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a tax record with its documents by ID.
func (r *taxRecordRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TaxRecord, error) {
	var recordModel model.TaxRecordModel
	result := r.db.WithContext(ctx).
		Preload("Documents").
		Where("id = ?", id).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaxRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// FindByUserID retrieves all tax records for a given user, newest year first.
func (r *taxRecordRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.TaxRecord, error) {
	var recordModels []model.TaxRecordModel
	result := r.db.WithContext(ctx).
		Preload("Documents").
		Where("user_id = ?", userID).
		Order("tax_year DESC").
		Find(&recordModels)
	if result.Error != nil {
		return nil, result.Error
	}

	records := make([]*entity.TaxRecord, len(recordModels))
	for i := range recordModels {
		records[i] = recordModels[i].ToEntity()
	}
	return records, nil
}

// FindByUserAndYear retrieves a user's tax record for a specific year.
func (r *taxRecordRepository) FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (*entity.TaxRecord, error) {
	var recordModel model.TaxRecordModel
	result := r.db.WithContext(ctx).
		Preload("Documents").
		Where("user_id = ? AND tax_year = ?", userID, year).
		First(&recordModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaxRecordNotFound
		}
		return nil, result.Error
	}
	return recordModel.ToEntity(), nil
}

// Update persists a tax record and its documents as one atomic write.
func (r *taxRecordRepository) Update(ctx context.Context, record *entity.TaxRecord) error {
	recordModel := model.TaxRecordFromEntity(record)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Documents").Save(recordModel).Error; err != nil {
			return err
		}
		// Replace the document list wholesale; attachments are few.
		if err := tx.Where("tax_record_id = ?", record.ID).Delete(&model.TaxDocumentModel{}).Error; err != nil {
			return err
		}
		if len(recordModel.Documents) > 0 {
			if err := tx.Create(&recordModel.Documents).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ExistsByUserAndYear checks whether a record exists for the given user and year.
func (r *taxRecordRepository) ExistsByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.TaxRecordModel{}).
		Where("user_id = ? AND tax_year = ?", userID, year).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
