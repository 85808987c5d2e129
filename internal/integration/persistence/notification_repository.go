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

// notificationQueueRepository implements the adapter.NotificationQueueRepository interface.
type notificationQueueRepository struct {
	db *gorm.DB
}

// NewNotificationQueueRepository creates a new notification queue repository instance.
func NewNotificationQueueRepository(db *gorm.DB) adapter.NotificationQueueRepository {
	return &notificationQueueRepository{
		db: db,
	}
}

// Create adds a new notification job to the queue.
func (r *notificationQueueRepository) Create(ctx context.Context, job *entity.NotificationJob) error {
	jobModel := model.NotificationQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Create(jobModel)
	if result.Error != nil {
		return domainerror.NewNotificationError(
			domainerror.ErrCodeNotificationQueueFailed,
			"failed to create notification job",
			result.Error,
		)
	}
	return nil
}

// GetPendingJobs retrieves jobs ready to be processed.
func (r *notificationQueueRepository) GetPendingJobs(ctx context.Context, limit int) ([]*entity.NotificationJob, error) {
	var models []model.NotificationQueueModel

	result := r.db.WithContext(ctx).
		Where("status = ?", entity.NotificationStatusPending).
		Where("scheduled_at <= ?", time.Now().UTC()).
		Order("scheduled_at ASC").
		Limit(limit).
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.NotificationJob, len(models))
	for i := range models {
		jobs[i] = models[i].ToEntity()
	}

	return jobs, nil
}

// Update saves changes to a notification job.
func (r *notificationQueueRepository) Update(ctx context.Context, job *entity.NotificationJob) error {
	jobModel := model.NotificationQueueModelFromEntity(job)
	result := r.db.WithContext(ctx).Save(jobModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// GetByID retrieves a specific job by its ID.
func (r *notificationQueueRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.NotificationJob, error) {
	var jobModel model.NotificationQueueModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&jobModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrNotificationJobNotFound
		}
		return nil, result.Error
	}
	return jobModel.ToEntity(), nil
}

// GetByRecipient retrieves jobs for a specific email address.
func (r *notificationQueueRepository) GetByRecipient(ctx context.Context, email string) ([]*entity.NotificationJob, error) {
	var models []model.NotificationQueueModel
	result := r.db.WithContext(ctx).
		Where("recipient_email = ?", email).
		Order("created_at DESC").
		Find(&models)

	if result.Error != nil {
		return nil, result.Error
	}

	jobs := make([]*entity.NotificationJob, len(models))
	for i := range models {
		jobs[i] = models[i].ToEntity()
	}

	return jobs, nil
}
