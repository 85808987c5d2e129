// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// EstatePlanRepository defines the interface for estate plan persistence operations.
type EstatePlanRepository interface {
	// Create creates a new estate plan in the database.
	Create(ctx context.Context, plan *entity.EstatePlan) error

	// FindByID retrieves an estate plan with its assets, beneficiaries and
	// documents by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EstatePlan, error)

	// FindByUserID retrieves all estate plans for a given user.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.EstatePlan, error)

	// Update persists an estate plan and its sub-records as one atomic write.
	Update(ctx context.Context, plan *entity.EstatePlan) error

	// FindNeedingReview retrieves non-draft plans whose next review date
	// has arrived.
	FindNeedingReview(ctx context.Context, now time.Time) ([]*entity.EstatePlan, error)
}
