// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// TaxRecordRepository defines the interface for tax record persistence operations.
type TaxRecordRepository interface {
	// Create creates a new tax record in the database.
	Create(ctx context.Context, record *entity.TaxRecord) error

	// FindByID retrieves a tax record with its documents by ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TaxRecord, error)

	// FindByUserID retrieves all tax records for a given user, newest year first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.TaxRecord, error)

	// FindByUserAndYear retrieves a user's tax record for a specific year.
	FindByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (*entity.TaxRecord, error)

	// Update persists a tax record and its documents as one atomic write.
	Update(ctx context.Context, record *entity.TaxRecord) error

	// ExistsByUserAndYear checks whether a record exists for the given user and year.
	ExistsByUserAndYear(ctx context.Context, userID uuid.UUID, year int) (bool, error)
}
