// Package tax contains tax record use cases.
package tax

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// GetTaxRecordInput represents the input for retrieving a tax record.
type GetTaxRecordInput struct {
	RecordID uuid.UUID
	UserID   uuid.UUID
}

// GetTaxRecordOutput represents the output of retrieving a tax record.
type GetTaxRecordOutput struct {
	Record *entity.TaxRecord
}

// GetTaxRecordUseCase handles tax record retrieval logic.
type GetTaxRecordUseCase struct {
	taxRepo adapter.TaxRecordRepository
}

// NewGetTaxRecordUseCase creates a new GetTaxRecordUseCase instance.
func NewGetTaxRecordUseCase(taxRepo adapter.TaxRecordRepository) *GetTaxRecordUseCase {
	return &GetTaxRecordUseCase{
		taxRepo: taxRepo,
	}
}

// Execute performs the tax record retrieval.
func (uc *GetTaxRecordUseCase) Execute(ctx context.Context, input GetTaxRecordInput) (*GetTaxRecordOutput, error) {
	record, err := uc.taxRepo.FindByID(ctx, input.RecordID)
	if err != nil {
		if errors.Is(err, domainerror.ErrTaxRecordNotFound) {
			return nil, domainerror.NewTaxError(
				domainerror.ErrCodeTaxRecordNotFound,
				"tax record not found",
				domainerror.ErrTaxRecordNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find tax record: %w", err)
	}

	if record.UserID != input.UserID {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeUnauthorizedTaxRecord,
			"not authorized to access this tax record",
			domainerror.ErrUnauthorizedTaxRecordAccess,
		)
	}

	return &GetTaxRecordOutput{Record: record}, nil
}
