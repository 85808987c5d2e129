// Package tax contains tax record use cases.
package tax

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/entity"
)

// ListTaxRecordsInput represents the input for listing tax records.
type ListTaxRecordsInput struct {
	UserID uuid.UUID
}

// ListTaxRecordsOutput represents the output of listing tax records.
type ListTaxRecordsOutput struct {
	Records []*entity.TaxRecord
}

// ListTaxRecordsUseCase handles listing tax records logic.
type ListTaxRecordsUseCase struct {
	taxRepo adapter.TaxRecordRepository
}

// NewListTaxRecordsUseCase creates a new ListTaxRecordsUseCase instance.
func NewListTaxRecordsUseCase(taxRepo adapter.TaxRecordRepository) *ListTaxRecordsUseCase {
	return &ListTaxRecordsUseCase{
		taxRepo: taxRepo,
	}
}

// Execute performs the tax record listing.
func (uc *ListTaxRecordsUseCase) Execute(ctx context.Context, input ListTaxRecordsInput) (*ListTaxRecordsOutput, error) {
	records, err := uc.taxRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax records: %w", err)
	}

	return &ListTaxRecordsOutput{Records: records}, nil
}
