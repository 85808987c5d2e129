// Package tax contains tax record use cases.
package tax

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/derivation"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// UpdateTaxRecordInput represents the input for tax record update. Nil
// fields are left unchanged; derived fields are always recomputed.
type UpdateTaxRecordInput struct {
	RecordID     uuid.UUID
	UserID       uuid.UUID
	FilingStatus *entity.FilingStatus
	Income       *entity.IncomeSources
	Deductions   *entity.Deductions
	TaxOwed      *decimal.Decimal
	TaxPaid      *decimal.Decimal
	Status       *entity.TaxRecordStatus
	Notes        *string
	AddDocument  *entity.TaxDocument
}

// UpdateTaxRecordOutput represents the output of tax record update.
type UpdateTaxRecordOutput struct {
	Record *entity.TaxRecord
}

// UpdateTaxRecordUseCase handles tax record update logic.
type UpdateTaxRecordUseCase struct {
	taxRepo adapter.TaxRecordRepository
	clock   adapter.Clock
}

// NewUpdateTaxRecordUseCase creates a new UpdateTaxRecordUseCase instance.
func NewUpdateTaxRecordUseCase(taxRepo adapter.TaxRecordRepository, clock adapter.Clock) *UpdateTaxRecordUseCase {
	return &UpdateTaxRecordUseCase{
		taxRepo: taxRepo,
		clock:   clock,
	}
}

// Execute performs the tax record update: load, merge, validate, derive, persist.
func (uc *UpdateTaxRecordUseCase) Execute(ctx context.Context, input UpdateTaxRecordInput) (*UpdateTaxRecordOutput, error) {
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
			"not authorized to modify this tax record",
			domainerror.ErrUnauthorizedTaxRecordAccess,
		)
	}

	now := uc.clock.Now()

	if input.FilingStatus != nil {
		if !entity.IsValidFilingStatus(*input.FilingStatus) {
			return nil, domainerror.NewTaxError(
				domainerror.ErrCodeInvalidFilingStatus,
				"filing status is not a known variant",
				domainerror.ErrInvalidFilingStatus,
			)
		}
		record.FilingStatus = *input.FilingStatus
	}

	if input.Income != nil {
		if err := validateIncomeSources(*input.Income); err != nil {
			return nil, err
		}
		record.Income = *input.Income
	}

	if input.Deductions != nil {
		record.Deductions = *input.Deductions
	}

	if input.TaxOwed != nil {
		record.TaxOwed = *input.TaxOwed
	}

	if input.TaxPaid != nil {
		record.TaxPaid = *input.TaxPaid
	}

	if input.Status != nil {
		if !entity.IsValidTaxRecordStatus(*input.Status) {
			return nil, domainerror.NewTaxError(
				domainerror.ErrCodeInvalidTaxRecordStatus,
				"record status is not a known variant",
				domainerror.ErrInvalidTaxRecordStatus,
			)
		}
		record.Status = *input.Status
	}

	if input.Notes != nil {
		if err := validateNotes(*input.Notes); err != nil {
			return nil, err
		}
		record.Notes = *input.Notes
	}

	if input.AddDocument != nil {
		doc := *input.AddDocument
		if doc.ID == uuid.Nil {
			doc.ID = uuid.New()
		}
		doc.UploadedAt = now
		record.Documents = append(record.Documents, doc)
	}

	derivation.DeriveTax(record)
	record.UpdatedAt = now

	if err := uc.taxRepo.Update(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to update tax record: %w", err)
	}

	return &UpdateTaxRecordOutput{Record: record}, nil
}
