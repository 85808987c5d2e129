// Package tax contains tax record use cases.
package tax

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/application/adapter"
	"github.com/finance-planner/backend/internal/domain/derivation"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// CreateTaxRecordInput represents the input for tax record creation.
type CreateTaxRecordInput struct {
	UserID       uuid.UUID
	TaxYear      int
	FilingStatus entity.FilingStatus
	Income       entity.IncomeSources
	Deductions   entity.Deductions
	TaxOwed      decimal.Decimal
	TaxPaid      decimal.Decimal
	Notes        string
}

// CreateTaxRecordOutput represents the output of tax record creation.
type CreateTaxRecordOutput struct {
	Record *entity.TaxRecord
}

// CreateTaxRecordUseCase handles tax record creation logic.
type CreateTaxRecordUseCase struct {
	taxRepo adapter.TaxRecordRepository
	clock   adapter.Clock
}

// NewCreateTaxRecordUseCase creates a new CreateTaxRecordUseCase instance.
func NewCreateTaxRecordUseCase(taxRepo adapter.TaxRecordRepository, clock adapter.Clock) *CreateTaxRecordUseCase {
	return &CreateTaxRecordUseCase{
		taxRepo: taxRepo,
		clock:   clock,
	}
}

// Execute performs the tax record creation: validate, derive, persist.
func (uc *CreateTaxRecordUseCase) Execute(ctx context.Context, input CreateTaxRecordInput) (*CreateTaxRecordOutput, error) {
	now := uc.clock.Now()

	if err := validateTaxYear(input.TaxYear, now); err != nil {
		return nil, err
	}
	if !entity.IsValidFilingStatus(input.FilingStatus) {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeInvalidFilingStatus,
			"filing status is not a known variant",
			domainerror.ErrInvalidFilingStatus,
		)
	}
	if err := validateIncomeSources(input.Income); err != nil {
		return nil, err
	}
	if err := validateNotes(input.Notes); err != nil {
		return nil, err
	}

	exists, err := uc.taxRepo.ExistsByUserAndYear(ctx, input.UserID, input.TaxYear)
	if err != nil {
		return nil, fmt.Errorf("failed to check tax record existence: %w", err)
	}
	if exists {
		return nil, domainerror.NewTaxError(
			domainerror.ErrCodeTaxRecordAlreadyExists,
			"a tax record already exists for this year",
			domainerror.ErrTaxRecordAlreadyExists,
		)
	}

	record := entity.NewTaxRecord(input.UserID, input.TaxYear, input.FilingStatus, now)
	record.Income = input.Income
	record.Deductions = input.Deductions
	record.TaxOwed = input.TaxOwed
	record.TaxPaid = input.TaxPaid
	record.Notes = input.Notes

	derivation.DeriveTax(record)

	if err := uc.taxRepo.Create(ctx, record); err != nil {
		return nil, fmt.Errorf("failed to create tax record: %w", err)
	}

	return &CreateTaxRecordOutput{Record: record}, nil
}
