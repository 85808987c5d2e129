// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FilingStatus represents the tax filing status of a record.
type FilingStatus string

const (
	FilingStatusSingle           FilingStatus = "single"
	FilingStatusMarriedJoint     FilingStatus = "married_filing_jointly"
	FilingStatusMarriedSeparate  FilingStatus = "married_filing_separately"
	FilingStatusHeadOfHousehold  FilingStatus = "head_of_household"
	FilingStatusQualifyingWidow  FilingStatus = "qualifying_widow"
)

// ValidFilingStatuses lists every accepted filing status.
var ValidFilingStatuses = []FilingStatus{
	FilingStatusSingle,
	FilingStatusMarriedJoint,
	FilingStatusMarriedSeparate,
	FilingStatusHeadOfHousehold,
	FilingStatusQualifyingWidow,
}

// TaxRecordStatus represents the processing state of a tax record.
type TaxRecordStatus string

const (
	TaxRecordStatusDraft     TaxRecordStatus = "draft"
	TaxRecordStatusFiled     TaxRecordStatus = "filed"
	TaxRecordStatusProcessed TaxRecordStatus = "processed"
	TaxRecordStatusAmended   TaxRecordStatus = "amended"
)

// ValidTaxRecordStatuses lists every accepted tax record status.
var ValidTaxRecordStatuses = []TaxRecordStatus{
	TaxRecordStatusDraft,
	TaxRecordStatusFiled,
	TaxRecordStatusProcessed,
	TaxRecordStatusAmended,
}

// MaxTaxNotesLength is the maximum length of the free-text notes field.
const MaxTaxNotesLength = 1000

// MinTaxYear is the earliest accepted tax year.
const MinTaxYear = 2000

// IncomeSources holds the raw income components of a tax record.
type IncomeSources struct {
	Wages          decimal.Decimal
	Dividends      decimal.Decimal
	CapitalGains   decimal.Decimal
	BusinessIncome decimal.Decimal
	OtherIncome    decimal.Decimal
}

// Deductions holds the raw deduction components of a tax record.
type Deductions struct {
	StandardDeduction decimal.Decimal
	ItemizedDeduction decimal.Decimal
	OtherDeductions   decimal.Decimal
}

// TaxDocument is an attachment on a tax record (a W-2, 1099, receipt scan).
type TaxDocument struct {
	ID         uuid.UUID
	Name       string
	Kind       string
	Location   string
	UploadedAt time.Time
}

// TaxRecord represents one user's tax filing for a single year.
// TotalIncome, TotalDeductions, TaxableIncome and RefundOrOwed are derived
// fields; they are recomputed before every save and never trusted from input.
type TaxRecord struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	TaxYear         int
	FilingStatus    FilingStatus
	Income          IncomeSources
	Deductions      Deductions
	TotalIncome     decimal.Decimal
	TotalDeductions decimal.Decimal
	TaxableIncome   decimal.Decimal
	TaxOwed         decimal.Decimal
	TaxPaid         decimal.Decimal
	RefundOrOwed    decimal.Decimal
	Status          TaxRecordStatus
	Documents       []TaxDocument
	Notes           string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	DeletedAt       *time.Time // Soft-delete support
}

// NewTaxRecord creates a new TaxRecord in draft state.
func NewTaxRecord(userID uuid.UUID, taxYear int, filingStatus FilingStatus, now time.Time) *TaxRecord {
	return &TaxRecord{
		ID:           uuid.New(),
		UserID:       userID,
		TaxYear:      taxYear,
		FilingStatus: filingStatus,
		Status:       TaxRecordStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// IsValidFilingStatus reports whether s is an accepted filing status.
func IsValidFilingStatus(s FilingStatus) bool {
	for _, valid := range ValidFilingStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsValidTaxRecordStatus reports whether s is an accepted record status.
func IsValidTaxRecordStatus(s TaxRecordStatus) bool {
	for _, valid := range ValidTaxRecordStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
