// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// IncomeSourcesRequest carries the raw income components of a tax record.
type IncomeSourcesRequest struct {
	Wages          float64 `json:"wages"`
	Dividends      float64 `json:"dividends"`
	CapitalGains   float64 `json:"capital_gains"`
	BusinessIncome float64 `json:"business_income"`
	OtherIncome    float64 `json:"other_income"`
}

// DeductionsRequest carries the raw deduction components of a tax record.
type DeductionsRequest struct {
	StandardDeduction float64 `json:"standard_deduction"`
	ItemizedDeduction float64 `json:"itemized_deduction"`
	OtherDeductions   float64 `json:"other_deductions"`
}

// CreateTaxRecordRequest represents the request body for tax record creation.
type CreateTaxRecordRequest struct {
	TaxYear      int                  `json:"tax_year" binding:"required"`
	FilingStatus string               `json:"filing_status"`
	Income       IncomeSourcesRequest `json:"income"`
	Deductions   DeductionsRequest    `json:"deductions"`
	TaxOwed      float64              `json:"tax_owed"`
	TaxPaid      float64              `json:"tax_paid"`
	Notes        string               `json:"notes"`
}

// TaxDocumentRequest represents a document attachment in a tax record update.
type TaxDocumentRequest struct {
	Name     string `json:"name" binding:"required"`
	Kind     string `json:"kind"`
	Location string `json:"location"`
}

// UpdateTaxRecordRequest represents the request body for tax record update.
// Absent fields leave the stored values untouched.
type UpdateTaxRecordRequest struct {
	FilingStatus *string               `json:"filing_status,omitempty"`
	Income       *IncomeSourcesRequest `json:"income,omitempty"`
	Deductions   *DeductionsRequest    `json:"deductions,omitempty"`
	TaxOwed      *float64              `json:"tax_owed,omitempty"`
	TaxPaid      *float64              `json:"tax_paid,omitempty"`
	Status       *string               `json:"status,omitempty"`
	Notes        *string               `json:"notes,omitempty"`
	AddDocument  *TaxDocumentRequest   `json:"add_document,omitempty"`
}

// TaxDocumentResponse represents a tax document in API responses.
type TaxDocumentResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	Location   string    `json:"location"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// TaxRecordResponse represents a tax record in API responses.
type TaxRecordResponse struct {
	ID              string                `json:"id"`
	TaxYear         int                   `json:"tax_year"`
	FilingStatus    string                `json:"filing_status"`
	Wages           string                `json:"wages"`
	Dividends       string                `json:"dividends"`
	CapitalGains    string                `json:"capital_gains"`
	BusinessIncome  string                `json:"business_income"`
	OtherIncome     string                `json:"other_income"`
	StandardDeduction string              `json:"standard_deduction"`
	ItemizedDeduction string              `json:"itemized_deduction"`
	OtherDeductions string                `json:"other_deductions"`
	TotalIncome     string                `json:"total_income"`
	TotalDeductions string                `json:"total_deductions"`
	TaxableIncome   string                `json:"taxable_income"`
	TaxOwed         string                `json:"tax_owed"`
	TaxPaid         string                `json:"tax_paid"`
	RefundOrOwed    string                `json:"refund_or_owed"`
	Status          string                `json:"status"`
	Documents       []TaxDocumentResponse `json:"documents"`
	Notes           string                `json:"notes,omitempty"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// TaxRecordListResponse represents a list of tax records.
type TaxRecordListResponse struct {
	Records []TaxRecordResponse `json:"records"`
	Total   int                 `json:"total"`
}

// ToIncomeSources converts an income request to the domain value.
func (r IncomeSourcesRequest) ToIncomeSources() entity.IncomeSources {
	return entity.IncomeSources{
		Wages:          decimal.NewFromFloat(r.Wages),
		Dividends:      decimal.NewFromFloat(r.Dividends),
		CapitalGains:   decimal.NewFromFloat(r.CapitalGains),
		BusinessIncome: decimal.NewFromFloat(r.BusinessIncome),
		OtherIncome:    decimal.NewFromFloat(r.OtherIncome),
	}
}

// ToDeductions converts a deductions request to the domain value.
func (r DeductionsRequest) ToDeductions() entity.Deductions {
	return entity.Deductions{
		StandardDeduction: decimal.NewFromFloat(r.StandardDeduction),
		ItemizedDeduction: decimal.NewFromFloat(r.ItemizedDeduction),
		OtherDeductions:   decimal.NewFromFloat(r.OtherDeductions),
	}
}

// ToTaxRecordResponse converts a domain TaxRecord entity to a response DTO.
func ToTaxRecordResponse(record *entity.TaxRecord) TaxRecordResponse {
	documents := make([]TaxDocumentResponse, 0, len(record.Documents))
	for _, doc := range record.Documents {
		documents = append(documents, TaxDocumentResponse{
			ID:         doc.ID.String(),
			Name:       doc.Name,
			Kind:       doc.Kind,
			Location:   doc.Location,
			UploadedAt: doc.UploadedAt,
		})
	}

	return TaxRecordResponse{
		ID:                record.ID.String(),
		TaxYear:           record.TaxYear,
		FilingStatus:      string(record.FilingStatus),
		Wages:             record.Income.Wages.String(),
		Dividends:         record.Income.Dividends.String(),
		CapitalGains:      record.Income.CapitalGains.String(),
		BusinessIncome:    record.Income.BusinessIncome.String(),
		OtherIncome:       record.Income.OtherIncome.String(),
		StandardDeduction: record.Deductions.StandardDeduction.String(),
		ItemizedDeduction: record.Deductions.ItemizedDeduction.String(),
		OtherDeductions:   record.Deductions.OtherDeductions.String(),
		TotalIncome:       record.TotalIncome.String(),
		TotalDeductions:   record.TotalDeductions.String(),
		TaxableIncome:     record.TaxableIncome.String(),
		TaxOwed:           record.TaxOwed.String(),
		TaxPaid:           record.TaxPaid.String(),
		RefundOrOwed:      record.RefundOrOwed.String(),
		Status:            string(record.Status),
		Documents:         documents,
		Notes:             record.Notes,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
	}
}

// ToTaxRecordListResponse converts a list of tax records to a response DTO.
func ToTaxRecordListResponse(records []*entity.TaxRecord) TaxRecordListResponse {
	out := make([]TaxRecordResponse, 0, len(records))
	for _, record := range records {
		out = append(out, ToTaxRecordResponse(record))
	}
	return TaxRecordListResponse{
		Records: out,
		Total:   len(out),
	}
}
