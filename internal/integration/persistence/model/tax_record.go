// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// TaxRecordModel represents the tax_records table in the database.
type TaxRecordModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_user_tax_year"`
	TaxYear      int       `gorm:"not null;uniqueIndex:idx_user_tax_year"`
	FilingStatus string    `gorm:"type:varchar(30);not null"`

	Wages          decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Dividends      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	CapitalGains   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	BusinessIncome decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	OtherIncome    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`

	StandardDeduction decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	ItemizedDeduction decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	OtherDeductions   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`

	TotalIncome     decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TotalDeductions decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TaxableIncome   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TaxOwed         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	TaxPaid         decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	RefundOrOwed    decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`

	Status    string         `gorm:"type:varchar(20);not null;default:'draft';index"`
	Notes     string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Documents []TaxDocumentModel `gorm:"foreignKey:TaxRecordID;references:ID"`
}

// TableName returns the table name for the TaxRecordModel.
func (TaxRecordModel) TableName() string {
	return "tax_records"
}

// TaxDocumentModel represents the tax_documents table in the database.
type TaxDocumentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	TaxRecordID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Kind        string    `gorm:"type:varchar(50);not null"`
	Location    string    `gorm:"type:varchar(500)"`
	UploadedAt  time.Time `gorm:"not null"`
}

// TableName returns the table name for the TaxDocumentModel.
func (TaxDocumentModel) TableName() string {
	return "tax_documents"
}

// ToEntity converts a TaxRecordModel to a domain TaxRecord entity.
func (m *TaxRecordModel) ToEntity() *entity.TaxRecord {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	documents := make([]entity.TaxDocument, 0, len(m.Documents))
	for _, doc := range m.Documents {
		documents = append(documents, entity.TaxDocument{
			ID:         doc.ID,
			Name:       doc.Name,
			Kind:       doc.Kind,
			Location:   doc.Location,
			UploadedAt: doc.UploadedAt,
		})
	}

	return &entity.TaxRecord{
		ID:           m.ID,
		UserID:       m.UserID,
		TaxYear:      m.TaxYear,
		FilingStatus: entity.FilingStatus(m.FilingStatus),
		Income: entity.IncomeSources{
			Wages:          m.Wages,
			Dividends:      m.Dividends,
			CapitalGains:   m.CapitalGains,
			BusinessIncome: m.BusinessIncome,
			OtherIncome:    m.OtherIncome,
		},
		Deductions: entity.Deductions{
			StandardDeduction: m.StandardDeduction,
			ItemizedDeduction: m.ItemizedDeduction,
			OtherDeductions:   m.OtherDeductions,
		},
		TotalIncome:     m.TotalIncome,
		TotalDeductions: m.TotalDeductions,
		TaxableIncome:   m.TaxableIncome,
		TaxOwed:         m.TaxOwed,
		TaxPaid:         m.TaxPaid,
		RefundOrOwed:    m.RefundOrOwed,
		Status:          entity.TaxRecordStatus(m.Status),
		Documents:       documents,
		Notes:           m.Notes,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
		DeletedAt:       deletedAt,
	}
}

// TaxRecordFromEntity creates a TaxRecordModel from a domain TaxRecord entity.
func TaxRecordFromEntity(record *entity.TaxRecord) *TaxRecordModel {
	var deletedAt gorm.DeletedAt
	if record.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *record.DeletedAt, Valid: true}
	}

	documents := make([]TaxDocumentModel, 0, len(record.Documents))
	for _, doc := range record.Documents {
		documents = append(documents, TaxDocumentModel{
			ID:          doc.ID,
			TaxRecordID: record.ID,
			Name:        doc.Name,
			Kind:        doc.Kind,
			Location:    doc.Location,
			UploadedAt:  doc.UploadedAt,
		})
	}

	return &TaxRecordModel{
		ID:                record.ID,
		UserID:            record.UserID,
		TaxYear:           record.TaxYear,
		FilingStatus:      string(record.FilingStatus),
		Wages:             record.Income.Wages,
		Dividends:         record.Income.Dividends,
		CapitalGains:      record.Income.CapitalGains,
		BusinessIncome:    record.Income.BusinessIncome,
		OtherIncome:       record.Income.OtherIncome,
		StandardDeduction: record.Deductions.StandardDeduction,
		ItemizedDeduction: record.Deductions.ItemizedDeduction,
		OtherDeductions:   record.Deductions.OtherDeductions,
		TotalIncome:       record.TotalIncome,
		TotalDeductions:   record.TotalDeductions,
		TaxableIncome:     record.TaxableIncome,
		TaxOwed:           record.TaxOwed,
		TaxPaid:           record.TaxPaid,
		RefundOrOwed:      record.RefundOrOwed,
		Status:            string(record.Status),
		Notes:             record.Notes,
		CreatedAt:         record.CreatedAt,
		UpdatedAt:         record.UpdatedAt,
		DeletedAt:         deletedAt,
		Documents:         documents,
	}
}
