// Package model defines database models for persistence layer.
package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// BeneficiarySplitsJSON represents the JSONB structure for per-asset
// beneficiary allocations.
type BeneficiarySplitsJSON []entity.BeneficiarySplit

// Value implements the driver.Valuer interface.
func (s BeneficiarySplitsJSON) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// Scan implements the sql.Scanner interface.
func (s *BeneficiarySplitsJSON) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, s)
}

// EstatePlanModel represents the estate_plans table in the database.
type EstatePlanModel struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name   string    `gorm:"type:varchar(255);not null"`
	Type   string    `gorm:"type:varchar(30);not null"`

	ExecutorName  string `gorm:"type:varchar(255)"`
	ExecutorEmail string `gorm:"type:varchar(255)"`
	ExecutorPhone string `gorm:"type:varchar(50)"`

	AlternateExecutorName  string `gorm:"type:varchar(255)"`
	AlternateExecutorEmail string `gorm:"type:varchar(255)"`
	AlternateExecutorPhone string `gorm:"type:varchar(50)"`

	AttorneyName  string `gorm:"type:varchar(255)"`
	AttorneyEmail string `gorm:"type:varchar(255)"`
	AttorneyPhone string `gorm:"type:varchar(50)"`

	TotalEstateValue      decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	EstimatedTaxLiability decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	LastReviewDate        *time.Time      `gorm:"type:date"`
	NextReviewDate        *time.Time      `gorm:"type:date;index"`
	Status                string          `gorm:"type:varchar(20);not null;default:'draft';index"`
	Notes                 string          `gorm:"type:text"`

	CreatedAt time.Time      `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support

	// Relationships (not loaded by default, use Preload)
	Assets        []AssetModel          `gorm:"foreignKey:EstatePlanID;references:ID"`
	Beneficiaries []BeneficiaryModel    `gorm:"foreignKey:EstatePlanID;references:ID"`
	Guardians     []GuardianModel       `gorm:"foreignKey:EstatePlanID;references:ID"`
	Documents     []EstateDocumentModel `gorm:"foreignKey:EstatePlanID;references:ID"`
}

// TableName returns the table name for the EstatePlanModel.
func (EstatePlanModel) TableName() string {
	return "estate_plans"
}

// AssetModel represents the estate_assets table in the database.
type AssetModel struct {
	ID             uuid.UUID             `gorm:"type:uuid;primaryKey"`
	EstatePlanID   uuid.UUID             `gorm:"type:uuid;not null;index"`
	Type           string                `gorm:"type:varchar(30);not null"`
	Description    string                `gorm:"type:varchar(500)"`
	EstimatedValue decimal.Decimal       `gorm:"type:decimal(15,2);not null;default:0"`
	Location       string                `gorm:"type:varchar(255)"`
	AccountRef     string                `gorm:"type:varchar(100)"`
	Beneficiaries  BeneficiarySplitsJSON `gorm:"type:jsonb"`
}

// TableName returns the table name for the AssetModel.
func (AssetModel) TableName() string {
	return "estate_assets"
}

// BeneficiaryModel represents the estate_beneficiaries table in the database.
type BeneficiaryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EstatePlanID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Relationship string    `gorm:"type:varchar(30);not null"`
	Contact      string    `gorm:"type:varchar(255)"`
	Address      string    `gorm:"type:varchar(500)"`
	IsPrimary    bool      `gorm:"default:false"`
	IsContingent bool      `gorm:"default:false"`
	Percentage   float64   `gorm:"type:decimal(5,2);not null;default:0"`
}

// TableName returns the table name for the BeneficiaryModel.
func (BeneficiaryModel) TableName() string {
	return "estate_beneficiaries"
}

// GuardianModel represents the estate_guardians table in the database.
type GuardianModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	EstatePlanID     uuid.UUID `gorm:"type:uuid;not null;index"`
	MinorName        string    `gorm:"type:varchar(255);not null"`
	GuardianName     string    `gorm:"type:varchar(255);not null"`
	AlternateName    string    `gorm:"type:varchar(255)"`
	GuardianContact  string    `gorm:"type:varchar(255)"`
	AlternateContact string    `gorm:"type:varchar(255)"`
}

// TableName returns the table name for the GuardianModel.
func (GuardianModel) TableName() string {
	return "estate_guardians"
}

// EstateDocumentModel represents the estate_documents table in the database.
type EstateDocumentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EstatePlanID uuid.UUID `gorm:"type:uuid;not null;index"`
	Type         string    `gorm:"type:varchar(30);not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Location     string    `gorm:"type:varchar(500)"`
	Status       string    `gorm:"type:varchar(20);not null;default:'draft'"`
	CreatedAt    time.Time `gorm:"not null"`
	UpdatedAt    time.Time `gorm:"not null"`
}

// TableName returns the table name for the EstateDocumentModel.
func (EstateDocumentModel) TableName() string {
	return "estate_documents"
}

// ToEntity converts an EstatePlanModel to a domain EstatePlan entity.
func (m *EstatePlanModel) ToEntity() *entity.EstatePlan {
	var deletedAt *time.Time
	if m.DeletedAt.Valid {
		deletedAt = &m.DeletedAt.Time
	}

	assets := make([]entity.Asset, 0, len(m.Assets))
	for _, a := range m.Assets {
		assets = append(assets, entity.Asset{
			ID:             a.ID,
			Type:           entity.AssetType(a.Type),
			Description:    a.Description,
			EstimatedValue: a.EstimatedValue,
			Location:       a.Location,
			AccountRef:     a.AccountRef,
			Beneficiaries:  a.Beneficiaries,
		})
	}

	beneficiaries := make([]entity.Beneficiary, 0, len(m.Beneficiaries))
	for _, b := range m.Beneficiaries {
		beneficiaries = append(beneficiaries, entity.Beneficiary{
			ID:           b.ID,
			Name:         b.Name,
			Relationship: entity.Relationship(b.Relationship),
			Contact:      b.Contact,
			Address:      b.Address,
			IsPrimary:    b.IsPrimary,
			IsContingent: b.IsContingent,
			Percentage:   b.Percentage,
		})
	}

	guardians := make([]entity.GuardianDesignation, 0, len(m.Guardians))
	for _, g := range m.Guardians {
		guardians = append(guardians, entity.GuardianDesignation{
			ID:               g.ID,
			MinorName:        g.MinorName,
			GuardianName:     g.GuardianName,
			AlternateName:    g.AlternateName,
			GuardianContact:  g.GuardianContact,
			AlternateContact: g.AlternateContact,
		})
	}

	documents := make([]entity.EstateDocument, 0, len(m.Documents))
	for _, d := range m.Documents {
		documents = append(documents, entity.EstateDocument{
			ID:        d.ID,
			Type:      entity.EstateDocumentType(d.Type),
			Name:      d.Name,
			Location:  d.Location,
			Status:    entity.EstateDocumentStatus(d.Status),
			CreatedAt: d.CreatedAt,
			UpdatedAt: d.UpdatedAt,
		})
	}

	return &entity.EstatePlan{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Type:          entity.EstatePlanType(m.Type),
		Assets:        assets,
		Beneficiaries: beneficiaries,
		Executor: entity.ContactInfo{
			Name:  m.ExecutorName,
			Email: m.ExecutorEmail,
			Phone: m.ExecutorPhone,
		},
		AlternateExecutor: entity.ContactInfo{
			Name:  m.AlternateExecutorName,
			Email: m.AlternateExecutorEmail,
			Phone: m.AlternateExecutorPhone,
		},
		Guardians:             guardians,
		Documents:             documents,
		TotalEstateValue:      m.TotalEstateValue,
		EstimatedTaxLiability: m.EstimatedTaxLiability,
		LastReviewDate:        m.LastReviewDate,
		NextReviewDate:        m.NextReviewDate,
		Status:                entity.EstatePlanStatus(m.Status),
		Attorney: entity.ContactInfo{
			Name:  m.AttorneyName,
			Email: m.AttorneyEmail,
			Phone: m.AttorneyPhone,
		},
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
		DeletedAt: deletedAt,
	}
}

// EstatePlanFromEntity creates an EstatePlanModel from a domain EstatePlan entity.
func EstatePlanFromEntity(plan *entity.EstatePlan) *EstatePlanModel {
	var deletedAt gorm.DeletedAt
	if plan.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *plan.DeletedAt, Valid: true}
	}

	assets := make([]AssetModel, 0, len(plan.Assets))
	for _, a := range plan.Assets {
		assets = append(assets, AssetModel{
			ID:             a.ID,
			EstatePlanID:   plan.ID,
			Type:           string(a.Type),
			Description:    a.Description,
			EstimatedValue: a.EstimatedValue,
			Location:       a.Location,
			AccountRef:     a.AccountRef,
			Beneficiaries:  a.Beneficiaries,
		})
	}

	beneficiaries := make([]BeneficiaryModel, 0, len(plan.Beneficiaries))
	for _, b := range plan.Beneficiaries {
		beneficiaries = append(beneficiaries, BeneficiaryModel{
			ID:           b.ID,
			EstatePlanID: plan.ID,
			Name:         b.Name,
			Relationship: string(b.Relationship),
			Contact:      b.Contact,
			Address:      b.Address,
			IsPrimary:    b.IsPrimary,
			IsContingent: b.IsContingent,
			Percentage:   b.Percentage,
		})
	}

	guardians := make([]GuardianModel, 0, len(plan.Guardians))
	for _, g := range plan.Guardians {
		guardians = append(guardians, GuardianModel{
			ID:               g.ID,
			EstatePlanID:     plan.ID,
			MinorName:        g.MinorName,
			GuardianName:     g.GuardianName,
			AlternateName:    g.AlternateName,
			GuardianContact:  g.GuardianContact,
			AlternateContact: g.AlternateContact,
		})
	}

	documents := make([]EstateDocumentModel, 0, len(plan.Documents))
	for _, d := range plan.Documents {
		documents = append(documents, EstateDocumentModel{
			ID:           d.ID,
			EstatePlanID: plan.ID,
			Type:         string(d.Type),
			Name:         d.Name,
			Location:     d.Location,
			Status:       string(d.Status),
			CreatedAt:    d.CreatedAt,
			UpdatedAt:    d.UpdatedAt,
		})
	}

	return &EstatePlanModel{
		ID:                     plan.ID,
		UserID:                 plan.UserID,
		Name:                   plan.Name,
		Type:                   string(plan.Type),
		ExecutorName:           plan.Executor.Name,
		ExecutorEmail:          plan.Executor.Email,
		ExecutorPhone:          plan.Executor.Phone,
		AlternateExecutorName:  plan.AlternateExecutor.Name,
		AlternateExecutorEmail: plan.AlternateExecutor.Email,
		AlternateExecutorPhone: plan.AlternateExecutor.Phone,
		AttorneyName:           plan.Attorney.Name,
		AttorneyEmail:          plan.Attorney.Email,
		AttorneyPhone:          plan.Attorney.Phone,
		TotalEstateValue:       plan.TotalEstateValue,
		EstimatedTaxLiability:  plan.EstimatedTaxLiability,
		LastReviewDate:         plan.LastReviewDate,
		NextReviewDate:         plan.NextReviewDate,
		Status:                 string(plan.Status),
		Notes:                  plan.Notes,
		CreatedAt:              plan.CreatedAt,
		UpdatedAt:              plan.UpdatedAt,
		DeletedAt:              deletedAt,
		Assets:                 assets,
		Beneficiaries:          beneficiaries,
		Guardians:              guardians,
		Documents:              documents,
	}
}
