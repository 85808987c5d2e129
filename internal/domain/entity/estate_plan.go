// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EstatePlanType represents the kind of estate plan.
type EstatePlanType string

const (
	EstatePlanTypeWill                EstatePlanType = "will"
	EstatePlanTypeTrust               EstatePlanType = "trust"
	EstatePlanTypePowerOfAttorney     EstatePlanType = "power_of_attorney"
	EstatePlanTypeHealthcareDirective EstatePlanType = "healthcare_directive"
)

// ValidEstatePlanTypes lists every accepted estate plan type.
var ValidEstatePlanTypes = []EstatePlanType{
	EstatePlanTypeWill,
	EstatePlanTypeTrust,
	EstatePlanTypePowerOfAttorney,
	EstatePlanTypeHealthcareDirective,
}

// EstatePlanStatus represents the lifecycle state of an estate plan.
type EstatePlanStatus string

const (
	EstatePlanStatusDraft       EstatePlanStatus = "draft"
	EstatePlanStatusInProgress  EstatePlanStatus = "in_progress"
	EstatePlanStatusCompleted   EstatePlanStatus = "completed"
	EstatePlanStatusNeedsUpdate EstatePlanStatus = "needs_update"
)

// ValidEstatePlanStatuses lists every accepted estate plan status.
var ValidEstatePlanStatuses = []EstatePlanStatus{
	EstatePlanStatusDraft,
	EstatePlanStatusInProgress,
	EstatePlanStatusCompleted,
	EstatePlanStatusNeedsUpdate,
}

// AssetType represents the kind of an estate asset.
type AssetType string

const (
	AssetTypeRealEstate       AssetType = "real_estate"
	AssetTypeBankAccount      AssetType = "bank_account"
	AssetTypeInvestment       AssetType = "investment"
	AssetTypeRetirement       AssetType = "retirement"
	AssetTypeLifeInsurance    AssetType = "life_insurance"
	AssetTypeBusiness         AssetType = "business"
	AssetTypePersonalProperty AssetType = "personal_property"
)

// ValidAssetTypes lists every accepted asset type.
var ValidAssetTypes = []AssetType{
	AssetTypeRealEstate,
	AssetTypeBankAccount,
	AssetTypeInvestment,
	AssetTypeRetirement,
	AssetTypeLifeInsurance,
	AssetTypeBusiness,
	AssetTypePersonalProperty,
}

// Relationship represents a beneficiary's relationship to the plan owner.
type Relationship string

const (
	RelationshipSpouse     Relationship = "spouse"
	RelationshipChild      Relationship = "child"
	RelationshipParent     Relationship = "parent"
	RelationshipSibling    Relationship = "sibling"
	RelationshipGrandchild Relationship = "grandchild"
	RelationshipFriend     Relationship = "friend"
	RelationshipCharity    Relationship = "charity"
	RelationshipOther      Relationship = "other"
)

// ValidRelationships lists every accepted relationship.
var ValidRelationships = []Relationship{
	RelationshipSpouse,
	RelationshipChild,
	RelationshipParent,
	RelationshipSibling,
	RelationshipGrandchild,
	RelationshipFriend,
	RelationshipCharity,
	RelationshipOther,
}

// EstateDocumentType represents the kind of an estate document.
type EstateDocumentType string

const (
	EstateDocumentTypeWill                EstateDocumentType = "will"
	EstateDocumentTypeTrust               EstateDocumentType = "trust"
	EstateDocumentTypePowerOfAttorney     EstateDocumentType = "power_of_attorney"
	EstateDocumentTypeHealthcareDirective EstateDocumentType = "healthcare_directive"
	EstateDocumentTypeInsurancePolicy     EstateDocumentType = "insurance_policy"
	EstateDocumentTypeDeed                EstateDocumentType = "deed"
)

// ValidEstateDocumentTypes lists every accepted estate document type.
var ValidEstateDocumentTypes = []EstateDocumentType{
	EstateDocumentTypeWill,
	EstateDocumentTypeTrust,
	EstateDocumentTypePowerOfAttorney,
	EstateDocumentTypeHealthcareDirective,
	EstateDocumentTypeInsurancePolicy,
	EstateDocumentTypeDeed,
}

// EstateDocumentStatus represents the execution state of an estate document.
type EstateDocumentStatus string

const (
	EstateDocumentStatusDraft       EstateDocumentStatus = "draft"
	EstateDocumentStatusExecuted    EstateDocumentStatus = "executed"
	EstateDocumentStatusNeedsUpdate EstateDocumentStatus = "needs_update"
)

// ValidEstateDocumentStatuses lists every accepted estate document status.
var ValidEstateDocumentStatuses = []EstateDocumentStatus{
	EstateDocumentStatusDraft,
	EstateDocumentStatusExecuted,
	EstateDocumentStatusNeedsUpdate,
}

// MaxEstateNotesLength is the maximum length of the free-text notes field.
const MaxEstateNotesLength = 2000

// BeneficiarySplit is a per-asset allocation to a named beneficiary.
type BeneficiarySplit struct {
	Name       string
	Percentage float64 // 0-100
}

// Asset is a single valued holding within an estate plan.
type Asset struct {
	ID             uuid.UUID
	Type           AssetType
	Description    string
	EstimatedValue decimal.Decimal
	Location       string
	AccountRef     string
	Beneficiaries  []BeneficiarySplit
}

// Beneficiary is a top-level beneficiary of an estate plan.
type Beneficiary struct {
	ID           uuid.UUID
	Name         string
	Relationship Relationship
	Contact      string
	Address      string
	IsPrimary    bool
	IsContingent bool
	Percentage   float64 // 0-100
}

// GuardianDesignation names a guardian for a minor dependent.
type GuardianDesignation struct {
	ID               uuid.UUID
	MinorName        string
	GuardianName     string
	AlternateName    string
	GuardianContact  string
	AlternateContact string
}

// EstateDocument is a legal document attached to an estate plan.
type EstateDocument struct {
	ID        uuid.UUID
	Type      EstateDocumentType
	Name      string
	Location  string
	Status    EstateDocumentStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactInfo holds attorney or executor contact details.
type ContactInfo struct {
	Name  string
	Email string
	Phone string
}

// EstatePlan represents one user's estate plan.
// TotalEstateValue is derived from the asset list; it is recomputed before
// every save and never trusted from input.
type EstatePlan struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	Name                  string
	Type                  EstatePlanType
	Assets                []Asset
	Beneficiaries         []Beneficiary
	Executor              ContactInfo
	AlternateExecutor     ContactInfo
	Guardians             []GuardianDesignation
	Documents             []EstateDocument
	TotalEstateValue      decimal.Decimal
	EstimatedTaxLiability decimal.Decimal
	LastReviewDate        *time.Time
	NextReviewDate        *time.Time
	Status                EstatePlanStatus
	Attorney              ContactInfo
	Notes                 string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	DeletedAt             *time.Time // Soft-delete support
}

// NewEstatePlan creates a new EstatePlan in draft state.
func NewEstatePlan(userID uuid.UUID, name string, planType EstatePlanType, now time.Time) *EstatePlan {
	return &EstatePlan{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      planType,
		Status:    EstatePlanStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// IsValidEstatePlanType reports whether t is an accepted estate plan type.
func IsValidEstatePlanType(t EstatePlanType) bool {
	for _, valid := range ValidEstatePlanTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// IsValidEstatePlanStatus reports whether s is an accepted estate plan status.
func IsValidEstatePlanStatus(s EstatePlanStatus) bool {
	for _, valid := range ValidEstatePlanStatuses {
		if s == valid {
			return true
		}
	}
	return false
}

// IsValidAssetType reports whether t is an accepted asset type.
func IsValidAssetType(t AssetType) bool {
	for _, valid := range ValidAssetTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// IsValidRelationship reports whether r is an accepted relationship.
func IsValidRelationship(r Relationship) bool {
	for _, valid := range ValidRelationships {
		if r == valid {
			return true
		}
	}
	return false
}

// IsValidEstateDocumentType reports whether t is an accepted document type.
func IsValidEstateDocumentType(t EstateDocumentType) bool {
	for _, valid := range ValidEstateDocumentTypes {
		if t == valid {
			return true
		}
	}
	return false
}

// IsValidEstateDocumentStatus reports whether s is an accepted document status.
func IsValidEstateDocumentStatus(s EstateDocumentStatus) bool {
	for _, valid := range ValidEstateDocumentStatuses {
		if s == valid {
			return true
		}
	}
	return false
}
