// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// BeneficiarySplitRequest carries a per-asset allocation.
type BeneficiarySplitRequest struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// AssetRequest carries a single estate asset.
type AssetRequest struct {
	Type           string                    `json:"type"`
	Description    string                    `json:"description"`
	EstimatedValue float64                   `json:"estimated_value"`
	Location       string                    `json:"location"`
	AccountRef     string                    `json:"account_ref"`
	Beneficiaries  []BeneficiarySplitRequest `json:"beneficiaries"`
}

// BeneficiaryRequest carries a top-level beneficiary.
type BeneficiaryRequest struct {
	Name         string  `json:"name"`
	Relationship string  `json:"relationship"`
	Contact      string  `json:"contact"`
	Address      string  `json:"address"`
	IsPrimary    bool    `json:"is_primary"`
	IsContingent bool    `json:"is_contingent"`
	Percentage   float64 `json:"percentage"`
}

// GuardianRequest carries a guardianship designation.
type GuardianRequest struct {
	MinorName        string `json:"minor_name"`
	GuardianName     string `json:"guardian_name"`
	AlternateName    string `json:"alternate_name"`
	GuardianContact  string `json:"guardian_contact"`
	AlternateContact string `json:"alternate_contact"`
}

// EstateDocumentRequest carries a legal document reference.
type EstateDocumentRequest struct {
	Type     string `json:"type"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// ContactInfoRequest carries attorney or executor contact details.
type ContactInfoRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// CreateEstatePlanRequest represents the request body for estate plan creation.
type CreateEstatePlanRequest struct {
	Name              string                  `json:"name" binding:"required"`
	Type              string                  `json:"type" binding:"required"`
	Assets            []AssetRequest          `json:"assets"`
	Beneficiaries     []BeneficiaryRequest    `json:"beneficiaries"`
	Executor          *ContactInfoRequest     `json:"executor,omitempty"`
	AlternateExecutor *ContactInfoRequest     `json:"alternate_executor,omitempty"`
	Guardians         []GuardianRequest       `json:"guardians"`
	Documents         []EstateDocumentRequest `json:"documents"`
	Attorney          *ContactInfoRequest     `json:"attorney,omitempty"`
	Notes             string                  `json:"notes"`
}

// UpdateEstatePlanRequest represents the request body for estate plan update.
// Absent fields leave the stored values untouched; present list fields
// replace the stored lists wholesale.
type UpdateEstatePlanRequest struct {
	Name              *string                  `json:"name,omitempty"`
	Type              *string                  `json:"type,omitempty"`
	Assets            *[]AssetRequest          `json:"assets,omitempty"`
	Beneficiaries     *[]BeneficiaryRequest    `json:"beneficiaries,omitempty"`
	Executor          *ContactInfoRequest      `json:"executor,omitempty"`
	AlternateExecutor *ContactInfoRequest      `json:"alternate_executor,omitempty"`
	Guardians         *[]GuardianRequest       `json:"guardians,omitempty"`
	Documents         *[]EstateDocumentRequest `json:"documents,omitempty"`
	Status            *string                  `json:"status,omitempty"`
	Attorney          *ContactInfoRequest      `json:"attorney,omitempty"`
	Notes             *string                  `json:"notes,omitempty"`
	MarkReviewed      bool                     `json:"mark_reviewed"`
}

// BeneficiarySplitResponse represents a per-asset allocation in responses.
type BeneficiarySplitResponse struct {
	Name       string  `json:"name"`
	Percentage float64 `json:"percentage"`
}

// AssetResponse represents an estate asset in API responses.
type AssetResponse struct {
	ID             string                     `json:"id"`
	Type           string                     `json:"type"`
	Description    string                     `json:"description"`
	EstimatedValue string                     `json:"estimated_value"`
	Location       string                     `json:"location,omitempty"`
	AccountRef     string                     `json:"account_ref,omitempty"`
	Beneficiaries  []BeneficiarySplitResponse `json:"beneficiaries"`
}

// BeneficiaryResponse represents a beneficiary in API responses.
type BeneficiaryResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Relationship string  `json:"relationship"`
	Contact      string  `json:"contact,omitempty"`
	Address      string  `json:"address,omitempty"`
	IsPrimary    bool    `json:"is_primary"`
	IsContingent bool    `json:"is_contingent"`
	Percentage   float64 `json:"percentage"`
}

// GuardianResponse represents a guardianship designation in API responses.
type GuardianResponse struct {
	ID               string `json:"id"`
	MinorName        string `json:"minor_name"`
	GuardianName     string `json:"guardian_name"`
	AlternateName    string `json:"alternate_name,omitempty"`
	GuardianContact  string `json:"guardian_contact,omitempty"`
	AlternateContact string `json:"alternate_contact,omitempty"`
}

// EstateDocumentResponse represents a legal document in API responses.
type EstateDocumentResponse struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ContactInfoResponse represents contact details in API responses.
type ContactInfoResponse struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// EstatePlanResponse represents an estate plan in API responses.
type EstatePlanResponse struct {
	ID                    string                   `json:"id"`
	Name                  string                   `json:"name"`
	Type                  string                   `json:"type"`
	Assets                []AssetResponse          `json:"assets"`
	Beneficiaries         []BeneficiaryResponse    `json:"beneficiaries"`
	Executor              ContactInfoResponse      `json:"executor"`
	AlternateExecutor     ContactInfoResponse      `json:"alternate_executor"`
	Guardians             []GuardianResponse       `json:"guardians"`
	Documents             []EstateDocumentResponse `json:"documents"`
	TotalEstateValue      string                   `json:"total_estate_value"`
	EstimatedTaxLiability string                   `json:"estimated_tax_liability"`
	LastReviewDate        *time.Time               `json:"last_review_date,omitempty"`
	NextReviewDate        *time.Time               `json:"next_review_date,omitempty"`
	Status                string                   `json:"status"`
	Attorney              ContactInfoResponse      `json:"attorney"`
	Notes                 string                   `json:"notes,omitempty"`
	CreatedAt             time.Time                `json:"created_at"`
	UpdatedAt             time.Time                `json:"updated_at"`
}

// EstatePlanListResponse represents a list of estate plans.
type EstatePlanListResponse struct {
	Plans []EstatePlanResponse `json:"plans"`
	Total int                  `json:"total"`
}

// ToAsset converts an asset request to the domain value.
func (r AssetRequest) ToAsset() entity.Asset {
	splits := make([]entity.BeneficiarySplit, 0, len(r.Beneficiaries))
	for _, split := range r.Beneficiaries {
		splits = append(splits, entity.BeneficiarySplit{
			Name:       split.Name,
			Percentage: split.Percentage,
		})
	}
	return entity.Asset{
		Type:           entity.AssetType(r.Type),
		Description:    r.Description,
		EstimatedValue: decimal.NewFromFloat(r.EstimatedValue),
		Location:       r.Location,
		AccountRef:     r.AccountRef,
		Beneficiaries:  splits,
	}
}

// ToBeneficiary converts a beneficiary request to the domain value.
func (r BeneficiaryRequest) ToBeneficiary() entity.Beneficiary {
	return entity.Beneficiary{
		Name:         r.Name,
		Relationship: entity.Relationship(r.Relationship),
		Contact:      r.Contact,
		Address:      r.Address,
		IsPrimary:    r.IsPrimary,
		IsContingent: r.IsContingent,
		Percentage:   r.Percentage,
	}
}

// ToGuardian converts a guardian request to the domain value.
func (r GuardianRequest) ToGuardian() entity.GuardianDesignation {
	return entity.GuardianDesignation{
		MinorName:        r.MinorName,
		GuardianName:     r.GuardianName,
		AlternateName:    r.AlternateName,
		GuardianContact:  r.GuardianContact,
		AlternateContact: r.AlternateContact,
	}
}

// ToEstateDocument converts a document request to the domain value.
func (r EstateDocumentRequest) ToEstateDocument() entity.EstateDocument {
	return entity.EstateDocument{
		Type:     entity.EstateDocumentType(r.Type),
		Name:     r.Name,
		Location: r.Location,
		Status:   entity.EstateDocumentStatus(r.Status),
	}
}

// ToContactInfo converts a contact request to the domain value.
func (r ContactInfoRequest) ToContactInfo() entity.ContactInfo {
	return entity.ContactInfo{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// ToAssets converts a list of asset requests to domain values.
func ToAssets(reqs []AssetRequest) []entity.Asset {
	assets := make([]entity.Asset, 0, len(reqs))
	for _, req := range reqs {
		assets = append(assets, req.ToAsset())
	}
	return assets
}

// ToBeneficiaries converts a list of beneficiary requests to domain values.
func ToBeneficiaries(reqs []BeneficiaryRequest) []entity.Beneficiary {
	beneficiaries := make([]entity.Beneficiary, 0, len(reqs))
	for _, req := range reqs {
		beneficiaries = append(beneficiaries, req.ToBeneficiary())
	}
	return beneficiaries
}

// ToGuardians converts a list of guardian requests to domain values.
func ToGuardians(reqs []GuardianRequest) []entity.GuardianDesignation {
	guardians := make([]entity.GuardianDesignation, 0, len(reqs))
	for _, req := range reqs {
		guardians = append(guardians, req.ToGuardian())
	}
	return guardians
}

// ToEstateDocuments converts a list of document requests to domain values.
func ToEstateDocuments(reqs []EstateDocumentRequest) []entity.EstateDocument {
	documents := make([]entity.EstateDocument, 0, len(reqs))
	for _, req := range reqs {
		documents = append(documents, req.ToEstateDocument())
	}
	return documents
}

// ToEstatePlanResponse converts a domain EstatePlan entity to a response DTO.
func ToEstatePlanResponse(plan *entity.EstatePlan) EstatePlanResponse {
	assets := make([]AssetResponse, 0, len(plan.Assets))
	for _, asset := range plan.Assets {
		splits := make([]BeneficiarySplitResponse, 0, len(asset.Beneficiaries))
		for _, split := range asset.Beneficiaries {
			splits = append(splits, BeneficiarySplitResponse{
				Name:       split.Name,
				Percentage: split.Percentage,
			})
		}
		assets = append(assets, AssetResponse{
			ID:             asset.ID.String(),
			Type:           string(asset.Type),
			Description:    asset.Description,
			EstimatedValue: asset.EstimatedValue.String(),
			Location:       asset.Location,
			AccountRef:     asset.AccountRef,
			Beneficiaries:  splits,
		})
	}

	beneficiaries := make([]BeneficiaryResponse, 0, len(plan.Beneficiaries))
	for _, b := range plan.Beneficiaries {
		beneficiaries = append(beneficiaries, BeneficiaryResponse{
			ID:           b.ID.String(),
			Name:         b.Name,
			Relationship: string(b.Relationship),
			Contact:      b.Contact,
			Address:      b.Address,
			IsPrimary:    b.IsPrimary,
			IsContingent: b.IsContingent,
			Percentage:   b.Percentage,
		})
	}

	guardians := make([]GuardianResponse, 0, len(plan.Guardians))
	for _, g := range plan.Guardians {
		guardians = append(guardians, GuardianResponse{
			ID:               g.ID.String(),
			MinorName:        g.MinorName,
			GuardianName:     g.GuardianName,
			AlternateName:    g.AlternateName,
			GuardianContact:  g.GuardianContact,
			AlternateContact: g.AlternateContact,
		})
	}

	documents := make([]EstateDocumentResponse, 0, len(plan.Documents))
	for _, doc := range plan.Documents {
		documents = append(documents, EstateDocumentResponse{
			ID:        doc.ID.String(),
			Type:      string(doc.Type),
			Name:      doc.Name,
			Location:  doc.Location,
			Status:    string(doc.Status),
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}

	return EstatePlanResponse{
		ID:                    plan.ID.String(),
		Name:                  plan.Name,
		Type:                  string(plan.Type),
		Assets:                assets,
		Beneficiaries:         beneficiaries,
		Executor:              toContactInfoResponse(plan.Executor),
		AlternateExecutor:     toContactInfoResponse(plan.AlternateExecutor),
		Guardians:             guardians,
		Documents:             documents,
		TotalEstateValue:      plan.TotalEstateValue.String(),
		EstimatedTaxLiability: plan.EstimatedTaxLiability.String(),
		LastReviewDate:        plan.LastReviewDate,
		NextReviewDate:        plan.NextReviewDate,
		Status:                string(plan.Status),
		Attorney:              toContactInfoResponse(plan.Attorney),
		Notes:                 plan.Notes,
		CreatedAt:             plan.CreatedAt,
		UpdatedAt:             plan.UpdatedAt,
	}
}

func toContactInfoResponse(contact entity.ContactInfo) ContactInfoResponse {
	return ContactInfoResponse{
		Name:  contact.Name,
		Email: contact.Email,
		Phone: contact.Phone,
	}
}

// ToEstatePlanListResponse converts a list of estate plans to a response DTO.
func ToEstatePlanListResponse(plans []*entity.EstatePlan) EstatePlanListResponse {
	out := make([]EstatePlanResponse, 0, len(plans))
	for _, plan := range plans {
		out = append(out, ToEstatePlanResponse(plan))
	}
	return EstatePlanListResponse{
		Plans: out,
		Total: len(out),
	}
}
