// Package estate contains estate plan use cases.
package estate

import (
	"strings"

	"github.com/finance-planner/backend/internal/domain/derivation"
	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

func validatePlanName(name string) error {
	if strings.TrimSpace(name) == "" {
		return domainerror.NewEstateError(
			domainerror.ErrCodeEmptyEstatePlanName,
			"estate plan name cannot be empty",
			domainerror.ErrEmptyEstatePlanName,
		)
	}
	return nil
}

func validatePlanType(planType entity.EstatePlanType) error {
	if !entity.IsValidEstatePlanType(planType) {
		return domainerror.NewEstateError(
			domainerror.ErrCodeInvalidEstatePlanType,
			"plan type is not a known variant",
			domainerror.ErrInvalidEstatePlanType,
		)
	}
	return nil
}

func validateAssets(assets []entity.Asset) error {
	for _, asset := range assets {
		if !entity.IsValidAssetType(asset.Type) {
			return domainerror.NewEstateError(
				domainerror.ErrCodeInvalidAssetType,
				"asset type is not a known variant",
				domainerror.ErrInvalidAssetType,
			)
		}
		if asset.EstimatedValue.IsNegative() {
			return domainerror.NewEstateError(
				domainerror.ErrCodeInvalidAssetValue,
				"asset estimated value must be non-negative",
				domainerror.ErrInvalidAssetValue,
			)
		}
		for _, split := range asset.Beneficiaries {
			if !derivation.IsValidPercentage(split.Percentage) {
				return domainerror.NewEstateError(
					domainerror.ErrCodeInvalidBeneficiaryPercentage,
					"beneficiary percentage must be between 0 and 100",
					domainerror.ErrInvalidBeneficiaryPercentage,
				)
			}
		}
	}
	return nil
}

func validateBeneficiaries(beneficiaries []entity.Beneficiary) error {
	for _, b := range beneficiaries {
		if !entity.IsValidRelationship(b.Relationship) {
			return domainerror.NewEstateError(
				domainerror.ErrCodeInvalidRelationship,
				"beneficiary relationship is not a known variant",
				domainerror.ErrInvalidRelationship,
			)
		}
		if !derivation.IsValidPercentage(b.Percentage) {
			return domainerror.NewEstateError(
				domainerror.ErrCodeInvalidBeneficiaryPercentage,
				"beneficiary percentage must be between 0 and 100",
				domainerror.ErrInvalidBeneficiaryPercentage,
			)
		}
	}
	return nil
}

func validateDocuments(documents []entity.EstateDocument) error {
	for _, doc := range documents {
		if !entity.IsValidEstateDocumentType(doc.Type) {
			return domainerror.NewEstateError(
				domainerror.ErrCodeInvalidEstateDocumentType,
				"document type is not a known variant",
				domainerror.ErrInvalidEstateDocumentType,
			)
		}
		if !entity.IsValidEstateDocumentStatus(doc.Status) {
			return domainerror.NewEstateError(
				domainerror.ErrCodeInvalidEstateDocumentStatus,
				"document status is not a known variant",
				domainerror.ErrInvalidEstateDocumentStatus,
			)
		}
	}
	return nil
}

func validateNotes(notes string) error {
	if len(notes) > entity.MaxEstateNotesLength {
		return domainerror.NewEstateError(
			domainerror.ErrCodeEstateNotesTooLong,
			"notes must be at most 2000 characters",
			domainerror.ErrEstateNotesTooLong,
		)
	}
	return nil
}
