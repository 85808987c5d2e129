// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Estate plan domain errors.
var (
	// ErrEstatePlanNotFound is returned when an estate plan is not found in the system.
	ErrEstatePlanNotFound = errors.New("estate plan not found")

	// ErrUnauthorizedEstateAccess is returned when user is not authorized to access an estate plan.
	ErrUnauthorizedEstateAccess = errors.New("unauthorized access to estate plan")

	// ErrInvalidEstatePlanType is returned when the plan type is not a known variant.
	ErrInvalidEstatePlanType = errors.New("invalid estate plan type")

	// ErrInvalidEstatePlanStatus is returned when the plan status is not a known variant.
	ErrInvalidEstatePlanStatus = errors.New("invalid estate plan status")

	// ErrInvalidAssetType is returned when an asset type is not a known variant.
	ErrInvalidAssetType = errors.New("invalid asset type")

	// ErrInvalidAssetValue is returned when an asset's estimated value is negative.
	ErrInvalidAssetValue = errors.New("asset estimated value must be non-negative")

	// ErrInvalidRelationship is returned when a beneficiary relationship is not a known variant.
	ErrInvalidRelationship = errors.New("invalid beneficiary relationship")

	// ErrInvalidBeneficiaryPercentage is returned when a percentage split is outside [0, 100].
	ErrInvalidBeneficiaryPercentage = errors.New("beneficiary percentage must be between 0 and 100")

	// ErrInvalidEstateDocumentType is returned when a document type is not a known variant.
	ErrInvalidEstateDocumentType = errors.New("invalid estate document type")

	// ErrInvalidEstateDocumentStatus is returned when a document status is not a known variant.
	ErrInvalidEstateDocumentStatus = errors.New("invalid estate document status")

	// ErrEstateNotesTooLong is returned when the notes field exceeds the maximum length.
	ErrEstateNotesTooLong = errors.New("notes too long")

	// ErrEmptyEstatePlanName is returned when the plan name is empty.
	ErrEmptyEstatePlanName = errors.New("estate plan name cannot be empty")
)

// EstateErrorCode defines error codes for estate plan errors.
// Format: EST-XXYYYY where XX is category and YYYY is specific error.
type EstateErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEstatePlanType        EstateErrorCode = "EST-010001"
	ErrCodeInvalidEstatePlanStatus      EstateErrorCode = "EST-010002"
	ErrCodeInvalidAssetType             EstateErrorCode = "EST-010003"
	ErrCodeInvalidAssetValue            EstateErrorCode = "EST-010004"
	ErrCodeInvalidRelationship          EstateErrorCode = "EST-010005"
	ErrCodeInvalidBeneficiaryPercentage EstateErrorCode = "EST-010006"
	ErrCodeInvalidEstateDocumentType    EstateErrorCode = "EST-010007"
	ErrCodeInvalidEstateDocumentStatus  EstateErrorCode = "EST-010008"
	ErrCodeEstateNotesTooLong           EstateErrorCode = "EST-010009"
	ErrCodeEmptyEstatePlanName          EstateErrorCode = "EST-010010"
	ErrCodeMissingEstateFields          EstateErrorCode = "EST-010011"

	// Access errors (02XXXX)
	ErrCodeEstatePlanNotFound EstateErrorCode = "EST-020001"
	ErrCodeUnauthorizedEstate EstateErrorCode = "EST-020002"
)

// EstateError represents an estate plan error with code and message.
type EstateError struct {
	Code    EstateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *EstateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *EstateError) Unwrap() error {
	return e.Err
}

// NewEstateError creates a new EstateError with the given code and message.
func NewEstateError(code EstateErrorCode, message string, err error) *EstateError {
	return &EstateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
