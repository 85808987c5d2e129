// Package error defines domain-specific errors for the Finance Planner application.
package error

import "errors"

// Tax record domain errors.
var (
	// ErrTaxRecordNotFound is returned when a tax record is not found in the system.
	ErrTaxRecordNotFound = errors.New("tax record not found")

	// ErrUnauthorizedTaxRecordAccess is returned when user is not authorized to access a tax record.
	ErrUnauthorizedTaxRecordAccess = errors.New("unauthorized access to tax record")

	// ErrInvalidTaxYear is returned when the tax year is outside the accepted range.
	ErrInvalidTaxYear = errors.New("invalid tax year")

	// ErrInvalidFilingStatus is returned when the filing status is not a known variant.
	ErrInvalidFilingStatus = errors.New("invalid filing status")

	// ErrInvalidTaxRecordStatus is returned when the record status is not a known variant.
	ErrInvalidTaxRecordStatus = errors.New("invalid tax record status")

	// ErrNegativeIncomeComponent is returned when an income component is negative.
	ErrNegativeIncomeComponent = errors.New("income components must be non-negative")

	// ErrTaxNotesTooLong is returned when the notes field exceeds the maximum length.
	ErrTaxNotesTooLong = errors.New("notes too long")

	// ErrTaxRecordAlreadyExists is returned when a record for the same year already exists.
	ErrTaxRecordAlreadyExists = errors.New("tax record already exists for this year")
)

// TaxErrorCode defines error codes for tax record errors.
// Format: TAX-XXYYYY where XX is category and YYYY is specific error.
type TaxErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidTaxYear          TaxErrorCode = "TAX-010001"
	ErrCodeInvalidFilingStatus     TaxErrorCode = "TAX-010002"
	ErrCodeInvalidTaxRecordStatus  TaxErrorCode = "TAX-010003"
	ErrCodeNegativeIncomeComponent TaxErrorCode = "TAX-010004"
	ErrCodeTaxNotesTooLong         TaxErrorCode = "TAX-010005"
	ErrCodeMissingTaxFields        TaxErrorCode = "TAX-010006"

	// Access errors (02XXXX)
	ErrCodeTaxRecordNotFound       TaxErrorCode = "TAX-020001"
	ErrCodeUnauthorizedTaxRecord   TaxErrorCode = "TAX-020002"
	ErrCodeTaxRecordAlreadyExists  TaxErrorCode = "TAX-020003"
)

// TaxError represents a tax record error with code and message.
type TaxError struct {
	Code    TaxErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TaxError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TaxError) Unwrap() error {
	return e.Err
}

// NewTaxError creates a new TaxError with the given code and message.
func NewTaxError(code TaxErrorCode, message string, err error) *TaxError {
	return &TaxError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
