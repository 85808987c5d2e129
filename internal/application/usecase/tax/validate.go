// Package tax contains tax record use cases.
package tax

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
	domainerror "github.com/finance-planner/backend/internal/domain/error"
)

// validateTaxYear checks the tax year against the accepted range. The upper
// bound is one year past the clock's current year so next-year drafts can be
// started early.
func validateTaxYear(year int, now time.Time) error {
	if year < entity.MinTaxYear || year > now.Year()+1 {
		return domainerror.NewTaxError(
			domainerror.ErrCodeInvalidTaxYear,
			"tax year must be between 2000 and next year",
			domainerror.ErrInvalidTaxYear,
		)
	}
	return nil
}

// validateIncomeSources rejects negative income components.
func validateIncomeSources(income entity.IncomeSources) error {
	components := []decimal.Decimal{
		income.Wages,
		income.Dividends,
		income.CapitalGains,
		income.BusinessIncome,
		income.OtherIncome,
	}
	for _, c := range components {
		if c.IsNegative() {
			return domainerror.NewTaxError(
				domainerror.ErrCodeNegativeIncomeComponent,
				"income components must be non-negative",
				domainerror.ErrNegativeIncomeComponent,
			)
		}
	}
	return nil
}

// validateNotes enforces the notes length limit.
func validateNotes(notes string) error {
	if len(notes) > entity.MaxTaxNotesLength {
		return domainerror.NewTaxError(
			domainerror.ErrCodeTaxNotesTooLong,
			"notes must be at most 1000 characters",
			domainerror.ErrTaxNotesTooLong,
		)
	}
	return nil
}
