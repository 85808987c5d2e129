package derivation

import (
	"github.com/finance-planner/backend/internal/domain/entity"
)

// DeriveTax recomputes the derived fields of a tax record from its raw
// income and deduction components:
//
//	totalIncome     = wages + dividends + capitalGains + businessIncome + otherIncome
//	totalDeductions = standard + itemized + other
//	taxableIncome   = totalIncome - totalDeductions
//	refundOrOwed    = taxPaid - taxOwed
//
// It is total on validated input and mutates only derived fields.
func DeriveTax(record *entity.TaxRecord) {
	record.TotalIncome = record.Income.Wages.
		Add(record.Income.Dividends).
		Add(record.Income.CapitalGains).
		Add(record.Income.BusinessIncome).
		Add(record.Income.OtherIncome)

	record.TotalDeductions = record.Deductions.StandardDeduction.
		Add(record.Deductions.ItemizedDeduction).
		Add(record.Deductions.OtherDeductions)

	record.TaxableIncome = record.TotalIncome.Sub(record.TotalDeductions)
	record.RefundOrOwed = record.TaxPaid.Sub(record.TaxOwed)
}
