// Package derivation computes the derived fields of tax records, budgets
// and estate plans. Every function here is pure with respect to its inputs
// plus an explicit clock: callers supply "now", the package never reads
// ambient time. Derivation runs after input validation and before every
// store write.
package derivation

import "github.com/shopspring/decimal"

var oneHundred = decimal.NewFromInt(100)

// PercentageUsed returns the rounded percentage of budgeted that actual
// represents. A zero budgeted amount yields 0 rather than dividing by zero.
// Rounding is half-up on the real-valued quotient.
func PercentageUsed(actual, budgeted decimal.Decimal) int64 {
	if budgeted.IsZero() {
		return 0
	}
	return actual.Div(budgeted).Mul(oneHundred).Round(0).IntPart()
}

// IsValidPercentage reports whether p is within [0, 100]. Percentage fields
// are validated at the input boundary and rejected when out of range, never
// clamped.
func IsValidPercentage(p float64) bool {
	return p >= 0 && p <= 100
}

// IsValidThreshold reports whether an alert threshold is within [0, 100].
func IsValidThreshold(t int) bool {
	return t >= 0 && t <= 100
}
