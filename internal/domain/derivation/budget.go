package derivation

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// alertSuppressionWindow is how long after a sent alert a budget stays
// quiet. The boundary is exclusive: exactly 24h after the last alert the
// suppression is already expired.
const alertSuppressionWindow = 24 * time.Hour

// UsageTier classifies how much of a budget has been consumed.
type UsageTier string

const (
	TierGood     UsageTier = "good"
	TierWarning  UsageTier = "warning"
	TierCritical UsageTier = "critical"
	TierExceeded UsageTier = "exceeded"
)

// DeriveBudget recomputes the derived fields of a budget from its raw
// fields and transaction list. Period-anchor fields and the recurring due
// date are defaulted exactly once, only when absent; the actual amount and
// status are recomputed unconditionally.
func DeriveBudget(b *entity.Budget, now time.Time) {
	if b.Year == 0 {
		b.Year = now.Year()
	}

	defaultPeriodAnchor(b, now)

	b.ActualAmount = TotalTransactions(b.Transactions)

	usage := PercentageUsed(b.ActualAmount, b.BudgetedAmount)
	switch {
	case usage >= 100:
		if b.Status == entity.BudgetStatusActive || b.Status == entity.BudgetStatusExceeded {
			b.Status = entity.BudgetStatusExceeded
		}
	case b.Status == entity.BudgetStatusExceeded:
		// Only the exceeded state recovers automatically; completed and
		// paused budgets are never overridden here.
		b.Status = entity.BudgetStatusActive
	}

	if b.Recurring.IsRecurring && b.Recurring.NextDueDate == nil {
		due := NextOccurrence(b.Recurring.Frequency, now)
		b.Recurring.NextDueDate = &due
	}
}

// defaultPeriodAnchor fills in the period-anchor field matching the
// budget's granularity, only when it is absent.
func defaultPeriodAnchor(b *entity.Budget, now time.Time) {
	switch b.Period {
	case entity.BudgetPeriodMonthly:
		if b.Month == 0 {
			b.Month = int(now.Month())
		}
	case entity.BudgetPeriodQuarterly:
		if b.Quarter == 0 {
			b.Quarter = (int(now.Month())-1)/3 + 1
		}
	case entity.BudgetPeriodWeekly:
		if b.Week == 0 {
			// The week number is counted from January 1 of the budget's own
			// year field, which may itself have just been defaulted. Across
			// a year boundary this can disagree with now's calendar week;
			// the behavior is intentional and matches the rollforward the
			// rest of the system expects.
			startOfYear := time.Date(b.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
			elapsed := now.Sub(startOfYear)
			b.Week = int(math.Ceil(elapsed.Hours() / (24 * 7)))
		}
	}
}

// TotalTransactions sums a transaction list: expenses add to spend, income
// entries offset it.
func TotalTransactions(txs []entity.BudgetTransaction) decimal.Decimal {
	total := decimal.Zero
	for _, tx := range txs {
		switch tx.Kind {
		case entity.TransactionKindExpense:
			total = total.Add(tx.Amount)
		case entity.TransactionKindIncome:
			total = total.Sub(tx.Amount)
		}
	}
	return total
}

// BudgetUsageTier classifies the budget's consumption against its alert
// thresholds. Exceeded wins over critical, critical over warning.
func BudgetUsageTier(b *entity.Budget) UsageTier {
	usage := PercentageUsed(b.ActualAmount, b.BudgetedAmount)
	switch {
	case usage >= 100:
		return TierExceeded
	case usage >= int64(b.Alerts.CriticalThreshold):
		return TierCritical
	case usage >= int64(b.Alerts.WarningThreshold):
		return TierWarning
	default:
		return TierGood
	}
}

// ShouldAlert reports whether a budget warrants an alert at the given
// instant. It never mutates LastAlertSent; stamping that field after
// dispatch is the caller's responsibility.
func ShouldAlert(b *entity.Budget, now time.Time) bool {
	if !b.Alerts.Enabled {
		return false
	}
	if b.Alerts.LastAlertSent != nil && now.Sub(*b.Alerts.LastAlertSent) < alertSuppressionWindow {
		return false
	}
	return PercentageUsed(b.ActualAmount, b.BudgetedAmount) >= int64(b.Alerts.WarningThreshold)
}

// NextOccurrence returns the next due date for a recurrence frequency,
// offset from the given instant.
func NextOccurrence(frequency entity.BudgetPeriod, from time.Time) time.Time {
	switch frequency {
	case entity.BudgetPeriodWeekly:
		return from.AddDate(0, 0, 7)
	case entity.BudgetPeriodQuarterly:
		return from.AddDate(0, 3, 0)
	case entity.BudgetPeriodYearly:
		return from.AddDate(1, 0, 0)
	default:
		return from.AddDate(0, 1, 0)
	}
}

// IsRecurringOverdue reports whether a recurring budget's next due date has
// arrived.
func IsRecurringOverdue(b *entity.Budget, now time.Time) bool {
	return b.Recurring.IsRecurring &&
		b.Recurring.NextDueDate != nil &&
		!b.Recurring.NextDueDate.After(now)
}
