package derivation

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finance-planner/backend/internal/domain/entity"
)

// reviewInterval is how far out the next review is scheduled when a plan
// has never been given one.
const reviewInterval = 1 // years

// DeriveEstate recomputes the derived fields of an estate plan. The total
// estate value is the sum of asset estimated values; the next review date
// is defaulted to one year out, only when absent.
func DeriveEstate(p *entity.EstatePlan, now time.Time) {
	total := decimal.Zero
	for _, asset := range p.Assets {
		total = total.Add(asset.EstimatedValue)
	}
	p.TotalEstateValue = total

	if p.NextReviewDate == nil {
		next := now.AddDate(reviewInterval, 0, 0)
		p.NextReviewDate = &next
	}
}

// NeedsReview reports whether a plan's review date has arrived. Plans
// without a review date never need review.
func NeedsReview(p *entity.EstatePlan, now time.Time) bool {
	return p.NextReviewDate != nil && !p.NextReviewDate.After(now)
}
