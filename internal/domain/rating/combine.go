package rating

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/vaclaims/ratings-api/internal/domain"
)

// minBilateralRatings is the number of bilateral ratings needed before the
// bilateral factor is applied. A single flagged rating has no pair.
const minBilateralRatings = 2

var hundred = decimal.NewFromInt(domain.MaxRating)

// entry is a rating value on the 0-100 scale waiting to be folded.
type entry struct {
	value       decimal.Decimal
	description string
}

// combineTwo applies rating b to whatever remains healthy after a.
//
// Both values are percentages on the 0-100 scale. The contribution of b is
// b * (100 - a) / 100; the division is a decimal shift and therefore exact.
func combineTwo(a, b decimal.Decimal) (combined, contribution decimal.Decimal) {
	contribution = b.Mul(hundred.Sub(a)).Shift(-2)
	return a.Add(contribution), contribution
}

// combineMany sorts entries descending and folds them with combineTwo,
// recording one step per non-zero entry. Zero entries are the identity of
// the fold and are skipped.
func combineMany(entries []entry, prefix string) (decimal.Decimal, []domain.CalculationStep) {
	sorted := make([]entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].value.GreaterThan(sorted[j].value)
	})

	combined := decimal.Zero
	steps := make([]domain.CalculationStep, 0, len(sorted))
	for _, e := range sorted {
		if e.value.IsZero() {
			continue
		}

		remaining := hundred.Sub(combined)
		next, contribution := combineTwo(combined, e.value)
		steps = append(steps, domain.CalculationStep{
			Description:     prefix + e.description,
			RatingApplied:   e.value,
			RemainingBefore: remaining,
			Contribution:    contribution,
			CombinedAfter:   next,
		})
		combined = next
	}

	return combined, steps
}

// Combine folds the ratings into a single combined rating.
//
// Bilateral ratings (two or more flagged IsBilateral) are combined among
// themselves first, a bilateral factor of 10% of that subtotal is added, and
// the sum is folded into the remaining ratings as one synthetic entry. An
// empty list yields a zero result.
func Combine(ratings []domain.DisabilityRating) domain.CalculationResult {
	used := make([]domain.DisabilityRating, len(ratings))
	copy(used, ratings)

	result := domain.CalculationResult{
		CombinedRaw:            decimal.Zero,
		BilateralCombined:      decimal.Zero,
		BilateralFactorApplied: decimal.Zero,
		BilateralSubtotal:      decimal.Zero,
		StepByStep:             []domain.CalculationStep{},
		RatingsUsed:            used,
	}

	var bilateral, others []entry
	var groups []string
	for _, r := range ratings {
		e := entry{value: decimal.NewFromInt(int64(r.Percentage)), description: describe(r)}
		if r.IsBilateral {
			bilateral = append(bilateral, e)
			if r.BilateralGroup != "" && !contains(groups, r.BilateralGroup) {
				groups = append(groups, r.BilateralGroup)
			}
			continue
		}
		others = append(others, e)
	}

	if len(bilateral) < minBilateralRatings {
		others = append(others, bilateral...)
	} else {
		subtotal, steps := combineMany(bilateral, "bilateral: ")
		factor := subtotal.Shift(-1)
		combinedBilateral := decimal.Min(subtotal.Add(factor), hundred)

		result.BilateralSubtotal = subtotal
		result.BilateralFactorApplied = factor
		result.BilateralCombined = combinedBilateral
		result.StepByStep = append(result.StepByStep, steps...)

		others = append(others, entry{
			value:       combinedBilateral,
			description: bilateralDescription(subtotal, factor, groups),
		})
	}

	raw, steps := combineMany(others, "")
	result.StepByStep = append(result.StepByStep, steps...)
	result.CombinedRaw = raw
	result.CombinedRounded = RoundToNearestTen(raw)

	return result
}

func describe(r domain.DisabilityRating) string {
	if r.Description == "" {
		return fmt.Sprintf("%d%%", r.Percentage)
	}
	return fmt.Sprintf("%d%% %s", r.Percentage, r.Description)
}

func bilateralDescription(subtotal, factor decimal.Decimal, groups []string) string {
	desc := fmt.Sprintf("bilateral combined %s%% + factor %s%%", subtotal.String(), factor.String())
	if len(groups) > 0 {
		desc += " (" + strings.Join(groups, ", ") + ")"
	}
	return desc
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
