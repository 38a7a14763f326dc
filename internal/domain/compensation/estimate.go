package compensation

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/vaclaims/ratings-api/internal/domain"
)

// Dependents describes the veteran's dependents for rate purposes.
type Dependents struct {
	Spouse          bool
	ChildrenUnder18 int
	Parents         int
}

// Estimate computes the monthly compensation breakdown for a combined rating.
//
// Dependent add-ons apply only at MinDependentRating and above. Parents are
// capped at MaxDependentParents. Years without a dependent table yield the
// base rate with DependentRatesAvailable set to false.
func (t *RateTable) Estimate(combinedRating int, deps Dependents, year int) (domain.CompensationEstimate, error) {
	if err := domain.ValidatePercentage(combinedRating); err != nil {
		return domain.CompensationEstimate{}, err
	}
	if deps.ChildrenUnder18 < 0 || deps.Parents < 0 {
		return domain.CompensationEstimate{}, fmt.Errorf(
			"%w: children=%d parents=%d", domain.ErrInvalidDependents, deps.ChildrenUnder18, deps.Parents)
	}

	yr, ok := t.years[year]
	if !ok {
		return domain.CompensationEstimate{}, fmt.Errorf("%w: %d", domain.ErrUnknownYear, year)
	}

	base, err := lookupTier(yr.Base, year, combinedRating)
	if err != nil {
		return domain.CompensationEstimate{}, err
	}

	est := domain.CompensationEstimate{
		Year:                    year,
		CombinedRating:          combinedRating,
		BaseRate:                base.Round(centPlaces),
		SpouseAmount:            decimal.Zero,
		ChildrenAmount:          decimal.Zero,
		ParentsAmount:           decimal.Zero,
		DependentRatesAvailable: yr.Dependents != nil,
	}

	if yr.Dependents != nil && combinedRating >= MinDependentRating {
		if err := applyDependents(&est, yr.Dependents, deps); err != nil {
			return domain.CompensationEstimate{}, err
		}
	}

	est.MonthlyTotal = est.BaseRate.
		Add(est.SpouseAmount).
		Add(est.ChildrenAmount).
		Add(est.ParentsAmount).
		Round(centPlaces)

	return est, nil
}

// EstimateCompensation returns only the monthly total. Callers that need to
// distinguish the base-rate-only mode should use Estimate.
func (t *RateTable) EstimateCompensation(
	combinedRating int,
	spouse bool,
	childrenUnder18 int,
	dependentParents int,
	year int,
) (decimal.Decimal, error) {
	est, err := t.Estimate(combinedRating, Dependents{
		Spouse:          spouse,
		ChildrenUnder18: childrenUnder18,
		Parents:         dependentParents,
	}, year)
	if err != nil {
		return decimal.Zero, err
	}
	return est.MonthlyTotal, nil
}

func applyDependents(est *domain.CompensationEstimate, rates *DependentRates, deps Dependents) error {
	tier := est.CombinedRating

	if deps.Spouse {
		amount, err := lookupTier(rates.Spouse, est.Year, tier)
		if err != nil {
			return fmt.Errorf("spouse add-on: %w", err)
		}
		est.SpouseAmount = amount.Round(centPlaces)
	}

	if deps.ChildrenUnder18 > 0 {
		amount, err := lookupTier(rates.Child, est.Year, tier)
		if err != nil {
			return fmt.Errorf("child add-on: %w", err)
		}
		est.ChildrenAmount = amount.Mul(decimal.NewFromInt(int64(deps.ChildrenUnder18))).Round(centPlaces)
	}

	if deps.Parents > 0 {
		counted := deps.Parents
		if counted > MaxDependentParents {
			counted = MaxDependentParents
		}
		amount, err := lookupTier(rates.Parent, est.Year, tier)
		if err != nil {
			return fmt.Errorf("parent add-on: %w", err)
		}
		est.ParentsAmount = amount.Mul(decimal.NewFromInt(int64(counted))).Round(centPlaces)
		est.ParentsCounted = counted
	}

	return nil
}
