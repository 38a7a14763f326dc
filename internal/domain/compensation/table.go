package compensation

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vaclaims/ratings-api/internal/domain"
)

const (
	// MinDependentRating is the lowest combined rating that earns dependent add-ons.
	MinDependentRating = 30

	// MaxDependentParents caps how many dependent parents are paid for.
	MaxDependentParents = 2

	centPlaces = 2
)

// DependentRates holds the per-dependent monthly add-ons for one year,
// keyed by combined rating tier (30 through 100).
type DependentRates struct {
	Spouse map[int]decimal.Decimal
	Child  map[int]decimal.Decimal
	Parent map[int]decimal.Decimal
}

// YearRates is the published compensation schedule for one rate year.
// Dependents is nil for years without a published dependent table.
type YearRates struct {
	Base       map[int]decimal.Decimal
	Dependents *DependentRates
}

// RateTable is an immutable, versioned set of compensation schedules.
// Construct it with NewRateTable or DefaultRateTable; it is safe for
// concurrent use because nothing mutates it after construction.
type RateTable struct {
	years map[int]YearRates
}

// NewRateTable validates and deep-copies the given schedules.
func NewRateTable(years map[int]YearRates) (*RateTable, error) {
	copied := make(map[int]YearRates, len(years))

	for year, rates := range years {
		if len(rates.Base) == 0 {
			return nil, fmt.Errorf("rate year %d: base rates cannot be empty", year)
		}

		base, err := copyTiers(rates.Base, domain.MinRating)
		if err != nil {
			return nil, fmt.Errorf("rate year %d base rates: %w", year, err)
		}

		yr := YearRates{Base: base}
		if rates.Dependents != nil {
			deps, err := copyDependents(rates.Dependents)
			if err != nil {
				return nil, fmt.Errorf("rate year %d dependent rates: %w", year, err)
			}
			yr.Dependents = deps
		}

		copied[year] = yr
	}

	return &RateTable{years: copied}, nil
}

// Years returns the supported rate years in ascending order.
func (t *RateTable) Years() []int {
	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// LatestYear returns the most recent supported year, or 0 for an empty table.
func (t *RateTable) LatestYear() int {
	years := t.Years()
	if len(years) == 0 {
		return 0
	}
	return years[len(years)-1]
}

// HasYear reports whether the table has a schedule for year.
func (t *RateTable) HasYear(year int) bool {
	_, ok := t.years[year]
	return ok
}

// HasDependentRates reports whether year has a published dependent table.
func (t *RateTable) HasDependentRates(year int) bool {
	yr, ok := t.years[year]
	return ok && yr.Dependents != nil
}

// BaseRate returns the veteran-alone monthly rate for a combined rating.
func (t *RateTable) BaseRate(year, combinedRating int) (decimal.Decimal, error) {
	yr, ok := t.years[year]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %d", domain.ErrUnknownYear, year)
	}
	return lookupTier(yr.Base, year, combinedRating)
}

func lookupTier(tiers map[int]decimal.Decimal, year, combinedRating int) (decimal.Decimal, error) {
	rate, ok := tiers[combinedRating]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %d%% in %d", domain.ErrUnknownRatingTier, combinedRating, year)
	}
	return rate, nil
}

func copyTiers(tiers map[int]decimal.Decimal, minTier int) (map[int]decimal.Decimal, error) {
	out := make(map[int]decimal.Decimal, len(tiers))
	for tier, amount := range tiers {
		if err := domain.ValidatePercentage(tier); err != nil {
			return nil, err
		}
		if tier < minTier {
			return nil, fmt.Errorf("tier %d is below minimum %d", tier, minTier)
		}
		if amount.IsNegative() {
			return nil, fmt.Errorf("tier %d has negative amount %s", tier, amount)
		}
		out[tier] = amount
	}
	return out, nil
}

func copyDependents(d *DependentRates) (*DependentRates, error) {
	spouse, err := copyTiers(d.Spouse, MinDependentRating)
	if err != nil {
		return nil, fmt.Errorf("spouse: %w", err)
	}
	child, err := copyTiers(d.Child, MinDependentRating)
	if err != nil {
		return nil, fmt.Errorf("child: %w", err)
	}
	parent, err := copyTiers(d.Parent, MinDependentRating)
	if err != nil {
		return nil, fmt.Errorf("parent: %w", err)
	}
	return &DependentRates{Spouse: spouse, Child: child, Parent: parent}, nil
}
