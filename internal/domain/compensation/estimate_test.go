package compensation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaclaims/ratings-api/internal/domain"
)

func TestEstimateCompensation_Published2024Rate(t *testing.T) {
	t.Parallel()
	table := DefaultRateTable()

	total, err := table.EstimateCompensation(100, false, 0, 0, 2024)

	require.NoError(t, err)
	assert.Equal(t, "3737.85", total.StringFixed(2))
}

func TestEstimateCompensation_UnknownYear(t *testing.T) {
	t.Parallel()
	table := DefaultRateTable()

	total, err := table.EstimateCompensation(100, false, 0, 0, 1999)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnknownYear)
	assert.True(t, total.IsZero())
}

func TestEstimate(t *testing.T) {
	t.Parallel()
	table := DefaultRateTable()

	testCases := []struct {
		name           string
		rating         int
		deps           Dependents
		year           int
		total          string
		spouse         string
		children       string
		parents        string
		parentsCounted int
		depsAvailable  bool
	}{
		{
			name:          "veteran alone",
			rating:        70,
			year:          2024,
			total:         "1716.28",
			spouse:        "0",
			children:      "0",
			parents:       "0",
			depsAvailable: true,
		},
		{
			name:           "all dependent types with parents capped",
			rating:         30,
			deps:           Dependents{Spouse: true, ChildrenUnder18: 2, Parents: 3},
			year:           2024,
			total:          "748.31", // 524.31 + 62 + 2*31 + 2*50
			spouse:         "62",
			children:       "62",
			parents:        "100",
			parentsCounted: 2,
			depsAvailable:  true,
		},
		{
			name:          "no add-ons below thirty percent",
			rating:        20,
			deps:          Dependents{Spouse: true, ChildrenUnder18: 1},
			year:          2024,
			total:         "338.49",
			spouse:        "0",
			children:      "0",
			parents:       "0",
			depsAvailable: true,
		},
		{
			name:          "hundred percent with spouse",
			rating:        100,
			deps:          Dependents{Spouse: true},
			year:          2024,
			total:         "3946.25",
			spouse:        "208.40",
			children:      "0",
			parents:       "0",
			depsAvailable: true,
		},
		{
			name:          "year without dependent table uses base rate",
			rating:        50,
			deps:          Dependents{Spouse: true, ChildrenUnder18: 2},
			year:          2023,
			total:         "1041.82",
			spouse:        "0",
			children:      "0",
			parents:       "0",
			depsAvailable: false,
		},
		{
			name:          "zero percent",
			rating:        0,
			year:          2025,
			total:         "0",
			spouse:        "0",
			children:      "0",
			parents:       "0",
			depsAvailable: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			est, err := table.Estimate(tc.rating, tc.deps, tc.year)
			require.NoError(t, err)

			assert.Equal(t, tc.year, est.Year)
			assert.Equal(t, tc.rating, est.CombinedRating)
			assert.Truef(t, decimal.RequireFromString(tc.total).Equal(est.MonthlyTotal),
				"total: want %s got %s", tc.total, est.MonthlyTotal)
			assert.Truef(t, decimal.RequireFromString(tc.spouse).Equal(est.SpouseAmount),
				"spouse: want %s got %s", tc.spouse, est.SpouseAmount)
			assert.Truef(t, decimal.RequireFromString(tc.children).Equal(est.ChildrenAmount),
				"children: want %s got %s", tc.children, est.ChildrenAmount)
			assert.Truef(t, decimal.RequireFromString(tc.parents).Equal(est.ParentsAmount),
				"parents: want %s got %s", tc.parents, est.ParentsAmount)
			assert.Equal(t, tc.parentsCounted, est.ParentsCounted)
			assert.Equal(t, tc.depsAvailable, est.DependentRatesAvailable)
		})
	}
}

func TestEstimate_DegradedModeIsObservableWithoutDependents(t *testing.T) {
	t.Parallel()
	table := DefaultRateTable()

	degraded, err := table.Estimate(50, Dependents{}, 2023)
	require.NoError(t, err)
	full, err := table.Estimate(50, Dependents{}, 2024)
	require.NoError(t, err)

	assert.False(t, degraded.DependentRatesAvailable)
	assert.True(t, full.DependentRatesAvailable)
}

func TestEstimate_Errors(t *testing.T) {
	t.Parallel()
	table := DefaultRateTable()

	testCases := []struct {
		name   string
		rating int
		deps   Dependents
		year   int
		target error
	}{
		{name: "rating not a multiple of ten", rating: 55, year: 2024, target: domain.ErrInvalidRating},
		{name: "rating above hundred", rating: 110, year: 2024, target: domain.ErrInvalidRating},
		{name: "negative children", rating: 50, deps: Dependents{ChildrenUnder18: -1}, year: 2024, target: domain.ErrInvalidDependents},
		{name: "negative parents", rating: 50, deps: Dependents{Parents: -2}, year: 2024, target: domain.ErrInvalidDependents},
		{name: "unknown year", rating: 50, year: 2030, target: domain.ErrUnknownYear},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := table.Estimate(tc.rating, tc.deps, tc.year)
			assert.ErrorIs(t, err, tc.target)
		})
	}
}

func TestEstimate_MissingTierIsAnError(t *testing.T) {
	t.Parallel()

	table, err := NewRateTable(map[int]YearRates{
		2024: {Base: map[int]decimal.Decimal{100: decimal.RequireFromString("3737.85")}},
	})
	require.NoError(t, err)

	_, err = table.Estimate(90, Dependents{}, 2024)
	assert.ErrorIs(t, err, domain.ErrUnknownRatingTier)
}

func TestEstimate_MissingDependentTierIsAnError(t *testing.T) {
	t.Parallel()

	table, err := NewRateTable(map[int]YearRates{
		2024: {
			Base: map[int]decimal.Decimal{40: decimal.RequireFromString("755.28")},
			Dependents: &DependentRates{
				Spouse: map[int]decimal.Decimal{30: decimal.RequireFromString("62.00")},
			},
		},
	})
	require.NoError(t, err)

	_, err = table.Estimate(40, Dependents{Spouse: true}, 2024)
	assert.ErrorIs(t, err, domain.ErrUnknownRatingTier)
}

func TestEstimate_RoundsToCents(t *testing.T) {
	t.Parallel()

	table, err := NewRateTable(map[int]YearRates{
		2024: {
			Base: map[int]decimal.Decimal{30: decimal.RequireFromString("100.005")},
			Dependents: &DependentRates{
				Child: map[int]decimal.Decimal{30: decimal.RequireFromString("0.1")},
			},
		},
	})
	require.NoError(t, err)

	est, err := table.Estimate(30, Dependents{ChildrenUnder18: 3}, 2024)
	require.NoError(t, err)

	// Binary floats would accumulate 0.1*3 as 0.30000000000000004.
	assert.Equal(t, "0.30", est.ChildrenAmount.StringFixed(2))
	assert.Equal(t, "100.31", est.MonthlyTotal.StringFixed(2))
}
