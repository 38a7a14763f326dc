package smc

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/vaclaims/ratings-api/internal/domain"
)

// Rates holds the monthly SMC amounts for one rate year.
type Rates struct {
	K  decimal.Decimal
	L  decimal.Decimal
	M  decimal.Decimal
	N  decimal.Decimal
	O  decimal.Decimal
	R1 decimal.Decimal
	R2 decimal.Decimal
	S  decimal.Decimal
}

// For returns the monthly amount for level. The switch covers every
// domain.SMCLevel; an invalid level has no rate.
func (r Rates) For(level domain.SMCLevel) decimal.Decimal {
	switch level {
	case domain.SMCLevelK:
		return r.K
	case domain.SMCLevelL:
		return r.L
	case domain.SMCLevelM:
		return r.M
	case domain.SMCLevelN:
		return r.N
	case domain.SMCLevelO:
		return r.O
	case domain.SMCLevelR1:
		return r.R1
	case domain.SMCLevelR2:
		return r.R2
	case domain.SMCLevelS:
		return r.S
	default:
		return decimal.Zero
	}
}

// Set returns a copy of r with level's amount replaced.
func (r Rates) Set(level domain.SMCLevel, amount decimal.Decimal) (Rates, error) {
	switch level {
	case domain.SMCLevelK:
		r.K = amount
	case domain.SMCLevelL:
		r.L = amount
	case domain.SMCLevelM:
		r.M = amount
	case domain.SMCLevelN:
		r.N = amount
	case domain.SMCLevelO:
		r.O = amount
	case domain.SMCLevelR1:
		r.R1 = amount
	case domain.SMCLevelR2:
		r.R2 = amount
	case domain.SMCLevelS:
		r.S = amount
	default:
		return r, fmt.Errorf("%w: %d", domain.ErrUnknownSMCLevel, int(level))
	}
	return r, nil
}

// RateTable is an immutable set of SMC schedules keyed by rate year.
type RateTable struct {
	years map[int]Rates
}

// NewRateTable validates and copies the given schedules.
func NewRateTable(years map[int]Rates) (*RateTable, error) {
	copied := make(map[int]Rates, len(years))
	for year, rates := range years {
		for _, level := range domain.AllSMCLevels() {
			if rates.For(level).IsNegative() {
				return nil, fmt.Errorf("SMC rate year %d: level %s is negative", year, level)
			}
		}
		copied[year] = rates
	}
	return &RateTable{years: copied}, nil
}

// Rates returns the schedule for year.
func (t *RateTable) Rates(year int) (Rates, error) {
	r, ok := t.years[year]
	if !ok {
		return Rates{}, fmt.Errorf("%w: SMC %d", domain.ErrUnknownYear, year)
	}
	return r, nil
}

// HasYear reports whether the table has a schedule for year.
func (t *RateTable) HasYear(year int) bool {
	_, ok := t.years[year]
	return ok
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

// DefaultRateTable returns the built-in veteran-alone SMC schedules.
func DefaultRateTable() *RateTable {
	table, err := NewRateTable(DefaultYearRates())
	if err != nil {
		panic("smc: invalid built-in rate data: " + err.Error())
	}
	return table
}

// DefaultYearRates returns a fresh copy of the built-in SMC schedule data.
func DefaultYearRates() map[int]Rates {
	return map[int]Rates{
		2022: {
			K:  decimal.RequireFromString("121.29"),
			L:  decimal.RequireFromString("4146.13"),
			M:  decimal.RequireFromString("4575.46"),
			N:  decimal.RequireFromString("5205.12"),
			O:  decimal.RequireFromString("5818.10"),
			R1: decimal.RequireFromString("8313.61"),
			R2: decimal.RequireFromString("9535.82"),
			S:  decimal.RequireFromString("3729.64"),
		},
		2023: {
			K:  decimal.RequireFromString("131.84"),
			L:  decimal.RequireFromString("4506.84"),
			M:  decimal.RequireFromString("4973.53"),
			N:  decimal.RequireFromString("5657.97"),
			O:  decimal.RequireFromString("6324.28"),
			R1: decimal.RequireFromString("9036.89"),
			R2: decimal.RequireFromString("10365.44"),
			S:  decimal.RequireFromString("4054.12"),
		},
		2024: {
			K:  decimal.RequireFromString("136.06"),
			L:  decimal.RequireFromString("4651.06"),
			M:  decimal.RequireFromString("5132.68"),
			N:  decimal.RequireFromString("5839.02"),
			O:  decimal.RequireFromString("6526.66"),
			R1: decimal.RequireFromString("9326.07"),
			R2: decimal.RequireFromString("10697.13"),
			S:  decimal.RequireFromString("4183.85"),
		},
		2025: {
			K:  decimal.RequireFromString("139.87"),
			L:  decimal.RequireFromString("4767.34"),
			M:  decimal.RequireFromString("5261.00"),
			N:  decimal.RequireFromString("5985.00"),
			O:  decimal.RequireFromString("6689.81"),
			R1: decimal.RequireFromString("9559.22"),
			R2: decimal.RequireFromString("10964.56"),
			S:  decimal.RequireFromString("4288.45"),
		},
	}
}
