// Package ratefile loads published compensation and SMC schedules from a
// YAML asset so new rate years ship without a code change.
package ratefile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/shopspring/decimal"
	"github.com/vaclaims/ratings-api/internal/domain"
	"github.com/vaclaims/ratings-api/internal/domain/compensation"
	"github.com/vaclaims/ratings-api/internal/domain/smc"
	"gopkg.in/yaml.v3"
)

// ErrInvalidRateFile is returned when a rate file cannot be parsed or
// describes an incomplete schedule.
var ErrInvalidRateFile = errors.New("invalid rate file")

// File is the on-disk layout. Amounts are written as decimal strings and
// tiers as integer percentages.
//
//	compensation:
//	  2026:
//	    base: {0: "0.00", 10: "180.42", ...}
//	    dependents:
//	      spouse: {30: "65.00", ...}
//	      child:  {30: "33.00", ...}
//	      parent: {30: "52.00", ...}
//	smc:
//	  2026: {k: "143.00", l: "4890.00", ...}
type File struct {
	Compensation map[int]CompensationYear  `yaml:"compensation"`
	SMC          map[int]map[string]string `yaml:"smc"`
}

// CompensationYear is one year of the compensation section.
type CompensationYear struct {
	Base       map[int]string  `yaml:"base"`
	Dependents *DependentsYear `yaml:"dependents"`
}

// DependentsYear is the optional dependent add-on table for one year.
type DependentsYear struct {
	Spouse map[int]string `yaml:"spouse"`
	Child  map[int]string `yaml:"child"`
	Parent map[int]string `yaml:"parent"`
}

// Tables is the pair of immutable rate tables the engines price against.
type Tables struct {
	Compensation *compensation.RateTable
	SMC          *smc.RateTable
}

// Defaults returns the built-in tables.
func Defaults() *Tables {
	return &Tables{
		Compensation: compensation.DefaultRateTable(),
		SMC:          smc.DefaultRateTable(),
	}
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string) (*Tables, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("rate file: open %q: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	tables, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("rate file %q: %w", path, err)
	}
	return tables, nil
}

// Load parses a YAML rate file. Years present in the file replace the
// built-in schedule for the same year; every other built-in year is kept.
func Load(r io.Reader) (*Tables, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var file File
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: parse yaml: %v", ErrInvalidRateFile, err)
	}

	compYears := compensation.DefaultYearRates()
	for year, y := range file.Compensation {
		rates, err := y.toYearRates()
		if err != nil {
			return nil, fmt.Errorf("%w: compensation %d: %v", ErrInvalidRateFile, year, err)
		}
		compYears[year] = rates
	}

	smcYears := smc.DefaultYearRates()
	for year, levels := range file.SMC {
		rates, err := toSMCRates(levels)
		if err != nil {
			return nil, fmt.Errorf("%w: smc %d: %v", ErrInvalidRateFile, year, err)
		}
		smcYears[year] = rates
	}

	compTable, err := compensation.NewRateTable(compYears)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRateFile, err)
	}
	smcTable, err := smc.NewRateTable(smcYears)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRateFile, err)
	}

	// A report prices SMC at its compensation year.
	for _, year := range compTable.Years() {
		if !smcTable.HasYear(year) {
			return nil, fmt.Errorf("%w: compensation %d has no SMC schedule", ErrInvalidRateFile, year)
		}
	}

	return &Tables{Compensation: compTable, SMC: smcTable}, nil
}

func (y CompensationYear) toYearRates() (compensation.YearRates, error) {
	base, err := parseTiers("base", y.Base)
	if err != nil {
		return compensation.YearRates{}, err
	}
	rates := compensation.YearRates{Base: base}
	if y.Dependents == nil {
		return rates, nil
	}

	spouse, err := parseTiers("spouse", y.Dependents.Spouse)
	if err != nil {
		return compensation.YearRates{}, err
	}
	child, err := parseTiers("child", y.Dependents.Child)
	if err != nil {
		return compensation.YearRates{}, err
	}
	parent, err := parseTiers("parent", y.Dependents.Parent)
	if err != nil {
		return compensation.YearRates{}, err
	}
	rates.Dependents = &compensation.DependentRates{Spouse: spouse, Child: child, Parent: parent}
	return rates, nil
}

func parseTiers(name string, in map[int]string) (map[int]decimal.Decimal, error) {
	out := make(map[int]decimal.Decimal, len(in))
	for tier, raw := range in {
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return nil, fmt.Errorf("%s tier %d: amount %q is not a decimal", name, tier, raw)
		}
		out[tier] = amount
	}
	return out, nil
}

// toSMCRates requires every level to be priced.
func toSMCRates(levels map[string]string) (smc.Rates, error) {
	var rates smc.Rates
	seen := map[domain.SMCLevel]bool{}

	for tag, raw := range levels {
		level, err := domain.ParseSMCLevel(tag)
		if err != nil {
			return smc.Rates{}, err
		}
		amount, err := decimal.NewFromString(raw)
		if err != nil {
			return smc.Rates{}, fmt.Errorf("level %s: amount %q is not a decimal", level, raw)
		}
		if rates, err = rates.Set(level, amount); err != nil {
			return smc.Rates{}, err
		}
		seen[level] = true
	}

	for _, level := range domain.AllSMCLevels() {
		if !seen[level] {
			return smc.Rates{}, fmt.Errorf("level %s is missing", level)
		}
	}
	return rates, nil
}
