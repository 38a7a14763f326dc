package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalculationStep records a single fold of the combined-rating calculation.
type CalculationStep struct {
	Description     string          `json:"description"`
	RatingApplied   decimal.Decimal `json:"rating_applied"`
	RemainingBefore decimal.Decimal `json:"remaining_before"`
	Contribution    decimal.Decimal `json:"contribution"`
	CombinedAfter   decimal.Decimal `json:"combined_after"`
}

// CalculationResult is the outcome of combining a list of disability ratings.
type CalculationResult struct {
	CombinedRaw            decimal.Decimal    `json:"combined_raw"`
	CombinedRounded        int                `json:"combined_rounded"`
	BilateralCombined      decimal.Decimal    `json:"bilateral_combined"`
	BilateralFactorApplied decimal.Decimal    `json:"bilateral_factor_applied"`
	BilateralSubtotal      decimal.Decimal    `json:"bilateral_subtotal"`
	StepByStep             []CalculationStep  `json:"step_by_step"`
	RatingsUsed            []DisabilityRating `json:"ratings_used"`
}

// CompensationEstimate is the monthly compensation breakdown for a combined rating.
type CompensationEstimate struct {
	Year           int             `json:"year"`
	CombinedRating int             `json:"combined_rating"`
	BaseRate       decimal.Decimal `json:"base_rate"`
	SpouseAmount   decimal.Decimal `json:"spouse_amount"`
	ChildrenAmount decimal.Decimal `json:"children_amount"`
	ParentsAmount  decimal.Decimal `json:"parents_amount"`
	ParentsCounted int             `json:"parents_counted"`
	MonthlyTotal   decimal.Decimal `json:"monthly_total"`

	// DependentRatesAvailable is false when the year has no published
	// dependent table and only the base rate was applied. It is independent
	// of whether the veteran has any dependents.
	DependentRatesAvailable bool `json:"dependent_rates_available"`
}

// SMCEvidence ties an SMC level to the condition that supports it.
type SMCEvidence struct {
	Level         SMCLevel `json:"level"`
	ConditionName string   `json:"condition_name"`
	Reason        string   `json:"reason"`
}

// SMCEligibilityResult is the outcome of evaluating conditions against the SMC tiers.
type SMCEligibilityResult struct {
	Eligible                 bool            `json:"eligible"`
	Levels                   []SMCLevel      `json:"levels"`
	PotentialLevels          []SMCLevel      `json:"potential_levels"`
	KCount                   int             `json:"k_count"`
	CombinedOther            int             `json:"combined_other"`
	EligibleConditions       []SMCEvidence   `json:"eligible_conditions"`
	Explanations             []string        `json:"explanations"`
	EstimatedMonthlyAddition decimal.Decimal `json:"estimated_monthly_addition"`
	Recommendations          []string        `json:"recommendations"`
	Year                     int             `json:"year"`
}

// HasLevel reports whether the level was definitively met.
func (r SMCEligibilityResult) HasLevel(level SMCLevel) bool {
	for _, l := range r.Levels {
		if l == level {
			return true
		}
	}
	return false
}

// IsPotential reports whether the level was flagged for VA adjudication.
func (r SMCEligibilityResult) IsPotential(level SMCLevel) bool {
	for _, l := range r.PotentialLevels {
		if l == level {
			return true
		}
	}
	return false
}

// TDIUEligibilityResult is the outcome of the unemployability check.
type TDIUEligibilityResult struct {
	SchedularEligible      bool               `json:"schedular_eligible"`
	ExtraschedularPossible bool               `json:"extraschedular_possible"`
	MeetsSingleDisability  bool               `json:"meets_single_disability"`
	MeetsCombinedCriteria  bool               `json:"meets_combined_criteria"`
	HighestSingleRating    int                `json:"highest_single_rating"`
	CombinedRating         int                `json:"combined_rating"`
	QualifyingRatings      []DisabilityRating `json:"qualifying_ratings"`
	Explanations           []string           `json:"explanations"`
	Recommendations        []string           `json:"recommendations"`
}

// ClaimReport bundles every engine's output for one evaluation request.
type ClaimReport struct {
	ID           uuid.UUID             `json:"id"`
	Year         int                   `json:"year"`
	Combined     CalculationResult     `json:"combined"`
	Compensation CompensationEstimate  `json:"compensation"`
	TDIU         TDIUEligibilityResult `json:"tdiu"`
	SMC          *SMCEligibilityResult `json:"smc,omitempty"`
	Notes        []string              `json:"notes,omitempty"`
	CreatedAt    time.Time             `json:"created_at"`
}
