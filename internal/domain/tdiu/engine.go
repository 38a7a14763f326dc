package tdiu

import (
	"fmt"

	"github.com/vaclaims/ratings-api/internal/domain"
)

// Schedular thresholds from 38 CFR 4.16(a) and the extraschedular floor.
const (
	SingleDisabilityThreshold = 60
	CombinedThreshold         = 70
	CombinedSupportingRating  = 40
	ExtraschedularFloor       = 40
)

// The three recommendation templates. Output is always exactly one of these.
const (
	RecommendationSchedular = "You appear to meet the schedular criteria for TDIU. " +
		"File VA Form 21-8940 with evidence that your service-connected conditions " +
		"prevent substantially gainful employment."

	RecommendationExtraschedular = "You do not meet the schedular percentage thresholds, " +
		"but the VA can grant TDIU on an extraschedular basis under 38 CFR 4.16(b). " +
		"Gather employment history and medical opinions on occupational impact and consult " +
		"an accredited representative."

	RecommendationNotEligible = "Your current ratings do not meet the TDIU criteria. " +
		"If your conditions have worsened, consider requesting an increased rating first."
)

// Check evaluates TDIU eligibility for the given ratings and the veteran's
// rounded combined rating.
//
// Either schedular path sets SchedularEligible. When the single-disability
// path is met its qualifying ratings are reported, even if the combined path
// is also met.
func Check(ratings []domain.DisabilityRating, combinedRating int) domain.TDIUEligibilityResult {
	result := domain.TDIUEligibilityResult{
		CombinedRating:    combinedRating,
		QualifyingRatings: []domain.DisabilityRating{},
		Explanations:      []string{},
	}

	var singles, supporting []domain.DisabilityRating
	for _, r := range ratings {
		if r.Percentage > result.HighestSingleRating {
			result.HighestSingleRating = r.Percentage
		}
		if r.Percentage >= SingleDisabilityThreshold {
			singles = append(singles, r)
		}
		if r.Percentage >= CombinedSupportingRating {
			supporting = append(supporting, r)
		}
	}

	if len(singles) > 0 {
		result.MeetsSingleDisability = true
		result.Explanations = append(result.Explanations, fmt.Sprintf(
			"A single disability is rated %d%%, meeting the %d%% single-disability threshold.",
			result.HighestSingleRating, SingleDisabilityThreshold))
	}

	if combinedRating >= CombinedThreshold && len(supporting) > 0 {
		result.MeetsCombinedCriteria = true
		result.Explanations = append(result.Explanations, fmt.Sprintf(
			"The combined rating is %d%% (at least %d%%) with at least one disability rated %d%% or more.",
			combinedRating, CombinedThreshold, CombinedSupportingRating))
	}

	result.SchedularEligible = result.MeetsSingleDisability || result.MeetsCombinedCriteria

	switch {
	case result.MeetsSingleDisability:
		result.QualifyingRatings = append(result.QualifyingRatings, singles...)
	case result.MeetsCombinedCriteria:
		result.QualifyingRatings = append(result.QualifyingRatings, supporting...)
	}

	if !result.SchedularEligible && combinedRating >= ExtraschedularFloor {
		result.ExtraschedularPossible = true
		result.Explanations = append(result.Explanations, fmt.Sprintf(
			"The schedular thresholds are not met, but a combined rating of %d%% may support "+
				"extraschedular consideration.", combinedRating))
	}

	if !result.SchedularEligible && !result.ExtraschedularPossible {
		result.Explanations = append(result.Explanations, fmt.Sprintf(
			"No single disability reaches %d%% and the combined rating of %d%% does not meet the "+
				"%d%% combined criteria.", SingleDisabilityThreshold, combinedRating, CombinedThreshold))
	}

	result.Recommendations = []string{recommendation(result)}
	return result
}

func recommendation(r domain.TDIUEligibilityResult) string {
	switch {
	case r.SchedularEligible:
		return RecommendationSchedular
	case r.ExtraschedularPossible:
		return RecommendationExtraschedular
	default:
		return RecommendationNotEligible
	}
}
