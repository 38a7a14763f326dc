package tdiu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaclaims/ratings-api/internal/domain"
	"github.com/vaclaims/ratings-api/internal/domain/rating"
)

func ratingsOf(percentages ...int) []domain.DisabilityRating {
	out := make([]domain.DisabilityRating, 0, len(percentages))
	for _, p := range percentages {
		out = append(out, domain.DisabilityRating{Percentage: p})
	}
	return out
}

func TestCheck_SingleDisabilityPath(t *testing.T) {
	t.Parallel()

	result := Check(ratingsOf(60), 60)

	assert.True(t, result.SchedularEligible)
	assert.True(t, result.MeetsSingleDisability)
	assert.False(t, result.MeetsCombinedCriteria)
	assert.False(t, result.ExtraschedularPossible)
	assert.Equal(t, 60, result.HighestSingleRating)
	require.Len(t, result.QualifyingRatings, 1)
	assert.Equal(t, []string{RecommendationSchedular}, result.Recommendations)
}

func TestCheck_CombinedPath(t *testing.T) {
	t.Parallel()

	ratings := ratingsOf(40, 30, 20)
	combined := rating.Combine(ratings).CombinedRounded
	require.Equal(t, 70, combined, "40, 30, 20 combine to 66.4")

	result := Check(ratings, combined)

	assert.True(t, result.SchedularEligible)
	assert.False(t, result.MeetsSingleDisability)
	assert.True(t, result.MeetsCombinedCriteria)
	require.Len(t, result.QualifyingRatings, 1)
	assert.Equal(t, 40, result.QualifyingRatings[0].Percentage)
	assert.Equal(t, []string{RecommendationSchedular}, result.Recommendations)
}

func TestCheck_NoSupportingRating(t *testing.T) {
	t.Parallel()

	result := Check(ratingsOf(30, 30, 20, 10), 70)

	assert.False(t, result.SchedularEligible)
	assert.False(t, result.MeetsCombinedCriteria)
	assert.True(t, result.ExtraschedularPossible)
	assert.Empty(t, result.QualifyingRatings)
	assert.Equal(t, []string{RecommendationExtraschedular}, result.Recommendations)
}

func TestCheck_SinglePathPreferredWhenBothMet(t *testing.T) {
	t.Parallel()

	result := Check(ratingsOf(70, 40, 30), 90)

	assert.True(t, result.MeetsSingleDisability)
	assert.True(t, result.MeetsCombinedCriteria)
	require.Len(t, result.QualifyingRatings, 1)
	assert.Equal(t, 70, result.QualifyingRatings[0].Percentage)
	assert.Len(t, result.Explanations, 2)
}

func TestCheck_Boundaries(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name           string
		ratings        []int
		combined       int
		schedular      bool
		extraschedular bool
		recommendation string
	}{
		{name: "fifty single is not enough", ratings: []int{50}, combined: 50, extraschedular: true, recommendation: RecommendationExtraschedular},
		{name: "combined sixty with forty", ratings: []int{40, 40}, combined: 60, extraschedular: true, recommendation: RecommendationExtraschedular},
		{name: "combined seventy with forty", ratings: []int{50, 40}, combined: 70, schedular: true, recommendation: RecommendationSchedular},
		{name: "combined thirty", ratings: []int{20, 10}, combined: 30, recommendation: RecommendationNotEligible},
		{name: "exactly forty combined", ratings: []int{30, 20}, combined: 40, extraschedular: true, recommendation: RecommendationExtraschedular},
		{name: "no ratings", ratings: nil, combined: 0, recommendation: RecommendationNotEligible},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := Check(ratingsOf(tc.ratings...), tc.combined)
			assert.Equal(t, tc.schedular, result.SchedularEligible)
			assert.Equal(t, tc.extraschedular, result.ExtraschedularPossible)
			assert.Equal(t, []string{tc.recommendation}, result.Recommendations)
			assert.NotEmpty(t, result.Explanations)
		})
	}
}
