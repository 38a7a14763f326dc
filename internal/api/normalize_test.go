package api

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vaclaims/ratings-api/internal/domain"
)

func TestNormalizePercentage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   Percent
		want int
	}{
		{0, 0},
		{44.9, 40},
		{45, 50},
		{54.99, 50},
		{65, 70},
		{100, 100},
		{104, 100},
		{130, 100},
		{150, 100},
		{1e18, 100},
		{1e19, 100},
		{5e19, 100},
		{1e25, 100},
		{-20, 0},
		{-1e19, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizePercentage(tt.in), "NormalizePercentage(%v)", tt.in)
	}
}

func TestPercent_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw     string
		want    Percent
		wantErr bool
	}{
		{`45`, 45, false},
		{`37.5`, 37.5, false},
		{`"45"`, 45, false},
		{`" 45 % "`, 45, false},
		{`"70%"`, 70, false},
		{`null`, 0, false},
		{`"forty"`, 0, true},
		{`"NaN"`, 0, true},
		{`"Inf"`, 0, true},
		{`true`, 0, true},
	}

	for _, tt := range tests {
		var p Percent
		err := json.Unmarshal([]byte(tt.raw), &p)
		if tt.wantErr {
			assert.Error(t, err, "input %s", tt.raw)
			continue
		}
		require.NoError(t, err, "input %s", tt.raw)
		assert.Equal(t, tt.want, p, "input %s", tt.raw)
	}
}

func TestRatingInput_ToDomain(t *testing.T) {
	t.Parallel()

	r, err := RatingInput{Percentage: 17, Description: "tinnitus"}.toDomain()
	require.NoError(t, err)
	assert.Equal(t, 20, r.Percentage)
	assert.False(t, r.IsBilateral)

	r, err = RatingInput{Percentage: 25, Description: "knee", IsBilateral: true, BilateralGroup: "legs"}.toDomain()
	require.NoError(t, err)
	assert.Equal(t, 30, r.Percentage)
	assert.True(t, r.IsBilateral)
	assert.Equal(t, "legs", r.BilateralGroup)
}

func TestConditionInput_ToDomain(t *testing.T) {
	t.Parallel()

	c, err := ConditionInput{
		Name:           "amputation",
		Rating:         68,
		AnatomicalLoss: true,
		BodyPart:       "Hand",
		Side:           " LEFT ",
	}.toDomain()
	require.NoError(t, err)
	assert.Equal(t, 70, c.Rating)
	assert.Equal(t, domain.BodyPartHand, c.BodyPart)
	assert.Equal(t, domain.SideLeft, c.Side)

	_, err = ConditionInput{Name: "x", BodyPart: "left hand"}.toDomain()
	assert.ErrorIs(t, err, domain.ErrUnknownBodyPart)
	assert.ErrorIs(t, err, domain.ErrInvalidCondition)

	_, err = ConditionInput{Name: "x", Side: "middle"}.toDomain()
	assert.ErrorIs(t, err, domain.ErrUnknownSide)

	_, err = ConditionInput{Rating: 10}.toDomain()
	assert.ErrorIs(t, err, domain.ErrInvalidCondition)
}

func TestToRatings_ReportsIndex(t *testing.T) {
	t.Parallel()

	out, err := toRatings([]RatingInput{{Percentage: 10}, {Percentage: 95}})
	require.NoError(t, err)
	assert.Equal(t, []int{10, 100}, []int{out[0].Percentage, out[1].Percentage})

	_, err = toConditions([]ConditionInput{{Name: "ok"}, {Name: "bad", BodyPart: "tail"}})
	assert.ErrorContains(t, err, "condition 1")
}
