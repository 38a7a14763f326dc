package api

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/vaclaims/ratings-api/internal/domain"
	"github.com/vaclaims/ratings-api/internal/domain/rating"
)

// Percent is a percentage as a client supplies it: a JSON number, or a
// string such as "45" or "45%". It is normalized before reaching the engines.
type Percent float64

// UnmarshalJSON accepts a number or a numeric string with an optional
// trailing percent sign.
func (p *Percent) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(b))
	if raw == "null" {
		*p = 0
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSuffix(strings.TrimSpace(s), "%")
		raw = strings.TrimSpace(raw)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %q is not a percentage", domain.ErrInvalidRating, raw)
	}

	*p = Percent(v)
	return nil
}

// NormalizePercentage clamps p to [0, 100] and rounds it to the nearest
// multiple of 10, with .5 rounding up (45 -> 50, 44.9 -> 40).
func NormalizePercentage(p Percent) int {
	return rating.RoundToNearestTen(decimal.NewFromFloat(float64(p)))
}

// toDomain converts a normalized rating input.
func (in RatingInput) toDomain() (domain.DisabilityRating, error) {
	p := NormalizePercentage(in.Percentage)
	if in.IsBilateral {
		return domain.NewBilateralRating(p, in.Description, in.BilateralGroup)
	}
	return domain.NewDisabilityRating(p, in.Description)
}

// toDomain converts a condition input, resolving its body part and side tags.
func (in ConditionInput) toDomain() (domain.SMCCondition, error) {
	part, err := domain.ParseBodyPart(in.BodyPart)
	if err != nil {
		return domain.SMCCondition{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCondition, in.Name, err)
	}
	side, err := domain.ParseSide(in.Side)
	if err != nil {
		return domain.SMCCondition{}, fmt.Errorf("%w: %s: %w", domain.ErrInvalidCondition, in.Name, err)
	}

	return domain.NewSMCCondition(domain.SMCCondition{
		Name:                  in.Name,
		Rating:                NormalizePercentage(in.Rating),
		LossOfUse:             in.LossOfUse,
		AnatomicalLoss:        in.AnatomicalLoss,
		BodyPart:              part,
		Side:                  side,
		RequiresAidAttendance: in.RequiresAidAttendance,
		IsHousebound:          in.IsHousebound,
	})
}

func toRatings(in []RatingInput) ([]domain.DisabilityRating, error) {
	out := make([]domain.DisabilityRating, 0, len(in))
	for i, r := range in {
		dr, err := r.toDomain()
		if err != nil {
			return nil, fmt.Errorf("rating %d: %w", i, err)
		}
		out = append(out, dr)
	}
	return out, nil
}

func toConditions(in []ConditionInput) ([]domain.SMCCondition, error) {
	out := make([]domain.SMCCondition, 0, len(in))
	for i, c := range in {
		dc, err := c.toDomain()
		if err != nil {
			return nil, fmt.Errorf("condition %d: %w", i, err)
		}
		out = append(out, dc)
	}
	return out, nil
}
