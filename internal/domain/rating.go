package domain

import (
	"fmt"
	"strings"
)

// Rating bounds and granularity for individual and combined ratings.
const (
	MinRating       = 0
	MaxRating       = 100
	RatingIncrement = 10
)

// DisabilityRating is a single service-connected disability as rated by the VA.
type DisabilityRating struct {
	Percentage     int    `json:"percentage"`
	Description    string `json:"description"`
	IsBilateral    bool   `json:"is_bilateral"`
	BilateralGroup string `json:"bilateral_group,omitempty"` // e.g. "lower_extremities"
}

// NewDisabilityRating creates a validated DisabilityRating.
// Returns an error wrapping ErrInvalidRating if the percentage is invalid.
func NewDisabilityRating(percentage int, description string) (DisabilityRating, error) {
	r := DisabilityRating{
		Percentage:  percentage,
		Description: strings.TrimSpace(description),
	}

	if err := r.Validate(); err != nil {
		return DisabilityRating{}, err
	}

	return r, nil
}

// NewBilateralRating creates a validated DisabilityRating that affects a
// paired extremity. The group tag is optional and is carried into the
// calculation trace.
func NewBilateralRating(percentage int, description, group string) (DisabilityRating, error) {
	r, err := NewDisabilityRating(percentage, description)
	if err != nil {
		return DisabilityRating{}, err
	}

	r.IsBilateral = true
	r.BilateralGroup = strings.TrimSpace(group)
	return r, nil
}

// Validate checks that the percentage is a multiple of 10 within [0, 100].
func (r DisabilityRating) Validate() error {
	return ValidatePercentage(r.Percentage)
}

// ValidatePercentage reports whether p is a valid VA rating percentage.
func ValidatePercentage(p int) error {
	if p < MinRating || p > MaxRating {
		return fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidRating, p, MinRating, MaxRating)
	}
	if p%RatingIncrement != 0 {
		return fmt.Errorf("%w: %d is not a multiple of %d", ErrInvalidRating, p, RatingIncrement)
	}
	return nil
}
