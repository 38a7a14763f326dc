// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the rating engines.
var (
	// ErrInvalidRating is returned when a percentage is not a multiple of 10
	// or falls outside [0, 100]. It is only ever raised at construction time.
	ErrInvalidRating = errors.New("invalid disability rating")

	// ErrInvalidCondition is returned when an SMC condition fails validation.
	ErrInvalidCondition = errors.New("invalid SMC condition")

	// ErrUnknownBodyPart is returned when a body part tag is not recognised.
	ErrUnknownBodyPart = errors.New("unknown body part")

	// ErrUnknownSide is returned when a side tag is not recognised.
	ErrUnknownSide = errors.New("unknown side")

	// ErrUnknownSMCLevel is returned when an SMC level tag is not recognised.
	ErrUnknownSMCLevel = errors.New("unknown SMC level")

	// ErrUnknownYear is returned when a rate year has no published table.
	// The engines never fall back to another year on their own; the caller
	// decides whether to retry with the latest known year.
	ErrUnknownYear = errors.New("no published rate table for year")

	// ErrUnknownRatingTier is returned when a year's table has no entry for
	// the requested combined rating.
	ErrUnknownRatingTier = errors.New("no rate for combined rating tier")

	// ErrInvalidDependents is returned when a dependent count is negative.
	ErrInvalidDependents = errors.New("invalid dependent count")
)
