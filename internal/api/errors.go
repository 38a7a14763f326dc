package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/vaclaims/ratings-api/internal/domain"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// leaking internal error types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Bad input
	case errors.Is(err, domain.ErrInvalidRating),
		errors.Is(err, domain.ErrInvalidCondition),
		errors.Is(err, domain.ErrUnknownBodyPart),
		errors.Is(err, domain.ErrUnknownSide),
		errors.Is(err, domain.ErrUnknownSMCLevel),
		errors.Is(err, domain.ErrInvalidDependents):
		return http.StatusBadRequest

	// Well-formed request the rate tables cannot price
	case errors.Is(err, domain.ErrUnknownYear):
		return http.StatusUnprocessableEntity

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a user-facing message for err.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrUnknownBodyPart):
		return "Unknown body part"
	case errors.Is(err, domain.ErrUnknownSide):
		return "Unknown side"
	case errors.Is(err, domain.ErrInvalidCondition):
		return "Invalid condition"
	case errors.Is(err, domain.ErrInvalidRating):
		return "Invalid rating: percentages must be multiples of 10 between 0 and 100"
	case errors.Is(err, domain.ErrUnknownSMCLevel):
		return "Unknown SMC level"
	case errors.Is(err, domain.ErrInvalidDependents):
		return "Invalid dependents: counts cannot be negative"
	case errors.Is(err, domain.ErrUnknownYear):
		return "Rates for the requested year are not available"
	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns a validator error into a short message that
// names the first failing field.
func SanitizeValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "Validation error"
	}

	fe := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", fe.Field(), getValidationTagMessage(fe.Tag()))
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "max", "lte":
		return "too large"
	case "min", "gte":
		return "too small"
	default:
		return "validation failed"
	}
}
