package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/vaclaims/ratings-api/internal/domain"
	"github.com/vaclaims/ratings-api/internal/service"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid rating", fmt.Errorf("rating 0: %w", domain.ErrInvalidRating), http.StatusBadRequest},
		{"invalid condition", domain.ErrInvalidCondition, http.StatusBadRequest},
		{"unknown body part", domain.ErrUnknownBodyPart, http.StatusBadRequest},
		{"unknown side", domain.ErrUnknownSide, http.StatusBadRequest},
		{"invalid dependents", domain.ErrInvalidDependents, http.StatusBadRequest},
		{"unknown year", fmt.Errorf("%w: 2031", domain.ErrUnknownYear), http.StatusUnprocessableEntity},
		{"missing tier", &service.ClaimServiceError{Operation: "x", Err: domain.ErrUnknownRatingTier}, http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err), tt.name)
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))
	assert.Equal(t, "Rates for the requested year are not available",
		GetSafeErrorMessage(fmt.Errorf("%w: 2031", domain.ErrUnknownYear)))

	// Body part errors also wrap ErrInvalidCondition; the specific message wins.
	err := fmt.Errorf("%w: x: %w", domain.ErrInvalidCondition, domain.ErrUnknownBodyPart)
	assert.Equal(t, "Unknown body part", GetSafeErrorMessage(err))

	internal := errors.New("pq: connection refused at 10.0.0.1")
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(internal))
}

func TestSanitizeValidationError(t *testing.T) {
	t.Parallel()

	v := validator.New()
	err := v.Struct(ConditionInput{Rating: 10})
	assert.Equal(t, "Invalid Name: required field", SanitizeValidationError(err))

	err = v.Struct(DependentsInput{Parents: 11})
	assert.Equal(t, "Invalid Parents: too large", SanitizeValidationError(err))

	assert.Equal(t, "Validation error", SanitizeValidationError(errors.New("other")))
}
