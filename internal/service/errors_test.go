package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaclaims/ratings-api/internal/domain"
)

func TestClaimServiceError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ClaimServiceError
		expected string
	}{
		{
			name:     "with underlying error",
			err:      &ClaimServiceError{Operation: "combine", Message: "bad data", Err: errors.New("boom")},
			expected: "claim service combine failed: bad data: boom",
		},
		{
			name:     "without underlying error",
			err:      &ClaimServiceError{Operation: "create_service", Message: "logger cannot be nil"},
			expected: "claim service create_service failed: logger cannot be nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestNewClaimServiceError(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.NoError(t, NewClaimServiceError("op", "msg", nil))
	})

	t.Run("client errors pass through", func(t *testing.T) {
		original := fmt.Errorf("%w: 55", domain.ErrInvalidRating)
		err := NewClaimServiceError("combine", "invalid", original)
		assert.Same(t, original, err)
	})

	t.Run("unexpected errors are wrapped", func(t *testing.T) {
		err := NewClaimServiceError("estimate_compensation", "lookup", domain.ErrUnknownRatingTier)

		var svcErr *ClaimServiceError
		assert.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "estimate_compensation", svcErr.Operation)
		assert.ErrorIs(t, err, domain.ErrUnknownRatingTier)
	})
}

func TestIsClientError(t *testing.T) {
	assert.True(t, IsClientError(fmt.Errorf("wrapped: %w", domain.ErrUnknownYear)))
	assert.True(t, IsClientError(domain.ErrInvalidDependents))
	assert.False(t, IsClientError(domain.ErrUnknownRatingTier))
	assert.False(t, IsClientError(errors.New("other")))
}
