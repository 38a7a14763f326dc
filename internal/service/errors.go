package service

import (
	"errors"
	"fmt"

	"github.com/vaclaims/ratings-api/internal/domain"
)

// Error handling principles:
//  1. Domain sentinel errors describing bad input are returned unchanged so
//     callers can match them with errors.Is and keep their detail text.
//  2. Everything else is wrapped in a ClaimServiceError.
//  3. The API layer maps both to HTTP status codes.

// clientErrors are the domain sentinels a caller can fix by changing the request.
var clientErrors = []error{
	domain.ErrInvalidRating,
	domain.ErrInvalidCondition,
	domain.ErrUnknownBodyPart,
	domain.ErrUnknownSide,
	domain.ErrUnknownSMCLevel,
	domain.ErrUnknownYear,
	domain.ErrInvalidDependents,
}

// ClaimServiceError wraps errors from the claim service with context.
type ClaimServiceError struct {
	// Operation is the operation that failed (e.g., "combine", "estimate_compensation")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for ClaimServiceError.
func (e *ClaimServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("claim service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("claim service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ClaimServiceError) Unwrap() error {
	return e.Err
}

// NewClaimServiceError creates a new ClaimServiceError.
// Client-facing domain errors are returned directly without wrapping.
func NewClaimServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if IsClientError(err) {
		return err
	}

	return &ClaimServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// IsClientError reports whether err was caused by the request itself.
func IsClientError(err error) bool {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
