package domain

import (
	"errors"
	"testing"
)

func TestNewDisabilityRating(t *testing.T) {
	r, err := NewDisabilityRating(50, "  PTSD ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if r.Percentage != 50 {
		t.Errorf("Expected percentage 50, got %d", r.Percentage)
	}

	if r.Description != "PTSD" {
		t.Errorf("Expected trimmed description, got %q", r.Description)
	}

	if r.IsBilateral {
		t.Error("Expected non-bilateral rating")
	}
}

func TestNewDisabilityRating_Invalid(t *testing.T) {
	for _, p := range []int{-10, 5, 15, 99, 110} {
		_, err := NewDisabilityRating(p, "test")
		if !errors.Is(err, ErrInvalidRating) {
			t.Errorf("Expected ErrInvalidRating for %d, got %v", p, err)
		}
	}
}

func TestNewDisabilityRating_Bounds(t *testing.T) {
	for _, p := range []int{0, 10, 100} {
		if _, err := NewDisabilityRating(p, "test"); err != nil {
			t.Errorf("Expected %d to be valid, got %v", p, err)
		}
	}
}

func TestNewBilateralRating(t *testing.T) {
	r, err := NewBilateralRating(20, "left knee", " lower_extremities ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if !r.IsBilateral {
		t.Error("Expected bilateral rating")
	}

	if r.BilateralGroup != "lower_extremities" {
		t.Errorf("Expected group lower_extremities, got %q", r.BilateralGroup)
	}

	if _, err := NewBilateralRating(25, "left knee", ""); !errors.Is(err, ErrInvalidRating) {
		t.Errorf("Expected ErrInvalidRating, got %v", err)
	}
}
