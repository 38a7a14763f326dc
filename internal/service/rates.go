package service

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/vaclaims/ratings-api/internal/domain/smc"
)

// RateSet is one consistent pair of compensation and SMC tables.
type RateSet struct {
	Compensation CompensationRates
	SMC          *smc.RateTable
}

func (s RateSet) validate() error {
	if s.Compensation == nil {
		return errors.New("compensation rates cannot be nil")
	}
	if s.SMC == nil {
		return errors.New("SMC rates cannot be nil")
	}
	// Evaluate prices SMC at the compensation year it resolved.
	for _, year := range s.Compensation.Years() {
		if !s.SMC.HasYear(year) {
			return fmt.Errorf("compensation year %d has no SMC rates", year)
		}
	}
	return nil
}

// RateStore holds the active RateSet. Replace swaps it atomically, so a
// request that captured the current set keeps pricing against it.
type RateStore struct {
	current atomic.Pointer[RateSet]
}

// NewRateStore returns a store holding set.
func NewRateStore(set RateSet) (*RateStore, error) {
	s := &RateStore{}
	if err := s.Replace(set); err != nil {
		return nil, err
	}
	return s, nil
}

// Current returns the active rate set.
func (s *RateStore) Current() *RateSet {
	return s.current.Load()
}

// Replace makes set the active rate set.
func (s *RateStore) Replace(set RateSet) error {
	if err := set.validate(); err != nil {
		return &ClaimServiceError{Operation: "replace_rates", Message: err.Error()}
	}
	s.current.Store(&set)
	return nil
}
