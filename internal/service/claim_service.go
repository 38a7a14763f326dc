package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/vaclaims/ratings-api/internal/domain"
	"github.com/vaclaims/ratings-api/internal/domain/compensation"
	"github.com/vaclaims/ratings-api/internal/domain/rating"
	"github.com/vaclaims/ratings-api/internal/domain/smc"
	"github.com/vaclaims/ratings-api/internal/domain/tdiu"
)

// CompensationRates is the subset of compensation.RateTable the service uses.
type CompensationRates interface {
	Estimate(combinedRating int, deps compensation.Dependents, year int) (domain.CompensationEstimate, error)
	HasYear(year int) bool
	LatestYear() int
	Years() []int
}

// YearPolicy decides which rate year a request without one, or with an
// unsupported one, is priced against.
type YearPolicy struct {
	DefaultYear      int
	FallbackToLatest bool
}

// ClaimInput is everything needed to evaluate one claim.
type ClaimInput struct {
	Ratings    []domain.DisabilityRating
	Conditions []domain.SMCCondition
	Dependents compensation.Dependents
	// Year is the compensation rate year. Zero selects the default year.
	Year int
}

// ClaimService exposes the rating engines to delivery mechanisms.
type ClaimService interface {
	// Combine computes the combined rating with a full calculation trace.
	Combine(ctx context.Context, ratings []domain.DisabilityRating) (*domain.CalculationResult, error)

	// EstimateCompensation prices a combined rating for a year (zero selects the default).
	EstimateCompensation(
		ctx context.Context,
		combinedRating int,
		deps compensation.Dependents,
		year int,
	) (*domain.CompensationEstimate, error)

	// CheckSMC evaluates Special Monthly Compensation for a year (zero selects the default).
	CheckSMC(ctx context.Context, conditions []domain.SMCCondition, year int) (*domain.SMCEligibilityResult, error)

	// CheckTDIU evaluates TDIU eligibility, combining the ratings itself.
	CheckTDIU(ctx context.Context, ratings []domain.DisabilityRating) (*domain.TDIUEligibilityResult, error)

	// Evaluate runs every engine and assembles a ClaimReport.
	Evaluate(ctx context.Context, input ClaimInput) (*domain.ClaimReport, error)
}

// claimServiceImpl implements the ClaimService interface
type claimServiceImpl struct {
	rates  *RateStore
	policy YearPolicy
	logger *slog.Logger
	now    func() time.Time
}

// NewClaimService creates a new ClaimService that prices against whatever
// rate set rates holds at the start of each call.
func NewClaimService(rates *RateStore, policy YearPolicy, logger *slog.Logger) (ClaimService, error) {
	if rates == nil || rates.Current() == nil {
		return nil, &ClaimServiceError{
			Operation: "create_service",
			Message:   "rate store cannot be nil",
		}
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &claimServiceImpl{
		rates:  rates,
		policy: policy,
		logger: logger.With("component", "claim_service"),
		now:    time.Now,
	}, nil
}

// Combine validates each rating and combines them.
func (s *claimServiceImpl) Combine(
	ctx context.Context,
	ratings []domain.DisabilityRating,
) (*domain.CalculationResult, error) {
	if err := validateRatings(ratings); err != nil {
		s.logger.DebugContext(ctx, "rejected ratings", "error", err)
		return nil, NewClaimServiceError("combine", "invalid ratings", err)
	}

	result := rating.Combine(ratings)
	s.logger.DebugContext(ctx, "combined ratings",
		"ratings", len(ratings),
		"combined_raw", result.CombinedRaw.String(),
		"combined_rounded", result.CombinedRounded,
		"bilateral_factor", result.BilateralFactorApplied.String())

	return &result, nil
}

// EstimateCompensation resolves the rate year and prices the combined rating.
func (s *claimServiceImpl) EstimateCompensation(
	ctx context.Context,
	combinedRating int,
	deps compensation.Dependents,
	year int,
) (*domain.CompensationEstimate, error) {
	est, _, err := s.estimate(ctx, s.rates.Current(), combinedRating, deps, year)
	if err != nil {
		return nil, err
	}
	return est, nil
}

func (s *claimServiceImpl) estimate(
	ctx context.Context,
	rates *RateSet,
	combinedRating int,
	deps compensation.Dependents,
	year int,
) (*domain.CompensationEstimate, string, error) {
	comp := rates.Compensation
	resolved, note, err := s.resolveYear(ctx, "compensation", year, comp.HasYear, comp.LatestYear)
	if err != nil {
		return nil, "", err
	}

	est, err := comp.Estimate(combinedRating, deps, resolved)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to estimate compensation",
			"error", err,
			"combined_rating", combinedRating,
			"year", resolved)
		return nil, "", NewClaimServiceError("estimate_compensation", "failed to estimate compensation", err)
	}

	if !est.DependentRatesAvailable {
		s.logger.WarnContext(ctx, "dependent rates unavailable, using base rate only", "year", resolved)
	}

	return &est, note, nil
}

// CheckSMC resolves the rate year and evaluates the conditions.
func (s *claimServiceImpl) CheckSMC(
	ctx context.Context,
	conditions []domain.SMCCondition,
	year int,
) (*domain.SMCEligibilityResult, error) {
	result, _, err := s.checkSMC(ctx, s.rates.Current().SMC, conditions, year)
	return result, err
}

func (s *claimServiceImpl) checkSMC(
	ctx context.Context,
	table *smc.RateTable,
	conditions []domain.SMCCondition,
	year int,
) (*domain.SMCEligibilityResult, string, error) {
	for i, c := range conditions {
		if err := c.Validate(); err != nil {
			return nil, "", NewClaimServiceError("check_smc", fmt.Sprintf("invalid condition %d", i), err)
		}
	}

	resolved, note, err := s.resolveYear(ctx, "SMC", year, table.HasYear, table.LatestYear)
	if err != nil {
		return nil, "", err
	}

	engine, err := smc.NewEngine(table, resolved)
	if err != nil {
		return nil, "", NewClaimServiceError("check_smc", "failed to create SMC engine", err)
	}

	result := engine.Check(conditions)
	s.logger.DebugContext(ctx, "checked SMC eligibility",
		"year", resolved,
		"levels", result.Levels,
		"potential_levels", result.PotentialLevels,
		"monthly_addition", result.EstimatedMonthlyAddition.String())

	return &result, note, nil
}

// CheckTDIU combines the ratings and evaluates TDIU against the rounded result.
func (s *claimServiceImpl) CheckTDIU(
	ctx context.Context,
	ratings []domain.DisabilityRating,
) (*domain.TDIUEligibilityResult, error) {
	combined, err := s.Combine(ctx, ratings)
	if err != nil {
		return nil, err
	}

	result := tdiu.Check(ratings, combined.CombinedRounded)
	return &result, nil
}

// Evaluate runs combine, compensation, TDIU and, when conditions are given,
// SMC. Notes record every rate-year substitution made along the way.
func (s *claimServiceImpl) Evaluate(ctx context.Context, input ClaimInput) (*domain.ClaimReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, NewClaimServiceError("evaluate", "request cancelled", err)
	}

	rates := s.rates.Current()

	combined, err := s.Combine(ctx, input.Ratings)
	if err != nil {
		return nil, err
	}

	report := &domain.ClaimReport{
		ID:        uuid.New(),
		Combined:  *combined,
		Notes:     []string{},
		CreatedAt: s.now().UTC(),
	}
	log := s.logger.With("report_id", report.ID.String())

	est, note, err := s.estimate(ctx, rates, combined.CombinedRounded, input.Dependents, input.Year)
	if err != nil {
		return nil, err
	}
	report.Compensation = *est
	report.Year = est.Year
	report.Notes = appendNote(report.Notes, note)
	if !est.DependentRatesAvailable {
		report.Notes = append(report.Notes, fmt.Sprintf(
			"Dependent rates for %d are not available; the estimate uses the veteran-alone rate.", est.Year))
	}

	report.TDIU = tdiu.Check(input.Ratings, combined.CombinedRounded)

	if len(input.Conditions) > 0 {
		smcResult, note, err := s.checkSMC(ctx, rates.SMC, input.Conditions, report.Year)
		if err != nil {
			return nil, err
		}
		report.SMC = smcResult
		report.Notes = appendNote(report.Notes, note)
	}

	log.InfoContext(ctx, "claim evaluated",
		"year", report.Year,
		"combined_rating", combined.CombinedRounded,
		"monthly_total", report.Compensation.MonthlyTotal.String(),
		"tdiu_schedular", report.TDIU.SchedularEligible,
		"smc_evaluated", report.SMC != nil)

	return report, nil
}

// resolveYear applies the year policy. Zero selects the default year. An
// unsupported year is an ErrUnknownYear unless FallbackToLatest is set, in
// which case the latest supported year is used and a note explains the swap.
func (s *claimServiceImpl) resolveYear(
	ctx context.Context,
	table string,
	requested int,
	supported func(int) bool,
	latest func() int,
) (int, string, error) {
	year := requested
	if year == 0 {
		year = s.policy.DefaultYear
	}
	if supported(year) {
		return year, "", nil
	}

	fallback := latest()
	if !s.policy.FallbackToLatest || fallback == 0 {
		return 0, "", fmt.Errorf("%w: %s rates for %d", domain.ErrUnknownYear, table, year)
	}

	s.logger.WarnContext(ctx, "rate year not supported, falling back to latest",
		"table", table,
		"requested_year", year,
		"year", fallback)

	return fallback, fmt.Sprintf("%s rates for %d are not available; %d rates were used.", table, year, fallback), nil
}

func validateRatings(ratings []domain.DisabilityRating) error {
	var errs []error
	for i, r := range ratings {
		if err := r.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("rating %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func appendNote(notes []string, note string) []string {
	if note == "" {
		return notes
	}
	return append(notes, note)
}
