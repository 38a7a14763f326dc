package api

import (
	"log/slog"
	"net/http"

	"github.com/vaclaims/ratings-api/internal/api/shared"
	"github.com/vaclaims/ratings-api/internal/service"
)

// ClaimHandler handles rating, compensation, SMC, TDIU and report requests.
type ClaimHandler struct {
	claimService service.ClaimService
	logger       *slog.Logger
}

// NewClaimHandler creates a new ClaimHandler.
func NewClaimHandler(claimService service.ClaimService, logger *slog.Logger) *ClaimHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ClaimHandler{
		claimService: claimService,
		logger:       logger.With("component", "claim_handler"),
	}
}

// decode parses and validates the request body, writing a 400 on failure.
func (h *ClaimHandler) decode(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.DecodeJSON(w, r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

// handleError maps err to a status code and safe message.
func (h *ClaimHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := MapErrorToStatusCode(err)
	if status >= http.StatusInternalServerError {
		h.logger.ErrorContext(r.Context(), "request failed",
			"error", err,
			"trace_id", shared.GetTraceID(r.Context()))
	}
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
}

// Combine handles POST /api/ratings/combine requests.
func (h *ClaimHandler) Combine(w http.ResponseWriter, r *http.Request) {
	var req CombineRequest
	if !h.decode(w, r, &req) {
		return
	}

	ratings, err := toRatings(req.Ratings)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.claimService.Combine(r.Context(), ratings)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// EstimateCompensation handles POST /api/compensation/estimate requests.
func (h *ClaimHandler) EstimateCompensation(w http.ResponseWriter, r *http.Request) {
	var req CompensationRequest
	if !h.decode(w, r, &req) {
		return
	}

	est, err := h.claimService.EstimateCompensation(
		r.Context(),
		NormalizePercentage(req.CombinedRating),
		req.Dependents.toDomain(),
		req.Year,
	)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, est)
}

// CheckSMC handles POST /api/smc/check requests.
func (h *ClaimHandler) CheckSMC(w http.ResponseWriter, r *http.Request) {
	var req SMCCheckRequest
	if !h.decode(w, r, &req) {
		return
	}

	conditions, err := toConditions(req.Conditions)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.claimService.CheckSMC(r.Context(), conditions, req.Year)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// CheckTDIU handles POST /api/tdiu/check requests.
func (h *ClaimHandler) CheckTDIU(w http.ResponseWriter, r *http.Request) {
	var req TDIUCheckRequest
	if !h.decode(w, r, &req) {
		return
	}

	ratings, err := toRatings(req.Ratings)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	result, err := h.claimService.CheckTDIU(r.Context(), ratings)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// CreateReport handles POST /api/reports requests.
func (h *ClaimHandler) CreateReport(w http.ResponseWriter, r *http.Request) {
	var req ReportRequest
	if !h.decode(w, r, &req) {
		return
	}

	ratings, err := toRatings(req.Ratings)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	conditions, err := toConditions(req.Conditions)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	report, err := h.claimService.Evaluate(r.Context(), service.ClaimInput{
		Ratings:    ratings,
		Conditions: conditions,
		Dependents: req.Dependents.toDomain(),
		Year:       req.Year,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.logger.InfoContext(r.Context(), "report created",
		"report_id", report.ID.String(),
		"trace_id", shared.GetTraceID(r.Context()))

	shared.RespondWithJSON(w, r, http.StatusCreated, report)
}
