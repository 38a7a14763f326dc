package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vaclaims/ratings-api/internal/api"
	apiMiddleware "github.com/vaclaims/ratings-api/internal/api/middleware"
	"github.com/vaclaims/ratings-api/internal/api/shared"
)

// healthResponse is the body of GET /health.
type healthResponse struct {
	Status            string `json:"status"`
	CompensationYears []int  `json:"compensation_years"`
	SMCYears          []int  `json:"smc_years"`
}

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	claimHandler := api.NewClaimHandler(app.claimService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Post("/ratings/combine", claimHandler.Combine)
		r.Post("/compensation/estimate", claimHandler.EstimateCompensation)
		r.Post("/smc/check", claimHandler.CheckSMC)
		r.Post("/tdiu/check", claimHandler.CheckTDIU)
		r.Post("/reports", claimHandler.CreateReport)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		rates := app.rates.Current()
		shared.RespondWithJSON(w, r, http.StatusOK, healthResponse{
			Status:            "ok",
			CompensationYears: rates.Compensation.Years(),
			SMCYears:          rates.SMC.Years(),
		})
	})

	return r
}
