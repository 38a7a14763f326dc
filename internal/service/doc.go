// Package service contains the application use cases. It orchestrates the
// pure rating engines in internal/domain into request-level operations:
// rate-year resolution, input validation, report assembly, and structured
// logging.
//
// Services receive their dependencies through constructor injection and
// never depend on a delivery mechanism. Domain errors caused by bad input
// pass through unchanged; anything else is wrapped in ClaimServiceError.
package service
