// Package api handles incoming HTTP requests, request validation, and
// response formatting. It is the input-normalization boundary: client
// percentages are clamped and rounded to the VA grid and condition tags are
// resolved here, before any value reaches the rating engines.
package api
