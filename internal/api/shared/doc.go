// Package shared holds the request decoding, validation, response and trace
// helpers used by every HTTP handler and middleware.
package shared
