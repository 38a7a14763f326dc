// Package config handles configuration loading, parsing, and validation
// from environment variables and an optional YAML file. It provides typed
// access to the server and rate-table settings while keeping configuration
// details separate from the rating engines.
package config
