package domain

import "errors"

// Domain errors represent business failures, distinct from infrastructure
// errors raised by the adapters.
var (
	// ErrMissingToken indicates the mandatory GITHUB_TOKEN environment
	// variable is not set. Raised before any network activity.
	ErrMissingToken = errors.New("missing GITHUB_TOKEN environment variable")
)
