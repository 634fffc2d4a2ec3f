package application

import "errors"

var (
	// ErrBackendUnavailable wraps the failure of a single backend. It triggers
	// the fallback to the next backend of the session.
	ErrBackendUnavailable = errors.New("backend unavailable")
	// ErrAllEndpointsUnavailable is returned when every backend of a session,
	// or every probed candidate, failed.
	ErrAllEndpointsUnavailable = errors.New("all endpoints are unavailable")
	// ErrNullSessionBackends ...
	ErrNullSessionBackends = errors.New("session requires at least one backend")
	// ErrNullWallet ...
	ErrNullWallet = errors.New("wallet must not be null")
	// ErrNullNetwork ...
	ErrNullNetwork = errors.New("network must not be null")
	// ErrAssetServiceNotConfigured is returned by asset operations if the
	// wallet service has been set up without an asset service.
	ErrAssetServiceNotConfigured = errors.New("asset service is not configured")
	// ErrInvalidFeeRate ...
	ErrInvalidFeeRate = errors.New("fee rate must be a positive number")
)
