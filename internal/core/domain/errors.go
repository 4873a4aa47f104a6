package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned when the upstream rejects a login.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUnauthenticated marks a request with no usable session.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrSessionExpired marks an upstream 401 on an authenticated call. It is
	// fatal for the current session: state is cleared and the user is sent
	// back to login, never retried.
	ErrSessionExpired = errors.New("session expired")
	// ErrForbidden marks a role that may not reach the requested view.
	ErrForbidden = errors.New("access forbidden")
	// ErrSessionNotFound is returned by the session store for unknown or
	// already-expired session identifiers.
	ErrSessionNotFound = errors.New("session not found")

	// ErrShipmentNotFound is returned when no shipment matches the queried
	// tracking code.
	ErrShipmentNotFound = errors.New("shipment not found")
	// ErrInvalidPayload marks a data-contract violation in an upstream
	// success response (missing shipment object, missing or non-array status
	// history). Distinct from the valid zero-event state.
	ErrInvalidPayload = errors.New("upstream payload malformed")
	// ErrUpstreamUnavailable marks a transport failure: no response received.
	ErrUpstreamUnavailable = errors.New("upstream unreachable")

	// ErrNoProductTypeForWeight and ErrAmbiguousProductType surface product
	// catalog configuration errors: bands must be disjoint and exhaustive.
	ErrNoProductTypeForWeight = errors.New("no product type covers the given weight")
	ErrAmbiguousProductType   = errors.New("overlapping product type weight bands")
)

// UpstreamError is a server-rejected request: the upstream answered with a
// 4xx/5xx and, when present, a structured message worth surfacing verbatim.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("upstream rejected request (%d)", e.Status)
	}
	return fmt.Sprintf("upstream rejected request (%d): %s", e.Status, e.Message)
}
