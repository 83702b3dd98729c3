package provider

import (
	"fmt"
	"net/http"
)

// Kind classifies an upstream call failure.
type Kind int

const (
	// KindNotConfigured means the required credential for the target
	// provider is unset. No network I/O was attempted.
	KindNotConfigured Kind = iota
	// KindUpstream means the upstream answered with a non-success status.
	// Status and Body carry the upstream's response verbatim.
	KindUpstream
	// KindUnreachable means the request failed at the network level
	// (timeout, DNS, connection reset).
	KindUnreachable
)

func (k Kind) String() string {
	switch k {
	case KindNotConfigured:
		return "not_configured"
	case KindUpstream:
		return "upstream_error"
	case KindUnreachable:
		return "upstream_unreachable"
	default:
		return "unknown"
	}
}

// Error is a classified upstream call failure. Already-classified errors
// propagate their Status to the client unchanged; everything else is caught
// at the endpoint boundary and converted to a generic 500.
type Error struct {
	Kind   Kind
	Status int
	Body   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Body)
}

// NotConfigured builds the failure for a missing provider credential.
func NotConfigured(detail string) *Error {
	return &Error{Kind: KindNotConfigured, Status: http.StatusNotImplemented, Body: detail}
}

// Upstream builds the failure for a non-success upstream status. The body is
// forwarded verbatim — a deliberate transparency choice for debugging, not a
// security boundary.
func Upstream(status int, body []byte) *Error {
	return &Error{Kind: KindUpstream, Status: status, Body: string(body)}
}

// Unreachable builds the failure for a network-level error.
func Unreachable(err error) *Error {
	return &Error{Kind: KindUnreachable, Status: http.StatusInternalServerError, Body: err.Error()}
}
