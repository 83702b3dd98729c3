// Package respond provides shared JSON response utilities for API handlers,
// including the mapping from typed provider failures to HTTP responses.
package respond

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pitchside/cricket-data/internal/provider"
)

// maxErrorDetailLen caps messages for unclassified failures. Classified
// upstream bodies are forwarded untruncated.
const maxErrorDetailLen = 200

// ErrorResponse is the standard error shape for all API errors.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// WriteJSONObject marshals a Go value to JSON and writes it.
func WriteJSONObject(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// WriteRawJSON writes pre-encoded JSON bytes, used for provider-native
// pass-through payloads.
func WriteRawJSON(w http.ResponseWriter, status int, data []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// WriteError sends a structured JSON error response.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}

// WriteUpstreamFailure maps an error from a provider client or external
// service onto the wire. Already-classified failures pass through with their
// own status; an upstream body is surfaced verbatim. Anything unclassified
// becomes a generic 500 with the message truncated.
func WriteUpstreamFailure(w http.ResponseWriter, err error) {
	var perr *provider.Error
	if errors.As(err, &perr) {
		switch perr.Kind {
		case provider.KindNotConfigured:
			WriteError(w, perr.Status, "PROVIDER_NOT_CONFIGURED", perr.Body)
		case provider.KindUpstream:
			WriteError(w, perr.Status, "UPSTREAM_ERROR", perr.Body)
		default:
			WriteError(w, perr.Status, "UPSTREAM_UNREACHABLE", Truncate(perr.Body, maxErrorDetailLen))
		}
		return
	}
	WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", Truncate(err.Error(), maxErrorDetailLen))
}

// Truncate limits s to maxLen characters.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen]
}
