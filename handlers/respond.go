package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"rolechat/core"
)

// apiError is the machine-readable error body shared by every endpoint.
type apiError struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// Reason codes for client errors.
const (
	codeInvalidPayload  = "invalid_payload"
	codeMissingField    = "missing_field"
	codeInvalidSkill    = "invalid_skill"
	codeSessionNotFound = "session_not_found"
	codeBadAudio        = "unsupported_audio"
	codeNotConfigured   = "gateway_not_configured"
	codeUpstreamError   = "upstream_error"
)

func writeJSON(w http.ResponseWriter, logger *core.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.With(map[string]any{"error": err}).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, logger *core.Logger, status int, code, msg string) {
	writeJSON(w, logger, status, apiError{Error: msg, Code: code})
}

// writeGatewayError maps the typed gateway failures onto the error
// taxonomy: missing configuration names the setting, upstream failures
// relay the upstream status and body.
func writeGatewayError(w http.ResponseWriter, logger *core.Logger, err error) {
	if errors.Is(err, core.ErrNotConfigured) {
		writeError(w, logger, http.StatusInternalServerError, codeNotConfigured, "gateway not configured: OPENAI_API_KEY is missing")
		return
	}
	var ge *core.GatewayError
	if errors.As(err, &ge) {
		writeError(w, logger, http.StatusBadGateway, codeUpstreamError, ge.Error())
		return
	}
	writeError(w, logger, http.StatusBadGateway, codeUpstreamError, err.Error())
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *core.Logger, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, logger, http.StatusBadRequest, codeInvalidPayload, "invalid JSON payload: "+err.Error())
		return false
	}
	return true
}
