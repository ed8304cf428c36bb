package core

import (
	"errors"
	"fmt"
)

// ErrNotConfigured indicates a gateway call was attempted without the
// required credentials or base URL being set.
var ErrNotConfigured = errors.New("gateway not configured")

// ErrUnavailable indicates a best-effort feature (TTS, role-card synthesis)
// could not produce a result. Callers degrade gracefully instead of failing
// the whole request.
var ErrUnavailable = errors.New("gateway unavailable")

// GatewayError carries the upstream status and a bounded slice of the
// response body so handlers can relay what the gateway actually said.
type GatewayError struct {
	Status int
	Body   string
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway returned HTTP %d: %s", e.Status, e.Body)
}

// NewGatewayError builds a GatewayError, truncating the body to keep log
// lines and relayed errors bounded.
func NewGatewayError(status int, body []byte) *GatewayError {
	const maxBody = 200
	s := string(body)
	if len(s) > maxBody {
		s = s[:maxBody]
	}
	return &GatewayError{Status: status, Body: s}
}

// IsUnavailable reports whether err represents a degradable gateway failure.
func IsUnavailable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrUnavailable) || errors.Is(err, ErrNotConfigured) {
		return true
	}
	var ge *GatewayError
	return errors.As(err, &ge)
}
