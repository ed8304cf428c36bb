package speech

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"rolechat/core"
)

// ListVoices relays the gateway's voice catalog verbatim, returning the
// upstream status code and body.
func (c *Client) ListVoices(ctx context.Context) (int, []byte, error) {
	if !c.Configured() {
		return 0, nil, core.ErrNotConfigured
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+"/voice/list", nil)
	if err != nil {
		return 0, nil, fmt.Errorf("speech: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("speech: voice list: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("speech: read response: %w", err)
	}
	return resp.StatusCode, body, nil
}
