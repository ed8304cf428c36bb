// Package speech wraps the hosted voice gateway: speech recognition,
// speech synthesis and the voice catalog.
package speech

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rolechat/core"

	"github.com/bytedance/sonic"
	"github.com/sashabaranov/go-openai"
)

// Config holds the voice gateway configuration.
type Config struct {
	BaseURL      string
	APIKey       string
	TTSEnabled   bool
	DefaultVoice string
	SpeedRatio   float64
	Timeout      time.Duration
}

// Client talks to the voice gateway. All failures come back as typed
// errors (core.ErrNotConfigured, core.ErrUnavailable, *core.GatewayError)
// so callers decide whether to surface or degrade.
type Client struct {
	cfg     Config
	http    *http.Client
	whisper *openai.Client
	logger  *core.Logger
}

// NewClient creates a voice gateway client.
func NewClient(cfg Config, logger *core.Logger) *Client {
	if logger == nil {
		logger = core.GetLogger()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 60 * time.Second
	}
	if cfg.SpeedRatio <= 0 {
		cfg.SpeedRatio = 1.0
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	c := &Client{
		cfg:    cfg,
		http:   &http.Client{Timeout: cfg.Timeout},
		logger: logger,
	}
	if cfg.APIKey != "" {
		apiCfg := openai.DefaultConfig(cfg.APIKey)
		if cfg.BaseURL != "" {
			apiCfg.BaseURL = cfg.BaseURL
		}
		apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
		c.whisper = openai.NewClientWithConfig(apiCfg)
	}
	return c
}

// Configured reports whether the gateway has credentials.
func (c *Client) Configured() bool {
	return c.cfg.APIKey != ""
}

// postJSON sends a JSON payload with the gateway auth header and returns
// the raw response body. Non-200 responses become *core.GatewayError.
func (c *Client) postJSON(ctx context.Context, path string, payload any) ([]byte, error) {
	body, err := sonic.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("speech: marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("speech: build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("speech: %s: %w", path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("speech: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, core.NewGatewayError(resp.StatusCode, data)
	}
	return data, nil
}
