package speech

import (
	"context"
	"encoding/base64"
	"fmt"

	"rolechat/core"

	"github.com/bytedance/sonic"
)

// maxTTSChars caps the synthesized text length; the gateway rejects
// oversized requests.
const maxTTSChars = 800

// ttsResponse is the synthesis response envelope; the audio arrives as a
// base64 payload in the data field.
type ttsResponse struct {
	Data string `json:"data"`
}

// Synthesize converts text to mp3 audio bytes using the given voice.
// Returns core.ErrUnavailable when the feature is disabled by
// configuration; other failures come back typed so callers can degrade to
// a text-only response.
func (c *Client) Synthesize(ctx context.Context, text, voiceID string) ([]byte, error) {
	if !c.cfg.TTSEnabled {
		return nil, core.ErrUnavailable
	}
	if !c.Configured() {
		return nil, core.ErrNotConfigured
	}
	if voiceID == "" {
		voiceID = c.cfg.DefaultVoice
	}
	runes := []rune(text)
	if len(runes) > maxTTSChars {
		text = string(runes[:maxTTSChars])
	}

	payload := map[string]any{
		"audio": map[string]any{
			"voice_type":  voiceID,
			"encoding":    "mp3",
			"speed_ratio": c.cfg.SpeedRatio,
		},
		"request": map[string]any{"text": text},
	}
	data, err := c.postJSON(ctx, "/voice/tts", payload)
	if err != nil {
		return nil, err
	}

	var resp ttsResponse
	if err := sonic.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("tts: malformed response: %w", err)
	}
	if resp.Data == "" {
		return nil, fmt.Errorf("tts: no audio data in response")
	}
	audio, err := base64.StdEncoding.DecodeString(resp.Data)
	if err != nil {
		return nil, fmt.Errorf("tts: decode audio payload: %w", err)
	}
	return audio, nil
}
