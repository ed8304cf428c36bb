package speech

import (
	"context"
	"fmt"
	"io"
	"strings"

	"rolechat/core"

	"github.com/bytedance/sonic"
	"github.com/sashabaranov/go-openai"
)

// TranscribeURL runs speech recognition on a remotely fetchable audio URL.
// The gateway has shipped more than one request shape, so the current shape
// is tried first and the legacy one second; the first response containing a
// transcript wins.
func (c *Client) TranscribeURL(ctx context.Context, audioURL, language string) (string, error) {
	if !c.Configured() {
		return "", core.ErrNotConfigured
	}
	if language == "" {
		language = "auto"
	}

	payloads := []any{
		map[string]any{"request": map[string]any{"audio_url": audioURL, "language": language}},
		map[string]any{"audio": map[string]any{"url": audioURL}, "model": "asr"},
	}

	var lastErr error
	for _, payload := range payloads {
		data, err := c.postJSON(ctx, "/voice/asr", payload)
		if err != nil {
			lastErr = err
			continue
		}
		var body map[string]any
		if err := sonic.Unmarshal(data, &body); err != nil {
			lastErr = fmt.Errorf("asr: malformed response: %w", err)
			continue
		}
		if text := extractTranscript(body); text != "" {
			return text, nil
		}
		lastErr = fmt.Errorf("asr: no transcript in response")
	}
	return "", lastErr
}

// TranscribeFile runs whisper-style recognition on raw uploaded audio
// through the gateway's OpenAI-compatible transcription endpoint.
func (c *Client) TranscribeFile(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if c.whisper == nil {
		return "", core.ErrNotConfigured
	}
	resp, err := c.whisper.CreateTranscription(ctx, openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   audio,
		FilePath: filename,
	})
	if err != nil {
		return "", fmt.Errorf("asr: transcription: %w", err)
	}
	return strings.TrimSpace(resp.Text), nil
}

// transcriptKeys are the fields different gateway versions have used to
// carry the recognized text, possibly nested.
var transcriptKeys = []string{"text", "data", "result"}

// extractTranscript locates the transcript in any of the response shapes
// the gateway has shipped: a top-level string under text/data/result, or
// the same keys nested one or two objects deep.
func extractTranscript(body map[string]any) string {
	for _, key := range transcriptKeys {
		switch v := body[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case map[string]any:
			if s := extractTranscript(v); s != "" {
				return s
			}
		}
	}
	return ""
}
