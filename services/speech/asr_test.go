package speech

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rolechat/core"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		TTSEnabled: true,
	}, core.NewDevelopmentLogger())
}

func TestExtractTranscriptShapes(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
		want string
	}{
		{"top-level text", map[string]any{"text": "你好"}, "你好"},
		{"top-level data", map[string]any{"data": "hello"}, "hello"},
		{"top-level result", map[string]any{"result": "hi"}, "hi"},
		{"nested data.text", map[string]any{"data": map[string]any{"text": "nested"}}, "nested"},
		{"two-level data.result.text", map[string]any{"data": map[string]any{"result": map[string]any{"text": "deep"}}}, "deep"},
		{"whitespace trimmed", map[string]any{"text": "  padded  "}, "padded"},
		{"no match", map[string]any{"status": "ok"}, ""},
		{"non-string leaf", map[string]any{"text": 42}, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := extractTranscript(tc.body); got != tc.want {
				t.Fatalf("extractTranscript = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTranscribeURLFirstShapeWins(t *testing.T) {
	var requests int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"text":"识别结果"}}`))
	})

	text, err := c.TranscribeURL(context.Background(), "http://example.com/a.wav", "auto")
	if err != nil {
		t.Fatalf("TranscribeURL: %v", err)
	}
	if text != "识别结果" {
		t.Fatalf("text = %q", text)
	}
	if requests != 1 {
		t.Fatalf("requests = %d, want 1 (second payload shape should not be tried)", requests)
	}
}

func TestTranscribeURLFallsBackToLegacyShape(t *testing.T) {
	var requests int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		if requests == 1 {
			http.Error(w, "unsupported payload", http.StatusBadRequest)
			return
		}
		w.Write([]byte(`{"result":"legacy ok"}`))
	})

	text, err := c.TranscribeURL(context.Background(), "http://example.com/a.wav", "")
	if err != nil {
		t.Fatalf("TranscribeURL: %v", err)
	}
	if text != "legacy ok" {
		t.Fatalf("text = %q", text)
	}
	if requests != 2 {
		t.Fatalf("requests = %d, want 2", requests)
	}
}

func TestTranscribeURLUpstreamError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend exploded", http.StatusBadGateway)
	})

	_, err := c.TranscribeURL(context.Background(), "http://example.com/a.wav", "auto")
	var ge *core.GatewayError
	if !errors.As(err, &ge) {
		t.Fatalf("expected *core.GatewayError, got %v", err)
	}
	if ge.Status != http.StatusBadGateway {
		t.Fatalf("relayed status = %d, want 502", ge.Status)
	}
}

func TestTranscribeURLNotConfigured(t *testing.T) {
	c := NewClient(Config{}, core.NewDevelopmentLogger())
	_, err := c.TranscribeURL(context.Background(), "http://example.com/a.wav", "auto")
	if !errors.Is(err, core.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestTranscribeURLEmptyTranscript(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})
	_, err := c.TranscribeURL(context.Background(), "http://example.com/a.wav", "auto")
	if err == nil {
		t.Fatal("expected error when no response shape matches")
	}
}
