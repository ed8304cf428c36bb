package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"rolechat/core"
	"rolechat/roleplay"

	"github.com/sashabaranov/go-openai"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(Config{
		APIKey:  "test-key",
		BaseURL: srv.URL + "/v1",
		Model:   "test-model",
	}, core.NewDevelopmentLogger())
}

func completionResponse(content string) openai.ChatCompletionResponse {
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: content}},
		},
	}
}

func TestCompleteReturnsTrimmedText(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		json.NewDecoder(r.Body).Decode(&req)
		if req.Model != "test-model" {
			t.Errorf("model = %q", req.Model)
		}
		if req.MaxTokens != replyMaxTokens {
			t.Errorf("max tokens = %d, want %d", req.MaxTokens, replyMaxTokens)
		}
		json.NewEncoder(w).Encode(completionResponse("  吾爱吾师，吾更爱真理。  "))
	})

	got, err := c.Complete(context.Background(), []roleplay.Message{
		{Role: roleplay.RoleSystem, Content: "system"},
		{Role: roleplay.RoleUser, Content: "hi"},
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if got != "吾爱吾师，吾更爱真理。" {
		t.Fatalf("reply = %q", got)
	}
}

func TestCompleteEmptyContentIsError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse("   "))
	})
	if _, err := c.Complete(context.Background(), []roleplay.Message{{Role: roleplay.RoleUser, Content: "hi"}}); err == nil {
		t.Fatal("expected error for empty completion content")
	}
}

func TestCompleteNotConfigured(t *testing.T) {
	c := NewClient(Config{}, core.NewDevelopmentLogger())
	if c.Configured() {
		t.Fatal("client without API key must not report configured")
	}
	_, err := c.Complete(context.Background(), nil)
	if !errors.Is(err, core.ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}

func TestSynthesizeCardParsesJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse(
			"```json\n{\"style\":\"豪放诗仙\",\"backstory\":[\"唐代诗人\"],\"lexicon\":[\"酒\",\"月\"],\"taboo\":[\"AI\"]}\n```",
		))
	})

	card, err := c.SynthesizeCard(context.Background(), "李白")
	if err != nil {
		t.Fatalf("SynthesizeCard: %v", err)
	}
	if card.Style != "豪放诗仙" {
		t.Fatalf("style = %q", card.Style)
	}
	if len(card.Lexicon) != 2 {
		t.Fatalf("lexicon = %v", card.Lexicon)
	}
}

func TestSynthesizeCardMalformedJSON(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(completionResponse("这不是 JSON"))
	})
	if _, err := c.SynthesizeCard(context.Background(), "李白"); err == nil {
		t.Fatal("expected error for malformed card JSON")
	}
}

func TestStripJSONFences(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`{"a":1}`, `{"a":1}`},
		{"```json\n{\"a\":1}\n```", `{"a":1}`},
		{"```\n{\"a\":1}\n```", `{"a":1}`},
		{"  {\"a\":1}  ", `{"a":1}`},
	}
	for _, tc := range tests {
		if got := stripJSONFences(tc.in); got != tc.want {
			t.Errorf("stripJSONFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
