package chat

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"rolechat/core"
	"rolechat/roleplay"

	"github.com/bytedance/sonic"
	"github.com/sashabaranov/go-openai"
)

// Config holds the chat gateway configuration. BaseURL points at any
// OpenAI-compatible endpoint.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Fixed sampling parameters for persona replies.
const (
	replyTemperature = 0.6
	replyMaxTokens   = 320
	cardTemperature  = 0.4
)

// Client forwards assembled messages to the chat-completion endpoint.
type Client struct {
	api    *openai.Client
	model  string
	logger *core.Logger
}

// NewClient creates a chat gateway client. With an empty API key the client
// is left unconfigured and every call returns core.ErrNotConfigured.
func NewClient(cfg Config, logger *core.Logger) *Client {
	if logger == nil {
		logger = core.GetLogger()
	}
	c := &Client{model: cfg.Model, logger: logger}
	if cfg.APIKey == "" {
		return c
	}
	apiCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		apiCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Timeout > 0 {
		apiCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}
	}
	c.api = openai.NewClientWithConfig(apiCfg)
	return c
}

// Configured reports whether the gateway has credentials.
func (c *Client) Configured() bool {
	return c.api != nil
}

// Complete sends the message list and returns the trimmed reply text.
// Empty completions are an error so callers can fall back deterministically.
func (c *Client) Complete(ctx context.Context, messages []roleplay.Message) (string, error) {
	if c.api == nil {
		return "", core.ErrNotConfigured
	}
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Messages:    convertMessages(messages),
		Temperature: replyTemperature,
		MaxTokens:   replyMaxTokens,
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat: completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("chat: completion returned no choices")
	}
	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", fmt.Errorf("chat: completion returned empty content")
	}
	return text, nil
}

// SynthesizeCard asks the gateway to produce a role card as JSON for a
// role that has no preset entry.
func (c *Client) SynthesizeCard(ctx context.Context, roleName string) (roleplay.RoleCard, error) {
	if c.api == nil {
		return roleplay.RoleCard{}, core.ErrNotConfigured
	}
	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "仅输出 JSON；包含 style, backstory(list), lexicon(list), taboo(list)。",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf("为人物『%s』生成扮演卡；避免暴露AI身份。", roleName),
			},
		},
		Temperature: cardTemperature,
	}
	resp, err := c.api.CreateChatCompletion(ctx, req)
	if err != nil {
		return roleplay.RoleCard{}, fmt.Errorf("chat: card synthesis: %w", err)
	}
	if len(resp.Choices) == 0 {
		return roleplay.RoleCard{}, fmt.Errorf("chat: card synthesis returned no choices")
	}
	var card roleplay.RoleCard
	raw := stripJSONFences(resp.Choices[0].Message.Content)
	if err := sonic.Unmarshal([]byte(raw), &card); err != nil {
		return roleplay.RoleCard{}, fmt.Errorf("chat: card synthesis returned malformed JSON: %w", err)
	}
	if len(card.Taboo) == 0 {
		card.Taboo = []string{"AI", "模型"}
	}
	return card, nil
}

func convertMessages(messages []roleplay.Message) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages))
	for _, m := range messages {
		out = append(out, openai.ChatCompletionMessage{
			Role:    convertRole(m.Role),
			Content: m.Content,
		})
	}
	return out
}

func convertRole(role string) string {
	switch role {
	case roleplay.RoleSystem:
		return openai.ChatMessageRoleSystem
	case roleplay.RoleAssistant:
		return openai.ChatMessageRoleAssistant
	default:
		return openai.ChatMessageRoleUser
	}
}

// stripJSONFences removes a surrounding markdown code fence, which some
// models emit around JSON output.
func stripJSONFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}
