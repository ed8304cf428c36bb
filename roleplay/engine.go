package roleplay

import (
	"context"
	"fmt"
	"strings"

	"rolechat/core"
)

// ChatGateway is the outbound chat-completion dependency of the engine.
type ChatGateway interface {
	Complete(ctx context.Context, messages []Message) (string, error)
}

// Engine runs the persona chat flow: assemble prompt, call the gateway,
// degrade to a deterministic placeholder when the gateway cannot answer.
type Engine struct {
	gateway ChatGateway
	logger  *core.Logger
}

// NewEngine creates an Engine. gateway may be nil, in which case every
// reply is the placeholder.
func NewEngine(gateway ChatGateway, logger *core.Logger) *Engine {
	if logger == nil {
		logger = core.GetLogger()
	}
	return &Engine{gateway: gateway, logger: logger}
}

// Reply produces the assistant reply for one user message. It never fails:
// gateway errors and empty completions fall back to PlaceholderReply so the
// conversation flow stays alive.
func (e *Engine) Reply(ctx context.Context, roleName string, card RoleCard, skill Skill, history []Turn, userText string) string {
	if e.gateway != nil {
		msgs := BuildMessages(roleName, card, skill, history, userText)
		text, err := e.gateway.Complete(ctx, msgs)
		if err == nil && text != "" {
			return text
		}
		if err != nil {
			e.logger.With(map[string]any{"role": roleName, "error": err}).Warn("chat completion failed, using placeholder reply")
		}
	}
	return PlaceholderReply(roleName, card, userText)
}

// PlaceholderReply is the deterministic fallback reply: it names the role,
// cites up to two lexicon terms and echoes a prefix of the user's input.
func PlaceholderReply(roleName string, card RoleCard, userText string) string {
	hint := ""
	if len(card.Lexicon) > 0 {
		terms := card.Lexicon
		if len(terms) > 2 {
			terms = terms[:2]
		}
		hint = "我常提到：" + strings.Join(terms, ",") + " "
	}
	return fmt.Sprintf("（占位回答）我是%s。%s你刚才说：%s。", roleName, hint, runePrefix(userText, 60))
}

func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
