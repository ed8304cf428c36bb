package roleplay

import (
	"fmt"
	"strings"
)

// Message roles for the outbound gateway request.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one entry of the outbound chat-completion request.
type Message struct {
	Role    string
	Content string
}

const systemBase = "你是一个“角色扮演”助手。必须保持角色风格与语气，避免“作为AI”之类表述；" +
	"回答要简洁、具体、可执行。遇到事实不确定，用可能性表达，不要编造。"

const systemClose = "不要输出与人物身份不符的元信息；不要说“作为AI”等话术。"

// maxPromptTurns bounds how much history goes into a single gateway request.
// Independent of the store's retention limit.
const maxPromptTurns = 8

// BuildSystemPrompt concatenates, in fixed order, the base instruction, the
// persona description, the skill template and the closing reminder.
func BuildSystemPrompt(roleName string, card RoleCard, skill Skill) string {
	parts := []string{
		systemBase,
		fmt.Sprintf("人物：%s。风格：%s。背景要点：%s。词汇倾向：%s。",
			roleName, card.Style,
			strings.Join(card.Backstory, "、"),
			strings.Join(card.Lexicon, "、")),
		skill.Template(roleName),
		systemClose,
	}
	return strings.Join(parts, "\n")
}

// BuildMessages assembles the full outbound message list: system prompt,
// the most recent turns of history, then the new user message.
func BuildMessages(roleName string, card RoleCard, skill Skill, history []Turn, userText string) []Message {
	if len(history) > maxPromptTurns {
		history = history[len(history)-maxPromptTurns:]
	}
	msgs := make([]Message, 0, 2*len(history)+2)
	msgs = append(msgs, Message{Role: RoleSystem, Content: BuildSystemPrompt(roleName, card, skill)})
	for _, turn := range history {
		if turn.User != "" {
			msgs = append(msgs, Message{Role: RoleUser, Content: turn.User})
		}
		if turn.Assistant != "" {
			msgs = append(msgs, Message{Role: RoleAssistant, Content: turn.Assistant})
		}
	}
	msgs = append(msgs, Message{Role: RoleUser, Content: userText})
	return msgs
}
