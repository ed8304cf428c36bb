package roleplay

import (
	"context"
	"fmt"

	"rolechat/core"
)

// RoleCard is the structured persona metadata that grounds generated
// dialogue: speaking style, backstory points, characteristic vocabulary and
// terms the persona must never say.
type RoleCard struct {
	Style     string   `json:"style"`
	Backstory []string `json:"backstory"`
	Lexicon   []string `json:"lexicon"`
	Taboo     []string `json:"taboo"`
}

// CardSynthesizer generates a role card for a non-preset role, typically by
// asking the chat gateway for a JSON object.
type CardSynthesizer interface {
	SynthesizeCard(ctx context.Context, roleName string) (RoleCard, error)
}

// CardBuilder resolves role names to role cards: exact preset match first,
// gateway synthesis second, deterministic default card last.
type CardBuilder struct {
	synth  CardSynthesizer
	logger *core.Logger
}

// NewCardBuilder creates a CardBuilder. synth may be nil, in which case
// non-preset roles always get the default card.
func NewCardBuilder(synth CardSynthesizer, logger *core.Logger) *CardBuilder {
	if logger == nil {
		logger = core.GetLogger()
	}
	return &CardBuilder{synth: synth, logger: logger}
}

// Build returns the card for roleName. Preset lookup is case-sensitive and
// exact. Synthesis results are not cached; roles intended for reuse should
// be added to the preset table.
func (b *CardBuilder) Build(ctx context.Context, roleName string) RoleCard {
	if card, ok := PresetCard(roleName); ok {
		return card
	}
	if b.synth != nil {
		card, err := b.synth.SynthesizeCard(ctx, roleName)
		if err == nil {
			return card
		}
		b.logger.With(map[string]any{"role": roleName, "error": err}).Warn("role card synthesis failed, using default card")
	}
	return DefaultCard(roleName)
}

// DefaultCard is the deterministic fallback used when a role is neither
// preset nor synthesizable.
func DefaultCard(roleName string) RoleCard {
	return RoleCard{
		Style:     fmt.Sprintf("你是%s，保持该人物常见口吻与价值观。", roleName),
		Backstory: []string{},
		Lexicon:   []string{},
		Taboo:     []string{"AI", "语言模型"},
	}
}
