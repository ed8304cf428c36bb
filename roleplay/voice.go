package roleplay

import (
	"regexp"
	"strings"
)

// Fallback voices used when a role has no alias-table entry.
const (
	ChineseFallbackVoice = "qiniu_zh_female_tmjxxy"
	DefaultFallbackVoice = "qiniu_en_female_std"
)

// separatorPattern matches the separators stripped during role-name
// normalization: spaces, dots, dashes, middle dots, underscores.
var separatorPattern = regexp.MustCompile(`[·•・\s\._．\-]+`)

// NormalizeRoleName lowercases a role name and strips separator characters
// so that "Sun Wukong", "sun_wukong" and "sun-wukong" all collapse to the
// same key.
func NormalizeRoleName(s string) string {
	return separatorPattern.ReplaceAllString(strings.ToLower(strings.TrimSpace(s)), "")
}

// voiceAliases maps normalized role aliases to gateway voice ids. Many
// aliases map to the same voice. Static; never mutated after init.
var voiceAliases = map[string]string{
	"socrates": "qiniu_zh_male_lpsmtb",
	"苏格拉底":     "qiniu_zh_male_lpsmtb",

	"confucius": "qiniu_zh_male_deep",
	"孔子":        "qiniu_zh_male_deep",

	"lindaiyu": "qiniu_zh_female_tmjxxy",
	"林黛玉":      "qiniu_zh_female_tmjxxy",

	"sunwukong": "qiniu_zh_male_yzcs",
	"孙悟空":       "qiniu_zh_male_yzcs",
	"齐天大圣":      "qiniu_zh_male_yzcs",
	"孙行者":       "qiniu_zh_male_yzcs",

	"shakespeare": "qiniu_en_male_std",
	"莎士比亚":        "qiniu_en_male_std",

	"sherlock":       "qiniu_en_male_british",
	"sherlockholmes": "qiniu_en_male_british",
	"福尔摩斯":           "qiniu_en_male_british",

	"newton":      "qiniu_en_male_calm",
	"isaacnewton": "qiniu_en_male_calm",
	"牛顿":          "qiniu_en_male_calm",

	"harrypotter": "qiniu_en_male_boyish",
	"哈利波特":        "qiniu_en_male_boyish",
}

// VoiceResolver picks a synthesis voice for a role. Pure and deterministic
// given its inputs and the static alias table.
type VoiceResolver struct {
	aliases         map[string]string
	chineseFallback string
	defaultFallback string
}

// NewVoiceResolver creates a resolver over the built-in alias table.
// Empty fallback arguments select the package defaults.
func NewVoiceResolver(chineseFallback, defaultFallback string) *VoiceResolver {
	if chineseFallback == "" {
		chineseFallback = ChineseFallbackVoice
	}
	if defaultFallback == "" {
		defaultFallback = DefaultFallbackVoice
	}
	return &VoiceResolver{
		aliases:         voiceAliases,
		chineseFallback: chineseFallback,
		defaultFallback: defaultFallback,
	}
}

// PickVoice resolves the voice id for a reply. Priority: explicit override,
// alias-table match on the normalized role name, Chinese fallback when the
// role name or reply contains CJK ideographs, default fallback otherwise.
// Overrides are returned verbatim without validation.
func (r *VoiceResolver) PickVoice(roleName, replyText, override string) string {
	if override != "" {
		return override
	}
	if voice, ok := r.aliases[NormalizeRoleName(roleName)]; ok {
		return voice
	}
	if containsCJK(roleName) || containsCJK(replyText) {
		return r.chineseFallback
	}
	return r.defaultFallback
}

// containsCJK reports whether s contains at least one rune in the CJK
// Unified Ideographs block.
func containsCJK(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}
