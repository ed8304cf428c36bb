package roleplay

import (
	"fmt"
	"strings"
)

// Skill selects a response structure layered on top of a role card.
// The set is closed; unknown values are rejected at the HTTP boundary.
type Skill string

const (
	SkillKnowledge Skill = "knowledge"
	SkillSocratic  Skill = "socratic"
	SkillTeacher   Skill = "teacher"
	SkillDetective Skill = "detective"
	SkillPoet      Skill = "poet"
)

// ParseSkill validates a client-supplied skill value. The empty string
// defaults to knowledge; "story" is accepted as an alias for the
// stylistic-rewrite skill.
func ParseSkill(s string) (Skill, error) {
	switch Skill(strings.ToLower(strings.TrimSpace(s))) {
	case "":
		return SkillKnowledge, nil
	case SkillKnowledge:
		return SkillKnowledge, nil
	case SkillSocratic:
		return SkillSocratic, nil
	case SkillTeacher:
		return SkillTeacher, nil
	case SkillDetective:
		return SkillDetective, nil
	case SkillPoet, "story":
		return SkillPoet, nil
	default:
		return "", fmt.Errorf("unknown skill %q", s)
	}
}

// AllSkills returns the valid skills in a stable order.
func AllSkills() []Skill {
	return []Skill{SkillKnowledge, SkillSocratic, SkillTeacher, SkillDetective, SkillPoet}
}

var skillTemplates = map[Skill]string{
	SkillKnowledge: "【知识/问答模式】以%s的口吻，先用通俗语言给出直接答案，再补充必要背景与例子。" +
		"对专业概念给一行简明定义。避免长段空话。",
	SkillSocratic: "【苏格拉底式提问】以%s的风格，用连续提问引导用户澄清概念与前提，" +
		"每次最多 2~3 句，问题由浅入深，必要时举反例，不给最终结论。",
	SkillTeacher: "【老师式讲解】以%s的风格，按“结论→步骤→例子→检查理解”的结构解释问题，" +
		"步骤用编号短句；最后给一个 1 句话的自测问题。",
	SkillDetective: "【侦探式推理】以%s的风格，按“线索→假设→验证→结论/疑点”的顺序分析，" +
		"对不确定之处标注可能性。",
	SkillPoet: "【文风改写】以%s的风格，把用户内容润色为更有感染力的短段落；" +
		"保留原意，避免过度辞藻。若用户没给文本，先向其索要。",
}

var skillDescriptions = map[Skill]string{
	SkillKnowledge: "直接回答后补充背景与例子",
	SkillSocratic:  "连续提问引导，不给结论",
	SkillTeacher:   "结论→步骤→例子→自测的结构化讲解",
	SkillDetective: "线索→假设→验证→结论的推理分析",
	SkillPoet:      "文风润色与短篇改写",
}

// Template returns the skill instruction with the role name interpolated.
func (s Skill) Template(roleName string) string {
	return fmt.Sprintf(skillTemplates[s], roleName)
}

// Description returns a one-line summary suitable for role discovery APIs.
func (s Skill) Description() string {
	return skillDescriptions[s]
}
