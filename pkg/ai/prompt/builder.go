package prompt

import (
	"strings"
)

// Card is a single piece of reference material injected into the prompt.
type Card struct {
	Title   string
	Content string
	Source  string // "public_kb" or "user_kb"
}

// CoachBuilder assembles the full coaching prompt for one submission:
// task framing, scenario rubric, retrieved reference cards, the learner's
// text, and the output contract.
type CoachBuilder struct {
	scenario string
	level    string
	cards    []Card
	input    string
}

func NewCoachBuilder(scenario, level string, cards []Card, input string) *CoachBuilder {
	return &CoachBuilder{
		scenario: scenario,
		level:    level,
		cards:    cards,
		input:    input,
	}
}

func (b *CoachBuilder) Build() string {
	var prompt strings.Builder

	b.writeTask(&prompt)
	b.writeRubric(&prompt)
	b.writeReferenceMaterial(&prompt)
	b.writeSubmission(&prompt)
	b.writeRequirements(&prompt)

	return prompt.String()
}

func (b *CoachBuilder) writeTask(prompt *strings.Builder) {
	prompt.WriteString("<task>\n")
	prompt.WriteString("You are an experienced engineering communication coach reviewing a software engineer's written English.\n")
	prompt.WriteString("Scenario: " + b.scenario + "\n")
	prompt.WriteString("Learner level: " + b.level + "\n")
	prompt.WriteString("Evaluate the submission, point out concrete weaknesses, and show stronger rewrites. Be direct and specific; never invent facts the learner did not state.\n")
	prompt.WriteString("</task>\n\n")
}

func (b *CoachBuilder) writeRubric(prompt *strings.Builder) {
	switch b.scenario {
	case "project_pitch":
		prompt.WriteString("<rubric>\n")
		prompt.WriteString("A strong project pitch:\n")
		prompt.WriteString("- Opens with the problem and the measurable outcome, not the technology\n")
		prompt.WriteString("- Quantifies impact (users, latency, cost, revenue) with real numbers\n")
		prompt.WriteString("- States the engineer's own role and decisions explicitly\n")
		prompt.WriteString("- Fits in under a minute of speaking time\n")
		prompt.WriteString("</rubric>\n\n")
	case "pr_issue":
		prompt.WriteString("<rubric>\n")
		prompt.WriteString("A strong PR description or issue report:\n")
		prompt.WriteString("- Summarizes the change or defect in the first sentence\n")
		prompt.WriteString("- Separates observed behavior from expected behavior\n")
		prompt.WriteString("- Includes reproduction steps or verification steps in order\n")
		prompt.WriteString("- Calls out risk, scope, and anything reviewers must check\n")
		prompt.WriteString("</rubric>\n\n")
	}
}

func (b *CoachBuilder) writeReferenceMaterial(prompt *strings.Builder) {
	if len(b.cards) == 0 {
		return
	}

	prompt.WriteString("<reference_material>\n")
	for _, card := range b.cards {
		prompt.WriteString("## " + card.Title + "\n")
		prompt.WriteString(card.Content)
		prompt.WriteString("\n\n")
	}
	prompt.WriteString("</reference_material>\n\n")
}

func (b *CoachBuilder) writeSubmission(prompt *strings.Builder) {
	prompt.WriteString("Learner submission:\n")
	prompt.WriteString(b.input)
	prompt.WriteString("\n\n")
}

func (b *CoachBuilder) writeRequirements(prompt *strings.Builder) {
	prompt.WriteString("Output requirements:\n")
	prompt.WriteString("Respond with a single JSON object and nothing else. Score each dimension from 1 to 5. ")
	prompt.WriteString("Use only the allowed error tags. Provide at most 3 rewrites, each quoting the learner's original phrase. ")
	prompt.WriteString("Finish with one concrete next task the learner can attempt immediately.")
}
