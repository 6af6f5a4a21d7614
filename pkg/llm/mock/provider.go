package mock

import (
	"context"
	"fmt"
	"strings"

	"se-trainer-be/internal/constant"
	"se-trainer-be/pkg/llm"
)

// MockProvider produces deterministic feedback without calling any model.
// Used in local development and tests when no API key is configured.
type MockProvider struct{}

var _ llm.Provider = &MockProvider{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

const (
	submissionMarker = "Learner submission:"
	requirementsMark = "Output requirements:"
)

// extractSubmission pulls the learner's text back out of the assembled
// prompt so the heuristics below run on the submission, not the rubric.
func extractSubmission(prompt string) string {
	idx := strings.Index(prompt, submissionMarker)
	if idx < 0 {
		return prompt
	}
	text := prompt[idx+len(submissionMarker):]
	if end := strings.Index(text, requirementsMark); end >= 0 {
		text = text[:end]
	}
	return strings.TrimSpace(text)
}

func heuristicTags(input string) []interface{} {
	tags := []interface{}{}
	lowered := strings.ToLower(input)
	if len(input) < 50 {
		tags = append(tags, "too_vague")
	}
	if len(input) > 500 {
		tags = append(tags, "too_long")
	}
	if !strings.Contains(lowered, "%") && !strings.Contains(lowered, "number") {
		tags = append(tags, "missing_metric")
	}
	return tags
}

func (p *MockProvider) GenerateStructured(ctx context.Context, prompt string, schema map[string]interface{}, opts ...llm.Option) (map[string]interface{}, error) {
	input := extractSubmission(prompt)
	tags := heuristicTags(input)

	score := 4
	if len(tags) > 0 {
		score = 3
	}
	scores := map[string]interface{}{}
	for _, dim := range constant.ScoringDimensions {
		scores[dim] = float64(score)
	}

	original := input
	if runes := []rune(original); len(runes) > 80 {
		original = string(runes[:80])
	}

	return map[string]interface{}{
		"scores": scores,
		"error_tags": tags,
		"rewrites": []interface{}{
			map[string]interface{}{
				"original": original,
				"better":   fmt.Sprintf("A sharper version of: %s", original),
				"why":      "Lead with the outcome and quantify the impact.",
			},
		},
		"next_task": map[string]interface{}{
			"type": "follow_up_question",
			"text": "Rewrite your opening sentence so it states the result first.",
		},
		"templates_to_save": []interface{}{
			map[string]interface{}{
				"title":   "Impact-first summary",
				"content": "This change {action} which {measurable outcome}.",
			},
		},
	}, nil
}
