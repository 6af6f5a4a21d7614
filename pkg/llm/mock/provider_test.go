package mock

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"se-trainer-be/pkg/ai/feedback"
	"se-trainer-be/pkg/ai/prompt"
)

func buildPrompt(input string) string {
	return prompt.NewCoachBuilder("project_pitch", "junior", nil, input).Build()
}

func TestExtractSubmission(t *testing.T) {
	input := "I reduced build times by 40% across the team's CI pipelines."
	got := extractSubmission(buildPrompt(input))
	if got != input {
		t.Errorf("extractSubmission = %q, want %q", got, input)
	}

	// Prompt without markers falls back to the whole text
	if got := extractSubmission("raw text"); got != "raw text" {
		t.Errorf("extractSubmission without markers = %q", got)
	}
}

func TestHeuristicTags(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "short and metric-free",
			input: "I made it faster.",
			want:  []string{"too_vague", "missing_metric"},
		},
		{
			name:  "long enough with percentage",
			input: "I led the migration of our billing service to the new queue, cutting processing time by 35%.",
			want:  nil,
		},
		{
			name:  "rambling without metrics",
			input: strings.Repeat("We did a lot of work on many different things over several months. ", 10),
			want:  []string{"too_long", "missing_metric"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := heuristicTags(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("heuristicTags = %v, want %v", got, tt.want)
			}
			for i, tag := range tt.want {
				if got[i] != tag {
					t.Errorf("tag[%d] = %v, want %q", i, got[i], tag)
				}
			}
		})
	}
}

func TestGenerateStructuredPassesValidation(t *testing.T) {
	p := NewMockProvider()
	raw, err := p.GenerateStructured(context.Background(), buildPrompt("I made it faster."), nil)
	if err != nil {
		t.Fatalf("GenerateStructured failed: %v", err)
	}

	fb, err := feedback.Validate(raw)
	if err != nil {
		t.Fatalf("mock output failed validation: %v", err)
	}

	if len(fb.Scores) != 5 {
		t.Errorf("got %d score dimensions, want 5", len(fb.Scores))
	}
	for dim, score := range fb.Scores {
		if score != 3 {
			t.Errorf("Scores[%s] = %d, want 3 for a flawed submission", dim, score)
		}
	}
	if len(fb.ErrorTags) != 2 {
		t.Errorf("ErrorTags = %v, want too_vague and missing_metric", fb.ErrorTags)
	}
	if len(fb.Rewrites) != 1 {
		t.Fatalf("got %d rewrites, want 1", len(fb.Rewrites))
	}
	if fb.Rewrites[0].Better == "" {
		t.Error("mock rewrite should survive the empty-better filter")
	}
	if fb.NextTask.Type != "follow_up_question" {
		t.Errorf("next task type = %q", fb.NextTask.Type)
	}
	if len(fb.TemplatesToSave) != 1 {
		t.Errorf("got %d templates, want 1", len(fb.TemplatesToSave))
	}
}

func TestGenerateStructuredMultibyteSubmission(t *testing.T) {
	p := NewMockProvider()
	input := strings.Repeat("产", 120)
	raw, err := p.GenerateStructured(context.Background(), buildPrompt(input), nil)
	if err != nil {
		t.Fatalf("GenerateStructured failed: %v", err)
	}

	rewrites := raw["rewrites"].([]interface{})
	original := rewrites[0].(map[string]interface{})["original"].(string)
	if !utf8.ValidString(original) {
		t.Fatal("rewrite original is not valid UTF-8")
	}
	if got := utf8.RuneCountInString(original); got != 80 {
		t.Errorf("rewrite original has %d characters, want 80", got)
	}
}

func TestGenerateStructuredCleanSubmissionScoresHigher(t *testing.T) {
	p := NewMockProvider()
	input := "I led the migration of our billing service to the new queue, cutting processing time by 35%."
	raw, err := p.GenerateStructured(context.Background(), buildPrompt(input), nil)
	if err != nil {
		t.Fatalf("GenerateStructured failed: %v", err)
	}

	fb, err := feedback.Validate(raw)
	if err != nil {
		t.Fatalf("mock output failed validation: %v", err)
	}

	if len(fb.ErrorTags) != 0 {
		t.Errorf("clean submission should carry no tags, got %v", fb.ErrorTags)
	}
	for dim, score := range fb.Scores {
		if score != 4 {
			t.Errorf("Scores[%s] = %d, want 4 for a clean submission", dim, score)
		}
	}
}
