package prompt

import (
	"strings"
	"testing"
)

func TestBuildSectionOrder(t *testing.T) {
	cards := []Card{
		{Title: "Impact Statement with Metrics", Content: "As a result, we achieved [METRIC]...", Source: "public_kb"},
	}
	b := NewCoachBuilder("project_pitch", "junior", cards, "I built a thing and it was fast.")
	out := b.Build()

	sections := []string{
		"<task>",
		"<rubric>",
		"<reference_material>",
		"Learner submission:",
		"Output requirements:",
	}

	last := -1
	for _, section := range sections {
		idx := strings.Index(out, section)
		if idx < 0 {
			t.Fatalf("prompt missing section %q", section)
		}
		if idx < last {
			t.Errorf("section %q appears out of order", section)
		}
		last = idx
	}
}

func TestBuildIncludesScenarioAndLevel(t *testing.T) {
	out := NewCoachBuilder("pr_issue", "mid", nil, "text").Build()

	if !strings.Contains(out, "Scenario: pr_issue") {
		t.Error("prompt missing scenario line")
	}
	if !strings.Contains(out, "Learner level: mid") {
		t.Error("prompt missing level line")
	}
}

func TestBuildRubricPerScenario(t *testing.T) {
	pitch := NewCoachBuilder("project_pitch", "junior", nil, "text").Build()
	if !strings.Contains(pitch, "A strong project pitch:") {
		t.Error("project_pitch prompt missing pitch rubric")
	}

	pr := NewCoachBuilder("pr_issue", "junior", nil, "text").Build()
	if !strings.Contains(pr, "A strong PR description or issue report:") {
		t.Error("pr_issue prompt missing PR rubric")
	}

	unknown := NewCoachBuilder("something_else", "junior", nil, "text").Build()
	if strings.Contains(unknown, "<rubric>") {
		t.Error("unknown scenario should carry no rubric block")
	}
}

func TestBuildReferenceMaterial(t *testing.T) {
	cards := []Card{
		{Title: "First Card", Content: "first content", Source: "user_kb"},
		{Title: "Second Card", Content: "second content", Source: "public_kb"},
	}
	out := NewCoachBuilder("project_pitch", "junior", cards, "text").Build()

	if !strings.Contains(out, "## First Card") || !strings.Contains(out, "first content") {
		t.Error("prompt missing first card")
	}
	if !strings.Contains(out, "## Second Card") || !strings.Contains(out, "second content") {
		t.Error("prompt missing second card")
	}
	if strings.Index(out, "## First Card") > strings.Index(out, "## Second Card") {
		t.Error("cards should keep their given order")
	}
}

func TestBuildNoCardsOmitsReferenceBlock(t *testing.T) {
	out := NewCoachBuilder("project_pitch", "junior", nil, "text").Build()
	if strings.Contains(out, "<reference_material>") {
		t.Error("prompt without cards should omit the reference block")
	}
}

func TestBuildContainsSubmission(t *testing.T) {
	input := "I shipped the migration with zero downtime."
	out := NewCoachBuilder("project_pitch", "junior", nil, input).Build()
	if !strings.Contains(out, input) {
		t.Error("prompt missing the learner submission")
	}
}
