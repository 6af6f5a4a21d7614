package main

import (
	"log"

	"se-trainer-be/internal/constant"
	"se-trainer-be/internal/model"

	"gorm.io/gorm"
)

func strPtr(s string) *string {
	return &s
}

// SeedPublicCards populates the curated knowledge base with the starter
// card catalog. Embeddings are left empty here; the embedding worker (or a
// backfill run) fills them in later.
func SeedPublicCards(db *gorm.DB) {
	cards := []model.PublicKBCard{
		// --- Project Pitch ---
		{
			Title:      "Problem Statement Template",
			Scenario:   constant.ScenarioProjectPitch,
			Track:      constant.TrackJobSearch,
			Level:      constant.LevelJunior,
			Subskill:   "problem_statement",
			SourceType: constant.KBSourceTemplate,
			Content:    "Our team faced [PROBLEM] that was causing [IMPACT]. This affected [WHO] by [HOW].",
			WhenToUse:  strPtr("Use at the beginning of your project description to set context."),
		},
		{
			Title:      "Impact Statement with Metrics",
			Scenario:   constant.ScenarioProjectPitch,
			Track:      constant.TrackJobSearch,
			Level:      constant.LevelJunior,
			Subskill:   "impact_statement",
			SourceType: constant.KBSourceTemplate,
			Content:    "As a result, we achieved [METRIC] improvement in [AREA], reducing [X] from [Y] to [Z].",
			WhenToUse:  strPtr("Use when describing the outcome of your project."),
		},
		{
			Title:      "Role Clarification Pattern",
			Scenario:   constant.ScenarioProjectPitch,
			Track:      constant.TrackJobSearch,
			Level:      constant.LevelJunior,
			Subskill:   "role_clarity",
			SourceType: constant.KBSourceTemplate,
			Content:    "I was responsible for [SPECIFIC TASKS]. My key contributions included [CONTRIBUTION 1], [CONTRIBUTION 2], and [CONTRIBUTION 3].",
			WhenToUse:  strPtr("Use to clearly communicate your specific role in a team project."),
		},
		{
			Title:      "Trade-off Explanation",
			Scenario:   constant.ScenarioProjectPitch,
			Track:      constant.TrackWorkplace,
			Level:      constant.LevelMid,
			Subskill:   "trade_off",
			SourceType: constant.KBSourceTemplate,
			Content:    "We chose [SOLUTION A] over [SOLUTION B] because [REASON]. While this meant [TRADE-OFF], the benefit was [ADVANTAGE].",
			WhenToUse:  strPtr("Use when explaining technical decisions."),
		},
		{
			Title:      "Project Pitch Scoring Rubric",
			Scenario:   constant.ScenarioProjectPitch,
			Track:      constant.TrackJobSearch,
			Level:      constant.LevelJunior,
			Subskill:   "general",
			SourceType: constant.KBSourceRubric,
			Content:    "A strong pitch names the problem, the candidate's own role, at least one quantified outcome, and one trade-off that was consciously made. Vague ownership (\"we built\") without a personal contribution is the most common gap.",
			WhenToUse:  strPtr("Reference rubric for evaluating project pitches."),
		},
		{
			Title:      "Strong Pitch Example",
			Scenario:   constant.ScenarioProjectPitch,
			Track:      constant.TrackJobSearch,
			Level:      constant.LevelIntern,
			Subskill:   "impact_statement",
			SourceType: constant.KBSourceExample,
			Content:    "I built the caching layer for our search service. Query latency dropped from 800ms to 120ms (85% faster), which cut support tickets about slow search by half. I chose Redis over an in-process cache so the three API replicas could share warm entries.",
			WhenToUse:  strPtr("Show what a complete, metric-backed pitch looks like."),
		},
		// --- PR / Issue ---
		{
			Title:      "Constructive Code Review",
			Scenario:   constant.ScenarioPRIssue,
			Track:      constant.TrackWorkplace,
			Level:      constant.LevelJunior,
			Subskill:   "code_review",
			SourceType: constant.KBSourceTemplate,
			Content:    "Have you considered [ALTERNATIVE]? I think it might [BENEFIT] because [REASON]. What do you think?",
			WhenToUse:  strPtr("Use when suggesting improvements in code reviews."),
		},
		{
			Title:      "PR Description Structure",
			Scenario:   constant.ScenarioPRIssue,
			Track:      constant.TrackWorkplace,
			Level:      constant.LevelJunior,
			Subskill:   "pr_description",
			SourceType: constant.KBSourceTemplate,
			Content:    "## What\n[Brief description]\n\n## Why\n[Motivation/context]\n\n## How\n[Implementation approach]\n\n## Testing\n[How it was tested]",
			WhenToUse:  strPtr("Use as a template for PR descriptions."),
		},
		{
			Title:      "Bug Report Format",
			Scenario:   constant.ScenarioPRIssue,
			Track:      constant.TrackWorkplace,
			Level:      constant.LevelJunior,
			Subskill:   "bug_report",
			SourceType: constant.KBSourceTemplate,
			Content:    "**Expected:** [What should happen]\n**Actual:** [What actually happens]\n**Steps to reproduce:**\n1. [Step 1]\n2. [Step 2]\n\n**Environment:** [Relevant details]",
			WhenToUse:  strPtr("Use when reporting bugs or issues."),
		},
		{
			Title:      "Blocking with Alternatives",
			Scenario:   constant.ScenarioPRIssue,
			Track:      constant.TrackWorkplace,
			Level:      constant.LevelMid,
			Subskill:   "blocking_feedback",
			SourceType: constant.KBSourceTemplate,
			Content:    "I have concerns about [ISSUE] because [REASON]. Could we consider [ALTERNATIVE 1] or [ALTERNATIVE 2] instead?",
			WhenToUse:  strPtr("Use when blocking a PR while offering constructive alternatives."),
		},
		{
			Title:      "Approving with Specifics",
			Scenario:   constant.ScenarioPRIssue,
			Track:      constant.TrackWorkplace,
			Level:      constant.LevelJunior,
			Subskill:   "approval",
			SourceType: constant.KBSourceTemplate,
			Content:    "LGTM! I particularly like how you [SPECIFIC POSITIVE]. The [ASPECT] is clean and well-documented.",
			WhenToUse:  strPtr("Use when approving PRs to give specific positive feedback."),
		},
		{
			Title:      "Requesting Clarification",
			Scenario:   constant.ScenarioPRIssue,
			Track:      constant.TrackWorkplace,
			Level:      constant.LevelJunior,
			Subskill:   "clarification",
			SourceType: constant.KBSourceQuestionPattern,
			Content:    "Could you help me understand [ASPECT]? I'm not sure about [SPECIFIC QUESTION].",
			WhenToUse:  strPtr("Use when you need more context about a change."),
		},
		{
			Title:      "PR Communication Rubric",
			Scenario:   constant.ScenarioPRIssue,
			Track:      constant.TrackWorkplace,
			Level:      constant.LevelJunior,
			Subskill:   "general",
			SourceType: constant.KBSourceRubric,
			Content:    "Good PR and issue communication states what changed and why, separates expected from actual behavior, and makes the requested action explicit. Tone should be direct about the code and soft about the person.",
			WhenToUse:  strPtr("Reference rubric for evaluating PR and issue writing."),
		},
	}

	created := 0
	for _, c := range cards {
		// Title + scenario is the natural key for curated cards
		var existing model.PublicKBCard
		if err := db.Where("title = ? AND scenario = ?", c.Title, c.Scenario).First(&existing).Error; err == nil {
			log.Printf("Card '%s' (%s) already exists, skipping...", c.Title, c.Scenario)
			continue
		}

		c.IsActive = true
		if err := db.Create(&c).Error; err != nil {
			log.Printf("Error creating card '%s': %v", c.Title, err)
		} else {
			log.Printf("Created card: %s [%s/%s]", c.Title, c.Scenario, c.Subskill)
			created++
		}
	}

	log.Printf("Public KB seeding completed (%d created).", created)
}
