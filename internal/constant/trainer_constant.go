package constant

// Training scenarios
const (
	ScenarioProjectPitch = "project_pitch"
	ScenarioPRIssue      = "pr_issue"
)

// Training tracks
const (
	TrackJobSearch = "job_search"
	TrackWorkplace = "workplace"
)

// User experience levels
const (
	LevelIntern = "intern"
	LevelJunior = "junior"
	LevelMid    = "mid"
)

// Turn status values
const (
	TurnStatusSuccess  = "success"
	TurnStatusError    = "error"
	TurnStatusFallback = "fallback"
)

// Plan types
const (
	PlanFree  = "free"
	PlanBasic = "basic"
	PlanPro   = "pro"
)

// Plan status
const (
	PlanStatusActive   = "active"
	PlanStatusInactive = "inactive"
	PlanStatusTrial    = "trial"
)

// Features that consume usage quota
const (
	UsageFeatureTurnSubmit   = "turn_submit"
	UsageFeatureTemplateSave = "template_save"
)

// Next task types
const (
	NextTaskFollowUpQuestion = "follow_up_question"
	NextTaskRewriteExercise  = "rewrite_exercise"
	NextTaskNewScenario      = "new_scenario"
)

// KB card source types (curated store)
const (
	KBSourceTemplate        = "template"
	KBSourceRubric          = "rubric"
	KBSourceExample         = "example"
	KBSourceQuestionPattern = "question_pattern"
)

// User KB card source types
const (
	UserKBSourceSavedTemplate    = "saved_template"
	UserKBSourceUploadedMaterial = "uploaded_material"
	UserKBSourceBestOutput       = "best_output"
)

// ScoringDimensions is the fixed set of feedback score keys, in report order.
var ScoringDimensions = []string{
	"clarity",
	"conciseness",
	"correctness",
	"tone",
	"actionability",
}

// ErrorTags is the controlled vocabulary for feedback error tags.
// Anything outside this set is invalid by definition and gets dropped
// during output validation.
var ErrorTags = []string{
	"too_vague",
	"too_long",
	"missing_metric",
	"missing_role",
	"missing_impact",
	"missing_next_step",
	"weak_tradeoff",
	"tone_too_direct",
	"tone_too_soft",
	"unclear_request",
	"unclear_expected_actual",
}

var errorTagSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(ErrorTags))
	for _, tag := range ErrorTags {
		set[tag] = struct{}{}
	}
	return set
}()

// IsValidErrorTag reports whether tag belongs to the controlled vocabulary.
func IsValidErrorTag(tag string) bool {
	_, ok := errorTagSet[tag]
	return ok
}

// DefaultMonthlyTurnLimit maps plan type to its monthly turn allowance.
var DefaultMonthlyTurnLimit = map[string]int{
	PlanFree:  10,
	PlanBasic: 100,
	PlanPro:   500,
}

var validScenarios = map[string]struct{}{
	ScenarioProjectPitch: {},
	ScenarioPRIssue:      {},
}

// IsValidScenario reports whether scenario is a known training scenario.
func IsValidScenario(scenario string) bool {
	_, ok := validScenarios[scenario]
	return ok
}
