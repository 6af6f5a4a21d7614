package feedback

import (
	"fmt"

	"se-trainer-be/internal/constant"
)

const (
	maxRewrites        = 3
	maxRewriteTextLen  = 500
	maxRewriteWhyLen   = 300
	maxNextTaskTypeLen = 50
	maxNextTaskTextLen = 500
	maxTemplateTitle   = 255
	maxTemplateContent = 1000
)

const (
	defaultNextTaskType = constant.NextTaskFollowUpQuestion
	defaultNextTaskText = "What specific improvements can you make to your text?"
)

// Validate normalizes raw model output into a canonical Feedback. It is
// total over any JSON object: out-of-range scores are clamped, unknown
// tags dropped, lists truncated. The only error case is a payload that is
// not an object at all.
func Validate(raw interface{}) (*Feedback, error) {
	output, ok := raw.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("model output is not a JSON object")
	}

	return &Feedback{
		Scores:          validateScores(output["scores"]),
		ErrorTags:       validateErrorTags(output["error_tags"]),
		Rewrites:        validateRewrites(output["rewrites"]),
		NextTask:        validateNextTask(output["next_task"]),
		TemplatesToSave: validateTemplates(output["templates_to_save"]),
	}, nil
}

func validateScores(raw interface{}) map[string]int {
	scores, _ := raw.(map[string]interface{})

	validated := make(map[string]int, len(constant.ScoringDimensions))
	for _, dimension := range constant.ScoringDimensions {
		validated[dimension] = clampScore(scores[dimension])
	}
	return validated
}

// clampScore coerces a score to an int in [1,5]. Anything non-numeric
// falls back to the middle score.
func clampScore(value interface{}) int {
	var score int
	switch v := value.(type) {
	case float64:
		score = int(v)
	case int:
		score = v
	default:
		return 3
	}

	if score < 1 {
		return 1
	}
	if score > 5 {
		return 5
	}
	return score
}

func validateErrorTags(raw interface{}) []string {
	tags, _ := raw.([]interface{})

	validated := []string{}
	for _, item := range tags {
		tag, ok := item.(string)
		if !ok || !constant.IsValidErrorTag(tag) {
			continue
		}
		validated = append(validated, tag)
	}
	return validated
}

func validateRewrites(raw interface{}) []Rewrite {
	rewrites, _ := raw.([]interface{})

	validated := []Rewrite{}
	for _, item := range rewrites {
		if len(validated) >= maxRewrites {
			break
		}

		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		rewrite := Rewrite{
			Original: truncate(asString(entry["original"]), maxRewriteTextLen),
			Better:   truncate(asString(entry["better"]), maxRewriteTextLen),
			Why:      truncate(asString(entry["why"]), maxRewriteWhyLen),
		}

		// A rewrite without improved text is useless.
		if rewrite.Better == "" {
			continue
		}
		validated = append(validated, rewrite)
	}
	return validated
}

func validateNextTask(raw interface{}) NextTask {
	task, ok := raw.(map[string]interface{})
	if !ok {
		return NextTask{
			Type: defaultNextTaskType,
			Text: defaultNextTaskText,
		}
	}

	taskType := asString(task["type"])
	if taskType == "" {
		taskType = defaultNextTaskType
	}

	return NextTask{
		Type: truncate(taskType, maxNextTaskTypeLen),
		Text: truncate(asString(task["text"]), maxNextTaskTextLen),
	}
}

func validateTemplates(raw interface{}) []Template {
	templates, _ := raw.([]interface{})

	validated := []Template{}
	for _, item := range templates {
		entry, ok := item.(map[string]interface{})
		if !ok {
			continue
		}

		template := Template{
			Title:   truncate(asString(entry["title"]), maxTemplateTitle),
			Content: truncate(asString(entry["content"]), maxTemplateContent),
		}

		if template.Content == "" {
			continue
		}
		validated = append(validated, template)
	}
	return validated
}

func asString(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
