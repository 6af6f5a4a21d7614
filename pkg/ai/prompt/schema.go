package prompt

import (
	"se-trainer-be/internal/constant"
)

// OutputSchema returns the JSON schema the model must follow. The shape
// mirrors pkg/ai/feedback.Feedback; the validator remains the source of
// truth since models do not always honor the schema.
func OutputSchema() map[string]interface{} {
	scoreProps := map[string]interface{}{}
	for _, dim := range constant.ScoringDimensions {
		scoreProps[dim] = map[string]interface{}{
			"type":    "INTEGER",
			"minimum": 1,
			"maximum": 5,
		}
	}

	return map[string]interface{}{
		"type": "OBJECT",
		"properties": map[string]interface{}{
			"scores": map[string]interface{}{
				"type":       "OBJECT",
				"properties": scoreProps,
				"required":   constant.ScoringDimensions,
			},
			"error_tags": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "STRING",
					"enum": constant.ErrorTags,
				},
			},
			"rewrites": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"original": map[string]interface{}{"type": "STRING"},
						"better":   map[string]interface{}{"type": "STRING"},
						"why":      map[string]interface{}{"type": "STRING"},
					},
					"required": []string{"original", "better"},
				},
			},
			"next_task": map[string]interface{}{
				"type": "OBJECT",
				"properties": map[string]interface{}{
					"type": map[string]interface{}{"type": "STRING"},
					"text": map[string]interface{}{"type": "STRING"},
				},
				"required": []string{"type", "text"},
			},
			"templates_to_save": map[string]interface{}{
				"type": "ARRAY",
				"items": map[string]interface{}{
					"type": "OBJECT",
					"properties": map[string]interface{}{
						"title":   map[string]interface{}{"type": "STRING"},
						"content": map[string]interface{}{"type": "STRING"},
					},
					"required": []string{"title", "content"},
				},
			},
		},
		"required": []string{"scores", "error_tags", "rewrites", "next_task"},
	}
}
