package feedback

import (
	"se-trainer-be/internal/constant"
)

// Fallback builds the minimal valid feedback committed when generation
// fails. It echoes the start of the learner's submission so the turn
// record still shows what was reviewed.
func Fallback(userInput string) *Feedback {
	scores := make(map[string]int, len(constant.ScoringDimensions))
	for _, dimension := range constant.ScoringDimensions {
		scores[dimension] = 3
	}

	original := truncate(userInput, 100)

	return &Feedback{
		Scores:    scores,
		ErrorTags: []string{},
		Rewrites: []Rewrite{
			{
				Original: original,
				Better:   "We encountered an issue analyzing your text. Please try again.",
				Why:      "System is temporarily unable to provide detailed feedback.",
			},
		},
		NextTask: NextTask{
			Type: constant.NextTaskFollowUpQuestion,
			Text: "Please try submitting your text again.",
		},
		TemplatesToSave: []Template{},
	}
}
