package feedback

// Rewrite pairs a phrase from the learner's submission with a stronger
// version of it.
type Rewrite struct {
	Original string `json:"original"`
	Better   string `json:"better"`
	Why      string `json:"why"`
}

// NextTask is the single follow-up exercise attached to every feedback
// object.
type NextTask struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Template is a reusable phrasing pattern the learner can save to their
// knowledge base.
type Template struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Feedback is the canonical coaching result stored on a turn. Every field
// is already normalized by Validate; consumers never see out-of-range
// scores or unknown tags.
type Feedback struct {
	Scores          map[string]int `json:"scores"`
	ErrorTags       []string       `json:"error_tags"`
	Rewrites        []Rewrite      `json:"rewrites"`
	NextTask        NextTask       `json:"next_task"`
	TemplatesToSave []Template     `json:"templates_to_save"`
}
