package entity

import (
	"time"

	"github.com/google/uuid"
)

// NormalizedIntent is the lightweight retrieval driver derived locally from
// one submission. It never feeds back into the feedback contract.
type NormalizedIntent struct {
	Scenario       string   `json:"scenario"`
	RetrievalQuery string   `json:"retrieval_query"`
	Subskills      []string `json:"subskills,omitempty"`
}

// TrainingTurn is immutable once created.
type TrainingTurn struct {
	Id                     uuid.UUID
	SessionId              uuid.UUID
	TurnIndex              int
	UserInput              string
	NormalizedIntent       NormalizedIntent
	RetrievedPublicCardIds []uuid.UUID
	RetrievedUserCardIds   []uuid.UUID
	FeedbackObject         map[string]interface{}
	LatencyMs              int
	Status                 string
	CreatedAt              time.Time
}
