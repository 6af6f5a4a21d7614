package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateSessionRequest struct {
	Track    string  `json:"track" validate:"required,oneof=job_search workplace"`
	Scenario string  `json:"scenario" validate:"required,oneof=project_pitch pr_issue"`
	Level    string  `json:"level" validate:"required,oneof=intern junior mid"`
	Title    *string `json:"title"`
}

type CreateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

// UpdateSessionRequest only exposes the archival flag; scenario, track,
// level and title are fixed at creation.
type UpdateSessionRequest struct {
	Id         uuid.UUID
	IsArchived *bool `json:"is_archived"`
}

type UpdateSessionResponse struct {
	Id uuid.UUID `json:"id"`
}

type SessionResponse struct {
	Id         uuid.UUID  `json:"id"`
	Track      string     `json:"track"`
	Scenario   string     `json:"scenario"`
	Level      string     `json:"level"`
	Title      *string    `json:"title"`
	IsArchived bool       `json:"is_archived"`
	TurnCount  int64      `json:"turn_count"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  *time.Time `json:"updated_at"`
}

type SubmitTurnRequest struct {
	SessionId uuid.UUID
	UserInput string `json:"user_input" validate:"required,min=10,max=5000"`
}

type SubmitTurnResponse struct {
	TurnId         uuid.UUID              `json:"turn_id"`
	TurnIndex      int                    `json:"turn_index"`
	Status         string                 `json:"status"`
	Feedback       map[string]interface{} `json:"feedback"`
	LatencyMs      int                    `json:"latency_ms"`
	TurnsRemaining int                    `json:"turns_remaining"`
}

// --- Quota Exceeded Error Types ---

// QuotaExceededError is a typed error carrying the quota details for the
// 429 response. Submitting a turn never partially consumes quota; a
// rejected submission leaves usage untouched.
type QuotaExceededError struct {
	Limit int `json:"limit"`
	Used  int `json:"used"`
}

func (e *QuotaExceededError) Error() string {
	return "monthly turn quota exceeded"
}

// QuotaExceededData is the data payload for 429 responses
type QuotaExceededData struct {
	Limit           int  `json:"limit"`
	Used            int  `json:"used"`
	UpgradeRequired bool `json:"upgrade_required"`
}

type TurnResponse struct {
	Id        uuid.UUID              `json:"id"`
	TurnIndex int                    `json:"turn_index"`
	UserInput string                 `json:"user_input"`
	Status    string                 `json:"status"`
	Feedback  map[string]interface{} `json:"feedback"`
	LatencyMs int                    `json:"latency_ms"`
	CreatedAt time.Time              `json:"created_at"`
}
