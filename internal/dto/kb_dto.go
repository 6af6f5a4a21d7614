package dto

import (
	"time"

	"github.com/google/uuid"
)

// PublishEmbedCardMessage is the async payload that triggers embedding
// backfill for a KB card.
type PublishEmbedCardMessage struct {
	CardId   uuid.UUID `json:"card_id"`
	CardType string    `json:"card_type"` // "user" or "public"
}

type SaveTemplateRequest struct {
	Scenario string  `json:"scenario" validate:"required,oneof=project_pitch pr_issue"`
	Title    *string `json:"title"`
	Content  string  `json:"content" validate:"required,max=1000"`
}

type SaveTemplateResponse struct {
	Id uuid.UUID `json:"id"`
}

type UserCardResponse struct {
	Id         uuid.UUID `json:"id"`
	Scenario   string    `json:"scenario"`
	SourceType string    `json:"source_type"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

type PublicCardResponse struct {
	Id        uuid.UUID `json:"id"`
	Track     string    `json:"track"`
	Scenario  string    `json:"scenario"`
	Level     string    `json:"level"`
	Subskill  string    `json:"subskill"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	WhenToUse *string   `json:"when_to_use"`
}
