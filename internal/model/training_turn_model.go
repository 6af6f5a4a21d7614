package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TrainingTurn is one user submission plus its validated feedback, recorded
// append-only. TurnIndex is assigned once at commit time; the composite
// unique index is the storage-layer backstop against duplicate indices.
type TrainingTurn struct {
	Id                     uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SessionId              uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_turns_session_index;index:idx_turns_session_created"`
	TurnIndex              int            `gorm:"not null;uniqueIndex:idx_turns_session_index"`
	UserInput              string         `gorm:"type:text;not null"`
	NormalizedIntent       datatypes.JSON `gorm:"column:normalized_intent"`
	RetrievedPublicCardIds datatypes.JSON `gorm:"column:retrieved_public_card_ids"`
	RetrievedUserCardIds   datatypes.JSON `gorm:"column:retrieved_user_card_ids"`
	FeedbackObject         datatypes.JSON `gorm:"column:feedback_object"`
	LatencyMs              int            `gorm:"not null;default:0"`
	Status                 string         `gorm:"type:varchar(20);not null;default:'success'"`
	CreatedAt              time.Time      `gorm:"autoCreateTime;index:idx_turns_session_created"`

	ErrorEvents []ErrorEvent `gorm:"foreignKey:TurnId;constraint:OnDelete:CASCADE"`
}

func (TrainingTurn) TableName() string {
	return "training_turns"
}
