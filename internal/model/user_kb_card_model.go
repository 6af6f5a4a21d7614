package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

// UserKBCard is one user-owned reference card: a saved template, uploaded
// material, or a best output kept for later reuse.
type UserKBCard struct {
	Id         uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID        `gorm:"type:uuid;not null;index:idx_user_cards_user_scenario;index:idx_user_cards_user_source"`
	Scenario   string           `gorm:"type:varchar(30);not null;index:idx_user_cards_user_scenario"`
	SourceType string           `gorm:"type:varchar(30);not null;default:'saved_template';index:idx_user_cards_user_source"`
	Title      *string          `gorm:"type:varchar(255)"`
	Content    string           `gorm:"type:text;not null"`
	Embedding  *pgvector.Vector `gorm:"type:vector(768)"`
	Metadata   datatypes.JSON   `gorm:"column:metadata"`
	CreatedAt  time.Time        `gorm:"autoCreateTime"`
	UpdatedAt  time.Time        `gorm:"autoUpdateTime"`
}

func (UserKBCard) TableName() string {
	return "user_kb_cards"
}
