package model

import (
	"time"

	"github.com/google/uuid"
)

// TrainingSession is one multi-turn training flow under one scenario.
// Scenario, track and level are fixed at creation; only the archival flag
// and updated_at change afterwards.
type TrainingSession struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId     uuid.UUID `gorm:"type:uuid;not null;index:idx_sessions_user_updated"`
	Track      string    `gorm:"type:varchar(20);not null;default:'workplace'"`
	Scenario   string    `gorm:"type:varchar(30);not null;index"`
	Level      string    `gorm:"type:varchar(20);not null;default:'junior'"`
	Title      *string   `gorm:"type:varchar(255)"`
	IsArchived bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime;index:idx_sessions_user_updated"`

	Turns []TrainingTurn `gorm:"foreignKey:SessionId;constraint:OnDelete:CASCADE"`
}

func (TrainingSession) TableName() string {
	return "training_sessions"
}
