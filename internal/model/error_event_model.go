package model

import (
	"time"

	"github.com/google/uuid"
)

// ErrorEvent is one structured error tag derived from a committed turn.
// Tags always come from the controlled vocabulary; the reports subsystem
// aggregates these rows.
type ErrorEvent struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_error_events_user_created;index:idx_error_events_user_tag"`
	SessionId uuid.UUID `gorm:"type:uuid;not null;index"`
	TurnId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Scenario  string    `gorm:"type:varchar(30);not null"`
	ErrorTag  string    `gorm:"type:varchar(50);not null;index:idx_error_events_user_tag"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_error_events_user_created"`
}

func (ErrorEvent) TableName() string {
	return "error_events"
}
