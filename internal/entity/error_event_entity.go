package entity

import (
	"time"

	"github.com/google/uuid"
)

type ErrorEvent struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	SessionId uuid.UUID
	TurnId    uuid.UUID
	Scenario  string
	ErrorTag  string
	CreatedAt time.Time
}
