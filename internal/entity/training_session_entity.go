package entity

import (
	"time"

	"github.com/google/uuid"
)

type TrainingSession struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Track      string
	Scenario   string
	Level      string
	Title      *string
	IsArchived bool
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}
