package entity

import (
	"time"

	"github.com/google/uuid"
)

type PublicKBCard struct {
	Id          uuid.UUID
	Track       string
	Scenario    string
	Level       string
	Subskill    string
	RegionStyle string
	Title       string
	Content     string
	WhenToUse   *string
	SourceType  string
	Embedding   []float32
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type UserKBCard struct {
	Id         uuid.UUID
	UserId     uuid.UUID
	Scenario   string
	SourceType string
	Title      *string
	Content    string
	Embedding  []float32
	Metadata   map[string]interface{}
	CreatedAt  time.Time
	UpdatedAt  *time.Time
}

// DisplayTitle returns the title or a placeholder when none is set.
func (c *UserKBCard) DisplayTitle() string {
	if c.Title != nil && *c.Title != "" {
		return *c.Title
	}
	return "Untitled"
}
