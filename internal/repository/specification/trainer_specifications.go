package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BySessionID scopes turns or error events to one session
type BySessionID struct {
	SessionID uuid.UUID
}

func (s BySessionID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("session_id = ?", s.SessionID)
}

// NotArchived filters out archived sessions
type NotArchived struct{}

func (s NotArchived) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_archived = ?", false)
}

// ByScenario filters by training scenario
type ByScenario struct {
	Scenario string
}

func (s ByScenario) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scenario = ?", s.Scenario)
}

// ByErrorTag filters error events by tag
type ByErrorTag struct {
	Tag string
}

func (s ByErrorTag) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("error_tag = ?", s.Tag)
}
