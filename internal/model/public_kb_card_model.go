package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
)

// PublicKBCard is one curated reference card (template, rubric, example,
// question pattern) maintained by the product.
type PublicKBCard struct {
	Id          uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Track       string           `gorm:"type:varchar(20);not null;default:'workplace';index:idx_public_cards_track_scenario"`
	Scenario    string           `gorm:"type:varchar(30);not null;index:idx_public_cards_scenario_level;index:idx_public_cards_track_scenario"`
	Level       string           `gorm:"type:varchar(20);not null;default:'junior';index:idx_public_cards_scenario_level"`
	Subskill    string           `gorm:"type:varchar(100);not null;index:idx_public_cards_scenario_level"`
	RegionStyle string           `gorm:"type:varchar(10);not null;default:'EU'"`
	Title       string           `gorm:"type:varchar(255);not null"`
	Content     string           `gorm:"type:text;not null"`
	WhenToUse   *string          `gorm:"type:text"`
	SourceType  string           `gorm:"type:varchar(30);not null;default:'template'"`
	Embedding   *pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 uses 768 dimensions
	IsActive    bool             `gorm:"not null;default:true;index"`
	CreatedAt   time.Time        `gorm:"autoCreateTime"`
	UpdatedAt   time.Time        `gorm:"autoUpdateTime"`
}

func (PublicKBCard) TableName() string {
	return "public_kb_cards"
}
