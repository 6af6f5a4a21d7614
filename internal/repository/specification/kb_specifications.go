package specification

import "gorm.io/gorm"

// ActiveOnly filters public cards on the is_active flag
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByLevel filters cards by user experience level
type ByLevel struct {
	Level string
}

func (s ByLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("level = ?", s.Level)
}

// BySubskills narrows cards to a subskill hint list
type BySubskills struct {
	Subskills []string
}

func (s BySubskills) Apply(db *gorm.DB) *gorm.DB {
	if len(s.Subskills) == 0 {
		return db
	}
	return db.Where("subskill IN ?", s.Subskills)
}

// BySourceType filters cards by source type
type BySourceType struct {
	SourceType string
}

func (s BySourceType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("source_type = ?", s.SourceType)
}
