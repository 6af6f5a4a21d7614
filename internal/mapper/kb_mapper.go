package mapper

import (
	"encoding/json"
	"time"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/model"

	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
)

type KBMapper struct{}

func NewKBMapper() *KBMapper {
	return &KBMapper{}
}

func (m *KBMapper) PublicCardToEntity(c *model.PublicKBCard) *entity.PublicKBCard {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	var embedding []float32
	if c.Embedding != nil {
		embedding = c.Embedding.Slice()
	}

	return &entity.PublicKBCard{
		Id:          c.Id,
		Track:       c.Track,
		Scenario:    c.Scenario,
		Level:       c.Level,
		Subskill:    c.Subskill,
		RegionStyle: c.RegionStyle,
		Title:       c.Title,
		Content:     c.Content,
		WhenToUse:   c.WhenToUse,
		SourceType:  c.SourceType,
		Embedding:   embedding,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *KBMapper) PublicCardToModel(c *entity.PublicKBCard) *model.PublicKBCard {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	var embedding *pgvector.Vector
	if c.Embedding != nil {
		v := pgvector.NewVector(c.Embedding)
		embedding = &v
	}

	return &model.PublicKBCard{
		Id:          c.Id,
		Track:       c.Track,
		Scenario:    c.Scenario,
		Level:       c.Level,
		Subskill:    c.Subskill,
		RegionStyle: c.RegionStyle,
		Title:       c.Title,
		Content:     c.Content,
		WhenToUse:   c.WhenToUse,
		SourceType:  c.SourceType,
		Embedding:   embedding,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   updatedAt,
	}
}

func (m *KBMapper) UserCardToEntity(c *model.UserKBCard) *entity.UserKBCard {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	var embedding []float32
	if c.Embedding != nil {
		embedding = c.Embedding.Slice()
	}

	var metadata map[string]interface{}
	if len(c.Metadata) > 0 {
		_ = json.Unmarshal(c.Metadata, &metadata)
	}

	return &entity.UserKBCard{
		Id:         c.Id,
		UserId:     c.UserId,
		Scenario:   c.Scenario,
		SourceType: c.SourceType,
		Title:      c.Title,
		Content:    c.Content,
		Embedding:  embedding,
		Metadata:   metadata,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *KBMapper) UserCardToModel(c *entity.UserKBCard) *model.UserKBCard {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	var embedding *pgvector.Vector
	if c.Embedding != nil {
		v := pgvector.NewVector(c.Embedding)
		embedding = &v
	}

	var metadata datatypes.JSON
	if c.Metadata != nil {
		data, _ := json.Marshal(c.Metadata)
		metadata = datatypes.JSON(data)
	}

	return &model.UserKBCard{
		Id:         c.Id,
		UserId:     c.UserId,
		Scenario:   c.Scenario,
		SourceType: c.SourceType,
		Title:      c.Title,
		Content:    c.Content,
		Embedding:  embedding,
		Metadata:   metadata,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}
