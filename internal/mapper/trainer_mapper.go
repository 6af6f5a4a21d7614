package mapper

import (
	"encoding/json"
	"time"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/model"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TrainerMapper struct{}

func NewTrainerMapper() *TrainerMapper {
	return &TrainerMapper{}
}

// Session Mappers

func (m *TrainerMapper) SessionToEntity(s *model.TrainingSession) *entity.TrainingSession {
	if s == nil {
		return nil
	}

	var updatedAt *time.Time
	if !s.UpdatedAt.IsZero() {
		t := s.UpdatedAt
		updatedAt = &t
	}

	return &entity.TrainingSession{
		Id:         s.Id,
		UserId:     s.UserId,
		Track:      s.Track,
		Scenario:   s.Scenario,
		Level:      s.Level,
		Title:      s.Title,
		IsArchived: s.IsArchived,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

func (m *TrainerMapper) SessionToModel(s *entity.TrainingSession) *model.TrainingSession {
	if s == nil {
		return nil
	}

	var updatedAt time.Time
	if s.UpdatedAt != nil {
		updatedAt = *s.UpdatedAt
	}

	return &model.TrainingSession{
		Id:         s.Id,
		UserId:     s.UserId,
		Track:      s.Track,
		Scenario:   s.Scenario,
		Level:      s.Level,
		Title:      s.Title,
		IsArchived: s.IsArchived,
		CreatedAt:  s.CreatedAt,
		UpdatedAt:  updatedAt,
	}
}

// Turn Mappers

func (m *TrainerMapper) TurnToEntity(t *model.TrainingTurn) *entity.TrainingTurn {
	if t == nil {
		return nil
	}

	var intent entity.NormalizedIntent
	if len(t.NormalizedIntent) > 0 {
		_ = json.Unmarshal(t.NormalizedIntent, &intent)
	}

	var feedback map[string]interface{}
	if len(t.FeedbackObject) > 0 {
		_ = json.Unmarshal(t.FeedbackObject, &feedback)
	}

	return &entity.TrainingTurn{
		Id:                     t.Id,
		SessionId:              t.SessionId,
		TurnIndex:              t.TurnIndex,
		UserInput:              t.UserInput,
		NormalizedIntent:       intent,
		RetrievedPublicCardIds: unmarshalIds(t.RetrievedPublicCardIds),
		RetrievedUserCardIds:   unmarshalIds(t.RetrievedUserCardIds),
		FeedbackObject:         feedback,
		LatencyMs:              t.LatencyMs,
		Status:                 t.Status,
		CreatedAt:              t.CreatedAt,
	}
}

func (m *TrainerMapper) TurnToModel(t *entity.TrainingTurn) *model.TrainingTurn {
	if t == nil {
		return nil
	}

	intentJson, _ := json.Marshal(t.NormalizedIntent)
	feedbackJson, _ := json.Marshal(t.FeedbackObject)

	return &model.TrainingTurn{
		Id:                     t.Id,
		SessionId:              t.SessionId,
		TurnIndex:              t.TurnIndex,
		UserInput:              t.UserInput,
		NormalizedIntent:       datatypes.JSON(intentJson),
		RetrievedPublicCardIds: marshalIds(t.RetrievedPublicCardIds),
		RetrievedUserCardIds:   marshalIds(t.RetrievedUserCardIds),
		FeedbackObject:         datatypes.JSON(feedbackJson),
		LatencyMs:              t.LatencyMs,
		Status:                 t.Status,
		CreatedAt:              t.CreatedAt,
	}
}

func (m *TrainerMapper) TurnsToEntities(models []*model.TrainingTurn) []*entity.TrainingTurn {
	entities := make([]*entity.TrainingTurn, len(models))
	for i, t := range models {
		entities[i] = m.TurnToEntity(t)
	}
	return entities
}

// ErrorEvent Mappers

func (m *TrainerMapper) ErrorEventToEntity(e *model.ErrorEvent) *entity.ErrorEvent {
	if e == nil {
		return nil
	}

	return &entity.ErrorEvent{
		Id:        e.Id,
		UserId:    e.UserId,
		SessionId: e.SessionId,
		TurnId:    e.TurnId,
		Scenario:  e.Scenario,
		ErrorTag:  e.ErrorTag,
		CreatedAt: e.CreatedAt,
	}
}

func (m *TrainerMapper) ErrorEventToModel(e *entity.ErrorEvent) *model.ErrorEvent {
	if e == nil {
		return nil
	}

	return &model.ErrorEvent{
		Id:        e.Id,
		UserId:    e.UserId,
		SessionId: e.SessionId,
		TurnId:    e.TurnId,
		Scenario:  e.Scenario,
		ErrorTag:  e.ErrorTag,
		CreatedAt: e.CreatedAt,
	}
}

func marshalIds(ids []uuid.UUID) datatypes.JSON {
	if ids == nil {
		ids = []uuid.UUID{}
	}
	data, _ := json.Marshal(ids)
	return datatypes.JSON(data)
}

func unmarshalIds(data datatypes.JSON) []uuid.UUID {
	ids := make([]uuid.UUID, 0)
	if len(data) > 0 {
		_ = json.Unmarshal(data, &ids)
	}
	return ids
}
