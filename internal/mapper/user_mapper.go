package mapper

import (
	"time"

	"se-trainer-be/internal/entity"
	"se-trainer-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:               u.Id,
		Email:            u.Email,
		FullName:         u.FullName,
		Plan:             u.Plan,
		PlanStatus:       u.PlanStatus,
		MonthlyTurnLimit: u.MonthlyTurnLimit,
		MonthlyTurnUsed:  u.MonthlyTurnUsed,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	return &model.User{
		Id:               u.Id,
		Email:            u.Email,
		FullName:         u.FullName,
		Plan:             u.Plan,
		PlanStatus:       u.PlanStatus,
		MonthlyTurnLimit: u.MonthlyTurnLimit,
		MonthlyTurnUsed:  u.MonthlyTurnUsed,
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        updatedAt,
	}
}

func (m *UserMapper) LedgerToModel(e *entity.UsageLedgerEntry) *model.UsageLedgerEntry {
	if e == nil {
		return nil
	}

	return &model.UsageLedgerEntry{
		Id:               e.Id,
		UserId:           e.UserId,
		Feature:          e.Feature,
		Units:            e.Units,
		RelatedSessionId: e.RelatedSessionId,
		CreatedAt:        e.CreatedAt,
	}
}

func (m *UserMapper) LedgerToEntity(e *model.UsageLedgerEntry) *entity.UsageLedgerEntry {
	if e == nil {
		return nil
	}

	return &entity.UsageLedgerEntry{
		Id:               e.Id,
		UserId:           e.UserId,
		Feature:          e.Feature,
		Units:            e.Units,
		RelatedSessionId: e.RelatedSessionId,
		CreatedAt:        e.CreatedAt,
	}
}
