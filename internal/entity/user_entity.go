package entity

import (
	"time"

	"github.com/google/uuid"

	"se-trainer-be/internal/constant"
)

type User struct {
	Id               uuid.UUID
	Email            string
	FullName         string
	Plan             string
	PlanStatus       string
	MonthlyTurnLimit int
	MonthlyTurnUsed  int
	CreatedAt        time.Time
	UpdatedAt        *time.Time
}

// TurnsRemaining is the number of turns left in the current period.
func (u *User) TurnsRemaining() int {
	remaining := u.MonthlyTurnLimit - u.MonthlyTurnUsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// CanSubmitTurn reports whether the user may submit another turn:
// active plan and usage under the limit.
func (u *User) CanSubmitTurn() bool {
	return u.PlanStatus == constant.PlanStatusActive && u.TurnsRemaining() > 0
}
