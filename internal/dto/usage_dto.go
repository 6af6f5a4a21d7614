package dto

import (
	"time"

	"github.com/google/uuid"
)

// UsageStatusResponse is returned by GET /trainer/v1/usage
type UsageStatusResponse struct {
	Plan             string `json:"plan"`
	PlanStatus       string `json:"plan_status"`
	MonthlyTurnLimit int    `json:"monthly_turn_limit"`
	MonthlyTurnUsed  int    `json:"monthly_turn_used"`
	TurnsRemaining   int    `json:"turns_remaining"`
	CanSubmitTurn    bool   `json:"can_submit_turn"`
}

type LedgerEntryResponse struct {
	Id               uuid.UUID  `json:"id"`
	Feature          string     `json:"feature"`
	Units            int        `json:"units"`
	RelatedSessionId *uuid.UUID `json:"related_session_id"`
	CreatedAt        time.Time  `json:"created_at"`
}
