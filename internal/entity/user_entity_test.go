package entity

import (
	"testing"
)

func TestUserTurnsRemaining(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		used  int
		want  int
	}{
		{"fresh month", 10, 0, 10},
		{"partially used", 10, 4, 6},
		{"exhausted", 10, 10, 0},
		{"over limit never negative", 10, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{
				PlanStatus:       "active",
				MonthlyTurnLimit: tt.limit,
				MonthlyTurnUsed:  tt.used,
			}
			if got := u.TurnsRemaining(); got != tt.want {
				t.Errorf("TurnsRemaining() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestUserCanSubmitTurn(t *testing.T) {
	tests := []struct {
		name   string
		status string
		limit  int
		used   int
		want   bool
	}{
		{"active under limit", "active", 10, 9, true},
		{"active at limit", "active", 10, 10, false},
		{"inactive plan", "inactive", 10, 0, false},
		{"trial is not active", "trial", 10, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := &User{
				PlanStatus:       tt.status,
				MonthlyTurnLimit: tt.limit,
				MonthlyTurnUsed:  tt.used,
			}
			if got := u.CanSubmitTurn(); got != tt.want {
				t.Errorf("CanSubmitTurn() = %v, want %v", got, tt.want)
			}
		})
	}
}
