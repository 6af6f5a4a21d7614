package entity

import (
	"time"

	"github.com/google/uuid"
)

type UsageLedgerEntry struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	Feature          string
	Units            int
	RelatedSessionId *uuid.UUID
	CreatedAt        time.Time
}
