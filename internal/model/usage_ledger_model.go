package model

import (
	"time"

	"github.com/google/uuid"
)

// UsageLedgerEntry stores consumption by feature for quota auditing.
type UsageLedgerEntry struct {
	Id               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID  `gorm:"type:uuid;not null;index:idx_usage_user_created;index:idx_usage_user_feature"`
	Feature          string     `gorm:"type:varchar(30);not null;index:idx_usage_user_feature"`
	Units            int        `gorm:"not null;default:1"`
	RelatedSessionId *uuid.UUID `gorm:"type:uuid"`
	CreatedAt        time.Time  `gorm:"autoCreateTime;index:idx_usage_user_created"`
}

func (UsageLedgerEntry) TableName() string {
	return "usage_ledger"
}
