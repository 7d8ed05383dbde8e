package models

import (
	"time"

	"gorm.io/gorm"
)

// BadgeFirstLog is granted when a user records their first daily log.
const BadgeFirstLog uint = 1

type Badge struct {
	gorm.Model
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"size:255;not null"`
	IconName    string `gorm:"size:100;not null"` // Material Icons name
}

// UserBadge records which badges a user has earned. Granting is idempotent:
// the service checks for an existing row before inserting.
type UserBadge struct {
	gorm.Model
	UserID   uint `gorm:"index;not null"`
	BadgeID  uint `gorm:"index;not null"`
	EarnedAt time.Time
}
