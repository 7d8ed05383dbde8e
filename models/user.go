package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username        string `gorm:"uniqueIndex;not null"`
	PasswordHash    string `gorm:"not null"`
	Points          *int   `gorm:"default:0"`
	ProfileImageURL string
	// Weekdays the user is scheduled to take the supplement,
	// stored as a comma separated list ("0" = Monday, "0,3" = Mon+Thu).
	ScheduleDays string `gorm:"size:20;default:'0';not null"`
	BirthDate    *time.Time
	Sex          string `gorm:"size:1"` // "F" | "M"

	Logs []DailyLog `gorm:"foreignKey:UserID"`
}
