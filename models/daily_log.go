package models

import (
	"time"

	"gorm.io/gorm"
)

// Adherence statuses accepted from the app.
const (
	StatusTaken      = "Diminum"
	StatusForgotten  = "Lupa"
	StatusPostponed  = "Ditunda"
	StatusUnrecorded = "Belum dicatat"
)

// DailyLog is one adherence record per user per calendar day. The composite
// unique index is what holds the one-row-per-day invariant under concurrent
// submissions; the service layer treats a duplicate-key insert as an update.
type DailyLog struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:uidx_daily_logs_user_date"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:uidx_daily_logs_user_date"`
	Status string    `gorm:"size:50;default:'Belum dicatat';not null"`
	Dose   string    `gorm:"size:50"`
	// Time of day the tablet was taken, normalized to "HH:MM".
	TimeOfIntake    *string `gorm:"size:5"`
	SideEffects     string  `gorm:"type:text"`
	ForgottenReason string  `gorm:"type:text"`
	MealNote        string  `gorm:"size:200"`
}
