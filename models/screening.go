package models

import (
	"time"

	"gorm.io/gorm"
)

// HealthScreening stores one periodic screening entry. BMI and the
// BMI-for-age z-score are derived server side; they stay nil when the
// anthropometric inputs are missing or implausible.
type HealthScreening struct {
	gorm.Model
	UserID uint      `gorm:"index;not null"`
	Date   time.Time `gorm:"type:date;not null"`

	WeightKg  *float64
	HeightCm  *float64
	BMI       *float64
	BMIZScore *float64

	Hemoglobin       *float64 // g/dL
	MenstrualHistory string   `gorm:"size:255"`
}
