package models

import (
	"gorm.io/gorm"
)

// Admin roles
const (
	AdminRoleExpert     = "ahli"
	AdminRoleSuperadmin = "superadmin"
)

type Admin struct {
	gorm.Model
	Username     string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"size:50;default:'ahli';not null"`
}
