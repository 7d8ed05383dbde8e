package services

import (
	"errors"

	"github.com/arysespajayadii/dsc-backend-repo/config"
	"github.com/arysespajayadii/dsc-backend-repo/models"
	"github.com/arysespajayadii/dsc-backend-repo/utils"

	"gorm.io/gorm"
)

var (
	ErrAdminNotFound     = errors.New("admin not found")
	ErrAdminNameTaken    = errors.New("admin username already taken")
	ErrPasswordTooShort  = errors.New("password must be at least 6 characters")
)

// AuthenticateAdmin checks console credentials and returns the account.
func AuthenticateAdmin(username, password string) (*models.Admin, error) {
	var admin models.Admin
	if err := config.DB.Where("username = ?", username).First(&admin).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return &admin, nil
}

func CreateAdmin(username, password, role string) error {
	if role == "" {
		role = models.AdminRoleExpert
	}
	if role != models.AdminRoleExpert && role != models.AdminRoleSuperadmin {
		return errors.New("unknown admin role")
	}

	var existing models.Admin
	err := config.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return ErrAdminNameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return err
	}
	admin := models.Admin{Username: username, PasswordHash: hashed, Role: role}
	return config.DB.Create(&admin).Error
}

func ListAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	err := config.DB.Find(&admins).Error
	return admins, err
}

func ResetAdminPassword(adminID uint, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	var admin models.Admin
	if err := config.DB.First(&admin, adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAdminNotFound
		}
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return config.DB.Model(&admin).Update("password_hash", hashed).Error
}

// ResetUserPassword lets a superadmin reset an app user's password.
func ResetUserPassword(userID uint, newPassword string) error {
	if len(newPassword) < 6 {
		return ErrPasswordTooShort
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	return config.DB.Model(&user).Update("password_hash", hashed).Error
}
