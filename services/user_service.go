package services

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/arysespajayadii/dsc-backend-repo/config"
	"github.com/arysespajayadii/dsc-backend-repo/models"
	"github.com/arysespajayadii/dsc-backend-repo/utils"
)

// UserLevel maps a points balance to the in-app title.
func UserLevel(points int) string {
	switch {
	case points >= 300:
		return "Ratu Anti-Anemia"
	case points >= 100:
		return "Ksatria Sehat"
	default:
		return "Pemula Gizi"
	}
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	points := 0
	if user.Points != nil {
		points = *user.Points
	}

	var grants []models.UserBadge
	if err := config.DB.Where("user_id = ?", user.ID).Find(&grants).Error; err != nil {
		return nil, err
	}

	badges := []map[string]interface{}{}
	for _, g := range grants {
		var badge models.Badge
		if err := config.DB.First(&badge, g.BadgeID).Error; err != nil {
			continue
		}
		badges = append(badges, map[string]interface{}{
			"name":        badge.Name,
			"description": badge.Description,
			"icon_name":   badge.IconName,
		})
	}

	return map[string]interface{}{
		"username":          user.Username,
		"points":            points,
		"level_title":       UserLevel(points),
		"join_date":         user.CreatedAt.Format("02 January 2006"),
		"profile_image_url": user.ProfileImageURL,
		"schedule_days":     user.ScheduleDays,
		"badges":            badges,
	}, nil
}

var scheduleDaysRe = regexp.MustCompile(`^[0-6](,[0-6])*$`)

// UpdateSchedule stores the weekdays the user plans to take the tablet.
func UpdateSchedule(userID uint, scheduleDays string) error {
	if !scheduleDaysRe.MatchString(scheduleDays) {
		return errors.New("invalid schedule format")
	}
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Update("schedule_days", scheduleDays).Error
}

func UpdateBirthData(userID uint, birthDate time.Time, sex string) error {
	if sex != "F" && sex != "M" {
		return errors.New("sex must be F or M")
	}
	return config.DB.Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{"birth_date": birthDate, "sex": sex}).Error
}

// UpdateProfilePicture uploads the base64 image to S3 and stores the URL.
func UpdateProfilePicture(userID uint, imageBase64 string) (string, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return "", errors.New("user not found")
	}

	url, err := utils.UploadBase64ImageToS3(imageBase64, fmt.Sprintf("profile-pictures/user-%d", userID))
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	if err := config.DB.Model(&user).Update("profile_image_url", url).Error; err != nil {
		return "", err
	}
	return url, nil
}
