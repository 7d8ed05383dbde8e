package services

import (
	"errors"
	"log"
	"time"

	"github.com/arysespajayadii/dsc-backend-repo/models"
	"github.com/arysespajayadii/dsc-backend-repo/utils"

	"gorm.io/gorm"
)

// ScreeningService stores periodic health screenings and derives BMI plus
// the WHO BMI-for-age z-score where the user's birth data allows it.
type ScreeningService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewScreeningService(db *gorm.DB) *ScreeningService {
	return &ScreeningService{db: db, now: time.Now}
}

type ScreeningInput struct {
	WeightKg         *float64 `json:"berat_badan"`
	HeightCm         *float64 `json:"tinggi_badan"`
	Hemoglobin       *float64 `json:"kadar_hb"`
	MenstrualHistory string   `json:"riwayat_haid"`
}

// AddScreening saves a screening entry. A failed BMI or z-score calculation
// nulls the derived fields but never fails the request.
func (s *ScreeningService) AddScreening(userID uint, in ScreeningInput) (*models.HealthScreening, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	entry := models.HealthScreening{
		UserID:           userID,
		Date:             DayUTC(s.now()),
		WeightKg:         in.WeightKg,
		HeightCm:         in.HeightCm,
		Hemoglobin:       in.Hemoglobin,
		MenstrualHistory: in.MenstrualHistory,
	}

	if in.WeightKg != nil && in.HeightCm != nil {
		bmi, err := utils.CalculateBMI(*in.HeightCm, *in.WeightKg)
		if err != nil {
			log.Printf("screening: BMI calculation skipped for user %d: %v", userID, err)
		} else {
			entry.BMI = &bmi
			if user.BirthDate != nil && user.Sex != "" {
				months := utils.AgeInMonths(*user.BirthDate, s.now())
				z, err := utils.BMIZScore(bmi, months, user.Sex)
				if err != nil {
					log.Printf("screening: z-score calculation skipped for user %d: %v", userID, err)
				} else {
					entry.BMIZScore = &z
				}
			}
		}
	}

	if err := s.db.Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

// History returns the user's screenings, newest first.
func (s *ScreeningService) History(userID uint) ([]models.HealthScreening, error) {
	var entries []models.HealthScreening
	err := s.db.Where("user_id = ?", userID).
		Order("date desc").
		Find(&entries).Error
	return entries, err
}
