package services

import (
	"errors"
	"time"

	"github.com/arysespajayadii/dsc-backend-repo/models"

	"gorm.io/gorm"
)

var ErrNutritionLogNotFound = errors.New("nutrition log not found")

// NutritionService maintains the one-row-per-day food group checklist.
type NutritionService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewNutritionService(db *gorm.DB) *NutritionService {
	return &NutritionService{db: db, now: time.Now}
}

// GetOrCreateToday returns today's nutrition log, creating an empty one
// when the user has none yet.
func (s *NutritionService) GetOrCreateToday(userID uint) (*models.NutritionLog, error) {
	today := DayUTC(s.now())

	logRow := models.NutritionLog{UserID: userID, Date: today}
	err := s.db.Where("user_id = ? AND date = ?", userID, today).
		FirstOrCreate(&logRow).Error
	if err != nil {
		return nil, err
	}
	return &logRow, nil
}

type NutritionInput struct {
	Carbohydrate  *bool `json:"karbohidrat"`
	AnimalProtein *bool `json:"lauk_hewani"`
	PlantProtein  *bool `json:"lauk_nabati"`
	Vegetables    *bool `json:"sayur"`
	Fruit         *bool `json:"buah"`
	SweetSnacks   *int  `json:"camilan_manis"`
	SweetDrinks   *int  `json:"minuman_manis"`
}

// UpdateToday applies a partial update to today's row. Missing fields keep
// their stored values. The row must already exist.
func (s *NutritionService) UpdateToday(userID uint, in NutritionInput) (*models.NutritionLog, error) {
	today := DayUTC(s.now())

	var logRow models.NutritionLog
	err := s.db.Where("user_id = ? AND date = ?", userID, today).First(&logRow).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNutritionLogNotFound
		}
		return nil, err
	}

	if in.Carbohydrate != nil {
		logRow.Carbohydrate = *in.Carbohydrate
	}
	if in.AnimalProtein != nil {
		logRow.AnimalProtein = *in.AnimalProtein
	}
	if in.PlantProtein != nil {
		logRow.PlantProtein = *in.PlantProtein
	}
	if in.Vegetables != nil {
		logRow.Vegetables = *in.Vegetables
	}
	if in.Fruit != nil {
		logRow.Fruit = *in.Fruit
	}
	if in.SweetSnacks != nil {
		logRow.SweetSnacks = *in.SweetSnacks
	}
	if in.SweetDrinks != nil {
		logRow.SweetDrinks = *in.SweetDrinks
	}

	if err := s.db.Save(&logRow).Error; err != nil {
		return nil, err
	}
	return &logRow, nil
}
