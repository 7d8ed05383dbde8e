package models

import (
	"time"

	"gorm.io/gorm"
)

// NutritionLog tracks the "Piring Makanku" food groups for one day.
type NutritionLog struct {
	gorm.Model
	UserID uint      `gorm:"not null;uniqueIndex:uidx_nutrition_logs_user_date"`
	Date   time.Time `gorm:"type:date;not null;uniqueIndex:uidx_nutrition_logs_user_date"`

	Carbohydrate  bool `gorm:"default:false"`
	AnimalProtein bool `gorm:"default:false"`
	PlantProtein  bool `gorm:"default:false"`
	Vegetables    bool `gorm:"default:false"`
	Fruit         bool `gorm:"default:false"`

	SweetSnacks int `gorm:"default:0"` // times per day
	SweetDrinks int `gorm:"default:0"`
}
