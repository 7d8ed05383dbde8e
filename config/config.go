package config

import (
	"fmt"
	"log"
	"os"

	"github.com/arysespajayadii/dsc-backend-repo/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func InitDB() {
	err := godotenv.Load()
	if err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	// TranslateError turns driver unique-violation errors into
	// gorm.ErrDuplicatedKey, which the log service relies on.
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Admin{},
		&models.DailyLog{},
		&models.Badge{},
		&models.UserBadge{},
		&models.NutritionLog{},
		&models.HealthScreening{},
		&models.Article{},
		&models.Quiz{},
		&models.QuizQuestion{},
		&models.QuizChoice{},
		&models.QuizAttempt{},
		&models.Question{},
		&models.ForumTopic{},
		&models.ForumPost{},
		&models.ForumReply{},
		&models.HomePageContent{},
		&models.UserDevice{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

// SeedDefaults makes sure the rows the app assumes exist are present: the
// first-log badge and the landing page content row.
func SeedDefaults() {
	badge := models.Badge{
		Name:        "Pejuang Gizi",
		Description: "Mencatat log pertama kali",
		IconName:    "military_tech",
	}
	badge.ID = models.BadgeFirstLog
	DB.Where("id = ?", models.BadgeFirstLog).FirstOrCreate(&badge)

	home := models.HomePageContent{ID: 1, Title: "", Content: ""}
	DB.Where("id = ?", 1).FirstOrCreate(&home)
}
