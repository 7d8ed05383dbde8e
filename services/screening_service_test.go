package services

import (
	"errors"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/arysespajayadii/dsc-backend-repo/models"
)

func setupScreeningTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.HealthScreening{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func floatPtr(f float64) *float64 { return &f }

func TestAddScreeningDerivesBMIAndZScore(t *testing.T) {
	db := setupScreeningTestDB(t)
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc := NewScreeningService(db)
	svc.now = func() time.Time { return at }

	birth := at.AddDate(-15, 0, 0) // 180 months old
	user := models.User{Username: "siti", PasswordHash: "x", BirthDate: &birth, Sex: "F"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	entry, err := svc.AddScreening(user.ID, ScreeningInput{
		WeightKg:   floatPtr(51.7),
		HeightCm:   floatPtr(160),
		Hemoglobin: floatPtr(12.1),
	})
	if err != nil {
		t.Fatalf("AddScreening failed: %v", err)
	}
	if entry.BMI == nil {
		t.Fatal("expected BMI to be derived")
	}
	if math.Abs(*entry.BMI-20.2) > 0.01 {
		t.Errorf("expected BMI ~20.2, got %.4f", *entry.BMI)
	}
	if entry.BMIZScore == nil {
		t.Fatal("expected z-score to be derived from birth data")
	}
	// BMI 20.2 at the age-15 median (20.19) sits essentially at z = 0.
	if math.Abs(*entry.BMIZScore) > 0.05 {
		t.Errorf("expected z-score near 0, got %.4f", *entry.BMIZScore)
	}
}

func TestAddScreeningWithoutBirthData(t *testing.T) {
	db := setupScreeningTestDB(t)
	svc := NewScreeningService(db)

	user := models.User{Username: "siti", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	entry, err := svc.AddScreening(user.ID, ScreeningInput{
		WeightKg: floatPtr(50),
		HeightCm: floatPtr(158),
	})
	if err != nil {
		t.Fatalf("AddScreening failed: %v", err)
	}
	if entry.BMI == nil {
		t.Error("expected BMI even without birth data")
	}
	if entry.BMIZScore != nil {
		t.Error("z-score requires birth data, expected nil")
	}
}

func TestAddScreeningImplausibleMeasurements(t *testing.T) {
	db := setupScreeningTestDB(t)
	svc := NewScreeningService(db)

	user := models.User{Username: "siti", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	// Garbage measurements are stored raw; the derived fields stay null.
	entry, err := svc.AddScreening(user.ID, ScreeningInput{
		WeightKg: floatPtr(2),
		HeightCm: floatPtr(400),
	})
	if err != nil {
		t.Fatalf("AddScreening failed: %v", err)
	}
	if entry.BMI != nil || entry.BMIZScore != nil {
		t.Error("expected derived fields nulled for implausible input")
	}
	if entry.WeightKg == nil || *entry.WeightKg != 2 {
		t.Error("raw measurements must still be stored")
	}
}

func TestAddScreeningUnknownUser(t *testing.T) {
	db := setupScreeningTestDB(t)
	svc := NewScreeningService(db)

	_, err := svc.AddScreening(999, ScreeningInput{WeightKg: floatPtr(50)})
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestScreeningHistoryNewestFirst(t *testing.T) {
	db := setupScreeningTestDB(t)
	day1 := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewScreeningService(db)

	user := models.User{Username: "siti", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	for i := 0; i < 3; i++ {
		d := day1.AddDate(0, 0, i*7)
		svc.now = func() time.Time { return d }
		if _, err := svc.AddScreening(user.ID, ScreeningInput{Hemoglobin: floatPtr(12)}); err != nil {
			t.Fatalf("AddScreening failed: %v", err)
		}
	}

	entries, err := svc.History(user.ID)
	if err != nil {
		t.Fatalf("History failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Date.After(entries[i-1].Date) {
			t.Errorf("history not ordered newest first at index %d", i)
		}
	}
}
