package services

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/arysespajayadii/dsc-backend-repo/models"
)

func setupNutritionTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.NutritionLog{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }

func TestGetOrCreateToday(t *testing.T) {
	db := setupNutritionTestDB(t)
	svc := NewNutritionService(db)
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return at }

	first, err := svc.GetOrCreateToday(1)
	if err != nil {
		t.Fatalf("GetOrCreateToday failed: %v", err)
	}
	if first.Carbohydrate || first.Fruit || first.SweetSnacks != 0 {
		t.Error("fresh nutrition log must start empty")
	}
	if !first.Date.Equal(DayUTC(at)) {
		t.Errorf("expected date %v, got %v", DayUTC(at), first.Date)
	}

	second, err := svc.GetOrCreateToday(1)
	if err != nil {
		t.Fatalf("second GetOrCreateToday failed: %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("expected the same row on repeat calls, got %d then %d", first.ID, second.ID)
	}

	var count int64
	db.Model(&models.NutritionLog{}).Count(&count)
	if count != 1 {
		t.Errorf("expected a single row, got %d", count)
	}
}

func TestUpdateTodayPartial(t *testing.T) {
	db := setupNutritionTestDB(t)
	svc := NewNutritionService(db)
	svc.now = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }

	if _, err := svc.GetOrCreateToday(1); err != nil {
		t.Fatalf("GetOrCreateToday failed: %v", err)
	}

	updated, err := svc.UpdateToday(1, NutritionInput{
		Vegetables:  boolPtr(true),
		SweetDrinks: intPtr(2),
	})
	if err != nil {
		t.Fatalf("UpdateToday failed: %v", err)
	}
	if !updated.Vegetables || updated.SweetDrinks != 2 {
		t.Errorf("update not applied: %+v", updated)
	}

	// A second partial update must not reset earlier fields.
	updated, err = svc.UpdateToday(1, NutritionInput{Fruit: boolPtr(true)})
	if err != nil {
		t.Fatalf("second UpdateToday failed: %v", err)
	}
	if !updated.Vegetables || updated.SweetDrinks != 2 || !updated.Fruit {
		t.Errorf("omitted fields must keep stored values: %+v", updated)
	}
}

func TestUpdateTodayWithoutRow(t *testing.T) {
	db := setupNutritionTestDB(t)
	svc := NewNutritionService(db)

	_, err := svc.UpdateToday(1, NutritionInput{Fruit: boolPtr(true)})
	if !errors.Is(err, ErrNutritionLogNotFound) {
		t.Errorf("expected ErrNutritionLogNotFound, got %v", err)
	}
}

func TestNutritionLogsSeparateDays(t *testing.T) {
	db := setupNutritionTestDB(t)
	svc := NewNutritionService(db)
	day1 := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return day1 }

	first, err := svc.GetOrCreateToday(1)
	if err != nil {
		t.Fatalf("GetOrCreateToday failed: %v", err)
	}

	svc.now = func() time.Time { return day1.AddDate(0, 0, 1) }
	second, err := svc.GetOrCreateToday(1)
	if err != nil {
		t.Fatalf("next-day GetOrCreateToday failed: %v", err)
	}
	if first.ID == second.ID {
		t.Error("expected a new row on a new day")
	}
}
