package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/arysespajayadii/dsc-backend-repo/models"
	"github.com/arysespajayadii/dsc-backend-repo/services"
)

func setupScreeningRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.HealthScreening{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	user := models.User{Username: "siti", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	ctl := NewScreeningController(services.NewScreeningService(db))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", user.ID)
	})
	r.POST("/screening", ctl.Add)
	r.GET("/screening", ctl.History)
	return r
}

func TestAddScreeningResponseIncludesCategory(t *testing.T) {
	r := setupScreeningRouter(t)

	body, _ := json.Marshal(map[string]interface{}{
		"berat_badan":  51.2,
		"tinggi_badan": 160,
	})
	req := httptest.NewRequest(http.MethodPost, "/screening", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out["kategori_imt"] != "Normal weight" {
		t.Errorf("expected kategori_imt \"Normal weight\" for BMI 20, got %v", out["kategori_imt"])
	}

	// History carries the category too.
	req = httptest.NewRequest(http.MethodGet, "/screening", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	var history []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &history); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(history) != 1 || history[0]["kategori_imt"] != "Normal weight" {
		t.Errorf("expected category in history payload, got %v", history)
	}
}

func TestAddScreeningWithoutMeasurementsEmptyCategory(t *testing.T) {
	r := setupScreeningRouter(t)

	body, _ := json.Marshal(map[string]interface{}{"kadar_hb": 11.8})
	req := httptest.NewRequest(http.MethodPost, "/screening", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var out map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if out["kategori_imt"] != "" {
		t.Errorf("expected empty category without measurements, got %v", out["kategori_imt"])
	}
}
