package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/arysespajayadii/dsc-backend-repo/models"
	"github.com/arysespajayadii/dsc-backend-repo/services"
)

func setupLogRouter(t *testing.T) (*gin.Engine, *gorm.DB, uint) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.DailyLog{},
		&models.Badge{},
		&models.UserBadge{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	user := models.User{Username: "ayu", PasswordHash: "x"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	ctl := NewLogController(services.NewLogService(db))

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("userID", user.ID)
	})
	r.POST("/log", ctl.AddLog)
	r.GET("/logs", ctl.GetLogs)
	return r, db, user.ID
}

func postLog(t *testing.T, r *gin.Engine, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/log", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAddLogCreateThenUpdate(t *testing.T) {
	r, _, _ := setupLogRouter(t)

	w := postLog(t, r, map[string]interface{}{"status": "Diminum", "dosis": "1 tablet"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 on first submission, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Log berhasil ditambahkan!") {
		t.Errorf("unexpected create response: %s", w.Body.String())
	}

	w = postLog(t, r, map[string]interface{}{"status": "Ditunda"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 on same-day re-submission, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Log hari ini berhasil diperbarui.") {
		t.Errorf("unexpected update response: %s", w.Body.String())
	}
}

func TestAddLogRejectsUnknownStatus(t *testing.T) {
	r, db, userID := setupLogRouter(t)

	for _, status := range []string{"", "diminum", "Taken", "Belum dicatat"} {
		w := postLog(t, r, map[string]interface{}{"status": status})
		if w.Code != http.StatusBadRequest {
			t.Errorf("expected 400 for status %q, got %d", status, w.Code)
		}
	}

	var count int64
	db.Model(&models.DailyLog{}).Where("user_id = ?", userID).Count(&count)
	if count != 0 {
		t.Errorf("rejected submissions must not create rows, found %d", count)
	}
}

func TestGetLogsPayloadShape(t *testing.T) {
	r, _, _ := setupLogRouter(t)

	intake := "07:30"
	postLog(t, r, map[string]interface{}{
		"status":       "Diminum",
		"dosis":        "1 tablet",
		"jam_konsumsi": intake,
	})

	req := httptest.NewRequest(http.MethodGet, "/logs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var out struct {
		Logs []map[string]interface{} `json:"logs"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(out.Logs) != 1 {
		t.Fatalf("expected 1 log, got %d", len(out.Logs))
	}
	entry := out.Logs[0]
	for _, key := range []string{"tanggal", "status", "dosis", "jam_konsumsi", "efek_samping", "alasan_lupa", "catatan_makan"} {
		if _, ok := entry[key]; !ok {
			t.Errorf("log payload missing %q: %v", key, entry)
		}
	}
	if entry["jam_konsumsi"] != "07:30" {
		t.Errorf("expected jam_konsumsi 07:30, got %v", entry["jam_konsumsi"])
	}
}
