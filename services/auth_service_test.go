package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/arysespajayadii/dsc-backend-repo/config"
	"github.com/arysespajayadii/dsc-backend-repo/models"
)

func setupAuthTestDB(t *testing.T) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
}

func TestRegisterAndAuthenticate(t *testing.T) {
	setupAuthTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if err := RegisterUser("siti", "rahasia123"); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	var user models.User
	if err := config.DB.Where("username = ?", "siti").First(&user).Error; err != nil {
		t.Fatalf("registered user not found: %v", err)
	}
	if user.PasswordHash == "rahasia123" {
		t.Error("password must not be stored in plain text")
	}

	token, err := AuthenticateUser("siti", "rahasia123")
	if err != nil {
		t.Fatalf("AuthenticateUser failed: %v", err)
	}

	parsed, err := jwt.Parse(token, func(tk *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	claims := parsed.Claims.(jwt.MapClaims)
	if uint(claims["userId"].(float64)) != user.ID {
		t.Errorf("token carries wrong userId: %v", claims["userId"])
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	setupAuthTestDB(t)

	if err := RegisterUser("siti", "rahasia123"); err != nil {
		t.Fatalf("first RegisterUser failed: %v", err)
	}
	if err := RegisterUser("siti", "lain456"); !errors.Is(err, ErrUsernameTaken) {
		t.Errorf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthenticateWrongPassword(t *testing.T) {
	setupAuthTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	if err := RegisterUser("siti", "rahasia123"); err != nil {
		t.Fatalf("RegisterUser failed: %v", err)
	}

	if _, err := AuthenticateUser("siti", "salah"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := AuthenticateUser("tidakada", "rahasia123"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}
