package services

import (
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/arysespajayadii/dsc-backend-repo/config"
	"github.com/arysespajayadii/dsc-backend-repo/models"
)

func setupArticleTestDB(t *testing.T) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Article{}, &models.HomePageContent{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	prev := config.DB
	config.DB = db
	t.Cleanup(func() { config.DB = prev })
}

func TestListArticlesSnippet(t *testing.T) {
	setupArticleTestDB(t)

	short := models.Article{Title: "Pendek", Content: "Isi singkat."}
	if err := config.DB.Create(&short).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}
	long := models.Article{Title: "Panjang", Content: strings.Repeat("x", 150)}
	if err := config.DB.Create(&long).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}

	out, err := ListArticles()
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(out))
	}

	byTitle := map[string]string{}
	for _, a := range out {
		byTitle[a["title"].(string)] = a["snippet"].(string)
	}
	if byTitle["Pendek"] != "Isi singkat." {
		t.Errorf("short content must not be truncated, got %q", byTitle["Pendek"])
	}
	if want := strings.Repeat("x", 100) + "..."; byTitle["Panjang"] != want {
		t.Errorf("expected 100-char snippet with ellipsis, got %d chars", len(byTitle["Panjang"]))
	}
}

func TestListArticlesSnippetMultibyte(t *testing.T) {
	setupArticleTestDB(t)

	// 150 three-byte runes; a byte-indexed cut at 100 would split one.
	content := strings.Repeat("日", 150)
	article := models.Article{Title: "Unicode", Content: content}
	if err := config.DB.Create(&article).Error; err != nil {
		t.Fatalf("failed to create article: %v", err)
	}

	out, err := ListArticles()
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}
	snippet := out[0]["snippet"].(string)
	if !utf8.ValidString(snippet) {
		t.Fatalf("snippet is not valid UTF-8: %q", snippet)
	}
	if want := strings.Repeat("日", 100) + "..."; snippet != want {
		t.Errorf("expected snippet of 100 runes plus ellipsis, got %d runes", utf8.RuneCountInString(snippet))
	}
}
