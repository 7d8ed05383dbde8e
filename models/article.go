package models

import (
	"gorm.io/gorm"
)

type Article struct {
	gorm.Model
	Title    string `gorm:"size:200;not null"`
	Content  string `gorm:"type:text;not null"` // markdown source
	ImageURL string `gorm:"size:255"`
	VideoURL string `gorm:"size:255"`
}

// HomePageContent is the single CMS row (id = 1) behind the landing page.
type HomePageContent struct {
	ID       uint   `gorm:"primaryKey"`
	Title    string `gorm:"size:200;not null"`
	Content  string `gorm:"type:text;not null"`
	ImageURL string `gorm:"size:255"`
}
