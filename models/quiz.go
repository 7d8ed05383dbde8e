package models

import (
	"time"

	"gorm.io/gorm"
)

// Quiz links an article to its question set (one quiz per article).
type Quiz struct {
	gorm.Model
	ArticleID uint           `gorm:"uniqueIndex;not null"`
	Questions []QuizQuestion `gorm:"constraint:OnDelete:CASCADE;"`
}

type QuizQuestion struct {
	gorm.Model
	QuizID       uint         `gorm:"index;not null"`
	QuestionText string       `gorm:"size:500;not null"`
	Choices      []QuizChoice `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE;"`
}

type QuizChoice struct {
	gorm.Model
	QuestionID uint   `gorm:"index;not null"`
	ChoiceText string `gorm:"size:200;not null"`
	IsCorrect  bool   `gorm:"default:false;not null"`
}

type QuizAttempt struct {
	gorm.Model
	UserID      uint `gorm:"index;not null"`
	QuizID      uint `gorm:"index;not null"`
	Score       int  `gorm:"not null"` // 0..100
	CompletedAt time.Time
}
