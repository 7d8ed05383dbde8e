package models

import (
	"gorm.io/gorm"
)

// Question statuses
const (
	QuestionUnanswered = "Belum Dijawab"
	QuestionAnswered   = "Dijawab"
)

// Question is a private "ask the expert" entry, answered from the admin
// console.
type Question struct {
	gorm.Model
	UserID       uint   `gorm:"index;not null"`
	QuestionText string `gorm:"type:text;not null"`
	AnswerText   string `gorm:"type:text"`
	Status       string `gorm:"size:50;default:'Belum Dijawab';not null"`
	AnsweredBy   string `gorm:"size:80"`
}
