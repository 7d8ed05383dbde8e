package models

import (
	"gorm.io/gorm"
)

type ForumTopic struct {
	gorm.Model
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"size:255"`
}

type ForumPost struct {
	gorm.Model
	Title   string `gorm:"size:200;not null"`
	Content string `gorm:"type:text;not null"`
	UserID  uint   `gorm:"index;not null"`
	TopicID uint   `gorm:"index;not null"`

	User    User         `gorm:"foreignKey:UserID"`
	Replies []ForumReply `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE;"`
}

type ForumReply struct {
	gorm.Model
	Content string `gorm:"type:text;not null"`
	UserID  uint   `gorm:"index;not null"`
	PostID  uint   `gorm:"index;not null"`

	User User `gorm:"foreignKey:UserID"`
}
