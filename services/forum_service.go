package services

import (
	"errors"

	"github.com/arysespajayadii/dsc-backend-repo/config"
	"github.com/arysespajayadii/dsc-backend-repo/models"

	"gorm.io/gorm"
)

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrPostNotFound  = errors.New("post not found")
)

func ListForumTopics() ([]models.ForumTopic, error) {
	var topics []models.ForumTopic
	err := config.DB.Find(&topics).Error
	return topics, err
}

// ListPostsInTopic returns post headers with author name and reply count,
// newest first.
func ListPostsInTopic(topicID uint) ([]map[string]interface{}, error) {
	var topic models.ForumTopic
	if err := config.DB.First(&topic, topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}

	var posts []models.ForumPost
	err := config.DB.Preload("User").
		Where("topic_id = ?", topicID).
		Order("created_at desc").
		Find(&posts).Error
	if err != nil {
		return nil, err
	}

	out := []map[string]interface{}{}
	for _, p := range posts {
		var replyCount int64
		config.DB.Model(&models.ForumReply{}).
			Where("post_id = ?", p.ID).
			Count(&replyCount)
		out = append(out, map[string]interface{}{
			"id":          p.ID,
			"title":       p.Title,
			"author":      p.User.Username,
			"reply_count": replyCount,
		})
	}
	return out, nil
}

func GetPostDetails(postID uint) (map[string]interface{}, error) {
	var post models.ForumPost
	err := config.DB.Preload("User").First(&post, postID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	var replies []models.ForumReply
	if err := config.DB.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at asc").
		Find(&replies).Error; err != nil {
		return nil, err
	}

	repliesOut := []map[string]interface{}{}
	for _, r := range replies {
		repliesOut = append(repliesOut, map[string]interface{}{
			"id":         r.ID,
			"content":    r.Content,
			"author":     r.User.Username,
			"created_at": r.CreatedAt.Format("02 January 2006, 15:04"),
		})
	}

	return map[string]interface{}{
		"id":         post.ID,
		"title":      post.Title,
		"content":    post.Content,
		"author":     post.User.Username,
		"created_at": post.CreatedAt.Format("02 January 2006"),
		"replies":    repliesOut,
	}, nil
}

func CreateForumPost(userID, topicID uint, title, content string) (*models.ForumPost, error) {
	var topic models.ForumTopic
	if err := config.DB.First(&topic, topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, err
	}

	post := models.ForumPost{
		Title:   title,
		Content: content,
		UserID:  userID,
		TopicID: topicID,
	}
	if err := config.DB.Create(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func CreateForumReply(userID, postID uint, content string) (*models.ForumReply, error) {
	var post models.ForumPost
	if err := config.DB.First(&post, postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	reply := models.ForumReply{
		Content: content,
		UserID:  userID,
		PostID:  postID,
	}
	if err := config.DB.Create(&reply).Error; err != nil {
		return nil, err
	}
	return &reply, nil
}
