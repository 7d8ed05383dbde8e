package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-gonic/gin"
)

func GetForumTopics(c *gin.Context) {
	topics, err := services.ListForumTopics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := []gin.H{}
	for _, t := range topics {
		out = append(out, gin.H{
			"id":          t.ID,
			"name":        t.Name,
			"description": t.Description,
		})
	}
	c.JSON(http.StatusOK, out)
}

func GetPostsInTopic(c *gin.Context) {
	topicID, err := strconv.ParseUint(c.Param("topicId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid topic id"})
		return
	}

	posts, err := services.ListPostsInTopic(uint(topicID))
	if err != nil {
		if errors.Is(err, services.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Topik tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, posts)
}

func GetPostDetails(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("postId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	post, err := services.GetPostDetails(uint(postID))
	if err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Postingan tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, post)
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
	TopicID uint   `json:"topic_id" binding:"required"`
}

func CreateForumPost(c *gin.Context) {
	uid := c.GetUint("userID")

	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := services.CreateForumPost(uid, req.TopicID, req.Title, req.Content)
	if err != nil {
		if errors.Is(err, services.ErrTopicNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Topik tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Postingan berhasil dibuat!", "post_id": post.ID})
}

type createReplyRequest struct {
	Content string `json:"content" binding:"required"`
}

func CreateForumReply(c *gin.Context) {
	uid := c.GetUint("userID")

	postID, err := strconv.ParseUint(c.Param("postId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req createReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := services.CreateForumReply(uid, uint(postID), req.Content); err != nil {
		if errors.Is(err, services.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Postingan tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Balasan berhasil dikirim!"})
}
