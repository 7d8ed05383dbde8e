package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-gonic/gin"
)

type articleRequest struct {
	Title       string `json:"title" binding:"required"`
	Content     string `json:"content" binding:"required"`
	VideoURL    string `json:"video_url"`
	ImageBase64 string `json:"image_base64"`
}

func AdminCreateArticle(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := services.CreateArticle(services.ArticleInput{
		Title:       req.Title,
		Content:     req.Content,
		VideoURL:    req.VideoURL,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Artikel berhasil dibuat", "article_id": article.ID})
}

func AdminUpdateArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, err = services.UpdateArticle(uint(articleID), services.ArticleInput{
		Title:       req.Title,
		Content:     req.Content,
		VideoURL:    req.VideoURL,
		ImageBase64: req.ImageBase64,
	})
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artikel tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artikel berhasil diperbarui"})
}

func AdminDeleteArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	if err := services.DeleteArticle(uint(articleID)); err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artikel tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Artikel berhasil dihapus"})
}
