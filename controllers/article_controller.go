package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-gonic/gin"
)

func ListArticles(c *gin.Context) {
	articles, err := services.ListArticles()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func GetArticleDetail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	article, err := services.GetArticleDetail(uint(id))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artikel tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, article)
}

// HomePage serves the public landing content with its markdown rendered.
func HomePage(c *gin.Context) {
	content, err := services.GetHomePage()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, content)
}
