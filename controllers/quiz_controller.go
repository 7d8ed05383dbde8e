package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	Svc *services.QuizService
}

func NewQuizController(svc *services.QuizService) *QuizController {
	return &QuizController{Svc: svc}
}

func (qc *QuizController) ForArticle(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("articleId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	quiz, err := qc.Svc.QuizForArticle(uint(articleID))
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Tidak ada kuis untuk artikel ini"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quiz)
}

type submitQuizRequest struct {
	// question id -> chosen choice id, keys as strings per the app's JSON
	Answers map[string]uint `json:"answers" binding:"required"`
}

func (qc *QuizController) Submit(c *gin.Context) {
	uid := c.GetUint("userID")

	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz id"})
		return
	}

	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	answers := map[uint]uint{}
	for k, v := range req.Answers {
		questionID, err := strconv.ParseUint(k, 10, 32)
		if err != nil {
			continue
		}
		answers[uint(questionID)] = v
	}

	score, err := qc.Svc.SubmitQuiz(uid, uint(quizID), answers)
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kuis tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Kuis berhasil diselesaikan!", "score": score})
}
