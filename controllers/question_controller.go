package controllers

import (
	"net/http"

	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-gonic/gin"
)

type QuestionController struct {
	Svc *services.QuestionService
}

func NewQuestionController(svc *services.QuestionService) *QuestionController {
	return &QuestionController{Svc: svc}
}

type askRequest struct {
	QuestionText string `json:"question_text" binding:"required"`
}

func (qc *QuestionController) Ask(c *gin.Context) {
	uid := c.GetUint("userID")

	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Teks pertanyaan tidak boleh kosong"})
		return
	}

	if _, err := qc.Svc.Ask(uid, req.QuestionText); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pertanyaan Anda telah berhasil dikirim!"})
}

func (qc *QuestionController) MyQuestions(c *gin.Context) {
	uid := c.GetUint("userID")

	questions, err := qc.Svc.ListForUser(uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	out := []gin.H{}
	for _, q := range questions {
		answer := q.AnswerText
		if answer == "" {
			answer = "Belum ada jawaban."
		}
		out = append(out, gin.H{
			"id":            q.ID,
			"question_text": q.QuestionText,
			"answer_text":   answer,
			"status":        q.Status,
			"created_at":    q.CreatedAt.Format("02 January 2006"),
		})
	}
	c.JSON(http.StatusOK, gin.H{"questions": out})
}
