package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/arysespajayadii/dsc-backend-repo/services"

	"github.com/gin-gonic/gin"
)

type AdminQuizController struct {
	Svc *services.QuizService
}

func NewAdminQuizController(svc *services.QuizService) *AdminQuizController {
	return &AdminQuizController{Svc: svc}
}

// Manage returns the article's quiz with all choices (including the
// correct flags), creating an empty quiz on first access.
func (qc *AdminQuizController) Manage(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("articleId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid article id"})
		return
	}

	quiz, err := qc.Svc.EnsureQuizForArticle(uint(articleID))
	if err != nil {
		if errors.Is(err, services.ErrArticleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Artikel tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	questions := []gin.H{}
	for _, q := range quiz.Questions {
		choices := []gin.H{}
		for _, ch := range q.Choices {
			choices = append(choices, gin.H{
				"id":         ch.ID,
				"text":       ch.ChoiceText,
				"is_correct": ch.IsCorrect,
			})
		}
		questions = append(questions, gin.H{
			"id":      q.ID,
			"text":    q.QuestionText,
			"choices": choices,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"quiz_id":    quiz.ID,
		"article_id": quiz.ArticleID,
		"questions":  questions,
	})
}

type addQuestionRequest struct {
	QuestionText string `json:"question_text" binding:"required"`
}

func (qc *AdminQuizController) AddQuestion(c *gin.Context) {
	quizID, err := strconv.ParseUint(c.Param("quizId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid quiz id"})
		return
	}

	var req addQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	question, err := qc.Svc.AddQuestion(uint(quizID), req.QuestionText)
	if err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Kuis tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Pertanyaan berhasil ditambahkan", "question_id": question.ID})
}

type updateChoicesRequest struct {
	Choices         []services.ChoiceUpdate `json:"choices" binding:"required"`
	CorrectChoiceID uint                    `json:"correct_choice_id" binding:"required"`
}

func (qc *AdminQuizController) UpdateChoices(c *gin.Context) {
	questionID, err := strconv.ParseUint(c.Param("questionId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid question id"})
		return
	}

	var req updateChoicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := qc.Svc.UpdateChoices(uint(questionID), req.Choices, req.CorrectChoiceID); err != nil {
		if errors.Is(err, services.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Pertanyaan tidak ditemukan"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Pilihan jawaban berhasil diperbarui"})
}
