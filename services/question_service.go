package services

import (
	"errors"
	"strconv"

	"github.com/arysespajayadii/dsc-backend-repo/models"

	"gorm.io/gorm"
)

var ErrQuestionNotFound = errors.New("question not found")

// QuestionService handles the private "ask the expert" channel. New
// questions are broadcast to the admin console feed; answers are pushed
// back to the asking user's device.
type QuestionService struct {
	db   *gorm.DB
	feed *AdminFeed
	push *PushService
}

func NewQuestionService(db *gorm.DB, feed *AdminFeed, push *PushService) *QuestionService {
	return &QuestionService{db: db, feed: feed, push: push}
}

func (s *QuestionService) Ask(userID uint, questionText string) (*models.Question, error) {
	question := models.Question{
		UserID:       userID,
		QuestionText: questionText,
	}
	if err := s.db.Create(&question).Error; err != nil {
		return nil, err
	}

	if s.feed != nil {
		s.feed.Broadcast(map[string]any{
			"kind":        "question.created",
			"question_id": question.ID,
			"user_id":     userID,
			"text":        questionText,
		})
	}
	return &question, nil
}

// ListForUser returns the user's own questions, newest first.
func (s *QuestionService) ListForUser(userID uint) ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&questions).Error
	return questions, err
}

// ListUnanswered backs the admin dashboard, oldest first so the queue is
// worked in arrival order.
func (s *QuestionService) ListUnanswered() ([]models.Question, error) {
	var questions []models.Question
	err := s.db.Where("status = ?", models.QuestionUnanswered).
		Order("created_at asc").
		Find(&questions).Error
	return questions, err
}

// Answer records the expert's reply and notifies the asking user.
func (s *QuestionService) Answer(questionID uint, answerText, answeredBy string) error {
	var question models.Question
	if err := s.db.First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuestionNotFound
		}
		return err
	}

	question.AnswerText = answerText
	question.Status = models.QuestionAnswered
	question.AnsweredBy = answeredBy
	if err := s.db.Save(&question).Error; err != nil {
		return err
	}

	if s.push != nil {
		s.push.PushToUser(question.UserID,
			"Pertanyaanmu sudah dijawab!",
			"Buka aplikasi untuk membaca jawaban dari ahli gizi.",
			map[string]string{"question_id": strconv.FormatUint(uint64(question.ID), 10)},
		)
	}
	return nil
}
