package services

import (
	"errors"
	"time"

	"github.com/arysespajayadii/dsc-backend-repo/models"

	"gorm.io/gorm"
)

var ErrQuizNotFound = errors.New("quiz not found")

type QuizService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewQuizService(db *gorm.DB) *QuizService {
	return &QuizService{db: db, now: time.Now}
}

// QuizForArticle returns the quiz attached to an article, with choices but
// without the is_correct flags.
func (s *QuizService) QuizForArticle(articleID uint) (map[string]interface{}, error) {
	var quiz models.Quiz
	err := s.db.Preload("Questions.Choices").
		Where("article_id = ?", articleID).
		First(&quiz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	questions := []map[string]interface{}{}
	for _, q := range quiz.Questions {
		choices := []map[string]interface{}{}
		for _, c := range q.Choices {
			choices = append(choices, map[string]interface{}{
				"id":   c.ID,
				"text": c.ChoiceText,
			})
		}
		questions = append(questions, map[string]interface{}{
			"id":      q.ID,
			"text":    q.QuestionText,
			"choices": choices,
		})
	}

	return map[string]interface{}{
		"quiz_id":   quiz.ID,
		"questions": questions,
	}, nil
}

// SubmitQuiz scores a set of question->choice answers as percent correct
// and stores the attempt.
func (s *QuizService) SubmitQuiz(userID, quizID uint, answers map[uint]uint) (int, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrQuizNotFound
		}
		return 0, err
	}

	correct := 0
	total := 0
	for questionID, choiceID := range answers {
		total++
		var choice models.QuizChoice
		if err := s.db.First(&choice, choiceID).Error; err != nil {
			continue
		}
		if choice.QuestionID == questionID && choice.IsCorrect {
			correct++
		}
	}

	score := 0
	if total > 0 {
		score = correct * 100 / total
	}

	attempt := models.QuizAttempt{
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		CompletedAt: s.now(),
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return 0, err
	}
	return score, nil
}

// EnsureQuizForArticle finds the article's quiz, creating an empty one the
// first time the admin opens the quiz manager.
func (s *QuizService) EnsureQuizForArticle(articleID uint) (*models.Quiz, error) {
	var article models.Article
	if err := s.db.First(&article, articleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	quiz := models.Quiz{ArticleID: articleID}
	if err := s.db.Where("article_id = ?", articleID).
		FirstOrCreate(&quiz).Error; err != nil {
		return nil, err
	}
	if err := s.db.Preload("Questions.Choices").First(&quiz, quiz.ID).Error; err != nil {
		return nil, err
	}
	return &quiz, nil
}

// AddQuestion appends a question plus four empty choices for the admin to
// fill in.
func (s *QuizService) AddQuestion(quizID uint, questionText string) (*models.QuizQuestion, error) {
	var quiz models.Quiz
	if err := s.db.First(&quiz, quizID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}

	question := models.QuizQuestion{QuizID: quizID, QuestionText: questionText}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		for i := 0; i < 4; i++ {
			choice := models.QuizChoice{QuestionID: question.ID, ChoiceText: ""}
			if err := tx.Create(&choice).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &question, nil
}

type ChoiceUpdate struct {
	ChoiceID uint   `json:"choice_id"`
	Text     string `json:"text"`
}

// UpdateChoices rewrites a question's choice texts and marks exactly one
// of them correct.
func (s *QuizService) UpdateChoices(questionID uint, updates []ChoiceUpdate, correctChoiceID uint) error {
	var question models.QuizQuestion
	if err := s.db.Preload("Choices").First(&question, questionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrQuizNotFound
		}
		return err
	}

	texts := map[uint]string{}
	for _, u := range updates {
		texts[u.ChoiceID] = u.Text
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, choice := range question.Choices {
			if text, ok := texts[choice.ID]; ok {
				choice.ChoiceText = text
			}
			choice.IsCorrect = choice.ID == correctChoiceID
			if err := tx.Save(&choice).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
