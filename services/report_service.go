package services

import (
	"context"
	"time"

	"github.com/arysespajayadii/dsc-backend-repo/models"

	"gorm.io/gorm"
)

// ReportService aggregates the numbers behind the admin reports page and
// the reminder job.
type ReportService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewReportService(db *gorm.DB) *ReportService {
	return &ReportService{db: db, now: time.Now}
}

type AdherenceReport struct {
	TotalUsers       int64            `json:"total_users"`
	StatusCounts     map[string]int64 `json:"ttd_compliance"` // last 30 days
	QuizPerformance  []QuizAvg        `json:"quiz_performance"`
	GeneratedAt      string           `json:"generated_at"`
	WindowDays       int              `json:"window_days"`
}

type QuizAvg struct {
	ArticleTitle string  `json:"article_title"`
	AvgScore     float64 `json:"avg_score"`
}

func (s *ReportService) Summary(ctx context.Context) (*AdherenceReport, error) {
	report := &AdherenceReport{
		StatusCounts: map[string]int64{},
		WindowDays:   30,
		GeneratedAt:  s.now().UTC().Format(time.RFC3339),
	}

	if err := s.db.WithContext(ctx).
		Model(&models.User{}).
		Count(&report.TotalUsers).Error; err != nil {
		return nil, err
	}

	since := DayUTC(s.now()).AddDate(0, 0, -30)
	type statusRow struct {
		Status string
		Count  int64
	}
	var statusRows []statusRow
	if err := s.db.WithContext(ctx).
		Model(&models.DailyLog{}).
		Select("status, count(id) as count").
		Where("date >= ?", since).
		Group("status").
		Scan(&statusRows).Error; err != nil {
		return nil, err
	}
	for _, r := range statusRows {
		report.StatusCounts[r.Status] = r.Count
	}

	var quizRows []QuizAvg
	if err := s.db.WithContext(ctx).
		Model(&models.QuizAttempt{}).
		Select("articles.title as article_title, avg(quiz_attempts.score) as avg_score").
		Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
		Joins("JOIN articles ON articles.id = quizzes.article_id").
		Group("articles.title").
		Scan(&quizRows).Error; err != nil {
		return nil, err
	}
	report.QuizPerformance = quizRows

	return report, nil
}

// UsersWithoutLogToday lists users who have not recorded an adherence log
// for today's UTC date. The admin console shows it and the reminder job
// pushes to it.
func (s *ReportService) UsersWithoutLogToday(ctx context.Context) ([]models.User, error) {
	today := DayUTC(s.now())

	var users []models.User
	err := s.db.WithContext(ctx).
		Where("id NOT IN (?)", s.db.Model(&models.DailyLog{}).
			Select("user_id").
			Where("date = ?", today)).
		Find(&users).Error
	return users, err
}

// ListUsers returns all app users, newest first, for the admin console.
func (s *ReportService) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := s.db.WithContext(ctx).
		Order("created_at desc").
		Find(&users).Error
	return users, err
}
