package services

import (
	"errors"
	"time"

	"github.com/arysespajayadii/dsc-backend-repo/models"

	"gorm.io/gorm"
)

var ErrUserNotFound = errors.New("user not found")

// PointsPerTakenLog is awarded once per day, on first creation of a log
// whose status is "Diminum".
const PointsPerTakenLog = 10

// LogService records daily adherence submissions and applies the derived
// gamification effects (points, first-log badge) in the same transaction.
// The clock is injectable so tests control what "today" means.
type LogService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewLogService(db *gorm.DB) *LogService {
	return &LogService{db: db, now: time.Now}
}

// LogInput carries one submission. Optional fields are pointers: nil means
// the field was omitted and, on update, keeps its stored value.
type LogInput struct {
	Status          string
	Dose            *string
	TimeOfIntake    *string
	SideEffects     *string
	ForgottenReason *string
	MealNote        *string
}

// SubmitDailyLog creates or updates the caller's log for today (UTC
// calendar date). It returns created=true when a new row was inserted.
//
// Points and the first-log badge are only ever granted on the create path,
// and everything commits atomically: a failure anywhere rolls back the log
// row together with its side effects.
func (s *LogService) SubmitDailyLog(userID uint, in LogInput) (created bool, err error) {
	today := DayUTC(s.now())

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var logRow models.DailyLog
		err := tx.Where("user_id = ? AND date = ?", userID, today).First(&logRow).Error
		if err == nil {
			created = false
			return s.overwriteLog(tx, &logRow, in)
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// Pre-insert count decides the first-log badge, so it has to be
		// taken before the new row is staged.
		var priorLogs int64
		if err := tx.Model(&models.DailyLog{}).
			Where("user_id = ?", userID).
			Count(&priorLogs).Error; err != nil {
			return err
		}

		newLog := models.DailyLog{
			UserID:          userID,
			Date:            today,
			Status:          in.Status,
			Dose:            strVal(in.Dose),
			TimeOfIntake:    parseIntakeTime(in.TimeOfIntake),
			SideEffects:     strVal(in.SideEffects),
			ForgottenReason: strVal(in.ForgottenReason),
			MealNote:        strVal(in.MealNote),
		}
		if err := tx.Create(&newLog).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// Lost the insert race on (user_id, date): another request
				// created today's row between our lookup and the insert.
				// Treat this submission as the update it effectively is.
				var existing models.DailyLog
				if err := tx.Where("user_id = ? AND date = ?", userID, today).
					First(&existing).Error; err != nil {
					return err
				}
				created = false
				return s.overwriteLog(tx, &existing, in)
			}
			return err
		}

		if in.Status == models.StatusTaken {
			points := 0
			if user.Points != nil {
				points = *user.Points
			}
			points += PointsPerTakenLog
			if err := tx.Model(&user).Update("points", points).Error; err != nil {
				return err
			}
		}

		if priorLogs == 0 {
			if err := s.grantBadge(tx, userID, models.BadgeFirstLog); err != nil {
				return err
			}
		}

		created = true
		return nil
	})
	return created, err
}

// overwriteLog applies a re-submission to the existing row for the day.
// Omitted fields keep their stored values; no points or badges here.
func (s *LogService) overwriteLog(tx *gorm.DB, logRow *models.DailyLog, in LogInput) error {
	logRow.Status = in.Status
	if in.Dose != nil {
		logRow.Dose = *in.Dose
	}
	if in.TimeOfIntake != nil {
		logRow.TimeOfIntake = parseIntakeTime(in.TimeOfIntake)
	}
	if in.SideEffects != nil {
		logRow.SideEffects = *in.SideEffects
	}
	if in.ForgottenReason != nil {
		logRow.ForgottenReason = *in.ForgottenReason
	}
	if in.MealNote != nil {
		logRow.MealNote = *in.MealNote
	}
	return tx.Save(logRow).Error
}

// grantBadge is idempotent: a badge the user already holds is left alone.
func (s *LogService) grantBadge(tx *gorm.DB, userID, badgeID uint) error {
	var existing models.UserBadge
	err := tx.Where("user_id = ? AND badge_id = ?", userID, badgeID).
		First(&existing).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	grant := models.UserBadge{
		UserID:   userID,
		BadgeID:  badgeID,
		EarnedAt: s.now(),
	}
	return tx.Create(&grant).Error
}

// ListLogs returns the user's adherence history, newest first.
func (s *LogService) ListLogs(userID uint) ([]models.DailyLog, error) {
	var logs []models.DailyLog
	err := s.db.Where("user_id = ?", userID).
		Order("date desc").
		Find(&logs).Error
	return logs, err
}

// DayUTC truncates a timestamp to its UTC calendar date.
func DayUTC(t time.Time) time.Time {
	tt := t.UTC()
	return time.Date(tt.Year(), tt.Month(), tt.Day(), 0, 0, 0, 0, time.UTC)
}

// parseIntakeTime normalizes an optional "HH:MM" string. Malformed input
// is discarded rather than rejected, matching the mobile client's
// expectations.
func parseIntakeTime(raw *string) *string {
	if raw == nil || *raw == "" {
		return nil
	}
	t, err := time.Parse("15:04", *raw)
	if err != nil {
		return nil
	}
	v := t.Format("15:04")
	return &v
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
