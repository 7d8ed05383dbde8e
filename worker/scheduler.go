package worker

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/hibiken/asynq"
)

// reminderCronSpec returns the cron expression for the daily reminder
// sweep: REMINDER_SCHEDULE, or 08:00 every day when unset.
func reminderCronSpec() string {
	if s := os.Getenv("REMINDER_SCHEDULE"); s != "" {
		return s
	}
	return "0 8 * * *"
}

// StartScheduler starts an Asynq scheduler that enqueues the daily reminder
// sweep on a cron schedule. REMINDER_SCHEDULE defaults to 08:00 every day in
// REMINDER_TIMEZONE (default Asia/Jakarta). Returns a stop function.
func StartScheduler(redisURL string) (stop func(), err error) {
	redisOpt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	tz := os.Getenv("REMINDER_TIMEZONE")
	if tz == "" {
		tz = "Asia/Jakarta"
	}
	location, err := time.LoadLocation(tz)
	if err != nil {
		slog.Warn("Invalid timezone, using UTC", "timezone", tz, "error", err)
		location = time.UTC
	}

	schedule := reminderCronSpec()

	logger := NewLogger()

	scheduler := asynq.NewScheduler(
		redisOpt,
		&asynq.SchedulerOpts{
			Location: location,
			LogLevel: asynq.InfoLevel,
			Logger:   &asynqLoggerAdapter{logger: logger},
		},
	)

	task := asynq.NewTask(
		TaskDailyReminder,
		nil,
		asynq.MaxRetry(3),
		asynq.Timeout(10*time.Minute),
		asynq.Retention(24*time.Hour),
		asynq.Unique(12*time.Hour),
	)

	entryID, err := scheduler.Register(schedule, task)
	if err != nil {
		return nil, fmt.Errorf("failed to register reminder schedule: %w", err)
	}

	if err := scheduler.Start(); err != nil {
		return nil, fmt.Errorf("failed to start scheduler: %w", err)
	}

	logger.Info(
		"Scheduler started",
		"schedule", schedule,
		"timezone", tz,
		"entry_id", entryID,
	)

	return func() { scheduler.Shutdown() }, nil
}
