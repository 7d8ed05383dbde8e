package worker

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/hibiken/asynq"
	"gorm.io/gorm"

	"github.com/arysespajayadii/dsc-backend-repo/services"
)

// Run starts the Asynq worker server and blocks until a shutdown signal.
func Run(redisURL string, db *gorm.DB, push *services.PushService) error {
	redisOpt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	logger := NewLogger()

	srv := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Concurrency:     5,
			ShutdownTimeout: 30 * time.Second,
			ErrorHandler:    asynq.ErrorHandlerFunc(makeErrorHandler(logger)),
			Logger:          &asynqLoggerAdapter{logger: logger},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TaskDailyReminder, handleDailyReminder(logger, db, push))

	logger.Info("Worker starting", "concurrency", 5)
	return srv.Run(mux)
}

// handleDailyReminder pushes an intake reminder to every user who is scheduled
// to take a tablet today and has not logged yet.
func handleDailyReminder(logger *slog.Logger, db *gorm.DB, push *services.PushService) func(context.Context, *asynq.Task) error {
	return func(ctx context.Context, task *asynq.Task) error {
		if push == nil {
			logger.Warn("Push service not configured, skipping reminder sweep")
			return fmt.Errorf("push service not configured: %w", asynq.SkipRetry)
		}

		reports := services.NewReportService(db)
		users, err := reports.UsersWithoutLogToday(ctx)
		if err != nil {
			return fmt.Errorf("failed to query users without log: %w", err)
		}

		// Schedule days are stored with 0 = Monday; time.Weekday has 0 = Sunday.
		weekday := (int(time.Now().UTC().Weekday()) + 6) % 7
		candidates := 0
		reached := 0
		for _, u := range users {
			if !scheduledToday(u.ScheduleDays, weekday) {
				continue
			}
			candidates++
			delivered := push.PushToUser(u.ID, "Waktunya minum TTD!",
				"Jangan lupa minum tablet tambah darah dan catat di aplikasi ya.",
				map[string]string{"screen": "log"})
			if delivered > 0 {
				reached++
			}
		}

		logger.Info("Reminder sweep completed",
			"candidates", candidates,
			"reached", reached,
		)
		return nil
	}
}

// scheduledToday reports whether the comma-separated weekday list (0=Monday)
// contains the given weekday.
func scheduledToday(days string, weekday int) bool {
	for _, part := range strings.Split(days, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if d == weekday {
			return true
		}
	}
	return false
}

func makeErrorHandler(logger *slog.Logger) func(context.Context, *asynq.Task, error) {
	return func(ctx context.Context, task *asynq.Task, err error) {
		retried, _ := asynq.GetRetryCount(ctx)
		maxRetry, _ := asynq.GetMaxRetry(ctx)

		logger.Error(
			"Task execution failed",
			"task_type", task.Type(),
			"error", err.Error(),
			"retry_count", retried,
			"max_retry", maxRetry,
		)

		if retried >= maxRetry {
			logger.Error(
				"Task moved to dead letter queue (all retries exhausted)",
				"task_type", task.Type(),
			)
		}
	}
}
