package worker

import (
	"errors"
	"time"

	"github.com/hibiken/asynq"
)

var ErrClientNotInitialized = errors.New("asynq client not initialized")

// Task type constants
const (
	TaskDailyReminder = "reminder:daily"
)

var client *asynq.Client

// InitClient initializes the package-level Asynq client for task enqueueing.
func InitClient(redisURL string) error {
	opt, err := asynq.ParseRedisURI(redisURL)
	if err != nil {
		return err
	}

	client = asynq.NewClient(opt)
	return nil
}

// CloseClient closes the Asynq client connection gracefully.
func CloseClient() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// EnqueueDailyReminder enqueues an immediate reminder sweep. The scheduler
// normally does this on its cron schedule; this is for manual triggering
// from the admin console.
func EnqueueDailyReminder() error {
	if client == nil {
		return ErrClientNotInitialized
	}
	task := asynq.NewTask(
		TaskDailyReminder,
		nil,
		asynq.MaxRetry(3),
		asynq.Timeout(10*time.Minute),
		asynq.Retention(24*time.Hour),
	)

	_, err := client.Enqueue(task)
	return err
}
