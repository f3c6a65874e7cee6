package tasks

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/config"
	"github.com/itssanjain-collab/surgery-hub-connect/models"

	"github.com/hibiken/asynq"
)

const TypeSendReminder = "reminder:send"

// NewReminderTask packages a reminder payload into an asynq task scheduled to
// fire at the given time.
func NewReminderTask(payload models.ReminderPayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeSendReminder, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// ReminderScheduler queues appointment reminders for future delivery.
type ReminderScheduler interface {
	Schedule(payload models.ReminderPayload, fireAt time.Time) error
}

// AsynqReminderScheduler enqueues reminder tasks on the Redis-backed queue.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

// NewAsynqReminderScheduler creates a scheduler over the configured task queue.
func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})
	return &AsynqReminderScheduler{client: client}
}

// Schedule enqueues a reminder to fire at the given time. Times already in the
// past are queued for immediate delivery.
func (s *AsynqReminderScheduler) Schedule(payload models.ReminderPayload, fireAt time.Time) error {
	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return fmt.Errorf("failed to build reminder task: %w", err)
	}
	if _, err := s.client.Enqueue(task, opts...); err != nil {
		return fmt.Errorf("failed to enqueue reminder for booking %s: %w", payload.BookingID, err)
	}
	return nil
}

// Close releases the underlying queue connection.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
