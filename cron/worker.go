package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/itssanjain-collab/surgery-hub-connect/config"
	bookingRepo "github.com/itssanjain-collab/surgery-hub-connect/database/repository/booking"
	"github.com/itssanjain-collab/surgery-hub-connect/models"
	"github.com/itssanjain-collab/surgery-hub-connect/services/notification"
	"github.com/itssanjain-collab/surgery-hub-connect/services/tasks"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker(mailer notification.Mailer, bookings bookingRepo.BookingRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeSendReminder, handleReminderTask(mailer, bookings))

	// Start Redis health monitor
	go monitorRedisConnection()

	// Start async worker with retry logic
	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handleReminderTask(mailer notification.Mailer, bookings bookingRepo.BookingRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.ReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] Invalid payload: %v", err)
			return err
		}

		// The booking may have moved or been cancelled since the reminder was
		// queued. Re-read it and only remind when the stored schedule still
		// matches what was queued.
		booking, err := bookings.GetByID(p.BookingID)
		if err != nil {
			log.Printf("[ReminderHandler] Failed to load booking %s: %v", p.BookingID, err)
			return err
		}
		if booking == nil || booking.Status == models.StatusCancelled {
			log.Printf("[ReminderHandler] Skipping reminder for booking %s: cancelled or gone", p.BookingID)
			return nil
		}
		if booking.ScheduledDate != p.ScheduledDate || booking.ScheduledTime != p.ScheduledTime {
			log.Printf("[ReminderHandler] Skipping stale reminder for booking %s", p.BookingID)
			return nil
		}

		log.Printf("[ReminderHandler] Sending reminder for booking %s to %s", p.BookingID, p.PatientEmail)

		if err := mailer.SendBookingReminder(ctx, p); err != nil {
			log.Printf("[ReminderHandler] Failed to send reminder: %v", err)
			return err
		}
		return nil
	}
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTaskQueueDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
