package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"doctorsportal/config"
	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/services/tasks"

	"github.com/hibiken/asynq"
)

// InitEmailWorker runs the confirmation email worker in background.
func InitEmailWorker(sender notification.EmailSender) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPass,
		DB:       config.AppConfig.RedisQueueDB,
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
	mux.HandleFunc(tasks.TypeConfirmationEmail, handleConfirmationEmailTask(sender))

	// Start async worker with retry logic
	go func() {
		log.Println("[EmailWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[EmailWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[EmailWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleConfirmationEmailTask(sender notification.EmailSender) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.AppointmentEmailPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[EmailWorker] Invalid payload: %v", err)
			return err
		}

		// Delivery failures are logged and swallowed: the booking already
		// succeeded and confirmation emails are not retried.
		if err := sender.Send(ctx, tasks.BuildConfirmationEmail(p)); err != nil {
			log.Printf("[EmailWorker] Failed to send confirmation to %s: %v", p.To, err)
		}
		return nil
	}
}
