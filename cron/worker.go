package cron

import (
	"context"
	"log"
	"time"

	"carebook/config"
	templateRepo "carebook/database/repository/template"
	"carebook/models"

	"github.com/hibiken/asynq"
)

const TypeExpireTemplates = "schedule:expire-templates"

// InitScheduleWorker runs the async worker and its nightly schedule in the
// background. The expiry sweep deactivates templates whose effectiveTo has
// passed so date-range queries never resurrect an ended schedule.
func InitScheduleWorker(templates templateRepo.TemplateRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 5,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeExpireTemplates, handleExpireTemplates(templates))

	go func() {
		log.Println("[ScheduleWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ScheduleWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ScheduleWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go runExpirySchedule(redisOpts)
}

// runExpirySchedule enqueues the nightly expiry sweep just after midnight.
func runExpirySchedule(redisOpts asynq.RedisClientOpt) {
	scheduler := asynq.NewScheduler(redisOpts, &asynq.SchedulerOpts{
		Location: time.UTC,
	})

	task := asynq.NewTask(TypeExpireTemplates, nil)
	if _, err := scheduler.Register("5 0 * * *", task); err != nil {
		log.Printf("[ScheduleWorker] Failed to register expiry schedule: %v", err)
		return
	}
	if err := scheduler.Run(); err != nil {
		log.Printf("[ScheduleWorker] Scheduler stopped: %v", err)
	}
}

func handleExpireTemplates(templates templateRepo.TemplateRepository) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		today := models.FormatDate(time.Now().UTC())
		expired, err := templates.ExpireEnded(ctx, today)
		if err != nil {
			log.Printf("[ScheduleWorker] Failed to expire ended templates: %v", err)
			return err
		}
		if expired > 0 {
			log.Printf("[ScheduleWorker] Deactivated %d ended templates (as of %s)", expired, today)
		}
		return nil
	}
}
