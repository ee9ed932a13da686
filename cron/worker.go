package cron

import (
	"context"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"slotbook/config"
	appointmentRepo "slotbook/database/repository/appointment"
)

const TypeRetentionSweep = "retention:sweep"

// InitRetentionWorker runs the async worker in background. Every night it
// hard-deletes appointments whose end instant is older than the configured
// retention horizon. Requires Redis; callers must not start it when
// RETENTION_DAYS is zero.
func InitRetentionWorker(repo appointmentRepo.AppointmentRepository) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 1,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRetentionSweep, handleRetentionSweep(repo))

	scheduler := asynq.NewScheduler(redisOpts, nil)
	if _, err := scheduler.Register("0 3 * * *", asynq.NewTask(TypeRetentionSweep, nil)); err != nil {
		log.Fatalf("[RetentionWorker] failed to register sweep schedule: %v", err)
	}

	// Start async worker with retry logic
	go func() {
		log.Println("[RetentionWorker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[RetentionWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[RetentionWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Printf("[RetentionWorker] scheduler stopped: %v", err)
		}
	}()
}

func handleRetentionSweep(repo appointmentRepo.AppointmentRepository) asynq.HandlerFunc {
	return func(ctx context.Context, _ *asynq.Task) error {
		cutoff := time.Now().UTC().AddDate(0, 0, -config.AppConfig.RetentionDays)
		deleted, err := repo.DeleteEndedBefore(ctx, cutoff)
		if err != nil {
			log.Printf("[RetentionSweep] failed: %v", err)
			return err
		}
		log.Printf("[RetentionSweep] removed %d appointments ended before %s", deleted, cutoff.Format(time.RFC3339))
		return nil
	}
}
