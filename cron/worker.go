// File: vetcare/cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"vetcare/config"
	appointmentRepo "vetcare/database/repository/appointment"
	"vetcare/models"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

const TypeAppointmentReminder = "reminder:appointment"

// InitReminderWorker runs the async reminder worker in background.
func InitReminderWorker() {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
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
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask)

	go monitorRedisConnection()

	go func() {
		log.Println("[ReminderWorker] Starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] Attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] Max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// StartReminderScheduler scans upcoming appointments each hour and
// enqueues one reminder task per scheduled visit. The task ID is keyed
// on the appointment, so a rescan never double-enqueues.
func StartReminderScheduler(repo appointmentRepo.AppointmentRepository) {
	client := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	go func() {
		enqueueDueReminders(client, repo)

		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			enqueueDueReminders(client, repo)
		}
	}()
}

func enqueueDueReminders(client *asynq.Client, repo appointmentRepo.AppointmentRepository) {
	lead := config.AppConfig.ReminderLeadHours
	if lead <= 0 {
		lead = 24
	}
	targetDate := time.Now().Add(time.Duration(lead) * time.Hour).Format("2006-01-02")

	appts, err := repo.GetByDate(targetDate)
	if err != nil {
		log.Printf("[ReminderScheduler] Failed to load appointments for %s: %v", targetDate, err)
		return
	}

	for _, appt := range appts {
		if appt.Status != models.AppointmentScheduled {
			continue
		}

		payload, err := json.Marshal(models.ReminderPayload{
			AppointmentID: appt.ID,
			ClientID:      appt.ClientID,
			PetID:         appt.PetID,
			StaffID:       appt.StaffID,
			Date:          appt.Date,
			Time:          appt.Time,
		})
		if err != nil {
			log.Printf("[ReminderScheduler] Failed to marshal payload for %s: %v", appt.ID, err)
			continue
		}

		task := asynq.NewTask(TypeAppointmentReminder, payload)
		_, err = client.Enqueue(task, asynq.TaskID("reminder:"+appt.ID), asynq.Retention(48*time.Hour))
		if err != nil && !errors.Is(err, asynq.ErrTaskIDConflict) {
			log.Printf("[ReminderScheduler] Failed to enqueue reminder for %s: %v", appt.ID, err)
		}
	}
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p models.ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		log.Printf("[ReminderHandler] Invalid payload: %v", err)
		return err
	}

	// Delivery channel (email/SMS) is not wired yet; record the
	// reminder so the front desk can follow up from the logs.
	log.Printf("[ReminderHandler] Appointment %s for client %s is due %s at %s", p.AppointmentID, p.ClientID, p.Date, p.Time)
	return nil
}

// monitorRedisConnection pings Redis periodically to detect failures at runtime.
func monitorRedisConnection() {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	})

	ctx := context.Background()

	for {
		if err := client.Ping(ctx).Err(); err != nil {
			log.Printf("[ReminderWorker] Redis connection lost: %v", err)
		}
		time.Sleep(10 * time.Second)
	}
}
