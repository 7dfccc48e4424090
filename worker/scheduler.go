package worker

import (
	"log"
	"time"

	"tour_manager/database"
	"tour_manager/model"

	"github.com/go-co-op/gocron/v2"
)

var otpScheduler gocron.Scheduler

// PurgeExpiredOTPs deletes codes past their validity window.
func PurgeExpiredOTPs() {
	cutoff := time.Now().Add(-5 * time.Minute)
	result := database.DB.Where("created_at < ?", cutoff).Delete(&model.OTP{})

	if result.Error != nil {
		log.Printf("otp purge failed: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("purged %d expired otp rows", result.RowsAffected)
	}
}

func StartOTPPurgeScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	otpScheduler = s

	_, err = s.NewJob(
		gocron.DurationJob(10*time.Minute),
		gocron.NewTask(PurgeExpiredOTPs),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("otp purge scheduler started (every 10 minutes)")
}

func StopOTPPurgeScheduler() {
	if otpScheduler != nil {
		_ = otpScheduler.Shutdown()
	}
}
