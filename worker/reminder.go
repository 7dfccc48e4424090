package worker

import (
	"log"
	"time"

	"tour_manager/database"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/robfig/cron/v3"
)

var reminderScheduler *cron.Cron

// SendTourReminders emails every paid traveller whose tour starts within the
// next 24 hours, honouring the tour_reminders preference.
func SendTourReminders() {
	db := database.DB
	now := time.Now()

	var tours []model.Tour
	err := db.Where("is_active = ? AND start_datetime > ? AND start_datetime <= ?",
		true, now, now.Add(24*time.Hour)).Find(&tours).Error
	if err != nil {
		log.Printf("reminder tour query failed: %v", err)
		return
	}

	for _, tour := range tours {
		var bookings []model.TourBooking
		err := db.Preload("User").
			Where("tour_id = ? AND status = ?", tour.ID, model.BookingPaid).
			Find(&bookings).Error
		if err != nil {
			log.Printf("reminder booking query failed for tour %d: %v", tour.ID, err)
			continue
		}

		for _, booking := range bookings {
			var prefs model.NotificationPreference
			if err := db.Where("user_id = ?", booking.UserId).First(&prefs).Error; err == nil && !prefs.TourReminders {
				continue
			}
			if err := utils.SendTourReminderEmail(
				booking.User.Email, booking.User.FullName, tour.Title, tour.MeetingPoint,
			); err != nil {
				log.Printf("reminder email failed for booking %d: %v", booking.ID, err)
			}
		}
	}
}

func StartReminderScheduler() {
	reminderScheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := reminderScheduler.AddFunc("0 8 * * *", SendTourReminders)
	if err != nil {
		log.Printf("failed to start reminder scheduler: %v", err)
		return
	}

	reminderScheduler.Start()
	log.Println("tour reminder scheduler started (daily 08:00)")
}

func StopReminderScheduler() {
	if reminderScheduler != nil {
		reminderScheduler.Stop()
	}
}
