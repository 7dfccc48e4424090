package database

import (
	"fmt"

	"tour_manager/config"
	"tour_manager/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	var err error
	cfg := config.App

	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})

	if err != nil {
		panic("failed to connect database")
	}

	fmt.Println("Connection Opened to Database")
	Migrate(DB)
	fmt.Println("Database Migrated")

	SeedData(DB)
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.UserAccount{},
		&model.OTP{},
		&model.NotificationPreference{},
		&model.Division{},
		&model.District{},
		&model.Upazila{},
		&model.Transport{},
		&model.Stay{},
		&model.TransportReview{},
		&model.StayReview{},
		&model.TourGuide{},
		&model.Tour{},
		&model.TourDay{},
		&model.TourActivity{},
		&model.TourInclusion{},
		&model.TourReview{},
		&model.TourBooking{},
	)
}
