package database

import (
	"log"
	"time"

	"tour_manager/constants"
	"tour_manager/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedData(db *gorm.DB) {
	divisions := []model.Division{
		{Name: "Dhaka"},
		{Name: "Chattogram"},
		{Name: "Sylhet"},
		{Name: "Khulna"},
		{Name: "Rangpur"},
	}
	for i := range divisions {
		if err := db.Where(model.Division{Name: divisions[i].Name}).FirstOrCreate(&divisions[i]).Error; err != nil {
			log.Println("failed to seed division:", divisions[i].Name, "error:", err)
		}
	}

	divisionId := func(name string) uint {
		for _, d := range divisions {
			if d.Name == name {
				return d.ID
			}
		}
		return 0
	}

	districts := []model.District{
		{Name: "Cox's Bazar", DivisionId: divisionId("Chattogram")},
		{Name: "Bandarban", DivisionId: divisionId("Chattogram")},
		{Name: "Sylhet", DivisionId: divisionId("Sylhet")},
		{Name: "Khulna", DivisionId: divisionId("Khulna")},
		{Name: "Gazipur", DivisionId: divisionId("Dhaka")},
	}
	for i := range districts {
		if err := db.Where(model.District{Name: districts[i].Name, DivisionId: districts[i].DivisionId}).
			FirstOrCreate(&districts[i]).Error; err != nil {
			log.Println("failed to seed district:", districts[i].Name, "error:", err)
		}
	}

	districtId := func(name string) uint {
		for _, d := range districts {
			if d.Name == name {
				return d.ID
			}
		}
		return 0
	}

	upazilas := []model.Upazila{
		{Name: "Teknaf", DistrictId: districtId("Cox's Bazar")},
		{Name: "Thanchi", DistrictId: districtId("Bandarban")},
		{Name: "Gowainghat", DistrictId: districtId("Sylhet")},
	}
	for i := range upazilas {
		if err := db.Where(model.Upazila{Name: upazilas[i].Name, DistrictId: upazilas[i].DistrictId}).
			FirstOrCreate(&upazilas[i]).Error; err != nil {
			log.Println("failed to seed upazila:", upazilas[i].Name, "error:", err)
		}
	}

	transports := []model.Transport{
		{Name: "AC Bus"},
		{Name: "Non-AC Bus"},
		{Name: "Microbus"},
		{Name: "Train"},
	}
	for i := range transports {
		if err := db.Where(model.Transport{Name: transports[i].Name}).FirstOrCreate(&transports[i]).Error; err != nil {
			log.Println("failed to seed transport:", transports[i].Name, "error:", err)
		}
	}

	stays := []model.Stay{
		{Name: "Hotel"},
		{Name: "Resort"},
		{Name: "Tent Camp"},
		{Name: "Houseboat"},
	}
	for i := range stays {
		if err := db.Where(model.Stay{Name: stays[i].Name}).FirstOrCreate(&stays[i]).Error; err != nil {
			log.Println("failed to seed stay:", stays[i].Name, "error:", err)
		}
	}

	bytes, err := bcrypt.GenerateFromPassword([]byte("guide1234"), 10)
	hashed := string(bytes)
	if err != nil {
		hashed = "guide1234"
	}
	guideUser := model.UserAccount{
		Email:        "guide@tourmanager.local",
		Username:     "demo-guide",
		FullName:     "Demo Guide",
		PasswordHash: hashed,
		AuthProvider: constants.AUTH_PROVIDER_EMAIL,
		IsActive:     true,
	}
	if err := db.Where(model.UserAccount{Email: guideUser.Email}).FirstOrCreate(&guideUser).Error; err != nil {
		log.Println("failed to seed guide user:", err)
	}
	guide := model.TourGuide{UserId: guideUser.ID, Rating: 4.8}
	if err := db.Where(model.TourGuide{UserId: guideUser.ID}).FirstOrCreate(&guide).Error; err != nil {
		log.Println("failed to seed tour guide:", err)
	}

	coxsBazar := districtId("Cox's Bazar")
	acBus := transports[0].ID
	hotel := stays[0].ID
	start := time.Now().AddDate(0, 1, 0).Truncate(time.Hour)
	tours := []model.Tour{
		{
			Title:           "Sundarbans Mangrove Trip",
			Description:     "Three days on a houseboat through the world's largest mangrove forest.",
			DivisionId:      divisionId("Khulna"),
			DistrictId:      ptr(districtId("Khulna")),
			TransportId:     &acBus,
			StayId:          ptr(stays[3].ID),
			DurationDays:    3,
			DurationNights:  2,
			TotalCost:       8500,
			UpfrontPayment:  2000,
			StartDatetime:   start,
			BookingDeadline: start.AddDate(0, 0, -7),
			MeetingPoint:    "Khulna Launch Ghat",
			TourLeadId:      &guide.ID,
		},
		{
			Title:           "Cox's Bazar Beach Escape",
			Description:     "A long weekend on the world's longest natural sea beach.",
			DivisionId:      divisionId("Chattogram"),
			DistrictId:      &coxsBazar,
			TransportId:     &acBus,
			StayId:          &hotel,
			DurationDays:    2,
			DurationNights:  1,
			TotalCost:       5500,
			UpfrontPayment:  1500,
			StartDatetime:   start.AddDate(0, 0, 14),
			BookingDeadline: start.AddDate(0, 0, 7),
			MeetingPoint:    "Kamalapur Railway Station",
			TourLeadId:      &guide.ID,
		},
	}
	for i := range tours {
		if err := db.Where(model.Tour{Title: tours[i].Title}).FirstOrCreate(&tours[i]).Error; err != nil {
			log.Println("failed to seed tour:", tours[i].Title, "error:", err)
			continue
		}
		var dayCount int64
		db.Model(&model.TourDay{}).Where("tour_id = ?", tours[i].ID).Count(&dayCount)
		if dayCount > 0 {
			continue
		}
		day := model.TourDay{
			TourId:    tours[i].ID,
			DayNumber: 1,
			Title:     "Departure",
			Activities: []model.TourActivity{
				{Time: "07:00", Description: "Assemble at the meeting point"},
				{Time: "08:00", Description: "Depart"},
			},
		}
		if err := db.Create(&day).Error; err != nil {
			log.Println("failed to seed itinerary for tour:", tours[i].Title, "error:", err)
		}
		inclusions := []model.TourInclusion{
			{TourId: tours[i].ID, Label: "Transport"},
			{TourId: tours[i].ID, Label: "Accommodation"},
			{TourId: tours[i].ID, Label: "All meals"},
		}
		if err := db.Create(&inclusions).Error; err != nil {
			log.Println("failed to seed inclusions for tour:", tours[i].Title, "error:", err)
		}
	}
}

func ptr(id uint) *uint {
	return &id
}
