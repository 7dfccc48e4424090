package helper

import (
	"fmt"
	"time"

	"tour_manager/model"

	"gorm.io/gorm"
)

func JoinedCount(db *gorm.DB, tourId uint) int {
	var total int64
	db.Model(&model.TourBooking{}).
		Where("tour_id = ?", tourId).
		Select("COALESCE(SUM(seats), 0)").
		Scan(&total)
	return int(total)
}

func tourRating(db *gorm.DB, tourId uint) (float64, int) {
	var result struct {
		Avg   float64
		Count int
	}
	db.Model(&model.TourReview{}).
		Where("tour_id = ?", tourId).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Scan(&result)
	return result.Avg, result.Count
}

func transportRating(db *gorm.DB, transportId *uint) float64 {
	if transportId == nil {
		return 0
	}
	var avg float64
	db.Model(&model.TransportReview{}).
		Where("transport_id = ?", *transportId).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg)
	return avg
}

func stayRating(db *gorm.DB, stayId *uint) float64 {
	if stayId == nil {
		return 0
	}
	var avg float64
	db.Model(&model.StayReview{}).
		Where("stay_id = ?", *stayId).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg)
	return avg
}

// LocationText renders "Division", "Division, District" or
// "Division, District, Upazila" depending on how precisely the tour is placed.
func LocationText(tour *model.Tour) string {
	text := tour.Division.Name
	if tour.District != nil {
		text += ", " + tour.District.Name
	}
	if tour.Upazila != nil {
		text += ", " + tour.Upazila.Name
	}
	return text
}

func DurationText(tour *model.Tour) string {
	return fmt.Sprintf("%d Days, %d Nights", tour.DurationDays, tour.DurationNights)
}

// TimeLeftUntil decomposes the remaining time before deadline, nil once passed.
func TimeLeftUntil(deadline time.Time) *model.TimeLeft {
	delta := time.Until(deadline)
	if delta <= 0 {
		return nil
	}
	return &model.TimeLeft{
		Days:    int(delta.Hours()) / 24,
		Hours:   int(delta.Hours()) % 24,
		Minutes: int(delta.Minutes()) % 60,
	}
}

func ProgressPercent(joined, maxCapacity int) int {
	if maxCapacity == 0 {
		return 0
	}
	return joined * 100 / maxCapacity
}

func SpotsRemaining(joined, maxCapacity int) int {
	remaining := maxCapacity - joined
	if remaining < 0 {
		return 0
	}
	return remaining
}

// BuildTourSummary runs the whole annotation pipeline for one tour.
// userId 0 means anonymous, leaving IsBooked false.
func BuildTourSummary(db *gorm.DB, tour model.Tour, userId uint) model.TourSummary {
	joined := JoinedCount(db, tour.ID)
	rating, ratingCount := tourRating(db, tour.ID)

	summary := model.TourSummary{
		Tour:            tour,
		JoinedCount:     joined,
		SpotsRemaining:  SpotsRemaining(joined, tour.MaxCapacity),
		ProgressPercent: ProgressPercent(joined, tour.MaxCapacity),
		Rating:          rating,
		RatingCount:     ratingCount,
		TransportRating: transportRating(db, tour.TransportId),
		StayRating:      stayRating(db, tour.StayId),
		LocationText:    LocationText(&tour),
		DurationText:    DurationText(&tour),
		TimeLeft:        TimeLeftUntil(tour.BookingDeadline),
	}

	if userId != 0 {
		var count int64
		db.Model(&model.TourBooking{}).
			Where("tour_id = ? AND user_id = ?", tour.ID, userId).
			Count(&count)
		summary.IsBooked = count > 0
	}

	return summary
}
