package model

import (
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

type Tour struct {
	DTO
	Title           string     `gorm:"size:255;not null" json:"title"`
	Slug            string     `gorm:"size:300;uniqueIndex;not null" json:"slug"`
	Description     string     `gorm:"type:text" json:"description"`
	FeaturedImage   string     `gorm:"size:500" json:"featuredImage"`
	DivisionId      uint       `gorm:"index;not null" json:"divisionId"`
	DistrictId      *uint      `gorm:"index" json:"districtId"`
	UpazilaId       *uint      `gorm:"index" json:"upazilaId"`
	TransportId     *uint      `gorm:"index" json:"transportId"`
	StayId          *uint      `gorm:"index" json:"stayId"`
	DurationDays    int        `gorm:"not null;default:1" json:"durationDays"`
	DurationNights  int        `gorm:"not null;default:0" json:"durationNights"`
	TotalCost       float64    `gorm:"not null" json:"totalCost"`
	UpfrontPayment  float64    `gorm:"not null" json:"upfrontPayment"`
	MinGroupSize    int        `gorm:"default:12" json:"minGroupSize"`
	MaxCapacity     int        `gorm:"default:16" json:"maxCapacity"`
	StartDatetime   time.Time  `gorm:"index;not null" json:"startDatetime"`
	BookingDeadline time.Time  `gorm:"not null" json:"bookingDeadline"`
	MeetingPoint    string     `gorm:"size:255" json:"meetingPoint"`
	MeetingTime     *time.Time `json:"meetingTime"`
	TourLeadId      *uint      `gorm:"index" json:"tourLeadId"`
	IsActive        bool       `gorm:"default:true" json:"isActive"`

	Division   Division        `gorm:"foreignKey:DivisionId" json:"division"`
	District   *District       `gorm:"foreignKey:DistrictId" json:"district"`
	Upazila    *Upazila        `gorm:"foreignKey:UpazilaId" json:"upazila"`
	Transport  *Transport      `gorm:"foreignKey:TransportId" json:"transport"`
	Stay       *Stay           `gorm:"foreignKey:StayId" json:"stay"`
	TourLead   *TourGuide      `gorm:"foreignKey:TourLeadId" json:"tourLead"`
	Days       []TourDay       `gorm:"foreignKey:TourId;constraint:OnDelete:CASCADE" json:"days"`
	Inclusions []TourInclusion `gorm:"foreignKey:TourId;constraint:OnDelete:CASCADE" json:"inclusions"`
}

// BeforeSave rejects tours whose location does not nest: a district must
// belong to the tour's division, an upazila to the tour's district.
func (t *Tour) BeforeSave(tx *gorm.DB) error {
	if t.UpazilaId != nil && t.DistrictId == nil {
		return errors.New("upazila requires a district")
	}
	if t.DistrictId != nil {
		var district District
		if err := tx.First(&district, *t.DistrictId).Error; err != nil {
			return err
		}
		if district.DivisionId != t.DivisionId {
			return errors.New("district does not belong to the selected division")
		}
	}
	if t.UpazilaId != nil {
		var upazila Upazila
		if err := tx.First(&upazila, *t.UpazilaId).Error; err != nil {
			return err
		}
		if upazila.DistrictId != *t.DistrictId {
			return errors.New("upazila does not belong to the selected district")
		}
	}
	return nil
}

// BeforeCreate fills in a unique slug when none was provided.
func (t *Tour) BeforeCreate(tx *gorm.DB) error {
	if t.Slug != "" {
		return nil
	}

	base := slug.Make(t.Title)
	candidate := base
	for i := 1; ; i++ {
		var count int64
		if err := tx.Model(&Tour{}).Where("slug = ?", candidate).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			break
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
	t.Slug = candidate
	return nil
}

// DeadlinePassed reports whether new bookings are closed.
func (t *Tour) DeadlinePassed() bool {
	return time.Now().After(t.BookingDeadline)
}

type TourDay struct {
	DTO
	TourId    uint   `gorm:"index;not null" json:"tourId"`
	DayNumber int    `gorm:"not null" json:"dayNumber"`
	Title     string `gorm:"size:255" json:"title"`

	Activities []TourActivity `gorm:"foreignKey:TourDayId;constraint:OnDelete:CASCADE" json:"activities"`
}

type TourActivity struct {
	DTO
	TourDayId   uint   `gorm:"index;not null" json:"tourDayId"`
	Time        string `gorm:"size:20" json:"time"`
	Description string `gorm:"size:500" json:"description"`
}

type TourInclusion struct {
	DTO
	TourId uint   `gorm:"index;not null" json:"tourId"`
	Label  string `gorm:"size:255;not null" json:"label"`
}

type TourReview struct {
	DTO
	TourId  uint   `gorm:"not null;uniqueIndex:idx_tour_review_user" json:"tourId"`
	UserId  uint   `gorm:"not null;uniqueIndex:idx_tour_review_user" json:"userId"`
	Rating  int    `gorm:"not null" json:"rating"`
	Comment string `gorm:"size:1000" json:"comment"`

	Tour Tour        `gorm:"foreignKey:TourId;constraint:OnDelete:CASCADE" json:"-"`
	User UserAccount `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

// TourSummary is the annotated list/detail payload.
type TourSummary struct {
	Tour
	JoinedCount     int       `json:"joinedCount"`
	SpotsRemaining  int       `json:"spotsRemaining"`
	ProgressPercent int       `json:"progressPercent"`
	Rating          float64   `json:"rating"`
	RatingCount     int       `json:"ratingCount"`
	TransportRating float64   `json:"transportRating"`
	StayRating      float64   `json:"stayRating"`
	LocationText    string    `json:"locationText"`
	DurationText    string    `json:"durationText"`
	TimeLeft        *TimeLeft `json:"timeLeft,omitempty"`
	IsBooked        bool      `json:"isBooked"`
}
