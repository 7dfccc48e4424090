package model

import "time"

type BookingStatus string

const (
	BookingDraft     BookingStatus = "draft"
	BookingPending   BookingStatus = "pending"
	BookingPaid      BookingStatus = "paid"
	BookingCancelled BookingStatus = "cancelled"
	BookingRefunded  BookingStatus = "refunded"
)

var allowedTransitions = map[BookingStatus][]BookingStatus{
	BookingDraft:     {BookingPending},
	BookingPending:   {BookingPaid, BookingCancelled},
	BookingPaid:      {BookingRefunded},
	BookingCancelled: {},
	BookingRefunded:  {},
}

// CanTransition reports whether moving from s to next is a legal edge.
func (s BookingStatus) CanTransition(next BookingStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s BookingStatus) IsFinal() bool {
	return len(allowedTransitions[s]) == 0
}

type TourBooking struct {
	DTO
	TourId           uint          `gorm:"not null;uniqueIndex:idx_booking_tour_user" json:"tourId"`
	UserId           uint          `gorm:"not null;uniqueIndex:idx_booking_tour_user" json:"userId"`
	Seats            int           `gorm:"not null;default:1" json:"seats"`
	Status           BookingStatus `gorm:"size:20;not null;default:draft" json:"status"`
	BookingReference *string       `gorm:"size:20;uniqueIndex" json:"bookingReference"`
	TermsAcceptedAt  *time.Time    `json:"termsAcceptedAt"`
	ConfirmedAt      *time.Time    `json:"confirmedAt"`
	PaidAt           *time.Time    `json:"paidAt"`

	Tour Tour        `gorm:"foreignKey:TourId;constraint:OnDelete:CASCADE" json:"tour"`
	User UserAccount `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

type JoinTourInput struct {
	Seats                        *int    `json:"seats" validate:"omitempty,min=1"`
	FullName                     *string `json:"fullName" validate:"omitempty,max=255"`
	MobileNumber                 *string `json:"mobileNumber" validate:"omitempty,max=20"`
	EmergencyContactNumber       *string `json:"emergencyContactNumber" validate:"omitempty,max=20"`
	EmergencyContactRelationship *string `json:"emergencyContactRelationship" validate:"omitempty,max=50"`
}

type ConfirmBookingInput struct {
	TermsAccepted bool `json:"termsAccepted"`
}
