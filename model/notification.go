package model

type NotificationPreference struct {
	DTO
	UserId                 uint `gorm:"uniqueIndex;not null" json:"-"`
	NewTourNotifications   bool `gorm:"default:true" json:"newTourNotifications"`
	BookingUpdates         bool `gorm:"default:true" json:"bookingUpdates"`
	TourReminders          bool `gorm:"default:true" json:"tourReminders"`
	MarketingEmails        bool `gorm:"default:false" json:"marketingEmails"`
	MarketingNotifications bool `gorm:"default:false" json:"marketingNotifications"`

	User UserAccount `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

// DefaultNotificationPreference returns the row provisioned with every new user.
func DefaultNotificationPreference(userId uint) NotificationPreference {
	return NotificationPreference{
		UserId:                 userId,
		NewTourNotifications:   true,
		BookingUpdates:         true,
		TourReminders:          true,
		MarketingEmails:        false,
		MarketingNotifications: false,
	}
}

type UpdatePreferenceInput struct {
	NewTourNotifications   *bool `json:"newTourNotifications"`
	BookingUpdates         *bool `json:"bookingUpdates"`
	TourReminders          *bool `json:"tourReminders"`
	MarketingEmails        *bool `json:"marketingEmails"`
	MarketingNotifications *bool `json:"marketingNotifications"`
}
