package model

import "time"

type UserAccount struct {
	DTO
	Email                        string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Username                     string     `gorm:"size:150;uniqueIndex;not null" json:"username"`
	FullName                     string     `gorm:"size:255" json:"fullName"`
	PasswordHash                 string     `gorm:"size:255" json:"-"`
	MobileNumber                 *string    `gorm:"size:20;uniqueIndex" json:"mobileNumber"`
	DateOfBirth                  *time.Time `json:"dateOfBirth"`
	BloodGroup                   string     `gorm:"size:10" json:"bloodGroup"`
	Gender                       string     `gorm:"size:20" json:"gender"`
	PresentAddress               string     `gorm:"size:500" json:"presentAddress"`
	EmergencyContactNumber       string     `gorm:"size:20" json:"emergencyContactNumber"`
	EmergencyContactRelationship string     `gorm:"size:50" json:"emergencyContactRelationship"`
	ProfilePic                   string     `gorm:"size:500" json:"profilePic"`
	ProfileUpdatedAt             *time.Time `json:"profileUpdatedAt"`
	AuthProvider                 string     `gorm:"size:20;default:email" json:"authProvider"`
	GoogleId                     *string    `gorm:"size:255;uniqueIndex" json:"-"`
	IsActive                     bool       `gorm:"default:false" json:"isActive"`
	IsBanned                     bool       `gorm:"default:false" json:"-"`
}

func (UserAccount) TableName() string {
	return "user_accounts"
}

// ProfileComplete reports whether the fields a booking needs are filled in.
func (u *UserAccount) ProfileComplete() bool {
	return u.FullName != "" &&
		u.MobileNumber != nil && *u.MobileNumber != "" &&
		u.EmergencyContactNumber != ""
}

type OTP struct {
	DTO
	UserId uint   `gorm:"index;not null" json:"userId"`
	Code   string `gorm:"size:6;not null" json:"-"`

	User UserAccount `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE" json:"-"`
}

// IsValid reports whether the code is still inside its 5 minute window.
func (o *OTP) IsValid() bool {
	return o.ValidAt(time.Now())
}

// ValidAt reports validity at an instant. The window is inclusive: a code
// is accepted up to and including created_at + 5 minutes.
func (o *OTP) ValidAt(now time.Time) bool {
	return !now.After(o.CreatedAt.Add(5 * time.Minute))
}

type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"fullName" validate:"required,max=255"`
}

type VerifyTokenInput struct {
	Token string `json:"token" validate:"required"`
}

type VerifyOTPInput struct {
	Token string `json:"token" validate:"required"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type GoogleLoginInput struct {
	IdToken string `json:"idToken" validate:"required"`
}

type RefreshInput struct {
	Refresh string `json:"refresh" validate:"required"`
}

type ForgetPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

type SetPasswordInput struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

type UpdateProfileInput struct {
	FullName                     *string `json:"fullName" validate:"omitempty,max=255"`
	MobileNumber                 *string `json:"mobileNumber" validate:"omitempty,max=20"`
	DateOfBirth                  *string `json:"dateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	BloodGroup                   *string `json:"bloodGroup" validate:"omitempty,max=10"`
	Gender                       *string `json:"gender" validate:"omitempty,max=20"`
	PresentAddress               *string `json:"presentAddress" validate:"omitempty,max=500"`
	EmergencyContactNumber       *string `json:"emergencyContactNumber" validate:"omitempty,max=20"`
	EmergencyContactRelationship *string `json:"emergencyContactRelationship" validate:"omitempty,max=50"`
	ProfilePic                   *string `json:"profilePic" validate:"omitempty,max=500"`
}
