package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"tour_manager/database"
	"tour_manager/model"

	"gorm.io/gorm"
)

// GenerateOTP returns a 6 digit code from crypto/rand.
func GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// CreateOTPForUser stores a new code for the user. Existing rows are kept;
// verification matches against any still-valid code.
func CreateOTPForUser(tx *gorm.DB, userId uint) (*model.OTP, error) {
	code, err := GenerateOTP()
	if err != nil {
		return nil, err
	}
	otp := model.OTP{UserId: userId, Code: code}
	if err := tx.Create(&otp).Error; err != nil {
		return nil, err
	}
	return &otp, nil
}

// FindValidOTP returns the user's matching unexpired code, or nil.
func FindValidOTP(userId uint, code string) (*model.OTP, error) {
	var otps []model.OTP
	if err := database.DB.Where("user_id = ? AND code = ?", userId, code).Find(&otps).Error; err != nil {
		return nil, err
	}
	for i := range otps {
		if otps[i].IsValid() {
			return &otps[i], nil
		}
	}
	return nil, nil
}
