package helper

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"tour_manager/model"

	"gorm.io/gorm"
)

// ReferencePrefix builds a 3 letter code from the initials of the tour
// title, padded with X when the title has fewer than three words.
func ReferencePrefix(title string) string {
	var initials []rune
	for _, word := range strings.Fields(title) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				initials = append(initials, unicode.ToUpper(r))
			}
			break
		}
		if len(initials) == 3 {
			break
		}
	}
	for len(initials) < 3 {
		initials = append(initials, 'X')
	}
	return string(initials)
}

// GenerateBookingReference returns a unique "<PREFIX><6 digits>" code,
// retrying on the rare collision.
func GenerateBookingReference(tx *gorm.DB, tourTitle string) (string, error) {
	prefix := ReferencePrefix(tourTitle)

	for {
		n, err := rand.Int(rand.Reader, big.NewInt(1000000))
		if err != nil {
			return "", err
		}
		candidate := fmt.Sprintf("%s%06d", prefix, n.Int64())

		var count int64
		if err := tx.Model(&model.TourBooking{}).
			Where("booking_reference = ?", candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}
}
