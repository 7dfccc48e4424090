package helper

import (
	"strings"

	"tour_manager/model"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// GenerateUsername derives a unique username from the user's first name
// plus a short random suffix, e.g. "rahim1a2b3c4d".
func GenerateUsername(fullName string) string {
	first := "user"
	if fields := strings.Fields(fullName); len(fields) > 0 {
		if s := slug.Make(fields[0]); s != "" {
			first = s
		}
	}
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return first + suffix
}

// ProvisionUser creates the user row together with its default
// notification preferences inside the caller's transaction.
func ProvisionUser(tx *gorm.DB, user *model.UserAccount) error {
	if err := tx.Create(user).Error; err != nil {
		return err
	}
	prefs := model.DefaultNotificationPreference(user.ID)
	return tx.Create(&prefs).Error
}
