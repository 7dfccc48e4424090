package handler

import (
	"errors"

	"tour_manager/constants"
	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func preferencesForUser(userId uint) (*model.NotificationPreference, error) {
	db := database.DB
	var prefs model.NotificationPreference
	err := db.Where("user_id = ?", userId).First(&prefs).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// Old rows predating auto-provisioning get defaults on first touch.
		prefs = model.DefaultNotificationPreference(userId)
		err = db.Create(&prefs).Error
	}
	if err != nil {
		return nil, err
	}
	return &prefs, nil
}

func GetPreferences(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	prefs, err := preferencesForUser(claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, prefs)
}

// UpdatePreferences flips only the booleans present in the request body.
func UpdatePreferences(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	input := c.Locals("inputUpdatePreference").(model.UpdatePreferenceInput)

	prefs, err := preferencesForUser(claim.UserId)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	updates := map[string]any{}
	if input.NewTourNotifications != nil {
		updates["new_tour_notifications"] = *input.NewTourNotifications
	}
	if input.BookingUpdates != nil {
		updates["booking_updates"] = *input.BookingUpdates
	}
	if input.TourReminders != nil {
		updates["tour_reminders"] = *input.TourReminders
	}
	if input.MarketingEmails != nil {
		updates["marketing_emails"] = *input.MarketingEmails
	}
	if input.MarketingNotifications != nil {
		updates["marketing_notifications"] = *input.MarketingNotifications
	}

	if len(updates) > 0 {
		if err := database.DB.Model(prefs).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, prefs)
}
