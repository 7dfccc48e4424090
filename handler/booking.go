package handler

import (
	"errors"
	"time"

	"tour_manager/constants"
	"tour_manager/database"
	"tour_manager/helper"
	"tour_manager/model"
	"tour_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func findActiveTourBySlug(slug string) (*model.Tour, error) {
	var tour model.Tour
	err := database.DB.
		Where("slug = ? AND is_active = ?", slug, true).
		First(&tour).Error
	if err != nil {
		return nil, err
	}
	return &tour, nil
}

// missingProfileFields lists what still has to be collected before a booking
// can be submitted.
func missingProfileFields(user *model.UserAccount) []string {
	var missing []string
	if user.FullName == "" {
		missing = append(missing, "fullName")
	}
	if user.MobileNumber == nil || *user.MobileNumber == "" {
		missing = append(missing, "mobileNumber")
	}
	if user.EmergencyContactNumber == "" {
		missing = append(missing, "emergencyContactNumber")
	}
	return missing
}

func GetJoinTour(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	tour, err := findActiveTourBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	var booking *model.TourBooking
	var existing model.TourBooking
	err = database.DB.Where("tour_id = ? AND user_id = ?", tour.ID, user.ID).First(&existing).Error
	if err == nil {
		booking = &existing
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"tour":                 tour,
		"booking":              booking,
		"missingProfileFields": missingProfileFields(&user),
	})
}

// JoinTour get-or-creates the user's draft booking for a tour. Calling it
// again returns the same booking untouched.
func JoinTour(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	input := c.Locals("inputJoinTour").(model.JoinTourInput)
	db := database.DB

	tour, err := findActiveTourBySlug(c.Params("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.TOUR_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if tour.DeadlinePassed() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DEADLINE_PASSED, nil)
	}

	// Backfill profile fields the booking needs but the user never set.
	updates := map[string]any{}
	if user.FullName == "" && input.FullName != nil && *input.FullName != "" {
		updates["full_name"] = *input.FullName
	}
	if (user.MobileNumber == nil || *user.MobileNumber == "") && input.MobileNumber != nil && *input.MobileNumber != "" {
		updates["mobile_number"] = *input.MobileNumber
	}
	if user.EmergencyContactNumber == "" && input.EmergencyContactNumber != nil && *input.EmergencyContactNumber != "" {
		updates["emergency_contact_number"] = *input.EmergencyContactNumber
	}
	if user.EmergencyContactRelationship == "" && input.EmergencyContactRelationship != nil && *input.EmergencyContactRelationship != "" {
		updates["emergency_contact_relationship"] = *input.EmergencyContactRelationship
	}
	if len(updates) > 0 {
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
	}

	var booking model.TourBooking
	err = db.Where("tour_id = ? AND user_id = ?", tour.ID, user.ID).First(&booking).Error
	if err == nil {
		return utils.SuccessResponse(c, fiber.StatusOK, booking)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	seats := 1
	if input.Seats != nil {
		seats = *input.Seats
	}
	booking = model.TourBooking{
		TourId: tour.ID,
		UserId: user.ID,
		Seats:  seats,
		Status: model.BookingDraft,
	}
	// A concurrent join races on the (tour,user) unique index and surfaces
	// here as a plain 400.
	if err := db.Create(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	go PublishAvailability(tour.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func getOwnedBooking(c *fiber.Ctx, userId uint) (*model.TourBooking, error) {
	bookingId := c.Locals("inputId").(int)

	var booking model.TourBooking
	err := database.DB.Preload("Tour").
		Where("id = ? AND user_id = ?", bookingId, userId).
		First(&booking).Error
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func GetConfirmBooking(c *fiber.Ctx) error {
	claim, _ := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	booking, err := getOwnedBooking(c, claim.UserId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := fiber.Map{
		"booking":        booking,
		"totalCost":      booking.Tour.TotalCost,
		"upfrontPayment": booking.Tour.UpfrontPayment,
	}
	if booking.BookingReference != nil {
		qr, err := utils.GenerateQRCodeBase64(*booking.BookingReference, 256)
		if err == nil {
			response["qrCode"] = qr
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// ConfirmBooking moves a draft to pending, assigning the permanent booking
// reference on the way.
func ConfirmBooking(c *fiber.Ctx) error {
	claim, user := helper.GetInfoUserFromToken(c)
	if claim.UserId == 0 {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, constants.USER_NOT_FOUND, nil)
	}

	input := c.Locals("inputConfirmBooking").(model.ConfirmBookingInput)
	db := database.DB

	booking, err := getOwnedBooking(c, claim.UserId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.BOOKING_NOT_FOUND, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if booking.Status != model.BookingDraft {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_SUBMITTED, nil)
	}
	if booking.Tour.DeadlinePassed() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.DEADLINE_PASSED, nil)
	}
	if !input.TermsAccepted {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.TERMS_NOT_ACCEPTED, nil)
	}
	if !booking.Status.CanTransition(model.BookingPending) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.BOOKING_SUBMITTED, nil)
	}

	now := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		if booking.BookingReference == nil {
			reference, err := helper.GenerateBookingReference(tx, booking.Tour.Title)
			if err != nil {
				return err
			}
			booking.BookingReference = &reference
		}
		booking.Status = model.BookingPending
		booking.TermsAcceptedAt = &now
		booking.ConfirmedAt = &now
		return tx.Save(booking).Error
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	utils.SendBookingPendingEmail(user.Email, user.FullName, booking.Tour.Title,
		*booking.BookingReference, booking.Tour.UpfrontPayment)
	go PublishAvailability(booking.TourId)

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}
