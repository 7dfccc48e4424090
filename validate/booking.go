package validate

import (
	"tour_manager/model"

	"github.com/gofiber/fiber/v2"
)

func JoinTour() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.JoinTourInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputJoinTour", input)
		return c.Next()
	}
}

func ConfirmBooking() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.ConfirmBookingInput
		if !parseAndValidate(c, &input) {
			return nil
		}

		c.Locals("inputConfirmBooking", input)
		return c.Next()
	}
}
